package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/letsssgooo/triviaBot/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_CreateGet(t *testing.T) {
	st := NewMemoryStorage(NoExpiration)

	_, ok := st.Get(1)
	assert.False(t, ok)

	created := st.Create(1)
	assert.Equal(t, 0, created.QuestionIndex)
	assert.Equal(t, 0, created.Score)
	assert.Equal(t, quiz.NoSlot, created.CorrectSlot)
	assert.Empty(t, created.Token)

	got, ok := st.Get(1)
	require.True(t, ok)
	assert.Equal(t, created, got)
	assert.Equal(t, 1, st.Len())
}

func TestMemoryStorage_CreateOverwrites(t *testing.T) {
	st := NewMemoryStorage(NoExpiration)

	st.Create(1)
	require.NoError(t, st.Update(1, func(s *quiz.Session) {
		s.QuestionIndex = 3
		s.Score = 2
		s.CorrectSlot = 1
		s.Token = "t"
	}))

	st.Create(1)

	got, ok := st.Get(1)
	require.True(t, ok)
	assert.Equal(t, 0, got.QuestionIndex)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, quiz.NoSlot, got.CorrectSlot)
	assert.Empty(t, got.Token)
}

func TestMemoryStorage_GetReturnsCopy(t *testing.T) {
	st := NewMemoryStorage(NoExpiration)
	st.Create(1)

	got, _ := st.Get(1)
	got.Score = 10

	again, _ := st.Get(1)
	assert.Equal(t, 0, again.Score)
}

func TestMemoryStorage_UpdateMissing(t *testing.T) {
	st := NewMemoryStorage(NoExpiration)

	called := false
	err := st.Update(5, func(*quiz.Session) { called = true })

	assert.ErrorIs(t, err, quiz.ErrSessionNotFound)
	assert.False(t, called)

	_, ok := st.Get(5)
	assert.False(t, ok, "update must not create a session")
}

func TestMemoryStorage_Delete(t *testing.T) {
	st := NewMemoryStorage(NoExpiration)
	st.Create(1)
	st.Create(2)

	st.Delete(1)
	st.Delete(3)

	_, ok := st.Get(1)
	assert.False(t, ok)
	_, ok = st.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 1, st.Len())
}

func TestMemoryStorage_Expiration(t *testing.T) {
	st := NewMemoryStorage(50 * time.Millisecond)
	st.Create(1)

	_, ok := st.Get(1)
	require.True(t, ok)

	time.Sleep(100 * time.Millisecond)

	_, ok = st.Get(1)
	assert.False(t, ok)
	assert.ErrorIs(t, st.Update(1, func(*quiz.Session) {}), quiz.ErrSessionNotFound)
}

func TestMemoryStorage_ConcurrentUpdates(t *testing.T) {
	st := NewMemoryStorage(NoExpiration)
	st.Create(1)
	st.Create(2)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			chatID := int64(1 + i%2)
			assert.NoError(t, st.Update(chatID, func(s *quiz.Session) {
				s.Score++
				s.QuestionIndex++
			}))
		}(i)
	}
	wg.Wait()

	s1, _ := st.Get(1)
	s2, _ := st.Get(2)
	assert.Equal(t, 100, s1.Score)
	assert.Equal(t, 100, s2.Score)
}
