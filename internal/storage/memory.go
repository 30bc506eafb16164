package storage

import (
	"strconv"
	"time"

	"github.com/letsssgooo/triviaBot/internal/lib/keylock"
	"github.com/letsssgooo/triviaBot/internal/quiz"
	"github.com/patrickmn/go-cache"
)

// MemoryStorage реализует Storage в памяти процесса.
// Сессии хранятся по значению: наружу отдаются только копии.
type MemoryStorage struct {
	cache *cache.Cache
	ttl   time.Duration
	locks *keylock.Locker
}

// NewMemoryStorage создаёт новый MemoryStorage.
// ttl > 0 задаёт время жизни сессии без активности, NoExpiration отключает истечение.
func NewMemoryStorage(ttl time.Duration) *MemoryStorage {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &MemoryStorage{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
		locks: keylock.New(),
	}
}

// Create кладёт новую сессию, затирая прежнюю.
func (s *MemoryStorage) Create(chatID int64) quiz.Session {
	unlock := s.locks.Lock(chatID)
	defer unlock()

	session := quiz.NewSession()
	s.cache.Set(key(chatID), session, s.ttl)

	return session
}

// Get возвращает копию сессии.
func (s *MemoryStorage) Get(chatID int64) (quiz.Session, bool) {
	v, ok := s.cache.Get(key(chatID))
	if !ok {
		return quiz.Session{}, false
	}

	return v.(quiz.Session), true
}

// Update применяет mutate к сессии и сохраняет результат, продлевая её жизнь.
func (s *MemoryStorage) Update(chatID int64, mutate func(*quiz.Session)) error {
	unlock := s.locks.Lock(chatID)
	defer unlock()

	k := key(chatID)

	v, ok := s.cache.Get(k)
	if !ok {
		return quiz.ErrSessionNotFound
	}

	session := v.(quiz.Session)
	mutate(&session)
	s.cache.Set(k, session, s.ttl)

	return nil
}

// Delete удаляет сессию.
func (s *MemoryStorage) Delete(chatID int64) {
	unlock := s.locks.Lock(chatID)
	defer unlock()

	s.cache.Delete(key(chatID))
}

// Len возвращает число сессий, включая ещё не вычищенные просроченные.
func (s *MemoryStorage) Len() int {
	return s.cache.ItemCount()
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
