package fetcher

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	batches [][]tgbotapi.Update
	offsets []int
	err     error
}

func (c *fakeClient) SendMessage(int64, string, *tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (c *fakeClient) SendPhoto(int64, tgbotapi.RequestFileData, string, *tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (c *fakeClient) AnswerCallback(string, string) error {
	return nil
}

func (c *fakeClient) GetUpdates(_ context.Context, offset int, _ int) ([]tgbotapi.Update, error) {
	c.offsets = append(c.offsets, offset)
	if c.err != nil {
		return nil, c.err
	}
	if len(c.batches) == 0 {
		return nil, nil
	}

	batch := c.batches[0]
	c.batches = c.batches[1:]

	return batch, nil
}

func TestTelegramFetcher_AdvancesOffset(t *testing.T) {
	c := &fakeClient{batches: [][]tgbotapi.Update{
		{{UpdateID: 5}, {UpdateID: 6}},
		{},
		{{UpdateID: 9}},
	}}
	f := NewTelegramFetcher(c)
	ctx := context.Background()

	updates, err := f.GetUpdates(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, 7, f.Offset())

	updates, err = f.GetUpdates(ctx, 30)
	require.NoError(t, err)
	assert.Empty(t, updates)
	assert.Equal(t, 7, f.Offset())

	_, err = f.GetUpdates(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 10, f.Offset())

	assert.Equal(t, []int{0, 7, 7}, c.offsets)
}

func TestTelegramFetcher_ErrorKeepsOffset(t *testing.T) {
	c := &fakeClient{err: errors.New("network down")}
	f := NewTelegramFetcher(c)

	_, err := f.GetUpdates(context.Background(), 30)
	assert.Error(t, err)
	assert.Equal(t, 0, f.Offset())
}
