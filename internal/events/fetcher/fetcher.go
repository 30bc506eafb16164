package fetcher

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/letsssgooo/triviaBot/internal/client"
)

// TelegramFetcher реализует Fetcher через Telegram Bot API.
// Он помнит offset, поэтому каждое обновление отдаётся ровно один раз.
type TelegramFetcher struct {
	client client.Client
	mu     sync.Mutex
	offset int
}

// NewTelegramFetcher создаёт fetcher, начинающий с самого старого необработанного обновления.
func NewTelegramFetcher(client client.Client) *TelegramFetcher {
	return &TelegramFetcher{
		client: client,
		offset: 0,
	}
}

// GetUpdates получает слайс Update, учитывая timeout
func (f *TelegramFetcher) GetUpdates(ctx context.Context, timeout int) ([]tgbotapi.Update, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	updates, err := f.client.GetUpdates(ctx, f.offset, timeout)
	if err != nil {
		return nil, err
	}

	for _, u := range updates {
		if u.UpdateID >= f.offset {
			f.offset = u.UpdateID + 1
		}
	}

	return updates, nil
}

// Offset возвращает offset следующего запроса.
func (f *TelegramFetcher) Offset() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.offset
}
