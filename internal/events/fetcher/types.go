package fetcher

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Fetcher определяет основной интерфейс для получения обновлений.
type Fetcher interface {
	// GetUpdates получает очередную пачку обновлений, ожидая не дольше timeout секунд.
	GetUpdates(ctx context.Context, timeout int) ([]tgbotapi.Update, error)
}
