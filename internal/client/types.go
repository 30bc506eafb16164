package client

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client определяет интерфейс Telegram клиента.
type Client interface {
	// SendMessage отправляет текстовое сообщение с inline клавиатурой.
	SendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error

	// SendPhoto отправляет картинку с подписью и inline клавиатурой.
	SendPhoto(
		chatID int64,
		photo tgbotapi.RequestFileData,
		caption string,
		markup *tgbotapi.InlineKeyboardMarkup,
	) error

	// AnswerCallback отвечает на callback query.
	AnswerCallback(callbackID string, text string) error

	// GetUpdates получает обновления (long polling).
	GetUpdates(ctx context.Context, offset int, timeout int) ([]tgbotapi.Update, error)
}
