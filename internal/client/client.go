package client

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotClient реализует Client через go-telegram-bot-api.
type BotClient struct {
	api *tgbotapi.BotAPI
}

// NewBotClient авторизуется по токену и возвращает клиента.
func NewBotClient(token string, debug bool) (*BotClient, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	api.Debug = debug

	return &BotClient{api: api}, nil
}

// NewWithAPI оборачивает уже созданный BotAPI. Через него подставляются
// свой endpoint Bot API или свой *http.Client (tgbotapi.NewBotAPIWithClient).
func NewWithAPI(api *tgbotapi.BotAPI) *BotClient {
	return &BotClient{api: api}
}

// Username возвращает имя бота без @.
func (c *BotClient) Username() string {
	return c.api.Self.UserName
}

// SendMessage отправляет сообщение text в чат chatID.
func (c *BotClient) SendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}

	return nil
}

// SendPhoto отправляет картинку photo с подписью caption в чат chatID.
func (c *BotClient) SendPhoto(
	chatID int64,
	photo tgbotapi.RequestFileData,
	caption string,
	markup *tgbotapi.InlineKeyboardMarkup,
) error {
	msg := tgbotapi.NewPhoto(chatID, photo)
	msg.Caption = caption
	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send photo to chat %d: %w", chatID, err)
	}

	return nil
}

// AnswerCallback отвечает уведомлением в верхней части экрана чата
// на callback query с идентификатором callbackID.
func (c *BotClient) AnswerCallback(callbackID string, text string) error {
	if _, err := c.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("answer callback %s: %w", callbackID, err)
	}

	return nil
}

// GetUpdates получает обновления начиная с offset.
// Если новых обновлений нет, ждёт до timeout секунд.
// Отмена ctx прерывает ожидание сразу; сам запрос tgbotapi контекст не
// принимает и дорабатывает в фоне, его результат отбрасывается.
func (c *BotClient) GetUpdates(ctx context.Context, offset int, timeout int) ([]tgbotapi.Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := tgbotapi.NewUpdate(offset)
	cfg.Timeout = timeout
	cfg.AllowedUpdates = []string{"message", "callback_query"}

	type result struct {
		updates []tgbotapi.Update
		err     error
	}
	done := make(chan result, 1)

	go func() {
		updates, err := c.api.GetUpdates(cfg)
		done <- result{updates: updates, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("get updates: %w", res.err)
		}

		return res.updates, nil
	}
}
