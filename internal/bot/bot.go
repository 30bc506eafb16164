package bot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/letsssgooo/triviaBot/internal/callback"
	"github.com/letsssgooo/triviaBot/internal/client"
	"github.com/letsssgooo/triviaBot/internal/events/fetcher"
	"github.com/letsssgooo/triviaBot/internal/quiz"
)

// QuizEngine — операции движка, которые вызывает бот.
type QuizEngine interface {
	Start(ctx context.Context, chatID int64) error
	Begin(ctx context.Context, chatID int64) error
	Answer(ctx context.Context, a quiz.Answer) (quiz.Outcome, error)
}

const commandStart = "start"

// retryDelay — пауза после ошибки получения обновлений.
const retryDelay = 3 * time.Second

// Bot реализует Telegram бота для квиза.
type Bot struct {
	client      client.Client
	fetcher     fetcher.Fetcher
	engine      QuizEngine
	pollTimeout int // секунды long polling
	log         *slog.Logger
	wg          sync.WaitGroup
}

// NewBot создаёт нового бота.
func NewBot(
	client client.Client,
	fetcher fetcher.Fetcher,
	engine QuizEngine,
	pollTimeout int,
	log *slog.Logger,
) *Bot {
	if log == nil {
		log = slog.Default()
	}

	return &Bot{
		client:      client,
		fetcher:     fetcher,
		engine:      engine,
		pollTimeout: pollTimeout,
		log:         log.With("component", "bot"),
	}
}

// Run запускает бота (long polling) и блокируется до отмены ctx.
// Каждое обновление обрабатывается в своей горутине; перед выходом Run
// дожидается всех начатых обработчиков.
func (b *Bot) Run(ctx context.Context) error {
	defer b.wg.Wait()

	b.log.Info("polling for updates", "timeout", b.pollTimeout)

	for {
		if ctx.Err() != nil {
			return nil
		}

		updates, err := b.fetcher.GetUpdates(ctx, b.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			b.log.Error("failed to get updates", "err", err)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}

			continue
		}

		for _, update := range updates {
			b.wg.Add(1)
			go func(update tgbotapi.Update) {
				defer b.wg.Done()

				if err := b.HandleUpdate(ctx, update); err != nil {
					b.log.Error("failed to handle update", "update_id", update.UpdateID, "err", err)
				}
			}(update)
		}
	}
}

// HandleUpdate обрабатывает одно обновление.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	switch {
	case update.Message != nil:
		return b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		return b.handleCallback(ctx, update.CallbackQuery)
	default:
		return nil
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.Chat == nil || msg.Command() != commandStart {
		return nil
	}

	b.log.Info("start command", "chat_id", msg.Chat.ID)

	return b.engine.Start(ctx, msg.Chat.ID)
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if query.Message == nil || query.Message.Chat == nil {
		b.ack(query.ID)
		return nil
	}
	chatID := query.Message.Chat.ID

	switch {
	case query.Data == callback.Begin:
		b.ack(query.ID)
		return b.engine.Begin(ctx, chatID)

	case callback.IsAnswer(query.Data):
		token, slot, err := callback.DecodeAnswer(query.Data)
		if err != nil {
			b.ack(query.ID)
			b.log.Debug("ignoring malformed answer", "chat_id", chatID, "err", err)
			return nil
		}

		outcome, err := b.engine.Answer(ctx, quiz.Answer{
			ChatID:     chatID,
			CallbackID: query.ID,
			Token:      token,
			Slot:       slot,
		})
		b.log.Debug("answer handled", "chat_id", chatID, "outcome", outcome.String())

		return err

	default:
		// кнопки старых версий бота и прочий мусор
		b.ack(query.ID)
		b.log.Debug("ignoring unknown callback", "chat_id", chatID, "data", query.Data)
		return nil
	}
}

// ack убирает «часики» с нажатой кнопки.
func (b *Bot) ack(callbackID string) {
	if err := b.client.AnswerCallback(callbackID, ""); err != nil {
		b.log.Warn("failed to answer callback", "callback_id", callbackID, "err", err)
	}
}
