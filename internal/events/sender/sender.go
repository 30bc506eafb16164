package sender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/letsssgooo/triviaBot/internal/callback"
	"github.com/letsssgooo/triviaBot/internal/client"
	"github.com/letsssgooo/triviaBot/internal/media"
	"github.com/letsssgooo/triviaBot/internal/quiz"
)

// Sender отрисовывает экраны квиза через Telegram Bot API.
// Если картинку не удалось подготовить или отправить, экран уходит текстом
// с той же подписью и кнопками.
type Sender struct {
	client client.Client
	images ImageResolver
	opts   Options
	log    *slog.Logger
}

var _ quiz.Presenter = (*Sender)(nil)

// NewSender создает новый объект структуры Sender.
func NewSender(client client.Client, images ImageResolver, opts Options, log *slog.Logger) *Sender {
	if log == nil {
		log = slog.Default()
	}

	return &Sender{
		client: client,
		images: images,
		opts:   opts,
		log:    log.With("component", "sender"),
	}
}

// Welcome показывает приветствие с кнопкой «Begin».
func (s *Sender) Welcome(ctx context.Context, chatID int64) error {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonBegin, callback.Begin),
		),
	)

	return s.send(ctx, chatID, s.opts.WelcomeImage, welcomeCaption, &markup)
}

// Question показывает вопрос, по кнопке на вариант, по две в ряд.
func (s *Sender) Question(ctx context.Context, chatID int64, view quiz.QuestionView) error {
	markup := optionsKeyboard(view)

	return s.send(ctx, chatID, view.Image, view.Caption(), &markup)
}

// Final показывает итог с кнопкой-ссылкой на приз и кнопкой повтора.
func (s *Sender) Final(ctx context.Context, chatID int64, result quiz.Result) error {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(buttonPrize, s.opts.OfferURL),
			tgbotapi.NewInlineKeyboardButtonData(buttonRestart, callback.Begin),
		),
	)

	return s.send(ctx, chatID, s.opts.FinalImage, result.Caption(), &markup)
}

// Acknowledge отвечает на нажатие кнопки всплывающим текстом.
func (s *Sender) Acknowledge(_ context.Context, callbackID string, fb quiz.Feedback) error {
	return s.client.AnswerCallback(callbackID, FeedbackText(fb))
}

// FeedbackText возвращает текст уведомления для fb.
func FeedbackText(fb quiz.Feedback) string {
	switch fb {
	case quiz.FeedbackCorrect:
		return feedbackCorrect
	case quiz.FeedbackWrong:
		return feedbackWrong
	case quiz.FeedbackRestart:
		return feedbackRestart
	case quiz.FeedbackStale:
		return feedbackStale
	default:
		return ""
	}
}

// send отправляет фото с подписью, а при любой проблеме с картинкой — текст.
func (s *Sender) send(
	ctx context.Context,
	chatID int64,
	imageRef string,
	caption string,
	markup *tgbotapi.InlineKeyboardMarkup,
) error {
	res := s.images.Resolve(ctx, imageRef)

	switch {
	case res.Resolved():
		err := s.client.SendPhoto(chatID, res.Attachment, caption, markup)
		if err == nil {
			return nil
		}
		s.log.Warn("failed to send photo, falling back to text",
			"chat_id", chatID, "image", imageRef, "err", err)
	case errors.Is(res.Reason, media.ErrNoImage):
		s.log.Debug("no image configured", "chat_id", chatID)
	default:
		s.log.Warn("image unavailable, sending text",
			"chat_id", chatID, "image", imageRef, "reason", res.Reason)
	}

	if err := s.client.SendMessage(chatID, caption, markup); err != nil {
		return fmt.Errorf("deliver to chat %d: %w", chatID, err)
	}

	return nil
}

func optionsKeyboard(view quiz.QuestionView) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(view.Options)+columns-1)/columns)

	var row []tgbotapi.InlineKeyboardButton
	for slot, option := range view.Options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(option, callback.EncodeAnswer(view.Token, slot)))
		if len(row) == columns {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
