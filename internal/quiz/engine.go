package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/letsssgooo/triviaBot/internal/lib/keylock"
)

// Engine ведёт сессии квиза: старт, показ вопроса, проверку ответа и финал.
//
// Шаги одного чата выполняются строго по очереди, шаги разных чатов
// друг друга не ждут. Новое состояние сессии сохраняется только после того,
// как следующий экран доставлен пользователю.
type Engine struct {
	bank      *Bank
	sessions  SessionStore
	presenter Presenter
	locks     *keylock.Locker
	log       *slog.Logger
}

// NewEngine создаёт новый Engine.
func NewEngine(bank *Bank, sessions SessionStore, presenter Presenter, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}

	return &Engine{
		bank:      bank,
		sessions:  sessions,
		presenter: presenter,
		locks:     keylock.New(),
		log:       log.With("component", "engine"),
	}
}

// Start сбрасывает сессию чата и показывает приветствие.
func (e *Engine) Start(ctx context.Context, chatID int64) error {
	unlock := e.locks.Lock(chatID)
	defer unlock()

	e.sessions.Create(chatID)
	e.log.Debug("session reset", "chat_id", chatID)

	if err := e.presenter.Welcome(ctx, chatID); err != nil {
		return fmt.Errorf("render welcome: %w", err)
	}

	return nil
}

// Begin сбрасывает сессию и показывает первый вопрос.
func (e *Engine) Begin(ctx context.Context, chatID int64) error {
	unlock := e.locks.Lock(chatID)
	defer unlock()

	session := e.sessions.Create(chatID)

	if err := e.present(ctx, chatID, &session); err != nil {
		return err
	}

	return e.commit(chatID, session)
}

// Answer обрабатывает нажатие кнопки варианта.
func (e *Engine) Answer(ctx context.Context, a Answer) (Outcome, error) {
	unlock := e.locks.Lock(a.ChatID)
	defer unlock()

	session, ok := e.sessions.Get(a.ChatID)
	if !ok {
		e.acknowledge(ctx, a.CallbackID, FeedbackRestart)
		return OutcomeNoSession, nil
	}

	if session.Token == "" || a.Token != session.Token {
		e.log.Debug("stale answer", "chat_id", a.ChatID, "question", session.QuestionIndex)
		e.acknowledge(ctx, a.CallbackID, FeedbackStale)
		return OutcomeStale, nil
	}

	outcome := OutcomeWrong
	feedback := FeedbackWrong
	if a.Slot == session.CorrectSlot {
		outcome = OutcomeCorrect
		feedback = FeedbackCorrect
		session.Score++
	}
	e.acknowledge(ctx, a.CallbackID, feedback)

	session.QuestionIndex++

	if session.QuestionIndex < e.bank.Count() {
		if err := e.present(ctx, a.ChatID, &session); err != nil {
			return outcome, err
		}

		return outcome, e.commit(a.ChatID, session)
	}

	result := Result{Score: session.Score, Total: e.bank.Count()}
	if err := e.presenter.Final(ctx, a.ChatID, result); err != nil {
		return outcome, fmt.Errorf("render final: %w", err)
	}

	e.sessions.Delete(a.ChatID)
	e.log.Info("quiz finished",
		"chat_id", a.ChatID,
		"score", result.Score,
		"total", result.Total,
		"duration", time.Since(session.StartedAt).Round(time.Millisecond),
	)

	return outcome, nil
}

// present перемешивает варианты текущего вопроса, запоминает правильную
// кнопку в session и отправляет вопрос.
func (e *Engine) present(ctx context.Context, chatID int64, session *Session) error {
	question := e.bank.Get(session.QuestionIndex)

	order := Permutation(len(question.Options))
	options := make([]string, len(order))
	correctSlot := NoSlot
	for slot, k := range order {
		options[slot] = question.Options[k]
		if k == question.Correct {
			correctSlot = slot
		}
	}

	view := QuestionView{
		Number:  session.QuestionIndex + 1,
		Total:   e.bank.Count(),
		Text:    question.Text,
		Image:   question.Image,
		Options: options,
		Token:   uuid.NewString(),
	}

	if err := e.presenter.Question(ctx, chatID, view); err != nil {
		return fmt.Errorf("render question %d: %w", view.Number, err)
	}

	session.CorrectSlot = correctSlot
	session.Token = view.Token

	return nil
}

func (e *Engine) commit(chatID int64, next Session) error {
	err := e.sessions.Update(chatID, func(s *Session) {
		*s = next
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (e *Engine) acknowledge(ctx context.Context, callbackID string, fb Feedback) {
	if callbackID == "" {
		return
	}

	if err := e.presenter.Acknowledge(ctx, callbackID, fb); err != nil {
		e.log.Warn("failed to acknowledge callback", "callback_id", callbackID, "err", err)
	}
}
