package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Question представляет вопрос квиза.
type Question struct {
	Text    string   `json:"text" yaml:"text"`
	Image   string   `json:"image" yaml:"image"` // локальный путь или http(s) URL, может быть пустым
	Options []string `json:"options" yaml:"options"`
	Correct int      `json:"correct" yaml:"correct"`
}

// NoSlot означает, что вопрос ещё не показан и правильной кнопки нет.
const NoSlot = -1

// Session — прогресс одного чата.
type Session struct {
	QuestionIndex int
	Score         int
	CorrectSlot   int
	Token         string // токен показанного вопроса, пустой если вопроса на экране нет
	StartedAt     time.Time
}

// NewSession возвращает сессию в начальном состоянии.
func NewSession() Session {
	return Session{
		CorrectSlot: NoSlot,
		StartedAt:   time.Now(),
	}
}

// SessionStore хранит сессии по идентификатору чата.
type SessionStore interface {
	// Create кладёт новую сессию, затирая прежнюю.
	Create(chatID int64) Session

	// Get возвращает копию сессии. ok == false, если сессии нет.
	Get(chatID int64) (Session, bool)

	// Update атомарно применяет mutate к сессии.
	// Возвращает ErrSessionNotFound, если сессии нет.
	Update(chatID int64, mutate func(*Session)) error

	// Delete удаляет сессию.
	Delete(chatID int64)
}

// ErrSessionNotFound возвращается хранилищем, когда сессии нет.
var ErrSessionNotFound = errors.New("session not found")

// QuestionView — то, что видит пользователь: вопрос с перемешанными вариантами.
type QuestionView struct {
	Number  int // 1-based
	Total   int
	Text    string
	Image   string
	Options []string
	Token   string
}

// Caption возвращает подпись к вопросу.
func (v QuestionView) Caption() string {
	return fmt.Sprintf("Question %d/%d: %s", v.Number, v.Total, v.Text)
}

// Result — итог пройденного квиза.
type Result struct {
	Score int
	Total int
}

// Caption возвращает подпись финального экрана.
func (r Result) Caption() string {
	return fmt.Sprintf(
		"🏁 Quiz finished!\nYou got %d out of %d correct.\n\n"+
			"🎁 Tap below to claim your personal prize. It disappears in 1 hour!",
		r.Score, r.Total,
	)
}

// Feedback — короткий ответ на нажатие кнопки.
type Feedback int

const (
	FeedbackCorrect Feedback = iota
	FeedbackWrong
	FeedbackRestart // сессии нет, нужно начать заново
	FeedbackStale   // нажата кнопка уже пройденного вопроса
)

// Presenter отрисовывает состояние квиза в чате.
type Presenter interface {
	// Welcome показывает приветственный экран с кнопкой начала.
	Welcome(ctx context.Context, chatID int64) error

	// Question показывает вопрос с кнопками вариантов.
	Question(ctx context.Context, chatID int64, view QuestionView) error

	// Final показывает итог, ссылку на приз и кнопку повтора.
	Final(ctx context.Context, chatID int64, result Result) error

	// Acknowledge отвечает на нажатие кнопки всплывающим уведомлением.
	Acknowledge(ctx context.Context, callbackID string, fb Feedback) error
}

// Answer — нажатие кнопки варианта.
type Answer struct {
	ChatID     int64
	CallbackID string
	Token      string
	Slot       int
}

// Outcome — чем закончилась обработка ответа.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
	OutcomeNoSession
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	case OutcomeNoSession:
		return "no_session"
	case OutcomeStale:
		return "stale"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}
