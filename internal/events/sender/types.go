package sender

import (
	"context"

	"github.com/letsssgooo/triviaBot/internal/media"
)

// ImageResolver превращает путь или URL картинки в вложение.
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) media.Resolution
}

// Options — настраиваемые части экранов.
type Options struct {
	OfferURL     string // ссылка на приз на финальном экране
	WelcomeImage string
	FinalImage   string
}

// columns — сколько кнопок вариантов в одном ряду.
const columns = 2

// Тексты экранов и кнопок.
const (
	welcomeCaption = "🎬 Think you know movies and TV shows better than anyone? Prove it in our quiz!\n" +
		"Questions about films and series from every genre are waiting for you, from classics to modern hits.\n\n" +
		"🔥 And the best part: correct answers earn you an exclusive prize you can only claim after finishing!\n\n" +
		"Ready to start and claim your prize?"

	buttonBegin   = "Begin"
	buttonPrize   = "Claim your prize"
	buttonRestart = "Play again"

	feedbackCorrect = "✅ Correct!"
	feedbackWrong   = "❌ Wrong"
	feedbackRestart = "Press /start to begin"
	feedbackStale   = "This question is no longer active"
)
