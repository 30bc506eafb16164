package storage

import (
	"time"

	"github.com/letsssgooo/triviaBot/internal/quiz"
)

// Storage определяет интерфейс для хранения сессий квиза.
// Это quiz.SessionStore плюс диагностика.
type Storage interface {
	quiz.SessionStore

	// Len возвращает число живых сессий.
	Len() int
}

// NoExpiration — сессии живут, пока квиз не завершён или не начат заново.
const NoExpiration time.Duration = 0

// cleanupInterval — как часто удаляются просроченные сессии.
const cleanupInterval = 10 * time.Minute

var _ Storage = (*MemoryStorage)(nil)
