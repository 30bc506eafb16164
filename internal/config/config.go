package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingToken возвращается, если не задан BOT_TOKEN.
var ErrMissingToken = errors.New("BOT_TOKEN is not set")

// Config — настройки бота.
type Config struct {
	BotToken      string
	OfferURL      string
	StartImage    string
	FinalImage    string
	Port          string
	QuestionsFile string
	LogLevel      string
	SessionTTL    time.Duration // 0 — сессии не истекают
	PollTimeout   int           // секунды long polling
	Debug         bool
}

// Load читает .env (если файл есть) и переменные окружения.
// Уже заданные переменные окружения файл не перезаписывает.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile) // .env необязателен
	}

	cfg := &Config{
		BotToken:      getEnv("BOT_TOKEN", ""),
		OfferURL:      getEnv("OFFER_URL", "https://example.com"),
		StartImage:    getEnv("START_IMG", "./images/start.jpg"),
		FinalImage:    getEnv("FINAL_IMG", "./images/bonus-final.jpg"),
		Port:          getEnv("PORT", "3000"),
		QuestionsFile: getEnv("QUESTIONS_FILE", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 0),
		PollTimeout:   getEnvInt("POLL_TIMEOUT", 30),
		Debug:         getEnvBool("BOT_DEBUG", false),
	}

	if cfg.BotToken == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// getEnvDuration понимает и "90s"/"30m", и целое число секунд.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return time.Duration(n) * time.Second
}
