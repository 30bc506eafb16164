package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/letsssgooo/triviaBot/internal/bot"
	"github.com/letsssgooo/triviaBot/internal/client"
	"github.com/letsssgooo/triviaBot/internal/config"
	"github.com/letsssgooo/triviaBot/internal/events/fetcher"
	"github.com/letsssgooo/triviaBot/internal/events/sender"
	"github.com/letsssgooo/triviaBot/internal/lib/slogcustom"
	"github.com/letsssgooo/triviaBot/internal/media"
	"github.com/letsssgooo/triviaBot/internal/quiz"
	"github.com/letsssgooo/triviaBot/internal/server"
	"github.com/letsssgooo/triviaBot/internal/storage"
	"github.com/spf13/pflag"
)

func main() {
	flagEnvFile := pflag.String("env-file", ".env", "path to .env file")
	flagQuestions := pflag.String("questions", "", "path to questions file (.yaml or .json)")
	flagDebug := pflag.Bool("debug", false, "log Telegram API requests")
	pflag.Parse()

	cfg, err := config.Load(*flagEnvFile)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if *flagQuestions != "" {
		cfg.QuestionsFile = *flagQuestions
	}
	if *flagDebug {
		cfg.Debug = true
	}

	log := slogcustom.New(os.Stdout, slogcustom.ParseLevel(cfg.LogLevel))
	slog.SetDefault(log)
	log.Info("starting trivia bot...")

	bank, err := loadBank(cfg.QuestionsFile)
	if err != nil {
		log.Error("failed to load questions", "file", cfg.QuestionsFile, "err", err)
		os.Exit(1)
	}
	log.Info("questions loaded", "count", bank.Count())

	tgClient, err := client.NewBotClient(cfg.BotToken, cfg.Debug)
	if err != nil {
		log.Error("failed to connect to telegram", "err", err)
		os.Exit(1)
	}
	log.Info("authorized", "username", tgClient.Username())

	sessions := storage.NewMemoryStorage(cfg.SessionTTL)
	presenter := sender.NewSender(tgClient, media.NewResolver(""), sender.Options{
		OfferURL:     cfg.OfferURL,
		WelcomeImage: cfg.StartImage,
		FinalImage:   cfg.FinalImage,
	}, log)
	engine := quiz.NewEngine(bank, sessions, presenter, log)
	b := bot.NewBot(tgClient, fetcher.NewTelegramFetcher(tgClient), engine, cfg.PollTimeout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := server.New(cfg.Port, log).Run(ctx); err != nil {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	if err := b.Run(ctx); err != nil {
		log.Error("bot stopped with error", "err", err)
	}
	stop()
	wg.Wait()

	log.Info("shutdown complete", "active_sessions", sessions.Len())
}

func loadBank(path string) (*quiz.Bank, error) {
	if path == "" {
		return quiz.DefaultBank()
	}

	return quiz.LoadBank(path)
}
