package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/lingua-trainer-bot/internal/config"
	"github.com/aliskhannn/lingua-trainer-bot/internal/delivery/telegram"
	"github.com/aliskhannn/lingua-trainer-bot/internal/generator"
	"github.com/aliskhannn/lingua-trainer-bot/internal/infra/postgres"
	"github.com/aliskhannn/lingua-trainer-bot/internal/logger"
	"github.com/aliskhannn/lingua-trainer-bot/internal/provider"
	"github.com/aliskhannn/lingua-trainer-bot/internal/repository"
	"github.com/aliskhannn/lingua-trainer-bot/internal/service"
	"github.com/aliskhannn/lingua-trainer-bot/internal/storage"
)

func main() {
	// Load .env if present; a missing file is fine in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("telegram api", zap.Error(err))
	}
	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "practice", Description: "Start or continue practicing"},
		{Command: "hint", Description: "Get a hint for the current question"},
		{Command: "skip", Description: "Skip the current question"},
		{Command: "stop", Description: "End the practice session"},
		{Command: "progress", Description: "Show progress by grammar topic"},
		{Command: "stats", Description: "Show overall statistics"},
		{Command: "word", Description: "Look up a word (usage: /word rain)"},
		{Command: "settings", Description: "Level and languages"},
		{Command: "export", Description: "Download your progress as a file"},
		{Command: "reset", Description: "Erase all progress"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database dsn", zap.Error(err))
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("postgres pool", zap.Error(err))
	}
	defer pool.Close()

	settingsRepo := repository.NewSettingsRepository(pool)
	stateRepo := repository.NewStateRepository(pool)
	transactor := postgres.NewTransactor(pool)

	translator := provider.NewTranslatorWithURL(cfg.Providers.TranslationURL, cfg.Providers.Timeout)
	dictionary := provider.NewDictionaryWithURL(cfg.Providers.DictionaryURL, cfg.Providers.Timeout)

	userService := service.NewUserService(transactor)
	settingsService := service.NewSettingsService(settingsRepo)
	trainerService := service.NewTrainerService(
		stateRepo,
		settingsRepo,
		storage.NewRoundStorage(),
		translator,
		dictionary,
		generator.New(),
	)

	handler := telegram.NewHandler(bot, zl, userService, settingsService, trainerService)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
