package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Get().WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d", cfg.LogLevel, cfg.Environment, cfg.TelegramChatID)

	// Initialize Practicum API client
	apiClient := practicum.NewClient(
		cfg.PracticumEndpoint,
		cfg.PracticumToken,
		cfg.HTTPTimeout,
		logger.Get().WithField("component", "practicum"),
	)
	mainLogger.Info("Practicum API client initialized.")

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			mainLogger.WithError(err).Error("telebot error")
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				mainLogger.Errorf("telebot context: Message: %s, Sender: %d, Chat: %d", c.Text(), c.Sender().ID, c.Chat().ID)
			}
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}

	tgClient := telegram.NewTelebotAdapter(bot)
	statusService := app.NewStatusService(
		apiClient,
		tgClient,
		logger.Get().WithField("component", "status_service"),
		cfg.TelegramChatID,
		cfg.PollInterval,
		cfg.UTCOffset,
	)
	mainLogger.Info("Status service initialized.")

	digestScheduler := scheduler.NewDigestScheduler(
		statusService,
		logger.Get().WithField("component", "scheduler"),
		cfg.CronSpecDigest,
	)
	digestScheduler.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Register Handlers
	telegram.RegisterStatusHandlers(ctx, bot, statusService, logger.Get().WithField("component", "telegram"))
	mainLogger.Info("Status command handlers registered.")

	mainLogger.Info("Application setup complete. Bot and polling loop are starting...")

	go func() {
		if err := statusService.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			mainLogger.WithError(err).Error("Polling loop stopped unexpectedly")
		}
	}()

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	cancel()
	digestScheduler.Stop()
	bot.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
