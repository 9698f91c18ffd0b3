package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/config"
	"github.com/aliskhannn/conjugar-bot/internal/delivery/telegram"
	"github.com/aliskhannn/conjugar-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/conjugar-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/conjugar-bot/internal/logger"
	"github.com/aliskhannn/conjugar-bot/internal/metrics"
	"github.com/aliskhannn/conjugar-bot/internal/repository"
	"github.com/aliskhannn/conjugar-bot/internal/service"
	"github.com/aliskhannn/conjugar-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err = cfg.ValidateBot(); err != nil {
		lg.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the conjugation table.
	verbRepo, err := repository.NewVerbRepository(cfg.VerbsJSONPath)
	if err != nil {
		lg.Fatal("failed to load conjugation table",
			zap.String("path", cfg.VerbsJSONPath),
			zap.Error(err),
		)
	}

	// Connect to the database and apply the schema.
	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err = postgres.Migrate(ctx, pool); err != nil {
		lg.Fatal("failed to apply schema", zap.Error(err))
	}

	// Initialize repositories and services.
	userRepo := pgrepo.NewUserRepository(pool)
	resultRepo := pgrepo.NewResultRepository(pool, postgres.NewTransactor(pool))

	m := metrics.New()

	userService := service.NewUserService(userRepo)
	resultService := service.NewResultService(resultRepo)
	selectionService := service.NewSelectionService(verbRepo, storage.NewSelectionStorage())
	conjugationService := service.NewConjugationService(verbRepo)
	quizService := service.NewQuizService(
		verbRepo,
		storage.NewQuizStorage(),
		resultService,
		service.NewQuestionGenerator(verbRepo),
		service.NewAnswerValidator(),
		m,
		lg,
	)

	sweeper := service.NewSessionSweeper(quizService, cfg.Quiz.SessionTTL, cfg.Quiz.SweepInterval, lg)
	go func() {
		if err := sweeper.Start(ctx); err != nil {
			lg.Error("session sweeper failed", zap.Error(err))
		}
	}()

	if cfg.Metrics.Addr != "" {
		go serveMetrics(ctx, cfg.Metrics.Addr, m, lg)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "verbs", Description: "Choose verbs"},
		{Command: "tenses", Description: "Choose tenses"},
		{Command: "quiz", Description: "Start a quiz"},
		{Command: "stop", Description: "Stop the current quiz"},
		{Command: "stats", Description: "Show your results"},
		{Command: "conjugate", Description: "Show a conjugation table (usage: /conjugate ser present)"},
		{Command: "help", Description: "Help"},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	handler := telegram.NewHandler(
		bot,
		lg,
		userService,
		quizService,
		selectionService,
		resultService,
		conjugationService,
	)
	if err = handler.Run(ctx, updates); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler stopped", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received")
}

func serveMetrics(ctx context.Context, addr string, m *metrics.Metrics, lg *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	lg.Info("metrics server started", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("metrics server failed", zap.Error(err))
	}
}
