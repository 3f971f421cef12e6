package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	coreconfig "witcherquiz/core/config"
	"witcherquiz/core/database"
	"witcherquiz/core/logger"
	coretelegram "witcherquiz/core/telegram"
	"witcherquiz/internal/bot"
	"witcherquiz/internal/catalog"
	"witcherquiz/internal/quiz"

	"log/slog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("bot: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := coreconfig.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	app := bot.New(cfg, quiz.NewController(cat))
	runOpts := app.RunOptions(app.Registry())

	startedAt := time.Now()
	runOpts.OnStart = func(ctx context.Context, rt coretelegram.Runtime) error {
		logger.L.With("component", "app").Info("app ready",
			slog.String("event", "ready"),
			slog.Int("questions", cat.Len()),
			slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
		)
		return nil
	}
	runOpts.OnStop = func(ctx context.Context, rt coretelegram.Runtime) error {
		logger.L.With("component", "app").Info("shutting down...",
			slog.String("event", "shutdown"),
		)
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return coretelegram.RunTelegram(ctx, runOpts)
}

// loadCatalog reads the question catalog once. The Postgres connection,
// when used, is closed as soon as the catalog is in memory.
func loadCatalog(cfg *coreconfig.Config) (*quiz.Catalog, error) {
	switch cfg.Quiz.CatalogSource {
	case coreconfig.CatalogSourcePostgres:
		if err := database.RunMigrations(cfg.Database); err != nil {
			return nil, err
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return catalog.LoadPostgres(ctx, db)
	default:
		return catalog.LoadFile(cfg.Quiz.QuestionsFile)
	}
}
