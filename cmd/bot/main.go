package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toeickilla/internal/config"
	"toeickilla/internal/dictionary"
	"toeickilla/internal/handler"
	"toeickilla/internal/repository/postgres"
	"toeickilla/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting dictionary bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	entryRepo := postgres.NewEntryRepo(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	dictService := service.NewDictionaryService(dictionary.New(), logger)
	snapshotService := service.NewSnapshotService(dictService, entryRepo, logger)

	if err := loadDictionary(cfg.DictPath, dictService, snapshotService, logger); err != nil {
		logger.Fatal("Failed to load dictionary", zap.Error(err))
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	h := handler.NewHandler(bot, authService, dictService, cfg.DictPath, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	autosaveDone := make(chan struct{})
	go func() {
		defer close(autosaveDone)
		runAutosaveJob(ctx, snapshotService, cfg.DictPath, cfg.AutosaveInterval, logger)
	}()

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()
	cancel()
	<-autosaveDone

	logger.Info("Bot stopped gracefully")
}

// loadDictionary reads the dictionary file. Without a file the last
// database snapshot is restored, and without either the bot starts empty.
func loadDictionary(path string, dict *service.DictionaryService, snapshots *service.SnapshotService, logger *zap.Logger) error {
	err := dict.LoadDictionary(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	logger.Warn("Dictionary file not found, trying database snapshot", zap.String("path", path))
	restored, err := snapshots.Restore()
	if err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}
	if restored == 0 {
		logger.Info("Starting with an empty dictionary")
	}
	return nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations creates the users and entries tables
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runAutosaveJob periodically writes the dictionary file and database
// snapshot, and once more when ctx is cancelled
func runAutosaveJob(ctx context.Context, snapshots *service.SnapshotService, path string, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Autosave job stopping, writing final copy")
			if err := snapshots.Autosave(path); err != nil {
				logger.Error("Failed to run final autosave", zap.Error(err))
			}
			return
		case <-ticker.C:
			logger.Info("Running scheduled autosave")
			if err := snapshots.Autosave(path); err != nil {
				logger.Error("Failed to run scheduled autosave", zap.Error(err))
			}
		}
	}
}
