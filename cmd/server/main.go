package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	_ "github.com/lib/pq"
	"google.golang.org/api/option"

	adminhttp "shiftline-backend/internal/api/http"
	"shiftline-backend/internal/config"
	"shiftline-backend/internal/jobs"
	"shiftline-backend/internal/logger"
	"shiftline-backend/internal/repository"
	fsrepo "shiftline-backend/internal/repository/firestore"
	"shiftline-backend/internal/repository/postgres"
	"shiftline-backend/internal/security"
	"shiftline-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Shiftline Admin API...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize store", "backend", cfg.Storage.Backend, "error", err)
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer cleanup()
	logger.Info("Store initialized", "backend", cfg.Storage.Backend)

	var notifier service.Notifier = service.NoopNotifier{}
	if cfg.SendGrid.Enabled {
		notifier = service.NewEmailNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	accrualService := service.NewAccrualService(store.TimeEntries, store.Balances, notifier)
	jobRunner := jobs.NewJobRunner(store, &jobs.Services{Accrual: accrualService}, cfg)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	handler := adminhttp.NewAdminHandler(jobRunner, accrualService, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // manual accrual runs can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Admin API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Admin API server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down admin API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Admin API shutdown failed", "error", err)
	}
	logger.Info("Admin API stopped. Goodbye!")
}

// buildStore constructs the configured store backend. The returned cleanup
// closes the underlying client.
func buildStore(ctx context.Context, cfg *config.Config) (*repository.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendFirestore:
		var opts []option.ClientOption
		if cfg.Firestore.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
		}
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize firebase app: %w", err)
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize firestore client: %w", err)
		}
		return fsrepo.NewStore(client), func() { client.Close() }, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		return postgres.NewStore(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
