package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	_ "github.com/lib/pq"
	"google.golang.org/api/option"

	"shiftline-backend/internal/config"
	"shiftline-backend/internal/jobs"
	"shiftline-backend/internal/logger"
	"shiftline-backend/internal/repository"
	fsrepo "shiftline-backend/internal/repository/firestore"
	"shiftline-backend/internal/repository/postgres"
	"shiftline-backend/internal/scheduler"
	"shiftline-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'process-pto', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Shiftline Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize store
	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize store", "backend", cfg.Storage.Backend, "error", err)
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer cleanup()
	logger.Info("Store initialized", "backend", cfg.Storage.Backend)

	// Initialize Services
	var notifier service.Notifier = service.NoopNotifier{}
	if cfg.SendGrid.Enabled {
		notifier = service.NewEmailNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	accrualService := service.NewAccrualService(store.TimeEntries, store.Balances, notifier)

	jobServices := &jobs.Services{
		Accrual: accrualService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
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

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "process-pto":
		jobRunner.ProcessAutomaticPTO()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - process-pto\n")
		fmt.Printf("  - all-daily\n")
		os.Exit(1)
	}
}
