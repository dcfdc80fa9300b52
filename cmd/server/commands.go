package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/commit-insights/internal/api"
	"github.com/Kamar-Folarin/commit-insights/internal/config"
	"github.com/Kamar-Folarin/commit-insights/internal/db"
	"github.com/Kamar-Folarin/commit-insights/internal/github"
	"github.com/Kamar-Folarin/commit-insights/internal/ingest"
	"github.com/Kamar-Folarin/commit-insights/internal/reporting"
)

const migrationRetryDelay = 5 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "commit-insights",
		Short:         "GitHub push webhook ingestion and commit analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE:  runMigrate,
		},
	)

	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize store")
		return err
	}
	defer store.Close()

	if cfg.WebhookSecret == "" {
		logger.Warn("GITHUB_WEBHOOK_SECRET is not set, webhook deliveries will be rejected")
	}

	var lookup github.CommitLookup
	if cfg.GitHub.EnrichmentEnabled() {
		client, err := github.NewGitHubClient(cfg.GitHub, logger)
		if err != nil {
			logger.WithError(err).Error("Failed to create GitHub client")
			return err
		}
		lookup = client
	} else {
		logger.Info("GITHUB_TOKEN is not set, commit enrichment uses push payload file lists only")
	}

	pipeline := ingest.NewPipeline(cfg.WebhookSecret, github.NewEnricher(lookup, logger), store, logger)
	handler := api.NewHandler(pipeline, reporting.NewService(store, logger), logger)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.SetupRouter(handler, cfg.CORSAllowedOrigins, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.WithError(err).Error("Server failed")
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
		return err
	}
	logger.Info("Server exited properly")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("migrate requires STORE_DRIVER=%s", config.StoreDriverPostgres)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to run migrations")
		return err
	}
	defer store.Close()

	logger.Info("Migrations applied")
	return nil
}

func bootstrap() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return nil, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL: %v\n", err)
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Error("Invalid configuration")
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(lvl)
	return logger, nil
}

// openStore returns the configured store; Postgres is migrated before use
func openStore(cfg *config.Config, logger *logrus.Logger) (db.Store, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store, commits are lost on restart")
		return db.NewMemoryStore(), nil
	}

	var store *db.PostgresStore
	err := retry(cfg.MigrationRetries, migrationRetryDelay, func() error {
		var err error
		if store == nil {
			store, err = db.NewPostgresStore(cfg.DBConnectionString, logger)
			if err != nil {
				logger.WithError(err).Warn("Database not reachable yet")
				return err
			}
		}
		return store.Migrate()
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("failed to initialize database after %d attempts: %w", cfg.MigrationRetries, err)
	}
	return store, nil
}

// retry retries a function up to a certain number of attempts with a delay between attempts
func retry(attempts int, sleep time.Duration, fn func() error) error {
	if err := fn(); err != nil {
		if attempts--; attempts > 0 {
			time.Sleep(sleep)
			return retry(attempts, sleep, fn)
		}
		return err
	}
	return nil
}
