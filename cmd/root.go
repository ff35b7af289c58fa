package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"gestion/internal/adapters/out/postgres"
	"gestion/internal/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRootCommand builds the gestion CLI: serve runs the API and the jobs,
// migrate brings the schema up to date.
func NewRootCommand() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "gestion",
		Short:         "Order lifecycle service for the CHS packaging business",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding config.yaml and .env")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the background jobs",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRuntime(cmd.Context(), configDir, true, serve)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema and seed reference rows",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRuntime(cmd.Context(), configDir, false, func(ctx context.Context, _ Config, db *gorm.DB, logger *zap.Logger) error {
					if err := postgres.Migrate(ctx, db); err != nil {
						return err
					}
					logger.Info("database migrated")
					return nil
				})
			},
		},
	)
	return root
}

// Execute runs the CLI until SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

type runFunc func(ctx context.Context, cfg Config, db *gorm.DB, logger *zap.Logger) error

func withRuntime(ctx context.Context, configDir string, validate bool, run runFunc) error {
	cfg, err := LoadConfig(configDir)
	if err != nil {
		return err
	}
	if validate {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := postgres.Open(cfg.Database())
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	return run(ctx, cfg, db, logger)
}

func serve(ctx context.Context, cfg Config, db *gorm.DB, logger *zap.Logger) error {
	root, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	defer root.Close()

	if err := root.Prepare(ctx); err != nil {
		return err
	}

	e, err := root.CreateRouter()
	if err != nil {
		return err
	}

	jobManager, err := root.CreateJobManager()
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("port", cfg.HTTPPort))
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
