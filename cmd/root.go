package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"articles_api/config"
	"articles_api/database"
	"articles_api/logging"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "articles",
		Short:         "REST API for articles and their tags",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newDBCheckCmd())
	return root
}

// Execute runs the root command until it finishes or the process receives
// SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		return err
	}
	return nil
}

// setup loads configuration, installs the logger and opens the database.
func setup(ctx context.Context) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.LogLevel)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
