package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"articles_api/database"
	"articles_api/handlers"
	"articles_api/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from PORT)")
	return cmd
}

func runServe(ctx context.Context, port int) error {
	cfg, db, err := setup(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if port != 0 {
		cfg.Port = port
	}
	gin.SetMode(cfg.GinMode)

	schema := database.NewBootstrapper(db)
	if err := schema.EnsureSchema(ctx); err != nil {
		return err
	}

	articles := handlers.NewArticleHandler(services.NewArticleService(db, schema))
	router := handlers.NewRouter(articles, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", slog.Int("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
