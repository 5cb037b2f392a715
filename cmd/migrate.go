package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"articles_api/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the articles, tags and article_tags tables if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, db, err := setup(ctx)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.NewBootstrapper(db).EnsureSchema(ctx); err != nil {
				return err
			}
			slog.InfoContext(ctx, "database schema is up to date")
			return nil
		},
	}
}
