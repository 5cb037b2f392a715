package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"articles_api/database"
)

func newDBCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dbcheck",
		Short: "Connect to the database and ping it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, db, err := setup(ctx)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Ping(ctx, db); err != nil {
				return fmt.Errorf("failed to ping database: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database connection successful!")
			return nil
		},
	}
}
