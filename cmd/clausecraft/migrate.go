package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hansollabs/clausecraft/internal/cli"
	"github.com/hansollabs/clausecraft/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := openStorage()
			if err != nil {
				return err
			}
			defer closeStorage(db)

			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Database schema is at version %d.", storage.ExpectedSchemaVersion)))
			return nil
		},
	}
}
