package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hansollabs/clausecraft/internal/cli"
	"github.com/hansollabs/clausecraft/internal/model"
)

func quotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Manage stored quotes",
	}
	cmd.AddCommand(quotesAddCmd())
	cmd.AddCommand(quotesShowCmd())
	return cmd
}

func quotesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <quote.json>",
		Short: "Store a quote for later generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read quote file: %w", err)
			}
			quote, err := model.ParseQuote(data)
			if err != nil {
				return err
			}
			if quote.ID == "" {
				return fmt.Errorf("quote file has no id")
			}

			db, err := openStorage()
			if err != nil {
				return err
			}
			defer closeStorage(db)

			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			if err := db.SaveQuote(ctx, quote); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("견적서가 저장되었습니다: " + quote.ID))
			return nil
		},
	}
}

func quotesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored quote as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := openStorage()
			if err != nil {
				return err
			}
			defer closeStorage(db)

			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			quote, err := db.GetQuote(ctx, args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(quote, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode quote: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
