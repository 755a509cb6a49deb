package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hansollabs/clausecraft/internal/cli"
	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/engine"
	"github.com/hansollabs/clausecraft/internal/llm"
	"github.com/hansollabs/clausecraft/internal/model"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a contract from a quote",
		Long: `Generate a complete contract from a quote JSON file or a stored quote.

Examples:
  clausecraft generate --quote quote.json                # full pipeline
  clausecraft generate --quote quote.json --mode rules   # deterministic, no API calls
  clausecraft generate --quote-id q-123 --dry-run        # preview without saving
  clausecraft generate --quote quote.json --complexity detailed --json`,
		RunE: runGenerate,
	}

	cmd.Flags().StringP("quote", "q", "", "path to quote JSON file")
	cmd.Flags().String("quote-id", "", "ID of a stored quote")
	cmd.Flags().StringP("mode", "m", engine.ModePipeline, "generation mode (pipeline, rules)")
	cmd.Flags().StringP("complexity", "c", "", "override complexity tier (simple, standard, detailed)")
	cmd.Flags().Bool("dry-run", false, "preview without saving")
	cmd.Flags().Bool("json", false, "print raw JSON instead of the styled view")

	_ = viper.BindPFlag("generate.mode", cmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("generate.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	quotePath, _ := cmd.Flags().GetString("quote")
	quoteID, _ := cmd.Flags().GetString("quote-id")
	mode := viper.GetString("generate.mode")
	dryRun := viper.GetBool("generate.dry_run")
	complexity, _ := cmd.Flags().GetString("complexity")
	asJSON, _ := cmd.Flags().GetBool("json")

	if quotePath == "" && quoteID == "" {
		return fmt.Errorf("either --quote or --quote-id is required")
	}
	tier := model.ComplexityTier(complexity)
	if complexity != "" && !tier.Valid() {
		return fmt.Errorf("invalid complexity: %s", complexity)
	}

	db, err := openStorage()
	if err != nil {
		return err
	}
	defer closeStorage(db)

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var quote *model.Quote
	if quotePath != "" {
		data, readErr := os.ReadFile(quotePath)
		if readErr != nil {
			return fmt.Errorf("failed to read quote file: %w", readErr)
		}
		quote, err = model.ParseQuote(data)
		if err != nil {
			return err
		}
	} else {
		quote, err = db.GetQuote(ctx, quoteID)
		if err != nil {
			return err
		}
	}

	var gen *llm.Generator
	if mode == engine.ModePipeline {
		gen, err = createGenerator()
		if err != nil {
			return err
		}
	}

	contract, err := createEngine(db, gen).Generate(ctx, quote, engine.Options{
		Complexity:     tier,
		Mode:           mode,
		SaveToDatabase: !dryRun,
	})
	if err != nil {
		return common.NewUserError("계약서를 생성하지 못했습니다", err)
	}

	if asJSON {
		out, marshalErr := json.MarshalIndent(contract, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode contract: %w", marshalErr)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(cli.RenderContract(contract))
	if dryRun {
		fmt.Println(cli.WarningStyle.Render("미리보기입니다. 저장하려면 --dry-run 없이 실행하세요."))
	} else {
		fmt.Println(cli.SuccessStyle.Render("계약서가 저장되었습니다: " + contract.ID))
	}
	return nil
}
