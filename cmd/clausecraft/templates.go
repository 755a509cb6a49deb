package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/hansollabs/clausecraft/internal/cli"
	"github.com/hansollabs/clausecraft/internal/model"
	"github.com/hansollabs/clausecraft/internal/rules"
)

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage the contract template catalog",
	}
	cmd.AddCommand(templatesListCmd())
	cmd.AddCommand(templatesSeedCmd())
	cmd.AddCommand(templatesImportCmd())
	return cmd
}

func templatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := openStorage()
			if err != nil {
				return err
			}
			defer closeStorage(db)

			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			templates, err := db.ListActiveTemplates(ctx)
			if err != nil {
				return err
			}
			fmt.Print(cli.RenderTemplateList(templates))
			return nil
		},
	}
}

func templatesSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in template catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := openStorage()
			if err != nil {
				return err
			}
			defer closeStorage(db)

			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			templates := rules.DefaultTemplates()
			bar := progressbar.Default(int64(len(templates)), "seeding templates")
			for i := range templates {
				if err := db.SaveTemplate(ctx, &templates[i]); err != nil {
					return fmt.Errorf("failed to seed %s: %w", templates[i].ID, err)
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("템플릿 %d건을 등록했습니다.", len(templates))))
			return nil
		},
	}
}

func templatesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file-or-directory>",
		Short: "Import template JSON files",
		Long: `Import templates from a JSON file or every *.json file in a directory.
Each file holds one template object.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			paths, err := collectTemplateFiles(args[0])
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no template JSON files found in %s", args[0])
			}

			db, err := openStorage()
			if err != nil {
				return err
			}
			defer closeStorage(db)

			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			bar := progressbar.Default(int64(len(paths)), "importing templates")
			imported := 0
			for _, path := range paths {
				data, readErr := os.ReadFile(path)
				if readErr != nil {
					return fmt.Errorf("failed to read %s: %w", path, readErr)
				}

				var template model.Template
				if err := json.Unmarshal(data, &template); err != nil {
					return fmt.Errorf("failed to parse %s: %w", path, err)
				}
				if err := template.Validate(); err != nil {
					return fmt.Errorf("invalid template in %s: %w", path, err)
				}

				if err := db.SaveTemplate(ctx, &template); err != nil {
					return fmt.Errorf("failed to import %s: %w", path, err)
				}
				imported++
				_ = bar.Add(1)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("템플릿 %d건을 가져왔습니다.", imported)))
			return nil
		},
	}
}

func collectTemplateFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	return paths, nil
}
