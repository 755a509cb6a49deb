package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hansollabs/clausecraft/internal/engine"
	"github.com/hansollabs/clausecraft/internal/llm"
	"github.com/hansollabs/clausecraft/internal/storage"
)

// expandPath resolves ~ and $VARS in configured paths.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

func openStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/clausecraft/clausecraft.db"
	}
	dbPath = expandPath(dbPath)

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func closeStorage(db *storage.SQLiteStorage) {
	if err := db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// createGenerator builds the text-generation client from configuration.
// Shared by every command that runs the pipeline mode.
func createGenerator() (*llm.Generator, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "openai"
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		MaxRetries:  viper.GetInt("llm.max_retries"),
		RetryDelay:  viper.GetInt("llm.retry_delay_ms"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
		Burst:       viper.GetInt("llm.burst"),
		TimeoutSecs: viper.GetInt("llm.timeout_secs"),
	}

	switch provider {
	case "openai":
		cfg.APIKey = viper.GetString("llm.openai_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
	case "anthropic":
		cfg.APIKey = viper.GetString("llm.anthropic_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Anthropic API key not found in config or ANTHROPIC_API_KEY environment variable")
		}
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}

	return llm.NewGenerator(cfg, slog.Default())
}

// createEngine wires a full engine on top of an open store. Rules mode needs
// no generator, so gen may be nil when mode is rules.
func createEngine(db *storage.SQLiteStorage, gen *llm.Generator) *engine.Engine {
	var g engine.Generator
	if gen != nil {
		g = gen
	}
	return engine.New(g, db, db, slog.Default())
}
