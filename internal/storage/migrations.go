package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS templates (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					category TEXT,
					industry TEXT,
					complexity TEXT,
					popularity INTEGER DEFAULT 0,
					active INTEGER DEFAULT 1,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS template_clauses (
					template_id TEXT NOT NULL,
					clause_id TEXT NOT NULL,
					title TEXT NOT NULL,
					content TEXT NOT NULL,
					category TEXT NOT NULL,
					risk_level TEXT,
					triggers TEXT,
					conflicts TEXT,
					alternatives TEXT,
					position INTEGER NOT NULL,
					essential INTEGER DEFAULT 0,
					PRIMARY KEY (template_id, clause_id),
					FOREIGN KEY (template_id) REFERENCES templates(id)
				)`,

				`CREATE TABLE IF NOT EXISTS contracts (
					id TEXT PRIMARY KEY,
					quote_id TEXT,
					client_name TEXT NOT NULL,
					client_contact TEXT,
					provider_name TEXT NOT NULL,
					project_name TEXT,
					total_amount INTEGER NOT NULL,
					original_amount INTEGER,
					discount_amount INTEGER DEFAULT 0,
					payment TEXT NOT NULL,
					timeline TEXT NOT NULL,
					complexity TEXT,
					mode TEXT,
					model TEXT,
					stages TEXT,
					generated_at DATETIME NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS contract_clauses (
					contract_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					clause_id TEXT,
					title TEXT NOT NULL,
					content TEXT NOT NULL,
					category TEXT NOT NULL,
					risk_level TEXT,
					essential INTEGER DEFAULT 0,
					PRIMARY KEY (contract_id, position),
					FOREIGN KEY (contract_id) REFERENCES contracts(id)
				)`,

				`CREATE TABLE IF NOT EXISTS quotes (
					id TEXT PRIMARY KEY,
					payload TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add catalog and lookup indexes",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_templates_active ON templates(active, popularity)`,
				`CREATE INDEX IF NOT EXISTS idx_templates_industry ON templates(industry)`,
				`CREATE INDEX IF NOT EXISTS idx_contracts_quote ON contracts(quote_id)`,
				`CREATE INDEX IF NOT EXISTS idx_contract_clauses_contract ON contract_clauses(contract_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
