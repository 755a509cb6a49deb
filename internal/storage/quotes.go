package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// SaveQuote stores the raw quote record. Quotes originate outside this
// system, so the full payload is kept verbatim for audit.
func (s *SQLiteStorage) SaveQuote(ctx context.Context, quote *model.Quote) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if quote == nil {
		return fmt.Errorf("%w: quote", ErrNilParameter)
	}
	if err := validateString(quote.ID, "quote.ID"); err != nil {
		return err
	}
	if err := quote.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to encode quote %s: %w", quote.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, payload) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`,
		quote.ID, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save quote %s: %w", quote.ID, err)
	}
	return nil
}

// GetQuote loads a stored quote by ID.
func (s *SQLiteStorage) GetQuote(ctx context.Context, id string) (*model.Quote, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM quotes WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("quote %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get quote %s: %w", id, err)
	}

	return model.ParseQuote([]byte(payload))
}
