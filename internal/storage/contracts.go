package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// SaveContract persists a finished contract and its clauses atomically.
// Either the whole aggregate lands or nothing does.
func (s *SQLiteStorage) SaveContract(ctx context.Context, contract *model.Contract) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateContract(contract); err != nil {
		return err
	}

	payment, err := json.Marshal(contract.Payment)
	if err != nil {
		return fmt.Errorf("failed to encode payment schedule: %w", err)
	}
	timeline, err := json.Marshal(contract.Timeline)
	if err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}
	stages, err := json.Marshal(contract.Metadata.Stages)
	if err != nil {
		return fmt.Errorf("failed to encode pipeline stages: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO contracts
			(id, quote_id, client_name, client_contact, provider_name, project_name,
			 total_amount, original_amount, discount_amount,
			 payment, timeline, complexity, mode, model, stages, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contract.ID, contract.QuoteID,
		contract.Info.Client.Name, contract.Info.Client.Contact,
		contract.Info.Provider.Name, contract.Info.ProjectName,
		contract.Info.TotalAmount, contract.Info.OriginalAmount, contract.Info.DiscountAmount,
		string(payment), string(timeline),
		string(contract.Metadata.Complexity), contract.Metadata.Mode, contract.Metadata.Model,
		string(stages), contract.Metadata.GeneratedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save contract %s: %w", contract.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO contract_clauses
			(contract_id, position, clause_id, title, content, category, risk_level, essential)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare clause insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range contract.Clauses {
		c := &contract.Clauses[i]
		if _, err := stmt.ExecContext(ctx,
			contract.ID, c.Order, c.ID, c.Title, c.Content,
			string(c.Category), string(c.RiskLevel), c.Essential); err != nil {
			return fmt.Errorf("failed to save contract clause %d: %w", c.Order, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contract: %w", err)
	}
	return nil
}

// GetContract loads a contract with its clauses in stored order.
func (s *SQLiteStorage) GetContract(ctx context.Context, id string) (*model.Contract, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var (
		c                         model.Contract
		quoteID, clientContact    sql.NullString
		projectName, mode         sql.NullString
		complexity, genModel      sql.NullString
		payment, timeline, stages string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, quote_id, client_name, client_contact, provider_name, project_name,
		       total_amount, original_amount, discount_amount,
		       payment, timeline, complexity, mode, model, stages, generated_at
		FROM contracts WHERE id = ?`, id).Scan(
		&c.ID, &quoteID, &c.Info.Client.Name, &clientContact,
		&c.Info.Provider.Name, &projectName,
		&c.Info.TotalAmount, &c.Info.OriginalAmount, &c.Info.DiscountAmount,
		&payment, &timeline, &complexity, &mode, &genModel, &stages,
		&c.Metadata.GeneratedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("contract %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contract %s: %w", id, err)
	}

	c.QuoteID = quoteID.String
	c.Info.Client.Contact = clientContact.String
	c.Info.ProjectName = projectName.String
	c.Metadata.Complexity = model.ComplexityTier(complexity.String)
	c.Metadata.Mode = mode.String
	c.Metadata.Model = genModel.String

	if err := json.Unmarshal([]byte(payment), &c.Payment); err != nil {
		return nil, fmt.Errorf("failed to decode payment schedule of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(timeline), &c.Timeline); err != nil {
		return nil, fmt.Errorf("failed to decode timeline of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(stages), &c.Metadata.Stages); err != nil {
		return nil, fmt.Errorf("failed to decode pipeline stages of %s: %w", id, err)
	}

	clauses, err := s.contractClauses(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Clauses = clauses
	return &c, nil
}

func (s *SQLiteStorage) contractClauses(ctx context.Context, contractID string) ([]model.Clause, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, clause_id, title, content, category, risk_level, essential
		FROM contract_clauses WHERE contract_id = ?
		ORDER BY position`, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to load clauses of %s: %w", contractID, err)
	}
	defer func() { _ = rows.Close() }()

	var clauses []model.Clause
	for rows.Next() {
		var c model.Clause
		var clauseID, riskLevel sql.NullString
		if err := rows.Scan(&c.Order, &clauseID, &c.Title, &c.Content,
			&c.Category, &riskLevel, &c.Essential); err != nil {
			return nil, fmt.Errorf("failed to scan contract clause: %w", err)
		}
		c.ID = clauseID.String
		c.RiskLevel = model.RiskLevel(riskLevel.String)
		clauses = append(clauses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contract clauses: %w", err)
	}
	return clauses, nil
}
