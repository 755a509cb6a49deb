package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// SaveTemplate upserts a template and its clause list in one transaction.
func (s *SQLiteStorage) SaveTemplate(ctx context.Context, template *model.Template) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTemplate(template); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO templates (id, name, category, industry, complexity, popularity, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			industry = excluded.industry,
			complexity = excluded.complexity,
			active = excluded.active,
			updated_at = excluded.updated_at`,
		template.ID, template.Name, template.Category, template.Industry,
		template.Complexity, template.Popularity, template.Active, now, now)
	if err != nil {
		return fmt.Errorf("failed to save template %s: %w", template.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM template_clauses WHERE template_id = ?`, template.ID); err != nil {
		return fmt.Errorf("failed to clear template clauses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO template_clauses
			(template_id, clause_id, title, content, category, risk_level, triggers, conflicts, alternatives, position, essential)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare clause insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range template.Clauses {
		c := &template.Clauses[i]
		triggers, conflicts, alternatives, encErr := encodeClauseLists(c)
		if encErr != nil {
			return encErr
		}
		if _, err := stmt.ExecContext(ctx,
			template.ID, c.ID, c.Title, c.Content, string(c.Category), string(c.RiskLevel),
			triggers, conflicts, alternatives, c.Order, c.Essential); err != nil {
			return fmt.Errorf("failed to save clause %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit template: %w", err)
	}
	return nil
}

// GetTemplate fetches one template with its clauses.
func (s *SQLiteStorage) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, industry, complexity, popularity, active, created_at, updated_at
		FROM templates WHERE id = ?`, id)

	template, err := scanTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("template %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get template %s: %w", id, err)
	}

	clauses, err := s.templateClauses(ctx, template.ID)
	if err != nil {
		return nil, err
	}
	template.Clauses = clauses
	return template, nil
}

// ListActiveTemplates returns the active catalog, most popular first.
func (s *SQLiteStorage) ListActiveTemplates(ctx context.Context) ([]model.Template, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, industry, complexity, popularity, active, created_at, updated_at
		FROM templates WHERE active = 1
		ORDER BY popularity DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var templates []model.Template
	for rows.Next() {
		template, scanErr := scanTemplate(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan template: %w", scanErr)
		}
		templates = append(templates, *template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}

	for i := range templates {
		clauses, clErr := s.templateClauses(ctx, templates[i].ID)
		if clErr != nil {
			return nil, clErr
		}
		templates[i].Clauses = clauses
	}
	return templates, nil
}

// IncrementPopularity bumps a template's usage counter atomically in the
// database; no read-modify-write cycle, so concurrent runs never lose counts.
func (s *SQLiteStorage) IncrementPopularity(ctx context.Context, templateID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(templateID, "templateID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE templates SET popularity = popularity + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		templateID)
	if err != nil {
		return fmt.Errorf("failed to increment popularity of %s: %w", templateID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check popularity update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("template %s: %w", templateID, common.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*model.Template, error) {
	var t model.Template
	var category, industry, complexity sql.NullString
	if err := row.Scan(&t.ID, &t.Name, &category, &industry, &complexity,
		&t.Popularity, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Category = category.String
	t.Industry = industry.String
	t.Complexity = complexity.String
	return &t, nil
}

func (s *SQLiteStorage) templateClauses(ctx context.Context, templateID string) ([]model.Clause, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT clause_id, title, content, category, risk_level, triggers, conflicts, alternatives, position, essential
		FROM template_clauses WHERE template_id = ?
		ORDER BY position`, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load clauses of %s: %w", templateID, err)
	}
	defer func() { _ = rows.Close() }()

	var clauses []model.Clause
	for rows.Next() {
		var c model.Clause
		var riskLevel, triggers, conflicts, alternatives sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &c.Content, &c.Category, &riskLevel,
			&triggers, &conflicts, &alternatives, &c.Order, &c.Essential); err != nil {
			return nil, fmt.Errorf("failed to scan clause: %w", err)
		}
		c.RiskLevel = model.RiskLevel(riskLevel.String)
		if err := decodeClauseLists(&c, triggers, conflicts, alternatives); err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clauses: %w", err)
	}
	return clauses, nil
}

func encodeClauseLists(c *model.Clause) (triggers, conflicts, alternatives string, err error) {
	for _, pair := range []struct {
		dst  *string
		list []string
	}{
		{&triggers, c.Triggers},
		{&conflicts, c.Conflicts},
		{&alternatives, c.Alternatives},
	} {
		if len(pair.list) == 0 {
			continue
		}
		data, marshalErr := json.Marshal(pair.list)
		if marshalErr != nil {
			return "", "", "", fmt.Errorf("failed to encode clause %s lists: %w", c.ID, marshalErr)
		}
		*pair.dst = string(data)
	}
	return triggers, conflicts, alternatives, nil
}

func decodeClauseLists(c *model.Clause, triggers, conflicts, alternatives sql.NullString) error {
	for _, pair := range []struct {
		dst *[]string
		src sql.NullString
	}{
		{&c.Triggers, triggers},
		{&c.Conflicts, conflicts},
		{&c.Alternatives, alternatives},
	} {
		if !pair.src.Valid || pair.src.String == "" {
			continue
		}
		if err := json.Unmarshal([]byte(pair.src.String), pair.dst); err != nil {
			return fmt.Errorf("failed to decode clause %s lists: %w", c.ID, err)
		}
	}
	return nil
}
