// Package engine implements the contract generation pipeline: template
// matching, clause selection, clause completion and final assembly.
package engine

import (
	"context"

	"github.com/hansollabs/clausecraft/internal/model"
)

// Generator defines the contract for the external text-generation service.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

// TemplateStore provides the template catalog and its usage counter.
// IncrementPopularity must be an atomic increment, not read-modify-write.
type TemplateStore interface {
	ListActiveTemplates(ctx context.Context) ([]model.Template, error)
	IncrementPopularity(ctx context.Context, templateID string) error
}

// ContractStore persists assembled contracts.
type ContractStore interface {
	SaveContract(ctx context.Context, contract *model.Contract) error
}

// SelectionRequest carries everything a clause selection strategy needs.
type SelectionRequest struct {
	Quote    *model.Quote
	Criteria model.SelectionCriteria
	Payment  model.PaymentSchedule
	Timeline model.Timeline
}

// SelectionResult is the output of a selection strategy: completed clauses
// plus provenance for the contract metadata and usage logging.
type SelectionResult struct {
	Clauses     []model.Clause
	TemplateIDs []string
	Model       string
	Stages      model.PipelineStages
}

// ClauseSelector is the capability both selection strategies implement: the
// generation-assisted pipeline and the deterministic rule engine. Keeping
// one interface means Contract invariants are enforced in exactly one place,
// the assembler.
type ClauseSelector interface {
	SelectClauses(ctx context.Context, req SelectionRequest) (SelectionResult, error)
}
