package engine

import (
	"context"
	"log/slog"

	"github.com/hansollabs/clausecraft/internal/model"
	"github.com/hansollabs/clausecraft/internal/rules"
)

// RulesSelector is the deterministic strategy: derive triggers from the
// criteria and payment schedule, then select from the boilerplate catalog.
// It needs no external calls and always produces the same output for the
// same input.
type RulesSelector struct {
	selector *rules.Selector
	logger   *slog.Logger
}

// NewRulesSelector creates the rule-based strategy. A nil selector uses the
// default boilerplate catalog.
func NewRulesSelector(selector *rules.Selector, logger *slog.Logger) *RulesSelector {
	if selector == nil {
		selector = rules.NewSelector(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RulesSelector{selector: selector, logger: logger}
}

// SelectClauses derives the trigger set and resolves it against the catalog.
func (r *RulesSelector) SelectClauses(ctx context.Context, req SelectionRequest) (SelectionResult, error) {
	triggers := rules.DeriveTriggers(req.Criteria, req.Payment)
	r.logger.Debug("triggers derived", "triggers", triggers)

	set, err := r.selector.Select(triggers)
	if err != nil {
		return SelectionResult{}, err
	}

	clauses := set.Clauses()
	return SelectionResult{
		Clauses: clauses,
		Stages: model.PipelineStages{
			ClausesSelected:  len(clauses),
			ClausesCompleted: len(clauses),
		},
	}, nil
}
