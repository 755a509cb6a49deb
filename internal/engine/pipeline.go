package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// PipelineSelector is the generation-assisted strategy: match templates,
// pick a tier-sized clause subset, then draft the full text in one batch.
type PipelineSelector struct {
	gen         Generator
	matcher     *TemplateMatcher
	picker      *ClausePicker
	synthesizer *Synthesizer
	templates   TemplateStore
	logger      *slog.Logger
}

// NewPipelineSelector wires the three pipeline stages around one generator.
func NewPipelineSelector(gen Generator, templates TemplateStore, logger *slog.Logger) *PipelineSelector {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineSelector{
		gen:         gen,
		matcher:     NewTemplateMatcher(gen, logger),
		picker:      NewClausePicker(gen, logger),
		synthesizer: NewSynthesizer(gen, logger),
		templates:   templates,
		logger:      logger,
	}
}

// SelectClauses runs the three-stage pipeline. The first two stages degrade
// to deterministic fallbacks on failure; a drafting failure aborts, since a
// contract with no drafted text cannot be assembled.
func (p *PipelineSelector) SelectClauses(ctx context.Context, req SelectionRequest) (SelectionResult, error) {
	templates, err := p.templates.ListActiveTemplates(ctx)
	if err != nil {
		return SelectionResult{}, fmt.Errorf("failed to list templates: %w", err)
	}

	matched, err := p.matcher.Match(ctx, req.Criteria, templates)
	if err != nil {
		return SelectionResult{}, err
	}

	candidates := dedupeClauses(matched)
	selected := p.picker.Pick(ctx, req.Criteria, candidates)
	if len(selected) == 0 {
		// Nothing to draft; skip the completion call instead of paying for a
		// batch that can only produce an unassemblable contract.
		return SelectionResult{}, common.ErrNoClauses
	}

	completed, err := p.synthesizer.Complete(ctx, req, selected)
	if err != nil {
		return SelectionResult{}, fmt.Errorf("clause completion failed: %w", err)
	}

	templateIDs := make([]string, len(matched))
	for i, t := range matched {
		templateIDs[i] = t.ID
	}

	return SelectionResult{
		Clauses:     completed,
		TemplateIDs: templateIDs,
		Model:       p.gen.Model(),
		Stages: model.PipelineStages{
			TemplatesMatched: len(matched),
			ClausesSelected:  len(selected),
			ClausesCompleted: len(completed),
		},
	}, nil
}

// dedupeClauses merges the clause lists of the matched templates, keeping
// the first occurrence of each clause ID.
func dedupeClauses(templates []model.Template) []model.Clause {
	seen := make(map[string]bool)
	var candidates []model.Clause
	for _, t := range templates {
		for _, c := range t.Clauses {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			candidates = append(candidates, c)
		}
	}
	return candidates
}
