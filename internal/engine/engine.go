package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/criteria"
	"github.com/hansollabs/clausecraft/internal/model"
	"github.com/hansollabs/clausecraft/internal/schedule"
)

// Generation modes.
const (
	ModePipeline = "pipeline"
	ModeRules    = "rules"
)

// Options tune a single generation run.
type Options struct {
	// Complexity overrides the analyzed tier when non-empty.
	Complexity model.ComplexityTier
	// Mode picks the selection strategy; defaults to ModePipeline.
	Mode string
	// SaveToDatabase persists the contract and bumps template popularity.
	SaveToDatabase bool
}

// Engine orchestrates the full generation run: analysis, schedule and
// timeline computation, clause selection, assembly and persistence.
type Engine struct {
	gen       Generator
	pipeline  ClauseSelector
	rules     ClauseSelector
	assembler *Assembler
	templates TemplateStore
	contracts ContractStore
	logger    *slog.Logger
}

// New creates an engine with both selection strategies wired. A nil gen is
// allowed for rules-only use; pipeline mode then fails with a config error.
func New(gen Generator, templates TemplateStore, contracts ContractStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		gen:       gen,
		pipeline:  NewPipelineSelector(gen, templates, logger),
		rules:     NewRulesSelector(nil, logger),
		assembler: NewAssembler(logger),
		templates: templates,
		contracts: contracts,
		logger:    logger,
	}
}

// Generate runs one contract generation for the quote.
func (e *Engine) Generate(ctx context.Context, quote *model.Quote, opts Options) (*model.Contract, error) {
	if err := quote.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quote: %w", err)
	}

	analyzed := criteria.Analyze(quote)
	if opts.Complexity != "" {
		e.logger.Debug("complexity overridden", "analyzed", analyzed.Complexity, "override", opts.Complexity)
		analyzed.Complexity = opts.Complexity
	}
	if err := analyzed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selection criteria: %w", err)
	}

	// Payment and timeline are independent; compute them concurrently.
	var (
		wg       sync.WaitGroup
		payment  model.PaymentSchedule
		timeline model.Timeline
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		payment = schedule.CalculatePayment(quote.TotalAmount, quote.ExplicitTerms())
	}()
	go func() {
		defer wg.Done()
		timeline = schedule.GenerateTimeline(quote.Duration)
	}()
	wg.Wait()

	req := SelectionRequest{
		Quote:    quote,
		Criteria: analyzed,
		Payment:  payment,
		Timeline: timeline,
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModePipeline
	}
	selector, err := e.selectorFor(mode)
	if err != nil {
		return nil, err
	}

	result, err := selector.SelectClauses(ctx, req)
	if err != nil {
		common.LogError(err, "clause selection failed", common.Fields{"quote_id": quote.ID, "mode": mode})
		return nil, fmt.Errorf("%w: clause selection: %w", common.ErrGenerationFailed, err)
	}

	contract, err := e.assembler.Assemble(quote, req, result, mode)
	if err != nil {
		common.LogError(err, "contract assembly failed", common.Fields{"quote_id": quote.ID, "mode": mode})
		return nil, fmt.Errorf("%w: assembly: %w", common.ErrGenerationFailed, err)
	}

	if opts.SaveToDatabase {
		if err := e.contracts.SaveContract(ctx, contract); err != nil {
			common.LogError(err, "contract persistence failed", common.Fields{"quote_id": quote.ID, "contract_id": contract.ID})
			return nil, fmt.Errorf("failed to save contract: %w", err)
		}
		// Usage counting happens only after a successful save, so aborted
		// runs never skew template popularity.
		for _, id := range result.TemplateIDs {
			if err := e.templates.IncrementPopularity(ctx, id); err != nil {
				e.logger.Warn("failed to increment template popularity", "template_id", id, "error", err)
			}
		}
	}

	e.logger.Info("contract generated",
		"contract_id", contract.ID,
		"mode", mode,
		"complexity", analyzed.Complexity,
		"clauses", len(contract.Clauses),
		"saved", opts.SaveToDatabase)
	return contract, nil
}

func (e *Engine) selectorFor(mode string) (ClauseSelector, error) {
	switch mode {
	case ModePipeline:
		if e.gen == nil {
			return nil, fmt.Errorf("%w: pipeline mode requires a text-generation client", common.ErrMissingConfig)
		}
		return e.pipeline, nil
	case ModeRules:
		return e.rules, nil
	default:
		return nil, fmt.Errorf("unknown generation mode %q", mode)
	}
}
