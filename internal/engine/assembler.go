package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// Assembler turns a selection result into a finished contract. It is the
// single place the contract invariants are enforced, whichever selection
// strategy produced the clauses.
type Assembler struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewAssembler creates an assembler.
func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger, now: time.Now}
}

// Assemble builds the contract aggregate from the quote and the selection
// result. Missing essential categories are backfilled with fallback clauses;
// an empty clause list or non-positive amount refuses assembly outright.
func (a *Assembler) Assemble(quote *model.Quote, req SelectionRequest, result SelectionResult, mode string) (*model.Contract, error) {
	if len(result.Clauses) == 0 {
		return nil, &common.AssemblyError{Field: "clauses", Reason: "selection produced no clauses"}
	}
	if quote.TotalAmount <= 0 {
		return nil, &common.AssemblyError{Field: "totalAmount", Reason: fmt.Sprintf("must be positive, got %d", quote.TotalAmount)}
	}

	clauses := append([]model.Clause(nil), result.Clauses...)
	clauses = a.backfillEssentials(clauses)
	for i := range clauses {
		clauses[i].Order = i + 1
	}

	original := quote.OriginalAmount
	if original == 0 {
		original = quote.TotalAmount
	}
	discount := original - quote.TotalAmount
	if discount < 0 {
		discount = 0
	}

	contract := &model.Contract{
		ID:      uuid.NewString(),
		QuoteID: quote.ID,
		Info: model.ContractInfo{
			Client:         model.Party{Name: quote.ClientName, Contact: quote.ClientContact},
			Provider:       model.Party{Name: quote.ProviderName},
			ProjectName:    quote.ProjectName,
			TotalAmount:    quote.TotalAmount,
			OriginalAmount: original,
			DiscountAmount: discount,
		},
		Clauses:  clauses,
		Payment:  req.Payment,
		Timeline: req.Timeline,
		Metadata: model.ContractMetadata{
			GeneratedAt: a.now(),
			Complexity:  req.Criteria.Complexity,
			Mode:        mode,
			Model:       result.Model,
			Stages:      result.Stages,
		},
	}

	if err := contract.Validate(); err != nil {
		return nil, &common.AssemblyError{Field: "contract", Reason: err.Error()}
	}

	a.logger.Info("contract assembled",
		"contract_id", contract.ID,
		"clauses", len(contract.Clauses),
		"mode", mode)
	return contract, nil
}

// backfillEssentials appends a fallback clause for every essential category
// the selection missed, so the finished contract is always legally complete.
func (a *Assembler) backfillEssentials(clauses []model.Clause) []model.Clause {
	present := make(map[model.ClauseCategory]bool, len(clauses))
	for i := range clauses {
		present[clauses[i].Category] = true
	}
	for _, cat := range model.EssentialCategories {
		if present[cat] {
			continue
		}
		fallback, ok := fallbackClauses[cat]
		if !ok {
			continue
		}
		a.logger.Warn("essential category missing, injecting fallback clause", "category", cat)
		clauses = append(clauses, fallback)
	}
	return clauses
}

// fallbackClauses are minimal but legally sound substitutes for the
// essential categories. Their text deliberately avoids project specifics.
var fallbackClauses = map[model.ClauseCategory]model.Clause{
	model.CategoryPurpose: {
		ID:        "fb-purpose",
		Title:     "계약의 목적",
		Content:   "본 계약은 발주자가 의뢰한 용역의 수행과 그 대가의 지급에 관한 양 당사자의 권리와 의무를 정함을 목적으로 한다.",
		Category:  model.CategoryPurpose,
		RiskLevel: model.RiskLow,
		Essential: true,
	},
	model.CategoryPayment: {
		ID:        "fb-payment",
		Title:     "대금의 지급",
		Content:   "발주자는 계약서에 명시된 금액을 명시된 일정에 따라 수행자가 지정한 계좌로 지급한다. 지급 일정이 별도로 정해지지 않은 경우 용역 완료 후 7일 이내에 전액을 지급한다.",
		Category:  model.CategoryPayment,
		RiskLevel: model.RiskHigh,
		Essential: true,
	},
	model.CategoryTermination: {
		ID:        "fb-termination",
		Title:     "계약의 해지",
		Content:   "어느 일방이 본 계약을 중대하게 위반하고 상대방의 시정 요구 후 7일 이내에 이를 시정하지 않는 경우, 상대방은 서면 통지로 본 계약을 해지할 수 있다. 해지 시 기수행 용역에 대한 대금은 정산하여 지급한다.",
		Category:  model.CategoryTermination,
		RiskLevel: model.RiskHigh,
		Essential: true,
	},
}
