package rules

import (
	"fmt"

	"github.com/hansollabs/clausecraft/internal/model"
)

// DefaultTemplates builds the seed template catalog from the boilerplate
// clause catalog. Used by the seed command and by tests that need a
// populated template store.
func DefaultTemplates() []model.Template {
	byID := make(map[string]model.Clause, len(DefaultCatalog()))
	for _, c := range DefaultCatalog() {
		byID[c.ID] = c
	}

	pick := func(ids ...string) []model.Clause {
		clauses := make([]model.Clause, 0, len(ids))
		for _, id := range ids {
			c, ok := byID[id]
			if !ok {
				panic(fmt.Sprintf("unknown seed clause %s", id))
			}
			clauses = append(clauses, c)
		}
		return clauses
	}

	return []model.Template{
		{
			ID:         "tpl-dev-standard",
			Name:       "소프트웨어 개발 표준 계약",
			Category:   "development",
			Industry:   "IT",
			Complexity: string(model.TierStandard),
			Active:     true,
			Clauses: pick(
				"cl-purpose", "cl-scope", "cl-delivery", "cl-inspection", "cl-revision",
				"cl-payment", "cl-payment-installment", "cl-late-fee",
				"cl-ip", "cl-confidential", "cl-warranty-basic", "cl-liability-cap",
				"cl-termination", "cl-dispute", "cl-maintenance",
			),
		},
		{
			ID:         "tpl-design-standard",
			Name:       "디자인 용역 표준 계약",
			Category:   "design",
			Industry:   "디자인",
			Complexity: string(model.TierStandard),
			Active:     true,
			Clauses: pick(
				"cl-purpose", "cl-scope", "cl-delivery", "cl-inspection", "cl-revision",
				"cl-payment", "cl-ip", "cl-confidential", "cl-termination", "cl-dispute",
			),
		},
		{
			ID:         "tpl-simple",
			Name:       "소규모 용역 간이 계약",
			Category:   "general",
			Industry:   "",
			Complexity: string(model.TierSimple),
			Active:     true,
			Clauses: pick(
				"cl-purpose", "cl-scope", "cl-delivery",
				"cl-payment", "cl-warranty-basic", "cl-termination",
			),
		},
	}
}
