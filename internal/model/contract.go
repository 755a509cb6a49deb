package model

import (
	"fmt"
	"time"
)

// Party holds the contact details of one side of the contract.
type Party struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ContractInfo carries the header data of an assembled contract.
type ContractInfo struct {
	Client         Party  `json:"client"`
	Provider       Party  `json:"provider"`
	ProjectName    string `json:"projectName"`
	TotalAmount    int64  `json:"totalAmount"`
	OriginalAmount int64  `json:"originalAmount"`
	DiscountAmount int64  `json:"discountAmount"`
}

// PipelineStages records how many items each generation stage produced, for
// debugging and audit.
type PipelineStages struct {
	TemplatesMatched int `json:"templatesMatched"`
	ClausesSelected  int `json:"clausesSelected"`
	ClausesCompleted int `json:"clausesCompleted"`
}

// ContractMetadata is the provenance block stamped at assembly time.
type ContractMetadata struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Complexity  ComplexityTier `json:"complexity"`
	Mode        string         `json:"mode"`
	Model       string         `json:"model,omitempty"`
	Stages      PipelineStages `json:"pipelineStages"`
}

// Contract is the assembled aggregate. Clause order is stable and equals
// assembly order; the essential categories are always present.
type Contract struct {
	ID       string           `json:"id"`
	QuoteID  string           `json:"quoteId,omitempty"`
	Info     ContractInfo     `json:"contractInfo"`
	Clauses  []Clause         `json:"clauses"`
	Payment  PaymentSchedule  `json:"paymentSchedule"`
	Timeline Timeline         `json:"projectTimeline"`
	Metadata ContractMetadata `json:"metadata"`
}

// Validate enforces the post-assembly invariants.
func (c *Contract) Validate() error {
	if len(c.Clauses) == 0 {
		return fmt.Errorf("contract has no clauses")
	}
	if c.Info.TotalAmount <= 0 {
		return fmt.Errorf("contract amount must be positive, got %d", c.Info.TotalAmount)
	}
	for i := range c.Clauses {
		if c.Clauses[i].Order != i+1 {
			return fmt.Errorf("clause %d has order %d, want %d", i, c.Clauses[i].Order, i+1)
		}
	}
	for _, cat := range EssentialCategories {
		if !c.hasCategory(cat) {
			return fmt.Errorf("essential category %s missing", cat)
		}
	}
	return nil
}

func (c *Contract) hasCategory(cat ClauseCategory) bool {
	for i := range c.Clauses {
		if c.Clauses[i].Category == cat {
			return true
		}
	}
	return false
}
