// Package model defines the core data structures for the clausecraft engine.
package model

import (
	"fmt"
	"strings"
)

// RiskLevel describes how much legal exposure a clause mitigates.
type RiskLevel string

// Risk level constants.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ClauseCategory identifies the contractual concern a clause covers.
type ClauseCategory string

// Clause category constants. Purpose, payment and termination are the
// essential categories: an assembled contract must contain all three.
const (
	CategoryPurpose      ClauseCategory = "purpose"
	CategoryScope        ClauseCategory = "scope"
	CategoryPayment      ClauseCategory = "payment"
	CategoryDelivery     ClauseCategory = "delivery"
	CategoryInspection   ClauseCategory = "inspection"
	CategoryRevision     ClauseCategory = "revision"
	CategoryIP           ClauseCategory = "intellectual_property"
	CategoryConfidential ClauseCategory = "confidentiality"
	CategoryWarranty     ClauseCategory = "warranty"
	CategoryLiability    ClauseCategory = "liability"
	CategoryTermination  ClauseCategory = "termination"
	CategoryDispute      ClauseCategory = "dispute"
	CategoryGeneral      ClauseCategory = "general"
)

// EssentialCategories lists the categories every assembled contract must
// contain, in their canonical contract positions.
var EssentialCategories = []ClauseCategory{
	CategoryPurpose,
	CategoryPayment,
	CategoryTermination,
}

// Clause is a titled unit of contract text with selection metadata.
// Once attached to a contract a clause is immutable.
type Clause struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Category     ClauseCategory `json:"category"`
	RiskLevel    RiskLevel      `json:"riskLevel"`
	Triggers     []string       `json:"triggers,omitempty"`
	Conflicts    []string       `json:"conflicts,omitempty"`
	Alternatives []string       `json:"alternatives,omitempty"`
	Order        int            `json:"order"`
	Essential    bool           `json:"essential"`
}

// Validate ensures the clause carries the minimum required data.
func (c *Clause) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("clause id is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("clause %s: title is required", c.ID)
	}
	if c.Category == "" {
		return fmt.Errorf("clause %s: category is required", c.ID)
	}
	switch c.RiskLevel {
	case RiskLow, RiskMedium, RiskHigh, "":
	default:
		return fmt.Errorf("clause %s: invalid risk level %q", c.ID, c.RiskLevel)
	}
	return nil
}

// TriggeredBy reports whether any of the clause's triggers is in the
// active trigger set.
func (c *Clause) TriggeredBy(active map[string]bool) bool {
	for _, t := range c.Triggers {
		if active[t] {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether the two clauses declare each other (or each
// other's category) incompatible, in either direction.
func (c *Clause) ConflictsWith(other *Clause) bool {
	return listsConflict(c, other) || listsConflict(other, c)
}

func listsConflict(a, b *Clause) bool {
	for _, id := range a.Conflicts {
		if id == b.ID || id == string(b.Category) {
			return true
		}
	}
	return false
}
