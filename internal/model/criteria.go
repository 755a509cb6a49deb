package model

import "fmt"

// ComplexityTier controls the target clause count and writing density of a
// generated contract.
type ComplexityTier string

// Complexity tier constants.
const (
	TierSimple   ComplexityTier = "simple"
	TierStandard ComplexityTier = "standard"
	TierDetailed ComplexityTier = "detailed"
)

// ClauseCountRange returns the target number of clauses for the tier.
func (t ComplexityTier) ClauseCountRange() (minCount, maxCount int) {
	switch t {
	case TierSimple:
		return 6, 8
	case TierDetailed:
		return 15, 20
	default:
		return 10, 12
	}
}

// Valid reports whether the tier is one of the known values.
func (t ComplexityTier) Valid() bool {
	switch t {
	case TierSimple, TierStandard, TierDetailed:
		return true
	}
	return false
}

// SelectionCriteria is the ephemeral value object driving template and
// clause selection. It is always derived from a quote plus its selected
// services and is never persisted independently.
type SelectionCriteria struct {
	ServiceType  string         `json:"serviceType"`
	Industry     string         `json:"industry"`
	Complexity   ComplexityTier `json:"complexity"`
	Amount       int64          `json:"amount"`
	DurationDays int            `json:"durationDays"`
	Score        int            `json:"score"`
}

// Validate ensures the criteria can drive a selection run.
func (c *SelectionCriteria) Validate() error {
	if c.ServiceType == "" {
		return fmt.Errorf("service type is required")
	}
	if !c.Complexity.Valid() {
		return fmt.Errorf("invalid complexity tier %q", c.Complexity)
	}
	if c.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %d", c.Amount)
	}
	return nil
}
