package model

import "fmt"

// PaymentSchedule splits a contract amount into up to three installments.
// Rates are percentages; when all three are present they must sum to 100.
// Amounts are rounded per installment, so they may drift from the total by
// at most one currency unit.
type PaymentSchedule struct {
	DownRate   int   `json:"downRate"`
	MiddleRate int   `json:"middleRate"`
	FinalRate  int   `json:"finalRate"`
	DownAmount int64 `json:"downAmount"`
	MiddleAmt  int64 `json:"middleAmount"`
	FinalAmt   int64 `json:"finalAmount"`
	// IsFromQuote marks schedules built from explicit quote payment terms
	// rather than the default amount-band table.
	IsFromQuote bool `json:"isFromQuote"`
}

// Total returns the sum of the installment amounts.
func (p *PaymentSchedule) Total() int64 {
	return p.DownAmount + p.MiddleAmt + p.FinalAmt
}

// Installments returns the count of nonzero installments.
func (p *PaymentSchedule) Installments() int {
	n := 0
	for _, r := range []int{p.DownRate, p.MiddleRate, p.FinalRate} {
		if r > 0 {
			n++
		}
	}
	return n
}

// Validate checks the rate and amount invariants against the contract total.
func (p *PaymentSchedule) Validate(total int64) error {
	if p.DownRate < 0 || p.MiddleRate < 0 || p.FinalRate < 0 {
		return fmt.Errorf("payment rates must not be negative")
	}
	if sum := p.DownRate + p.MiddleRate + p.FinalRate; sum != 100 {
		return fmt.Errorf("payment rates must sum to 100, got %d", sum)
	}
	drift := p.Total() - total
	if drift < -1 || drift > 1 {
		return fmt.Errorf("installments sum to %d, want %d (±1)", p.Total(), total)
	}
	return nil
}
