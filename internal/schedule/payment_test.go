package schedule

import (
	"testing"

	"github.com/hansollabs/clausecraft/internal/model"
)

func TestCalculatePaymentDefaults(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		wantRates  [3]int
		wantAmount [3]int64
	}{
		{
			name:       "small amount is a single payment",
			amount:     800_000,
			wantRates:  [3]int{0, 0, 100},
			wantAmount: [3]int64{0, 0, 800_000},
		},
		{
			name:       "mid amount splits down and final",
			amount:     3_000_000,
			wantRates:  [3]int{30, 0, 70},
			wantAmount: [3]int64{900_000, 0, 2_100_000},
		},
		{
			name:       "large amount gets three installments",
			amount:     10_000_000,
			wantRates:  [3]int{30, 40, 30},
			wantAmount: [3]int64{3_000_000, 4_000_000, 3_000_000},
		},
		{
			name:       "band boundary at one million",
			amount:     1_000_000,
			wantRates:  [3]int{30, 0, 70},
			wantAmount: [3]int64{300_000, 0, 700_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePayment(tt.amount, nil)
			if got.IsFromQuote {
				t.Error("default schedule must not be marked as from quote")
			}
			if got.DownRate != tt.wantRates[0] || got.MiddleRate != tt.wantRates[1] || got.FinalRate != tt.wantRates[2] {
				t.Errorf("rates = %d/%d/%d, want %d/%d/%d",
					got.DownRate, got.MiddleRate, got.FinalRate,
					tt.wantRates[0], tt.wantRates[1], tt.wantRates[2])
			}
			if got.DownAmount != tt.wantAmount[0] || got.MiddleAmt != tt.wantAmount[1] || got.FinalAmt != tt.wantAmount[2] {
				t.Errorf("amounts = %d/%d/%d, want %d/%d/%d",
					got.DownAmount, got.MiddleAmt, got.FinalAmt,
					tt.wantAmount[0], tt.wantAmount[1], tt.wantAmount[2])
			}
		})
	}
}

func TestCalculatePaymentExplicitTerms(t *testing.T) {
	terms := &model.PaymentTerms{DownRate: 30, MiddleRate: 40, FinalRate: 30}
	got := CalculatePayment(8_000_000, terms)

	if !got.IsFromQuote {
		t.Error("explicit terms must set IsFromQuote")
	}
	if got.DownAmount != 2_400_000 || got.MiddleAmt != 3_200_000 || got.FinalAmt != 2_400_000 {
		t.Errorf("amounts = %d/%d/%d, want 2400000/3200000/2400000",
			got.DownAmount, got.MiddleAmt, got.FinalAmt)
	}
}

// Installments are rounded independently, so the sum may drift from the
// total by at most one currency unit.
func TestCalculatePaymentRoundingDrift(t *testing.T) {
	amounts := []int64{1, 999, 33_333, 777_777, 1_234_567, 4_999_999, 5_000_001, 98_765_432_1}
	termSets := []*model.PaymentTerms{
		nil,
		{DownRate: 33, MiddleRate: 33, FinalRate: 34},
		{DownRate: 50, MiddleRate: 0, FinalRate: 50},
		{DownRate: 10, MiddleRate: 45, FinalRate: 45},
	}

	for _, amount := range amounts {
		for _, terms := range termSets {
			got := CalculatePayment(amount, terms)
			drift := got.Total() - amount
			if drift < -1 || drift > 1 {
				t.Errorf("amount %d terms %+v: installments sum %d drifts by %d",
					amount, terms, got.Total(), drift)
			}
			if sum := got.DownRate + got.MiddleRate + got.FinalRate; sum != 100 {
				t.Errorf("amount %d terms %+v: rates sum to %d", amount, terms, sum)
			}
		}
	}
}

func TestCalculatePaymentIdempotent(t *testing.T) {
	terms := &model.PaymentTerms{DownRate: 30, MiddleRate: 40, FinalRate: 30}
	first := CalculatePayment(7_777_777, terms)
	for i := 0; i < 10; i++ {
		if got := CalculatePayment(7_777_777, terms); got != first {
			t.Fatalf("calculation is not deterministic: %+v vs %+v", got, first)
		}
	}
}
