// Package schedule implements the deterministic payment-schedule and
// project-timeline calculators. Everything here is a pure function: same
// inputs, same outputs, no I/O.
package schedule

import (
	"math"

	"github.com/hansollabs/clausecraft/internal/model"
)

// Default rate table keyed by amount band.
const (
	singlePaymentLimit = 1_000_000
	twoInstallmentsCap = 5_000_000
)

// CalculatePayment builds the installment schedule for an amount. Explicit
// terms from the originating quote are used verbatim with each installment
// rounded independently; no re-normalization is applied, so installments may
// drift from the total by up to one currency unit. Without explicit terms a
// fixed amount-band table applies.
//
// This is the single place payment amounts are computed; callers must not
// re-derive installments from the rates.
func CalculatePayment(amount int64, terms *model.PaymentTerms) model.PaymentSchedule {
	if terms != nil && !terms.Empty() {
		return model.PaymentSchedule{
			DownRate:    terms.DownRate,
			MiddleRate:  terms.MiddleRate,
			FinalRate:   terms.FinalRate,
			DownAmount:  rateAmount(amount, terms.DownRate),
			MiddleAmt:   rateAmount(amount, terms.MiddleRate),
			FinalAmt:    rateAmount(amount, terms.FinalRate),
			IsFromQuote: true,
		}
	}

	var down, middle, final int
	switch {
	case amount < singlePaymentLimit:
		down, middle, final = 0, 0, 100
	case amount < twoInstallmentsCap:
		down, middle, final = 30, 0, 70
	default:
		down, middle, final = 30, 40, 30
	}

	return model.PaymentSchedule{
		DownRate:   down,
		MiddleRate: middle,
		FinalRate:  final,
		DownAmount: rateAmount(amount, down),
		MiddleAmt:  rateAmount(amount, middle),
		FinalAmt:   rateAmount(amount, final),
	}
}

func rateAmount(amount int64, rate int) int64 {
	return int64(math.Round(float64(amount) * float64(rate) / 100))
}
