// Package rules implements the deterministic clause selection engine: a
// statically tagged catalog filtered by contract-condition triggers and
// checked for declared conflicts. This path never calls an external service,
// which makes it suitable as a fallback mode and for audit-grade
// reproducibility.
package rules

import (
	"github.com/hansollabs/clausecraft/internal/model"
)

// Trigger tags describing contract conditions.
const (
	TriggerBudgetOver1M  = "budget_over_1m"
	TriggerBudgetOver10M = "budget_over_10m"
	TriggerBudgetOver50M = "budget_over_50m"
	TriggerLongTerm      = "long_term_project"
	TriggerShortTerm     = "short_term_project"
	TriggerInstallment   = "installment"
)

// Duration bands for trigger derivation.
const (
	longTermDays  = 90
	shortTermDays = 14
)

// DeriveTriggers computes the active trigger set for a contract from its
// criteria and payment schedule. Budget triggers are cumulative: a 60M
// project carries all three budget tags.
func DeriveTriggers(criteria model.SelectionCriteria, payment model.PaymentSchedule) []string {
	var triggers []string

	if criteria.Amount >= 1_000_000 {
		triggers = append(triggers, TriggerBudgetOver1M)
	}
	if criteria.Amount >= 10_000_000 {
		triggers = append(triggers, TriggerBudgetOver10M)
	}
	if criteria.Amount >= 50_000_000 {
		triggers = append(triggers, TriggerBudgetOver50M)
	}

	switch {
	case criteria.DurationDays >= longTermDays:
		triggers = append(triggers, TriggerLongTerm)
	case criteria.DurationDays > 0 && criteria.DurationDays <= shortTermDays:
		triggers = append(triggers, TriggerShortTerm)
	}

	if payment.Installments() >= 2 {
		triggers = append(triggers, TriggerInstallment)
	}

	if criteria.ServiceType != "" {
		triggers = append(triggers, "service_"+criteria.ServiceType)
	}

	return triggers
}
