package model

import (
	"encoding/json"
	"fmt"
)

// ServiceItem is one line item of a quote.
type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity,omitempty"`
}

// PaymentTerms are the explicit installment percentages a client agreed to
// on the quote, if any.
type PaymentTerms struct {
	DownRate   int `json:"downRate"`
	MiddleRate int `json:"middleRate"`
	FinalRate  int `json:"finalRate"`
}

// Empty reports whether no explicit terms were given.
func (t *PaymentTerms) Empty() bool {
	return t == nil || (t.DownRate == 0 && t.MiddleRate == 0 && t.FinalRate == 0)
}

// QuoteOptions carries per-quote contract options.
type QuoteOptions struct {
	DeliveryDays   int `json:"deliveryDays,omitempty"`
	InspectionDays int `json:"inspectionDays,omitempty"`
}

// QuoteMetadata is the free-form metadata block stored with a quote record.
type QuoteMetadata struct {
	PaymentTerms *struct {
		Schedule *PaymentTerms `json:"schedule,omitempty"`
	} `json:"paymentTerms,omitempty"`
	Options *QuoteOptions `json:"options,omitempty"`
}

// Quote is the intake record the engine consumes. Items and metadata mirror
// the JSON columns of the platform's quote store.
type Quote struct {
	ID             string        `json:"id"`
	ClientName     string        `json:"clientName"`
	ClientContact  string        `json:"clientContact,omitempty"`
	ProviderName   string        `json:"providerName"`
	ProjectName    string        `json:"projectName"`
	Items          []ServiceItem `json:"items"`
	TotalAmount    int64         `json:"totalAmount"`
	OriginalAmount int64         `json:"originalAmount,omitempty"`
	Duration       string        `json:"duration,omitempty"`
	Metadata       QuoteMetadata `json:"metadata,omitempty"`
}

// ParseQuote decodes a quote record from its stored JSON form.
func ParseQuote(data []byte) (*Quote, error) {
	var q Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to parse quote: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// Validate checks the quote has enough data to generate a contract from.
func (q *Quote) Validate() error {
	if q.TotalAmount <= 0 {
		return fmt.Errorf("quote total amount must be positive, got %d", q.TotalAmount)
	}
	if len(q.Items) == 0 {
		return fmt.Errorf("quote has no service items")
	}
	return nil
}

// ExplicitTerms returns the payment schedule percentages from the quote
// metadata, or nil when the quote carries none.
func (q *Quote) ExplicitTerms() *PaymentTerms {
	if q.Metadata.PaymentTerms == nil || q.Metadata.PaymentTerms.Schedule.Empty() {
		return nil
	}
	return q.Metadata.PaymentTerms.Schedule
}

// Options returns the quote's contract options with zero-value defaults.
func (q *Quote) Options() QuoteOptions {
	if q.Metadata.Options == nil {
		return QuoteOptions{}
	}
	return *q.Metadata.Options
}
