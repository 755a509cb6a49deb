// Package storage provides the SQLite persistence layer for templates,
// contracts and quotes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hansollabs/clausecraft/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidContract = errors.New("invalid contract")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTemplate validates a template before persistence.
func validateTemplate(template *model.Template) error {
	if template == nil {
		return fmt.Errorf("%w: template", ErrNilParameter)
	}
	if err := template.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return nil
}

// validateContract validates a contract before persistence.
func validateContract(contract *model.Contract) error {
	if contract == nil {
		return fmt.Errorf("%w: contract", ErrNilParameter)
	}
	if strings.TrimSpace(contract.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidContract)
	}
	if err := contract.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContract, err)
	}
	return nil
}
