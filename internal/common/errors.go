// Package common provides shared utilities and types used across the engine.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Catalog errors.
	ErrNotFound    = errors.New("not found")
	ErrNoTemplates = errors.New("no active templates in catalog")
	ErrNoClauses   = errors.New("no candidate clauses available")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Generation errors.
	ErrGenerationFailed = errors.New("contract generation failed")
)

// ParseError reports that an external text-generation response could not be
// parsed even after repair. It carries the raw response for logging; callers
// recover with a stage-level fallback instead of propagating it.
type ParseError struct {
	Err error
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable generation response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a decode failure with the offending raw text.
func NewParseError(raw string, err error) *ParseError {
	return &ParseError{Raw: raw, Err: err}
}

// ConflictError reports two selected clauses that declare each other
// incompatible. It is surfaced to the caller with suggested alternatives and
// never auto-resolved.
type ConflictError struct {
	ClauseID     string
	ConflictsID  string
	Alternatives []string
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("clause %s conflicts with %s", e.ClauseID, e.ConflictsID)
	if len(e.Alternatives) > 0 {
		msg += fmt.Sprintf(" (alternatives: %s)", strings.Join(e.Alternatives, ", "))
	}
	return msg
}

// AssemblyError reports a required field missing at contract assembly time.
// The request fails as a whole; nothing is persisted.
type AssemblyError struct {
	Field  string
	Reason string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("cannot assemble contract: %s %s", e.Field, e.Reason)
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
