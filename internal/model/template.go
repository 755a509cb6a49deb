package model

import (
	"fmt"
	"strings"
	"time"
)

// Template is a reusable, pre-authored set of candidate clauses tagged by
// industry and category. Templates are long-lived catalog entities; the only
// mutation after creation is the popularity counter, which the storage layer
// increments atomically when a template contributes to a finished contract.
type Template struct {
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Industry   string    `json:"industry"`
	Complexity string    `json:"complexity"`
	Clauses    []Clause  `json:"clauses"`
	Popularity int       `json:"popularity"`
	Active     bool      `json:"active"`
}

// Validate ensures the template is well formed.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("template id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template %s: name is required", t.ID)
	}
	for i := range t.Clauses {
		if err := t.Clauses[i].Validate(); err != nil {
			return fmt.Errorf("template %s: clause %d: %w", t.ID, i, err)
		}
	}
	return nil
}
