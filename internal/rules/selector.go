package rules

import (
	"fmt"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// Selector filters a tagged clause catalog by trigger intersection and
// validates the result for conflicts.
type Selector struct {
	catalog []model.Clause
}

// NewSelector creates a Selector over the given catalog; a nil catalog uses
// the built-in default.
func NewSelector(catalog []model.Clause) *Selector {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Selector{catalog: catalog}
}

// Select returns the clause set for the active triggers: every essential
// clause plus every clause whose trigger set intersects the active set. A
// conflicting selection is reported, never silently resolved.
func (s *Selector) Select(triggers []string) (*ClauseSet, error) {
	if len(s.catalog) == 0 {
		return nil, common.ErrNoClauses
	}

	active := make(map[string]bool, len(triggers))
	for _, t := range triggers {
		active[t] = true
	}

	var selected []model.Clause
	for i := range s.catalog {
		c := s.catalog[i]
		if c.Essential || c.TriggeredBy(active) {
			selected = append(selected, c)
		}
	}

	set, err := NewClauseSet(selected)
	if err != nil {
		return nil, fmt.Errorf("rule selection produced an invalid set: %w", err)
	}
	return set, nil
}
