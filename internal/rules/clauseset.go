package rules

import (
	"sort"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// ClauseSet is a mutable, always-valid selection of clauses. Every mutation
// re-runs conflict validation; a set is never left in a conflicting state.
type ClauseSet struct {
	clauses []model.Clause
}

// NewClauseSet builds a set from the given clauses, rejecting it outright if
// the initial selection already conflicts.
func NewClauseSet(clauses []model.Clause) (*ClauseSet, error) {
	s := &ClauseSet{clauses: append([]model.Clause(nil), clauses...)}
	s.sort()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Clauses returns the clauses in catalog order. The returned slice is a copy.
func (s *ClauseSet) Clauses() []model.Clause {
	return append([]model.Clause(nil), s.clauses...)
}

// Len returns the number of clauses in the set.
func (s *ClauseSet) Len() int {
	return len(s.clauses)
}

// Contains reports whether a clause with the given id is in the set.
func (s *ClauseSet) Contains(id string) bool {
	for i := range s.clauses {
		if s.clauses[i].ID == id {
			return true
		}
	}
	return false
}

// Add inserts a clause after checking it against every existing member. On
// conflict the set is left unchanged and the ConflictError names the pair
// and any declared alternatives.
func (s *ClauseSet) Add(clause model.Clause) error {
	if err := clause.Validate(); err != nil {
		return err
	}
	if s.Contains(clause.ID) {
		return nil
	}
	for i := range s.clauses {
		if clause.ConflictsWith(&s.clauses[i]) {
			return &common.ConflictError{
				ClauseID:     clause.ID,
				ConflictsID:  s.clauses[i].ID,
				Alternatives: clause.Alternatives,
			}
		}
	}
	s.clauses = append(s.clauses, clause)
	s.sort()
	return nil
}

// Remove deletes a clause by id and reports whether it was present. Removal
// cannot introduce a conflict, but validation is re-run to keep the
// invariant explicit.
func (s *ClauseSet) Remove(id string) bool {
	for i := range s.clauses {
		if s.clauses[i].ID == id {
			s.clauses = append(s.clauses[:i], s.clauses[i+1:]...)
			_ = s.Validate()
			return true
		}
	}
	return false
}

// Validate checks every pair for declared conflicts.
func (s *ClauseSet) Validate() error {
	for i := range s.clauses {
		for j := i + 1; j < len(s.clauses); j++ {
			if s.clauses[i].ConflictsWith(&s.clauses[j]) {
				return &common.ConflictError{
					ClauseID:     s.clauses[i].ID,
					ConflictsID:  s.clauses[j].ID,
					Alternatives: s.clauses[i].Alternatives,
				}
			}
		}
	}
	return nil
}

func (s *ClauseSet) sort() {
	sort.SliceStable(s.clauses, func(i, j int) bool {
		return s.clauses[i].Order < s.clauses[j].Order
	})
}
