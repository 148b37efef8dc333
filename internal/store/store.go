package store

import (
	"slices"

	"github.com/rotisserie/eris"

	"github.com/ppiankov/leadscore/internal/model"
)

// ErrLeadNotFound is returned when no lead has the requested ID
var ErrLeadNotFound = eris.New("lead not found")

// Store is an ordered in-memory collection of scored leads.
// It is owned by a single session and is not safe for concurrent use.
type Store struct {
	leads []model.Lead
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Add appends a lead to the end of the collection
func (s *Store) Add(lead model.Lead) {
	s.leads = append(s.leads, lead)
}

// Remove deletes the first lead with the given ID, keeping the relative
// order of the remaining leads. It reports whether a lead was removed.
func (s *Store) Remove(id string) bool {
	for i, l := range s.leads {
		if l.ID == id {
			s.leads = slices.Delete(s.leads, i, i+1)
			return true
		}
	}
	return false
}

// Get returns the lead with the given ID
func (s *Store) Get(id string) (model.Lead, error) {
	for _, l := range s.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Lead{}, eris.Wrapf(ErrLeadNotFound, "id %s", id)
}

// List returns a copy of all leads in insertion order
func (s *Store) List() []model.Lead {
	out := make([]model.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// Len returns the number of stored leads
func (s *Store) Len() int {
	return len(s.leads)
}
