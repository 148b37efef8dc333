package store

import (
	"testing"

	"github.com/rotisserie/eris"

	"github.com/ppiankov/leadscore/internal/model"
)

func ids(leads []model.Lead) []string {
	out := make([]string, len(leads))
	for i, l := range leads {
		out[i] = l.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func seeded(n int) *Store {
	s := New()
	for _, id := range []string{"a", "b", "c", "d", "e"}[:n] {
		s.Add(model.Lead{ID: id, Company: "Co " + id})
	}
	return s
}

func TestStore_AddKeepsOrder(t *testing.T) {
	s := seeded(3)

	if s.Len() != 3 {
		t.Fatalf("Expected 3 leads, got %d", s.Len())
	}
	if got := ids(s.List()); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected insertion order [a b c], got %v", got)
	}
}

func TestStore_Remove(t *testing.T) {
	tests := []struct {
		id       string
		removed  bool
		expected []string
	}{
		{"a", true, []string{"b", "c", "d", "e"}},
		{"c", true, []string{"a", "b", "d", "e"}},
		{"e", true, []string{"a", "b", "c", "d"}},
		{"zz", false, []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s := seeded(5)
			if got := s.Remove(tt.id); got != tt.removed {
				t.Errorf("Expected Remove(%q) = %v, got %v", tt.id, tt.removed, got)
			}
			if got := ids(s.List()); !equal(got, tt.expected) {
				t.Errorf("Expected %v after removing %q, got %v", tt.expected, tt.id, got)
			}
		})
	}
}

func TestStore_RemoveDoesNotAffectEarlierList(t *testing.T) {
	s := seeded(3)
	before := s.List()

	s.Remove("a")

	if got := ids(before); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected earlier snapshot to be untouched, got %v", got)
	}
}

func TestStore_Get(t *testing.T) {
	s := seeded(2)

	lead, err := s.Get("b")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lead.Company != "Co b" {
		t.Errorf("Expected Co b, got %q", lead.Company)
	}

	_, err = s.Get("missing")
	if !eris.Is(err, ErrLeadNotFound) {
		t.Errorf("Expected ErrLeadNotFound, got %v", err)
	}
}

func TestStore_Empty(t *testing.T) {
	s := New()
	if s.Len() != 0 || len(s.List()) != 0 {
		t.Error("Expected empty store")
	}
	if s.Remove("x") {
		t.Error("Expected Remove on empty store to report false")
	}
}
