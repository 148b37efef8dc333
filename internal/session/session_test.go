package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ppiankov/leadscore/internal/export"
	"github.com/ppiankov/leadscore/internal/model"
	"github.com/ppiankov/leadscore/internal/store"
	"github.com/ppiankov/leadscore/internal/validate"
)

var fixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestSession() *Session {
	n := 0
	return New(nil,
		WithClock(func() time.Time { return fixedTime }),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("lead-%d", n)
		}),
	)
}

func TestSession_Add(t *testing.T) {
	s := newTestSession()

	lead, err := s.Add(context.Background(), model.LeadInput{
		Company: "Bank Co",
		Domain:  "bank.com",
		Email:   "jane@bank.com",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if lead.ID != "lead-1" {
		t.Errorf("Expected ID lead-1, got %s", lead.ID)
	}
	if !lead.IsEmailValid {
		t.Error("Expected valid e-mail")
	}
	if lead.Industry != model.IndustryFinance {
		t.Errorf("Expected Finance, got %s", lead.Industry)
	}
	if lead.ConfidenceScore != 100 {
		t.Errorf("Expected score 100, got %d", lead.ConfidenceScore)
	}
	if !lead.CreatedAt.Equal(fixedTime) {
		t.Errorf("Expected CreatedAt %v, got %v", fixedTime, lead.CreatedAt)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 stored lead, got %d", s.Len())
	}
}

func TestSession_AddRejectsInvalidForm(t *testing.T) {
	s := newTestSession()

	_, err := s.Add(context.Background(), model.LeadInput{Company: "", Domain: "acme", Email: "bad"})

	var fe *validate.FormError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *validate.FormError, got %v", err)
	}
	if len(fe.Fields) != 3 {
		t.Errorf("Expected 3 field errors, got %+v", fe.Fields)
	}
	if s.Len() != 0 {
		t.Errorf("Expected rejected lead not to be stored, got %d", s.Len())
	}
}

func TestSession_AddDerivesDomain(t *testing.T) {
	s := newTestSession()

	lead, err := s.Add(context.Background(), model.LeadInput{Company: "Data Inc", Email: "ceo@bigdata.io"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if lead.Domain != "bigdata.io" {
		t.Errorf("Expected derived domain bigdata.io, got %q", lead.Domain)
	}
	if lead.Industry != model.IndustryAITechnology {
		t.Errorf("Expected AI & Technology, got %s", lead.Industry)
	}
}

func TestSession_AddUnderivableDomain(t *testing.T) {
	s := newTestSession()

	_, err := s.Add(context.Background(), model.LeadInput{Company: "Sub", Email: "a@mail.sub.example.com"})

	var fe *validate.FormError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected form error, got %v", err)
	}
	if fe.Message(validate.FieldDomain) != "Domain is required" {
		t.Errorf("Expected domain required, got %q", fe.Message(validate.FieldDomain))
	}
}

func TestSession_AddCancelled(t *testing.T) {
	s := newTestSession()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Add(ctx, model.LeadInput{Company: "A", Domain: "a.com", Email: "a@a.com"}); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func addAll(t *testing.T, s *Session, inputs ...model.LeadInput) {
	t.Helper()
	for _, in := range inputs {
		if _, err := s.Add(context.Background(), in); err != nil {
			t.Fatalf("Add(%+v) failed: %v", in, err)
		}
	}
}

func TestSession_Delete(t *testing.T) {
	s := newTestSession()
	addAll(t, s,
		model.LeadInput{Company: "A", Domain: "a.com", Email: "a@a.com"},
		model.LeadInput{Company: "B", Domain: "b.com", Email: "b@b.com"},
		model.LeadInput{Company: "C", Domain: "c.com", Email: "c@c.com"},
	)

	if err := s.Delete("lead-2"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	leads := s.Leads()
	if len(leads) != 2 || leads[0].Company != "A" || leads[1].Company != "C" {
		t.Errorf("Expected [A C] after delete, got %+v", leads)
	}

	err := s.Delete("lead-2")
	if !eris.Is(err, store.ErrLeadNotFound) {
		t.Errorf("Expected ErrLeadNotFound on second delete, got %v", err)
	}
}

func TestSession_Stats(t *testing.T) {
	s := newTestSession()
	addAll(t, s,
		model.LeadInput{Company: "Bank", Domain: "bank.com", Email: "jane@bank.com"},
		model.LeadInput{Company: "Ex", Domain: "example.xyz", Email: "info@example.xyz"},
	)

	st := s.Stats()
	if st.Total != 2 || st.ValidEmails != 2 {
		t.Errorf("Unexpected tiles: %+v", st)
	}
	if st.AverageScore != 70 {
		t.Errorf("Expected average (100+40)/2 = 70, got %d", st.AverageScore)
	}
	if st.HighQuality != 1 {
		t.Errorf("Expected 1 high-quality lead, got %d", st.HighQuality)
	}
}

func TestSession_StatsThresholdFromConfig(t *testing.T) {
	tests := []struct {
		threshold int
		want      int
	}{
		{0, 1},
		{40, 1},
		{41, 0},
		{100, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("threshold_%d", tt.threshold), func(t *testing.T) {
			cfg := model.DefaultConfig()
			cfg.Scoring.HighQualityThreshold = tt.threshold

			s := New(cfg)
			addAll(t, s, model.LeadInput{Company: "Ex", Domain: "example.xyz", Email: "info@example.xyz"})

			if got := s.Stats().HighQuality; got != tt.want {
				t.Errorf("Expected %d high-quality leads at threshold %d, got %d", tt.want, tt.threshold, got)
			}
		})
	}
}

func TestSession_Explain(t *testing.T) {
	s := newTestSession()
	addAll(t, s, model.LeadInput{Company: "Ex", Domain: "example.xyz", Email: "info@example.xyz"})

	b, err := s.Explain("lead-1")
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	if b.Score != 40 || len(b.Signals) != 4 {
		t.Errorf("Unexpected breakdown: %+v", b)
	}

	if _, err := s.Explain("nope"); !eris.Is(err, store.ErrLeadNotFound) {
		t.Errorf("Expected ErrLeadNotFound, got %v", err)
	}
}

func TestSession_Export(t *testing.T) {
	s := newTestSession()
	addAll(t, s,
		model.LeadInput{Company: "Bank", Domain: "bank.com", Email: "jane@bank.com"},
		model.LeadInput{Company: "Ex", Domain: "example.xyz", Email: "info@example.xyz"},
	)

	dir := t.TempDir()
	if err := s.Export(export.NewFileSink(dir)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, export.FileName))
	if err != nil {
		t.Fatalf("Expected export file: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), data)
	}
	if lines[1] != "Bank,bank.com,jane@bank.com,Yes,Finance,100,2024-05-01" {
		t.Errorf("Unexpected first row %q", lines[1])
	}
	if lines[2] != "Ex,example.xyz,info@example.xyz,Yes,Unknown,40,2024-05-01" {
		t.Errorf("Unexpected second row %q", lines[2])
	}
}

func TestSession_CustomWeights(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Scoring.Weights.TopDomain = 0
	cfg.Cache.Enabled = false

	s := New(cfg)
	lead := s.Build(model.LeadInput{Company: "Bank", Domain: "bank.com", Email: "jane@bank.com"})

	if lead.ConfidenceScore != 90 {
		t.Errorf("Expected 90 without top-domain points, got %d", lead.ConfidenceScore)
	}
	if lead.ID == "" {
		t.Error("Expected a generated ID")
	}
}
