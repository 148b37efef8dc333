package stats

import (
	"testing"

	"github.com/ppiankov/leadscore/internal/model"
)

func lead(valid bool, industry model.Industry, domain string, score int) model.Lead {
	return model.Lead{IsEmailValid: valid, Industry: industry, Domain: domain, ConfidenceScore: score}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)

	if s.Total != 0 || s.ValidEmails != 0 || s.AverageScore != 0 || s.HighQuality != 0 {
		t.Errorf("Expected zero tiles for no leads, got %+v", s)
	}
	if len(s.ByIndustry) != 0 || len(s.ByGrade) != 0 || len(s.BySuffix) != 0 {
		t.Errorf("Expected empty breakdowns, got %+v", s)
	}
}

func TestCompute_Tiles(t *testing.T) {
	leads := []model.Lead{
		lead(true, model.IndustryFinance, "bank.com", 100),
		lead(true, model.IndustryUnknown, "example.xyz", 40),
		lead(false, model.IndustryEducation, "school.co.uk", 69),
		lead(true, model.IndustryFinance, "pay.com", 70),
	}

	s := Compute(leads)

	if s.Total != 4 {
		t.Errorf("Expected total 4, got %d", s.Total)
	}
	if s.ValidEmails != 3 {
		t.Errorf("Expected 3 valid e-mails, got %d", s.ValidEmails)
	}
	// (100+40+69+70)/4 = 69.75
	if s.AverageScore != 70 {
		t.Errorf("Expected average 70, got %d", s.AverageScore)
	}
	if s.HighQuality != 2 {
		t.Errorf("Expected 2 high-quality leads (>= 70), got %d", s.HighQuality)
	}
}

func TestCompute_AverageRoundsHalfUp(t *testing.T) {
	s := Compute([]model.Lead{
		lead(true, model.IndustryUnknown, "a.com", 50),
		lead(true, model.IndustryUnknown, "b.com", 51),
	})

	if s.AverageScore != 51 {
		t.Errorf("Expected 50.5 to round to 51, got %d", s.AverageScore)
	}
}

func TestCompute_Breakdowns(t *testing.T) {
	leads := []model.Lead{
		lead(true, model.IndustryUnknown, "example.xyz", 40),
		lead(true, model.IndustryFinance, "bank.com", 100),
		lead(true, model.IndustryAITechnology, "data.co.uk", 90),
		lead(true, model.IndustryFinance, "pay.com", 60),
	}

	s := Compute(leads)

	expectedIndustries := []Count{
		{Label: "AI & Technology", Count: 1},
		{Label: "Finance", Count: 2},
		{Label: "Unknown", Count: 1},
	}
	if len(s.ByIndustry) != len(expectedIndustries) {
		t.Fatalf("Expected %d industries, got %+v", len(expectedIndustries), s.ByIndustry)
	}
	for i, c := range expectedIndustries {
		if s.ByIndustry[i] != c {
			t.Errorf("Industry %d: expected %+v, got %+v", i, c, s.ByIndustry[i])
		}
	}

	expectedGrades := []Count{
		{Label: "high", Count: 2},
		{Label: "medium", Count: 1},
		{Label: "low", Count: 1},
	}
	for i, c := range expectedGrades {
		if i >= len(s.ByGrade) || s.ByGrade[i] != c {
			t.Errorf("Grade %d: expected %+v, got %+v", i, c, s.ByGrade)
		}
	}

	if len(s.BySuffix) != 3 || s.BySuffix[0] != (Count{Label: "com", Count: 2}) {
		t.Errorf("Expected com first with 2, got %+v", s.BySuffix)
	}
}

func TestComputeWithThreshold(t *testing.T) {
	leads := []model.Lead{
		lead(true, model.IndustryUnknown, "a.com", 50),
		lead(true, model.IndustryUnknown, "b.com", 90),
	}

	if got := ComputeWithThreshold(leads, 50).HighQuality; got != 2 {
		t.Errorf("Expected 2 at threshold 50, got %d", got)
	}
	if got := ComputeWithThreshold(leads, 95).HighQuality; got != 0 {
		t.Errorf("Expected 0 at threshold 95, got %d", got)
	}
}

func TestSuffix(t *testing.T) {
	tests := map[string]string{
		"acme.com":     "com",
		"ACME.CO.UK":   "co.uk",
		"startup.io":   "io",
		"":             "(none)",
		"  acme.org. ": "org",
	}

	for in, expected := range tests {
		if got := Suffix(in); got != expected {
			t.Errorf("Expected Suffix(%q) = %q, got %q", in, expected, got)
		}
	}
}
