package stats

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/ppiankov/leadscore/internal/model"
	"github.com/ppiankov/leadscore/internal/score"
)

// DefaultHighQualityThreshold is the score at which a lead counts as high quality
const DefaultHighQualityThreshold = 70

// Summary holds the aggregate tiles and breakdowns for a set of leads
type Summary struct {
	Total        int `json:"total" yaml:"total"`
	ValidEmails  int `json:"valid_emails" yaml:"valid_emails"`
	AverageScore int `json:"average_score" yaml:"average_score"` // rounded, 0 when empty
	HighQuality  int `json:"high_quality" yaml:"high_quality"`

	ByIndustry []Count `json:"by_industry" yaml:"by_industry"` // classification order
	ByGrade    []Count `json:"by_grade" yaml:"by_grade"`       // best to worst
	BySuffix   []Count `json:"by_suffix" yaml:"by_suffix"`     // most common first
}

// Count is a labelled tally
type Count struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Compute aggregates leads using the default high-quality threshold
func Compute(leads []model.Lead) Summary {
	return ComputeWithThreshold(leads, DefaultHighQualityThreshold)
}

// ComputeWithThreshold aggregates leads, counting scores >= threshold as high quality
func ComputeWithThreshold(leads []model.Lead, threshold int) Summary {
	s := Summary{Total: len(leads)}

	industries := make(map[model.Industry]int)
	grades := make(map[model.Grade]int)
	suffixes := make(map[string]int)
	sum := 0

	for _, l := range leads {
		if l.IsEmailValid {
			s.ValidEmails++
		}
		if l.ConfidenceScore >= threshold {
			s.HighQuality++
		}
		sum += l.ConfidenceScore
		industries[l.Industry]++
		grades[score.GradeFor(l.ConfidenceScore)]++
		suffixes[Suffix(l.Domain)]++
	}

	if s.Total > 0 {
		s.AverageScore = int(math.Round(float64(sum) / float64(s.Total)))
	}

	for _, ind := range model.Industries() {
		if n := industries[ind]; n > 0 {
			s.ByIndustry = append(s.ByIndustry, Count{Label: ind.String(), Count: n})
		}
	}
	for _, g := range model.Grades() {
		if n := grades[g]; n > 0 {
			s.ByGrade = append(s.ByGrade, Count{Label: string(g), Count: n})
		}
	}
	s.BySuffix = sortedCounts(suffixes)

	return s
}

// Suffix returns the public suffix of a domain ("co.uk" for "acme.co.uk"),
// or "(none)" when the domain is empty.
func Suffix(domain string) string {
	d := strings.Trim(strings.ToLower(strings.TrimSpace(domain)), ".")
	if d == "" {
		return "(none)"
	}
	suffix, _ := publicsuffix.PublicSuffix(d)
	return suffix
}

func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for label, n := range m {
		out = append(out, Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
