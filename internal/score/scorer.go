package score

import (
	"fmt"
	"strings"

	"github.com/ppiankov/leadscore/internal/model"
)

// MaxScore is the upper bound of every confidence score
const MaxScore = 100

// Scorer calculates lead confidence scores
type Scorer struct {
	weights         model.Weights
	genericPrefixes []string
	topDomains      []string
}

// NewScorer creates a scorer from the scoring configuration.
// A nil config uses the built-in defaults.
func NewScorer(cfg *model.ScoringConfig) *Scorer {
	if cfg == nil {
		cfg = &model.DefaultConfig().Scoring
	}
	return &Scorer{
		weights:         cfg.Weights,
		genericPrefixes: cfg.GenericPrefixes,
		topDomains:      cfg.TopDomains,
	}
}

// Score returns only the bounded score for a lead
func (s *Scorer) Score(lead model.Lead) int {
	return s.Calculate(lead).Score
}

// Calculate scores a lead from its e-mail validity, industry, e-mail and
// domain. The lead's own ConfidenceScore field is ignored.
func (s *Scorer) Calculate(lead model.Lead) model.ScoreBreakdown {
	signals := []model.Signal{
		s.emailSignal(lead.IsEmailValid),
		s.industrySignal(lead.Industry),
		s.prefixSignal(lead.Email),
		s.domainSignal(lead.Domain),
	}

	total := 0
	for _, sig := range signals {
		total += sig.Points
	}
	total = clamp(total)

	return model.ScoreBreakdown{
		Score:   total,
		Grade:   GradeFor(total),
		Signals: signals,
	}
}

// emailSignal awards points for a syntactically valid e-mail (default 40)
func (s *Scorer) emailSignal(valid bool) model.Signal {
	sig := model.Signal{
		Factor:      model.FactorEmailValid,
		MaxPoints:   s.weights.EmailValid,
		Description: "E-mail syntax invalid",
	}
	if valid {
		sig.Points = s.weights.EmailValid
		sig.Description = "E-mail syntax valid"
	}
	return sig
}

// industrySignal awards points for a recognised industry (default 30)
func (s *Scorer) industrySignal(industry model.Industry) model.Signal {
	sig := model.Signal{
		Factor:      model.FactorIndustryKnown,
		MaxPoints:   s.weights.IndustryKnown,
		Description: "Industry not recognised",
	}
	if industry != model.IndustryUnknown {
		sig.Points = s.weights.IndustryKnown
		sig.Description = fmt.Sprintf("Industry: %s", industry)
	}
	return sig
}

// prefixSignal awards points when the local part is not a shared mailbox (default 20)
func (s *Scorer) prefixSignal(email string) model.Signal {
	prefix := LocalPart(email)
	sig := model.Signal{
		Factor:      model.FactorSpecificPrefix,
		MaxPoints:   s.weights.SpecificPrefix,
		Points:      s.weights.SpecificPrefix,
		Description: fmt.Sprintf("Personal mailbox %q", prefix),
	}
	for _, generic := range s.genericPrefixes {
		if strings.Contains(prefix, generic) {
			sig.Points = 0
			sig.Description = fmt.Sprintf("Generic mailbox %q (matches %q)", prefix, generic)
			break
		}
	}
	return sig
}

// domainSignal awards points for a well-known suffix (default 10)
func (s *Scorer) domainSignal(domain string) model.Signal {
	sig := model.Signal{
		Factor:      model.FactorTopDomain,
		MaxPoints:   s.weights.TopDomain,
		Description: "Uncommon domain suffix",
	}
	for _, tld := range s.topDomains {
		if strings.HasSuffix(domain, tld) {
			sig.Points = s.weights.TopDomain
			sig.Description = fmt.Sprintf("Domain ends with %s", tld)
			break
		}
	}
	return sig
}

// LocalPart returns the lower-cased text before the first '@',
// or the whole lower-cased string when there is no '@'.
func LocalPart(email string) string {
	prefix, _, _ := strings.Cut(email, "@")
	return strings.ToLower(prefix)
}

// GradeFor buckets a score into a display grade
func GradeFor(score int) model.Grade {
	switch {
	case score >= 80:
		return model.GradeHigh
	case score >= 60:
		return model.GradeMedium
	case score >= 40:
		return model.GradeLow
	default:
		return model.GradePoor
	}
}

// clamp bounds a raw point sum to [0, MaxScore]
func clamp(total int) int {
	if total > MaxScore {
		return MaxScore
	}
	if total < 0 {
		return 0
	}
	return total
}

var defaultScorer = NewScorer(nil)

// ConfidenceScore scores a lead with the default 40/30/20/10 weights
func ConfidenceScore(lead model.Lead) int {
	return defaultScorer.Score(lead)
}
