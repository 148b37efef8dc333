package classify

import (
	"strings"

	"github.com/ppiankov/leadscore/internal/cache"
	"github.com/ppiankov/leadscore/internal/model"
)

// Rule maps an industry to the keywords that identify it
type Rule struct {
	Industry model.Industry
	Keywords []string
}

// DefaultRules returns the keyword table in evaluation order.
// A domain matching several industries gets the first one listed.
func DefaultRules() []Rule {
	return []Rule{
		{model.IndustryAITechnology, []string{"openai", "gpt", "ml", "ai", "neural", "tech", "software", "data", "cloud", "saas"}},
		{model.IndustryPrivateEquity, []string{"capital", "fund", "invest", "m&a", "equity", "venture", "partners"}},
		{model.IndustryLeadGeneration, []string{"leads", "crm", "outreach", "sales", "marketing", "growth", "conversion"}},
		{model.IndustryHealthcare, []string{"health", "medical", "pharma", "clinic", "hospital", "care"}},
		{model.IndustryFinance, []string{"bank", "finance", "payment", "fintech", "crypto", "trading"}},
		{model.IndustryEcommerce, []string{"shop", "store", "ecommerce", "retail", "marketplace"}},
		{model.IndustryEducation, []string{"edu", "school", "university", "learn", "academy", "training"}},
		{model.IndustryRealEstate, []string{"property", "real", "estate", "realty", "homes"}},
	}
}

// Match is the outcome of classifying one domain
type Match struct {
	Industry model.Industry `json:"industry"`
	Keyword  string         `json:"keyword,omitempty"` // empty when Unknown
}

// Classifier assigns industries to domains by ordered keyword search
type Classifier struct {
	rules []Rule
	cache cache.Cache
}

// Option configures a Classifier
type Option func(*Classifier)

// WithCache memoizes results per lower-cased domain
func WithCache(c cache.Cache) Option {
	return func(cl *Classifier) {
		cl.cache = c
	}
}

// WithRules replaces the keyword table
func WithRules(rules []Rule) Option {
	return func(cl *Classifier) {
		cl.rules = rules
	}
}

// NewClassifier creates a classifier using the default table
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{rules: DefaultRules()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the industry for a domain, or Unknown
func (c *Classifier) Classify(domain string) model.Industry {
	return c.Explain(domain).Industry
}

// Explain returns the industry together with the keyword that selected it
func (c *Classifier) Explain(domain string) Match {
	lower := lowerFull(domain)

	if c.cache == nil {
		return c.match(lower)
	}

	key := cache.Key("industry", lower)
	if raw, ok := c.cache.Get(key); ok {
		return decodeMatch(raw)
	}

	m := c.match(lower)
	_ = c.cache.Set(key, encodeMatch(m), 0)
	return m
}

// dotted capital I lowers to "i" plus a combining dot above (full case
// mapping), so "clİnic" does not match "clinic"
var dottedI = strings.NewReplacer("\u0130", "i\u0307")

func lowerFull(s string) string {
	return strings.ToLower(dottedI.Replace(s))
}

func (c *Classifier) match(lower string) Match {
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return Match{Industry: rule.Industry, Keyword: kw}
			}
		}
	}
	return Match{Industry: model.IndustryUnknown}
}

// Cached values are "industry\x00keyword"; neither part can contain NUL.
func encodeMatch(m Match) []byte {
	return []byte(string(m.Industry) + "\x00" + m.Keyword)
}

func decodeMatch(raw []byte) Match {
	industry, keyword, _ := strings.Cut(string(raw), "\x00")
	return Match{Industry: model.Industry(industry), Keyword: keyword}
}

var defaultClassifier = NewClassifier()

// Industry classifies a domain with the default table and no cache
func Industry(domain string) model.Industry {
	return defaultClassifier.Classify(domain)
}
