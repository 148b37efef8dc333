package model

import "time"

// Lead is a scored business contact. It is created once and never mutated.
type Lead struct {
	ID              string    `json:"id" yaml:"id"`
	Company         string    `json:"company" yaml:"company"`
	Domain          string    `json:"domain" yaml:"domain"`
	Email           string    `json:"email" yaml:"email"`
	IsEmailValid    bool      `json:"is_email_valid" yaml:"is_email_valid"`
	Industry        Industry  `json:"industry" yaml:"industry"`
	ConfidenceScore int       `json:"confidence_score" yaml:"confidence_score"` // 0-100
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// LeadInput holds the raw strings entered for a new lead
type LeadInput struct {
	Company string `json:"company"`
	Domain  string `json:"domain"`
	Email   string `json:"email"`
}

// Industry is one of a closed set of category labels
type Industry string

const (
	IndustryAITechnology   Industry = "AI & Technology"
	IndustryPrivateEquity  Industry = "Private Equity"
	IndustryLeadGeneration Industry = "Lead Generation"
	IndustryHealthcare     Industry = "Healthcare"
	IndustryFinance        Industry = "Finance"
	IndustryEcommerce      Industry = "E-commerce"
	IndustryEducation      Industry = "Education"
	IndustryRealEstate     Industry = "Real Estate"
	IndustryUnknown        Industry = "Unknown"
)

// Industries lists every label in classification order, Unknown last
func Industries() []Industry {
	return []Industry{
		IndustryAITechnology,
		IndustryPrivateEquity,
		IndustryLeadGeneration,
		IndustryHealthcare,
		IndustryFinance,
		IndustryEcommerce,
		IndustryEducation,
		IndustryRealEstate,
		IndustryUnknown,
	}
}

func (i Industry) String() string {
	return string(i)
}

// Known reports whether the industry is one of the named categories
func (i Industry) Known() bool {
	return i != IndustryUnknown && i != ""
}
