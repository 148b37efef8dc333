package model

// ScoreBreakdown is the transparent result of confidence scoring
type ScoreBreakdown struct {
	Score   int      `json:"score"` // 0-100
	Grade   Grade    `json:"grade"`
	Signals []Signal `json:"signals"`
}

// Signal records how many points a single factor contributed
type Signal struct {
	Factor      Factor `json:"factor"`
	Points      int    `json:"points"`
	MaxPoints   int    `json:"max_points"`
	Description string `json:"description"`
}

// Factor names one input of the confidence score
type Factor string

const (
	FactorEmailValid     Factor = "email_valid"     // syntactically valid e-mail
	FactorIndustryKnown  Factor = "industry_known"  // classified into a named industry
	FactorSpecificPrefix Factor = "specific_prefix" // local part is not a generic mailbox
	FactorTopDomain      Factor = "top_domain"      // domain ends with a well-known suffix
)

// Grade buckets a confidence score for display
type Grade string

const (
	GradeHigh   Grade = "high"   // >= 80
	GradeMedium Grade = "medium" // >= 60
	GradeLow    Grade = "low"    // >= 40
	GradePoor   Grade = "poor"
)

// Grades lists every grade from best to worst
func Grades() []Grade {
	return []Grade{GradeHigh, GradeMedium, GradeLow, GradePoor}
}
