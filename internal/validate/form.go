package validate

import (
	"strings"

	"github.com/ppiankov/leadscore/internal/model"
)

// Form field names
const (
	FieldCompany = "company"
	FieldDomain  = "domain"
	FieldEmail   = "email"
)

// FieldError is a single rejected form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormError lists every field that failed entry validation, in form order
type FormError struct {
	Fields []FieldError `json:"fields"`
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid lead: " + strings.Join(parts, "; ")
}

// Message returns the message for a field, or "" if the field passed
func (e *FormError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *FormError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Form checks a lead entry before it is scored. It returns nil when the
// input is acceptable, otherwise a *FormError.
func Form(in model.LeadInput) error {
	fe := &FormError{}

	if strings.TrimSpace(in.Company) == "" {
		fe.add(FieldCompany, "Company name is required")
	}

	if strings.TrimSpace(in.Domain) == "" {
		fe.add(FieldDomain, "Domain is required")
	} else if !strings.Contains(in.Domain, ".") {
		fe.add(FieldDomain, "Please enter a valid domain")
	}

	if strings.TrimSpace(in.Email) == "" {
		fe.add(FieldEmail, "Email is required")
	} else if !IsValidEmail(in.Email) {
		fe.add(FieldEmail, "Please enter a valid email address")
	}

	if len(fe.Fields) == 0 {
		return nil
	}
	return fe
}

// FillDomain derives the domain from the e-mail when none was entered.
// An existing domain is never overwritten.
func FillDomain(in model.LeadInput) model.LeadInput {
	if in.Domain != "" || in.Email == "" {
		return in
	}
	if d := ExtractDomain(in.Email); d != "" {
		in.Domain = d
	}
	return in
}
