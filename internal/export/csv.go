package export

import (
	"strconv"
	"strings"

	"github.com/ppiankov/leadscore/internal/model"
)

const (
	// FileName is the name of every CSV export
	FileName = "enhanced_leads_output.csv"

	// ContentType is the MIME type of the CSV payload
	ContentType = "text/csv;charset=utf-8"

	dateLayout = "2006-01-02"
)

// Header is the fixed column order of the CSV export
var Header = []string{"Company", "Domain", "Email", "Valid Email", "Industry", "Confidence Score", "Created At"}

// CSV renders leads as comma-separated text: the header row, then one row
// per lead in order, rows joined by "\n" with no trailing newline.
// Fields are written verbatim; embedded commas or quotes are not escaped.
func CSV(leads []model.Lead) string {
	rows := make([]string, 0, len(leads)+1)
	rows = append(rows, strings.Join(Header, ","))
	for _, l := range leads {
		rows = append(rows, strings.Join(Row(l), ","))
	}
	return strings.Join(rows, "\n")
}

// Row returns the CSV fields of a single lead in Header order
func Row(l model.Lead) []string {
	valid := "No"
	if l.IsEmailValid {
		valid = "Yes"
	}
	return []string{
		l.Company,
		l.Domain,
		l.Email,
		valid,
		l.Industry.String(),
		strconv.Itoa(l.ConfidenceScore),
		l.CreatedAt.UTC().Format(dateLayout),
	}
}
