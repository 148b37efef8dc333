package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/leadscore/internal/model"
	"github.com/ppiankov/leadscore/internal/score"
	"github.com/ppiankov/leadscore/internal/stats"
	"github.com/ppiankov/leadscore/internal/validate"
)

const rule = "═══════════════════════════════════════════════════════════"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// renderLeads prints leads as an aligned table, most recent last
func renderLeads(w io.Writer, leads []model.Lead) error {
	if len(leads) == 0 {
		_, err := fmt.Fprintln(w, "No leads yet. Add your first lead above!")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCOMPANY\tDOMAIN\tEMAIL\tVALID\tINDUSTRY\tSCORE\tGRADE")
	for _, l := range leads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(l.ID), l.Company, l.Domain, l.Email, yesNo(l.IsEmailValid),
			l.Industry, l.ConfidenceScore, score.GradeFor(l.ConfidenceScore))
	}
	return tw.Flush()
}

// renderBreakdown prints a lead score with one line per signal
func renderBreakdown(w io.Writer, lead model.Lead, b model.ScoreBreakdown) error {
	fmt.Fprintf(w, "%s (%s)\n", lead.Company, lead.Domain)
	fmt.Fprintf(w, "  Email:     %s (%s)\n", lead.Email, validLabel(lead.IsEmailValid))
	fmt.Fprintf(w, "  Industry:  %s\n", lead.Industry)
	fmt.Fprintf(w, "  Score:     %d/%d (%s)\n\n", b.Score, score.MaxScore, b.Grade)

	tw := newTable(w)
	for _, s := range b.Signals {
		mark := "✗"
		if s.Points > 0 {
			mark = "✓"
		}
		fmt.Fprintf(tw, "  %s\t+%d/%d\t%s\n", mark, s.Points, s.MaxPoints, s.Description)
	}
	return tw.Flush()
}

// renderStats prints the summary tiles and breakdowns
func renderStats(w io.Writer, s stats.Summary) error {
	fmt.Fprintf(w, "  Total Leads:    %d\n", s.Total)
	fmt.Fprintf(w, "  Valid Emails:   %d\n", s.ValidEmails)
	fmt.Fprintf(w, "  Avg Score:      %d\n", s.AverageScore)
	fmt.Fprintf(w, "  High Quality:   %d\n", s.HighQuality)

	if s.Total == 0 {
		return nil
	}

	tw := newTable(w)
	writeCounts(tw, "By industry", s.ByIndustry)
	writeCounts(tw, "By grade", s.ByGrade)
	writeCounts(tw, "By suffix", s.BySuffix)
	return tw.Flush()
}

func writeCounts(w io.Writer, title string, counts []stats.Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n  %s:\n", title)
	for _, c := range counts {
		fmt.Fprintf(w, "    %s\t%d\n", c.Label, c.Count)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func validLabel(b bool) string {
	if b {
		return "valid"
	}
	return "invalid"
}

func banner(w io.Writer, title string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// describeError shows form rejections as their field messages
func describeError(err error) string {
	var fe *validate.FormError
	if !errors.As(err, &fe) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fe.Fields))
	for _, f := range fe.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}
