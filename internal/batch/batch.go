package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ppiankov/leadscore/internal/model"
)

// Entry is one lead input read from a file, with its source line.
// Err is set when the row could not be mapped to lead fields.
type Entry struct {
	Line  int
	Input model.LeadInput
	Err   error
}

// Adder accepts lead inputs, typically a *session.Session
type Adder interface {
	Add(ctx context.Context, in model.LeadInput) (model.Lead, error)
}

// Rejection is an entry that the adder refused
type Rejection struct {
	Entry Entry
	Err   error
}

// Result is the outcome of processing a batch
type Result struct {
	Added    []model.Lead
	Rejected []Rejection
}

// ReadFile reads lead inputs from a CSV file
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "batch: open file")
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read parses lead inputs. A first row naming Company, Domain and Email
// columns (any case, any order) is treated as a header; otherwise rows are
// read positionally as company,domain,email. Blank lines and lines starting
// with '#' are skipped. A positional row with more than three fields is kept
// with Err set, since an unquoted comma would shift its columns.
func Read(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	cols := columns{company: 0, domain: 1, email: 2}
	var entries []Entry
	first := true
	positional := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "batch: read csv")
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if hdr, ok := headerColumns(record); ok {
				cols = hdr
				positional = false
				continue
			}
		}

		if isBlank(record) {
			continue
		}

		if positional && len(record) > 3 {
			entries = append(entries, Entry{
				Line: line,
				Err:  eris.Errorf("expected 3 fields (company,domain,email), got %d; quote values that contain commas", len(record)),
			})
			continue
		}

		entries = append(entries, Entry{
			Line: line,
			Input: model.LeadInput{
				Company: field(record, cols.company),
				Domain:  field(record, cols.domain),
				Email:   field(record, cols.email),
			},
		})
	}

	return entries, nil
}

// Process adds every entry in order, collecting rejections instead of stopping.
// It stops early only when ctx is done.
func Process(ctx context.Context, adder Adder, entries []Entry) (*Result, error) {
	res := &Result{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, eris.Wrap(err, "batch: cancelled")
		}
		if e.Err != nil {
			res.Rejected = append(res.Rejected, Rejection{Entry: e, Err: e.Err})
			continue
		}
		lead, err := adder.Add(ctx, e.Input)
		if err != nil {
			res.Rejected = append(res.Rejected, Rejection{Entry: e, Err: err})
			continue
		}
		res.Added = append(res.Added, lead)
	}
	return res, nil
}

type columns struct {
	company, domain, email int
}

func headerColumns(record []string) (columns, bool) {
	cols := columns{company: -1, domain: -1, email: -1}
	for i, name := range record {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "company":
			cols.company = i
		case "domain":
			cols.domain = i
		case "email":
			cols.email = i
		}
	}
	if cols.company < 0 || cols.domain < 0 || cols.email < 0 {
		return columns{}, false
	}
	return cols, true
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
