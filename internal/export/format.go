package export

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/leadscore/internal/model"
	"github.com/ppiankov/leadscore/internal/score"
)

// Format selects the export encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts csv, json, yaml or yml in any case
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", eris.Errorf("export: unknown format %q (want csv, json or yaml)", s)
	}
}

// FileName returns the export file name for the format
func (f Format) FileName() string {
	base := strings.TrimSuffix(FileName, ".csv")
	switch f {
	case FormatJSON:
		return base + ".json"
	case FormatYAML:
		return base + ".yaml"
	default:
		return FileName
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return ContentType
	}
}

// Record is a lead as written by the structured exports
type Record struct {
	model.Lead `yaml:",inline"`
	Grade      model.Grade `json:"grade" yaml:"grade"`
}

func records(leads []model.Lead) []Record {
	out := make([]Record, len(leads))
	for i, l := range leads {
		out[i] = Record{Lead: l, Grade: score.GradeFor(l.ConfidenceScore)}
	}
	return out
}

// JSON renders leads as an indented JSON array
func JSON(leads []model.Lead) ([]byte, error) {
	data, err := json.MarshalIndent(records(leads), "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal json")
	}
	return data, nil
}

// YAML renders leads as a YAML sequence
func YAML(leads []model.Lead) ([]byte, error) {
	data, err := yaml.Marshal(records(leads))
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal yaml")
	}
	return data, nil
}

// Render encodes leads in the given format
func Render(leads []model.Lead, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return JSON(leads)
	case FormatYAML:
		return YAML(leads)
	default:
		return []byte(CSV(leads)), nil
	}
}

// ExportAs renders leads in the given format and hands them to the sink
func ExportAs(leads []model.Lead, f Format, sink Sink) error {
	payload, err := Render(leads, f)
	if err != nil {
		return err
	}
	return sink.Deliver(f.FileName(), f.ContentType(), payload)
}
