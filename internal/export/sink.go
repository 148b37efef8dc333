package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/ppiankov/leadscore/internal/model"
)

// Sink delivers a rendered export payload somewhere
type Sink interface {
	Deliver(name, contentType string, payload []byte) error
}

// FileSink writes payloads into a directory under their export name
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink writing into dir ("" means the working directory)
func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

// Path returns the file a payload with the given name is written to
func (s *FileSink) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Deliver writes the payload, replacing any previous file of the same name
func (s *FileSink) Deliver(name, _ string, payload []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return eris.Wrap(err, "export: create output directory")
	}
	if err := os.WriteFile(s.Path(name), payload, 0644); err != nil {
		return eris.Wrapf(err, "export: write %s", name)
	}
	return nil
}

// WriterSink streams payloads to an io.Writer such as stdout
type WriterSink struct {
	W io.Writer
}

// Deliver writes the payload followed by a newline
func (s WriterSink) Deliver(_, _ string, payload []byte) error {
	if _, err := s.W.Write(payload); err != nil {
		return eris.Wrap(err, "export: write payload")
	}
	if _, err := io.WriteString(s.W, "\n"); err != nil {
		return eris.Wrap(err, "export: write payload")
	}
	return nil
}

// Export renders leads as CSV and hands the payload to the sink
func Export(leads []model.Lead, sink Sink) error {
	return sink.Deliver(FileName, ContentType, []byte(CSV(leads)))
}
