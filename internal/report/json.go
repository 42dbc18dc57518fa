package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter renders the report as indented JSON.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter targeting out.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// Write marshals the full report and writes it followed by a newline.
func (w *JSONWriter) Write(r *Report) (int, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal report: %w", err)
	}

	cw := &countingWriter{w: w.out}
	if _, err := cw.Write(data); err != nil {
		return cw.n, err
	}
	if _, err := cw.Write([]byte("\n")); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}
