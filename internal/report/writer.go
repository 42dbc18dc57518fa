package report

import (
	"fmt"
	"io"
)

// Writer outputs a report in one concrete format. Implementations return
// the number of bytes written so callers can report progress.
type Writer interface {
	Write(r *Report) (int, error)
}

// NewWriter returns the writer for the requested format. Supported formats
// are "text", "markdown", and "json".
func NewWriter(format string, out io.Writer) (Writer, error) {
	switch format {
	case "text", "":
		return NewTextWriter(out), nil
	case "markdown", "md":
		return NewMarkdownWriter(out), nil
	case "json":
		return NewJSONWriter(out), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// countingWriter wraps an io.Writer, tracking the number of bytes written
// and the first error. Once a write fails, later writes are dropped so the
// failure cannot be masked by a subsequent successful write.
type countingWriter struct {
	w   io.Writer
	n   int
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += n
	if err != nil {
		c.err = err
	}
	return n, err
}
