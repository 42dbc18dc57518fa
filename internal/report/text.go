package report

import (
	"fmt"
	"io"
)

const (
	// OpeningBanner is always the first line of a text report.
	OpeningBanner = "=============== HARDWARE PROBE REPORT ==============="
	// ClosingBanner is always the last line of a text report.
	ClosingBanner = "=============== HARDWARE PROBE COMPLETE ==============="
)

// TextWriter renders the report as plain human-readable text with fixed
// banners and one header per section.
type TextWriter struct {
	out io.Writer
}

// NewTextWriter creates a TextWriter targeting out.
func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{out: out}
}

// Write renders the full report. Degraded sections print their notice in
// place of a body; the banners are emitted regardless.
func (t *TextWriter) Write(r *Report) (int, error) {
	cw := &countingWriter{w: t.out}

	fmt.Fprintln(cw, OpeningBanner)
	fmt.Fprintf(cw, "Host: %s, generated at %s\n", r.Hostname, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	for _, s := range r.Sections {
		fmt.Fprintf(cw, "\n--- %s ---\n", s.Title)
		if !s.Available {
			fmt.Fprintln(cw, s.Notice)
			continue
		}
		for _, e := range s.Entries {
			fmt.Fprintf(cw, "%s: %s\n", e.Label, e.Value)
		}
	}

	fmt.Fprintln(cw)
	fmt.Fprintln(cw, ClosingBanner)
	return cw.n, cw.err
}
