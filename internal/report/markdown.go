package report

import (
	"io"

	"github.com/nao1215/markdown"
)

// MarkdownWriter renders the report as a Markdown document with one
// heading and one field table per section.
type MarkdownWriter struct {
	out io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter targeting out.
func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	return &MarkdownWriter{out: out}
}

// Write renders the full report in Markdown format.
func (w *MarkdownWriter) Write(r *Report) (int, error) {
	md := markdown.NewMarkdown(w.out)

	md.H1("Hardware Probe Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Host", r.Hostname},
			{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	for _, s := range r.Sections {
		md.H2(s.Title)
		md.PlainText("")
		if !s.Available {
			md.PlainText(s.Notice)
			md.PlainText("")
			continue
		}

		rows := make([][]string, 0, len(s.Entries))
		for _, e := range s.Entries {
			rows = append(rows, []string{e.Label, e.Value})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Field", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}
