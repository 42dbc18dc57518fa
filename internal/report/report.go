package report

import "time"

// NoticeUnavailable is printed in place of a section body when the
// underlying hardware class or tool cannot be queried on this machine.
const NoticeUnavailable = "information not available"

// Entry is a single label/value line within a section.
type Entry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is one titled block of the hardware report.
type Section struct {
	Title     string  `json:"title"`
	Available bool    `json:"available"`
	Notice    string  `json:"notice,omitempty"`
	Entries   []Entry `json:"entries,omitempty"`
}

// NewSection creates an available, empty section.
func NewSection(title string) Section {
	return Section{Title: title, Available: true}
}

// Unavailable creates a section carrying the fixed unavailability notice.
func Unavailable(title string) Section {
	return Section{Title: title, Notice: NoticeUnavailable}
}

// Add appends a label/value entry to the section.
func (s *Section) Add(label, value string) {
	s.Entries = append(s.Entries, Entry{Label: label, Value: value})
}

// Report is the ordered collection of sections for one probe run.
type Report struct {
	Hostname    string    `json:"hostname"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
}

// Lookup returns the section with the given title, if present.
func (r *Report) Lookup(title string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}
