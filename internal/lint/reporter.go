package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format represents the output format for reporting diagnostics.
type Format int

const (
	// FormatText outputs one "file:line:col [rule] message" line per diagnostic.
	FormatText Format = iota
	// FormatJSON outputs a single JSON document.
	FormatJSON
)

// ParseFormat converts a format name ("text" or "json").
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported format: %q", name)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Reporter writes diagnostics in one output format.
type Reporter struct {
	writer io.Writer
	format Format
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report writes diagnostics, sorted by location. Text output writes
// nothing for an empty set; JSON output always writes a document.
func (r *Reporter) Report(diags []Diagnostic) error {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	SortDiagnostics(sorted)

	switch r.format {
	case FormatText:
		return r.reportText(sorted)
	case FormatJSON:
		return r.reportJSON(sorted)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportText(diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(r.writer, d.String()); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
	}
	return nil
}

func (r *Reporter) reportJSON(diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	output := struct {
		Diagnostics []Diagnostic `json:"diagnostics"`
		Summary     Summary      `json:"summary"`
	}{
		Diagnostics: diags,
		Summary:     Summarize(diags),
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// Summary counts diagnostics by severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts diags by severity.
func Summarize(diags []Diagnostic) Summary {
	var s Summary
	for _, d := range diags {
		if d.Severity == SeverityWarning {
			s.Warnings++
		} else {
			s.Errors++
		}
	}
	return s
}

// String returns "N errors, M warnings".
func (s Summary) String() string {
	return fmt.Sprintf("%d %s, %d %s", s.Errors, plural(s.Errors, "error"), s.Warnings, plural(s.Warnings, "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
