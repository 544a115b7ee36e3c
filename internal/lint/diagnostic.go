package lint

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	// SeverityError fails the lint run.
	SeverityError Severity = iota
	// SeverityWarning is reported but does not fail the run.
	SeverityWarning
)

// ParseSeverity converts a config value ("error" or "warning").
func ParseSeverity(s string) Severity {
	if strings.EqualFold(s, "warning") {
		return SeverityWarning
	}
	return SeverityError
}

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a single violation anchored at a node's source span.
type Diagnostic struct {
	File      string   `json:"file"`
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	EndLine   int      `json:"endLine"`
	EndColumn int      `json:"endColumn"`
	Rule      string   `json:"rule"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
}

// String returns the diagnostic as "file:line:col [rule] message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d [%s] %s", d.File, d.Line, d.Column, d.Rule, d.Message)
}

// SortDiagnostics orders diagnostics by file, position and rule name.
func SortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
			cmp.Compare(a.Rule, b.Rule),
		)
	})
}
