package diag

import (
	"fmt"
	"io"

	"github.com/srevinsaju/menagerie/pkg/ui"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Diagnostic is a report about an operation. Warnings describe a request
// that was refused without changing any state; the caller decides whether
// and where to surface them.
type Diagnostic struct {
	Severity string
	Summary  string
	Detail   string
	Source   string
}

func NewDiagnostic(severity, summary, detail, source string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Summary:  summary,
		Detail:   detail,
		Source:   source,
	}
}

func NewWarning(source, summary, detail string) Diagnostic {
	return NewDiagnostic(SeverityWarning, summary, detail, source)
}

func NewError(source, message string) Diagnostic {
	return NewDiagnostic(SeverityError, message, "", source)
}

type Diagnostics []Diagnostic

func (d Diagnostics) Len() int {
	return len(d)
}

func (d Diagnostics) Extend(diags Diagnostics) Diagnostics {
	return append(d, diags...)
}

func (d Diagnostics) Append(diag Diagnostic) Diagnostics {
	return append(d, diag)
}

func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (d Diagnostics) HasWarnings() bool {
	for _, diag := range d {
		if diag.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

func (d Diagnostic) Error() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Summary)
	}
	return fmt.Sprintf("%s: %s, (%s)", d.Severity, d.Summary, d.Detail)
}

func (d Diagnostics) Error() string {
	count := len(d)
	switch {
	case count == 0:
		return "no diagnostics"
	case count == 1:
		return d[0].Error()
	default:
		return fmt.Sprintf("%s, and %d other diagnostic(s)", d[0].Error(), count-1)
	}
}

// Write prints the summary of every diagnostic on its own line.
func (d Diagnostics) Write(writer io.Writer) error {
	for _, diag := range d {
		summary := diag.Summary
		if diag.Severity == SeverityError {
			summary = ui.Red(summary)
		}
		if _, err := fmt.Fprintln(writer, summary); err != nil {
			return err
		}
	}
	return nil
}
