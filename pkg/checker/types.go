package checker

import (
	"time"

	"github.com/groland11/openvpn-check-config/pkg/directive"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityOK marks a line that passed all checks.
	SeverityOK Severity = iota

	// SeverityError marks a line that failed a check.
	SeverityError
)

// String returns the severity name as printed in reports.
func (s Severity) String() string {
	if s == SeverityError {
		return "ERROR"
	}
	return "OK"
}

// Diagnostic is the check result for a single configuration line.
type Diagnostic struct {
	// Line is the 1-based line number in the source file.
	Line int

	// Keyword is the directive found at the start of the line.
	Keyword string

	// Severity is OK or ERROR.
	Severity Severity

	// Message describes the violation. Empty for OK lines.
	Message string

	// Raw is the checked line text with comments stripped.
	Raw string
}

// Stats summarizes a file check.
type Stats struct {
	// Lines is the number of directive lines checked
	// (blank and comment lines are not counted).
	Lines int

	// Errors is the number of lines that failed a check.
	Errors int

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Report is the complete result of checking one configuration file.
type Report struct {
	// File is the path of the checked configuration file.
	File string

	// Valid is true when no line produced an error.
	Valid bool

	// Diagnostics lists the per-line results in file order.
	Diagnostics []Diagnostic

	Stats Stats
}

// Config holds checker configuration options.
type Config struct {
	// Mode restricts directives to one side of the VPN.
	// ScopeAny accepts both client and server directives.
	Mode directive.Scope

	// FailFast stops checking a file at its first error.
	FailFast bool
}
