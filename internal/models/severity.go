package models

import "strings"

// Severity is the normalized severity of a finding. Every loader maps its
// tool's native vocabulary onto exactly one of the four values below;
// anything unrecognized becomes SeverityMedium.
type Severity string

// Severity levels as constants for type safety and consistency.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Severities returns all valid severity levels, highest first.
func Severities() []Severity {
	return []Severity{
		SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}

// IsValid checks if a severity level is one of the four normalized values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}

// Lower returns the severity in lowercase, as used for CSS classes in the
// HTML report.
func (s Severity) Lower() string {
	return strings.ToLower(string(s))
}

// NormalizeSeverity maps a tool-supplied severity string onto the
// four-value scale. The text is uppercased and matched exactly; anything
// else, including SARIF levels like "error" and "warning", defaults to
// SeverityMedium.
func NormalizeSeverity(raw string) Severity {
	s := Severity(strings.ToUpper(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s
	}
	return SeverityMedium
}

// SeverityFromCode maps a numeric linter severity code onto the four-value
// scale: the highest code maps to HIGH, the next to MEDIUM, everything
// else to LOW.
func SeverityFromCode(code int) Severity {
	switch code {
	case 2:
		return SeverityHigh
	case 1:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
