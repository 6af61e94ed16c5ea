package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Summary holds the per-severity finding counts. Counts start at zero and
// only ever increase as findings are added.
type Summary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total returns the total number of counted findings.
func (s Summary) Total() int {
	return s.Critical + s.High + s.Medium + s.Low
}

// ScanMetadata identifies one report-generation run. Fixed at construction.
type ScanMetadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Project     string    `json:"project"`
	Version     string    `json:"version"`
	ReportID    string    `json:"report_id"`
}

// ComplianceStatus is the verdict produced by the compliance deriver:
// one PASS/FAIL per named standard plus an overall verdict.
type ComplianceStatus struct {
	LastUpdated   time.Time         `json:"last_updated"`
	OverallStatus string            `json:"overall_status"`
	Standards     map[string]string `json:"standards"`
}

// Report is the single mutable aggregate for one run. It is constructed
// once, mutated append-only by Add during loading, mutated exactly once
// more by each deriver, and read-only during rendering.
type Report struct {
	Summary          Summary          `json:"summary"`
	Findings         []Finding        `json:"findings"`
	CriticalFindings []Finding        `json:"critical_findings"`
	HighFindings     []Finding        `json:"high_findings"`
	MediumFindings   []Finding        `json:"medium_findings"`
	LowFindings      []Finding        `json:"low_findings"`
	Recommendations  []string         `json:"recommendations"`
	Compliance       ComplianceStatus `json:"compliance_status"`
	Metadata         ScanMetadata     `json:"scan_metadata"`
}

// NewReport constructs an empty report with fixed metadata. All slices are
// allocated so empty reports serialize as [] rather than null.
func NewReport(project, version string, generatedAt time.Time) *Report {
	return &Report{
		Metadata: ScanMetadata{
			GeneratedAt: generatedAt,
			Project:     project,
			Version:     version,
			ReportID:    uuid.NewString(),
		},
		Findings:         []Finding{},
		CriticalFindings: []Finding{},
		HighFindings:     []Finding{},
		MediumFindings:   []Finding{},
		LowFindings:      []Finding{},
		Recommendations:  []string{},
	}
}

// Add appends a finding, increments the matching summary counter and
// appends to the matching per-severity list. Loaders guarantee the
// four-value severity scale; a severity outside it is a contract violation
// and fails the run rather than silently miscounting.
func (r *Report) Add(f Finding) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("rejecting finding: %w", err)
	}

	r.Findings = append(r.Findings, f)

	switch f.Severity {
	case SeverityCritical:
		r.Summary.Critical++
		r.CriticalFindings = append(r.CriticalFindings, f)
	case SeverityHigh:
		r.Summary.High++
		r.HighFindings = append(r.HighFindings, f)
	case SeverityMedium:
		r.Summary.Medium++
		r.MediumFindings = append(r.MediumFindings, f)
	case SeverityLow:
		r.Summary.Low++
		r.LowFindings = append(r.LowFindings, f)
	default:
		return fmt.Errorf("unknown severity %q reached the aggregator", f.Severity)
	}

	return nil
}

// FindingsBySeverity returns the filtered list for a severity level.
func (r *Report) FindingsBySeverity(s Severity) []Finding {
	switch s {
	case SeverityCritical:
		return r.CriticalFindings
	case SeverityHigh:
		return r.HighFindings
	case SeverityMedium:
		return r.MediumFindings
	case SeverityLow:
		return r.LowFindings
	default:
		return nil
	}
}

// HasCategoryContaining reports whether any finding's category contains
// the given substring. Used by the derivers for their category triggers.
func (r *Report) HasCategoryContaining(substr string) bool {
	for i := range r.Findings {
		if strings.Contains(r.Findings[i].Category, substr) {
			return true
		}
	}
	return false
}

// HasTitleContaining reports whether any finding's title contains the
// given substring, case-insensitively.
func (r *Report) HasTitleContaining(substr string) bool {
	substr = strings.ToLower(substr)
	for i := range r.Findings {
		if strings.Contains(strings.ToLower(r.Findings[i].Title), substr) {
			return true
		}
	}
	return false
}
