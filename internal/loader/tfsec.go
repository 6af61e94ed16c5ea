package loader

import (
	"encoding/json"
	"path/filepath"

	"github.com/codepal/secreport/internal/models"
)

// TfsecLoader reads tfsec Terraform scan results.
type TfsecLoader struct{}

// NewTfsecLoader creates a new tfsec loader.
func NewTfsecLoader() *TfsecLoader {
	return &TfsecLoader{}
}

// Tool returns the tool name.
func (l *TfsecLoader) Tool() string { return "Tfsec" }

// Paths returns the fixed tfsec result location.
func (l *TfsecLoader) Paths() []string {
	return []string{filepath.Join("infrastructure-scan-results", "tfsec-results.json")}
}

// Parse converts tfsec results into infrastructure findings.
func (l *TfsecLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report tfsecReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, result := range report.Results {
		f := models.NewFinding(l.Tool(), models.CategoryInfrastructure,
			models.NormalizeSeverity(result.Severity), result.RuleID)
		f.Description = result.Description
		f.WithAttr("resource", result.Resource).
			WithAttr("file", result.Location.Filename)
		findings = append(findings, *f)
	}

	return findings, nil
}

// tfsecReport is the subset of the tfsec JSON output the loader needs.
type tfsecReport struct {
	Results []tfsecResult `json:"results"`
}

type tfsecResult struct {
	RuleID      string        `json:"rule_id"`
	Description string        `json:"description"`
	Severity    string        `json:"severity"`
	Resource    string        `json:"resource"`
	Location    tfsecLocation `json:"location"`
}

type tfsecLocation struct {
	Filename string `json:"filename"`
}
