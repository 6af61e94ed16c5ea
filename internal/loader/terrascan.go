package loader

import (
	"encoding/json"
	"path/filepath"

	"github.com/codepal/secreport/internal/models"
)

// TerrascanLoader reads Terrascan policy violation results.
type TerrascanLoader struct{}

// NewTerrascanLoader creates a new Terrascan loader.
func NewTerrascanLoader() *TerrascanLoader {
	return &TerrascanLoader{}
}

// Tool returns the tool name.
func (l *TerrascanLoader) Tool() string { return "Terrascan" }

// Paths returns the fixed Terrascan result location.
func (l *TerrascanLoader) Paths() []string {
	return []string{filepath.Join("infrastructure-scan-results", "terrascan-results.json")}
}

// Parse converts Terrascan violations into infrastructure findings.
func (l *TerrascanLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report terrascanReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, violation := range report.Results.Violations {
		f := models.NewFinding(l.Tool(), models.CategoryInfrastructure,
			models.NormalizeSeverity(violation.Severity), violation.RuleName)
		f.Description = violation.Description
		f.WithAttr("resource", violation.ResourceType).
			WithAttr("file", violation.File)
		findings = append(findings, *f)
	}

	return findings, nil
}

// terrascanReport is the subset of the Terrascan JSON output the loader needs.
type terrascanReport struct {
	Results terrascanResults `json:"results"`
}

type terrascanResults struct {
	Violations []terrascanViolation `json:"violations"`
}

type terrascanViolation struct {
	RuleName     string `json:"rule_name"`
	Description  string `json:"description"`
	Severity     string `json:"severity"`
	ResourceType string `json:"resource_type"`
	File         string `json:"file"`
}
