package loader

import (
	"encoding/json"

	"github.com/codepal/secreport/internal/models"
)

// TrivyLoader reads Trivy container scan results in SARIF format.
type TrivyLoader struct{}

// NewTrivyLoader creates a new Trivy loader.
func NewTrivyLoader() *TrivyLoader {
	return &TrivyLoader{}
}

// Tool returns the tool name.
func (l *TrivyLoader) Tool() string { return "Trivy" }

// Paths returns the fixed SARIF result location.
func (l *TrivyLoader) Paths() []string {
	return []string{"trivy-results.sarif"}
}

// Parse converts SARIF runs into container vulnerability findings. The
// SARIF level is uppercased and normalized; levels outside the four-value
// scale ("ERROR", "WARNING", "NOTE") default to MEDIUM.
func (l *TrivyLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report sarifReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, run := range report.Runs {
		for _, result := range run.Results {
			f := models.NewFinding(l.Tool(), models.CategoryContainer,
				models.NormalizeSeverity(result.Level), result.Message.Text)
			f.Description = result.Message.Text
			f.WithAttr("location", result.location()).
				WithAttr("rule_id", result.RuleID)
			findings = append(findings, *f)
		}
	}

	return findings, nil
}

// sarifReport is the subset of the SARIF schema the loader needs.
type sarifReport struct {
	Runs []sarifRun `json:"runs"`
}

type sarifRun struct {
	Results []sarifResult `json:"results"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation struct {
		ArtifactLocation struct {
			URI string `json:"uri"`
		} `json:"artifactLocation"`
	} `json:"physicalLocation"`
}

// location returns the first physical location URI, if any.
func (r sarifResult) location() string {
	if len(r.Locations) == 0 {
		return ""
	}
	return r.Locations[0].PhysicalLocation.ArtifactLocation.URI
}
