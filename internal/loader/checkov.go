package loader

import (
	"encoding/json"
	"path/filepath"

	"github.com/codepal/secreport/internal/models"
)

// CheckovLoader reads Checkov infrastructure-as-code scan results. Only
// failed checks become findings; passing and skipped checks are ignored.
type CheckovLoader struct{}

// NewCheckovLoader creates a new Checkov loader.
func NewCheckovLoader() *CheckovLoader {
	return &CheckovLoader{}
}

// Tool returns the tool name.
func (l *CheckovLoader) Tool() string { return "Checkov" }

// Paths returns the fixed Checkov result location.
func (l *CheckovLoader) Paths() []string {
	return []string{filepath.Join("infrastructure-scan-results", "checkov-results.json")}
}

// Parse converts Checkov failed checks into infrastructure findings.
// Checkov often reports a null severity; those default to MEDIUM.
func (l *CheckovLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report checkovReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, check := range report.Results.FailedChecks {
		f := models.NewFinding(l.Tool(), models.CategoryInfrastructure,
			models.NormalizeSeverity(check.Severity), check.CheckName)
		f.Description = check.CheckResult.EvaluatedIAMStatement
		f.WithAttr("resource", check.Resource).
			WithAttr("file", check.FilePath).
			WithAttr("check_id", check.CheckID)
		findings = append(findings, *f)
	}

	return findings, nil
}

// checkovReport is the subset of the Checkov JSON output the loader needs.
type checkovReport struct {
	Results checkovResults `json:"results"`
}

type checkovResults struct {
	FailedChecks []checkovFailedCheck `json:"failed_checks"`
}

type checkovFailedCheck struct {
	CheckID     string             `json:"check_id"`
	CheckName   string             `json:"check_name"`
	CheckResult checkovCheckResult `json:"check_result"`
	Severity    string             `json:"severity"`
	Resource    string             `json:"resource"`
	FilePath    string             `json:"file_path"`
}

type checkovCheckResult struct {
	EvaluatedIAMStatement string `json:"evaluated_iam_statement"`
}
