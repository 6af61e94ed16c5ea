package loader

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/codepal/secreport/internal/models"
)

// ESLintLoader reads ESLint security plugin results. ESLint reports
// numeric severities: 2 maps to HIGH, 1 to MEDIUM, anything else to LOW.
type ESLintLoader struct{}

// NewESLintLoader creates a new ESLint loader.
func NewESLintLoader() *ESLintLoader {
	return &ESLintLoader{}
}

// Tool returns the tool name.
func (l *ESLintLoader) Tool() string { return "ESLint Security" }

// Paths returns the fixed ESLint result location.
func (l *ESLintLoader) Paths() []string {
	return []string{filepath.Join("sast-scan-results", "eslint-security-results.json")}
}

// Parse converts ESLint results into SAST findings.
func (l *ESLintLoader) Parse(raw []byte) ([]models.Finding, error) {
	var results []eslintResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, result := range results {
		f := models.NewFinding(l.Tool(), models.CategorySAST,
			models.SeverityFromCode(result.Severity), result.RuleID)
		f.Description = result.Message
		f.WithAttr("location", result.FilePath).
			WithAttr("line", strconv.Itoa(result.Line))
		findings = append(findings, *f)
	}

	return findings, nil
}

// eslintResult is the subset of the ESLint JSON output the loader needs.
type eslintResult struct {
	RuleID   string `json:"ruleId"`
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
	Severity int    `json:"severity"`
	Line     int    `json:"line"`
}
