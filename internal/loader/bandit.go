package loader

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/codepal/secreport/internal/models"
)

// BanditLoader reads Bandit Python static-analysis results.
type BanditLoader struct{}

// NewBanditLoader creates a new Bandit loader.
func NewBanditLoader() *BanditLoader {
	return &BanditLoader{}
}

// Tool returns the tool name.
func (l *BanditLoader) Tool() string { return "Bandit" }

// Paths returns the fixed Bandit result location.
func (l *BanditLoader) Paths() []string {
	return []string{filepath.Join("compliance-audit-results", "bandit-results.json")}
}

// Parse converts Bandit issues into code security findings.
func (l *BanditLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report banditReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, result := range report.Results {
		f := models.NewFinding(l.Tool(), models.CategoryCode,
			models.NormalizeSeverity(result.IssueSeverity), result.IssueText)
		f.Description = result.MoreInfo
		f.WithAttr("file", result.Filename).
			WithAttr("line", strconv.Itoa(result.LineNumber))
		findings = append(findings, *f)
	}

	return findings, nil
}

// banditReport is the subset of the Bandit JSON output the loader needs.
type banditReport struct {
	Results []banditResult `json:"results"`
}

type banditResult struct {
	IssueText     string `json:"issue_text"`
	IssueSeverity string `json:"issue_severity"`
	MoreInfo      string `json:"more_info"`
	Filename      string `json:"filename"`
	LineNumber    int    `json:"line_number"`
}
