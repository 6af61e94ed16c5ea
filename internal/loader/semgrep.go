package loader

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/codepal/secreport/internal/models"
)

// SemgrepLoader reads Semgrep static-analysis results.
type SemgrepLoader struct{}

// NewSemgrepLoader creates a new Semgrep loader.
func NewSemgrepLoader() *SemgrepLoader {
	return &SemgrepLoader{}
}

// Tool returns the tool name.
func (l *SemgrepLoader) Tool() string { return "Semgrep" }

// Paths returns the fixed Semgrep result location.
func (l *SemgrepLoader) Paths() []string {
	return []string{filepath.Join("compliance-audit-results", "semgrep-results.json")}
}

// Parse converts Semgrep results into code security findings. Semgrep's
// native levels (ERROR/WARNING/INFO) fall outside the four-value scale and
// normalize to MEDIUM.
func (l *SemgrepLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report semgrepReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, result := range report.Results {
		f := models.NewFinding(l.Tool(), models.CategoryCode,
			models.NormalizeSeverity(result.Extra.Severity), result.CheckID)
		f.Description = result.Extra.Message
		f.WithAttr("file", result.Path).
			WithAttr("line", strconv.Itoa(result.Start.Line))
		findings = append(findings, *f)
	}

	return findings, nil
}

// semgrepReport is the subset of the Semgrep JSON output the loader needs.
type semgrepReport struct {
	Results []semgrepResult `json:"results"`
}

type semgrepResult struct {
	CheckID string          `json:"check_id"`
	Path    string          `json:"path"`
	Extra   semgrepExtra    `json:"extra"`
	Start   semgrepPosition `json:"start"`
}

type semgrepExtra struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type semgrepPosition struct {
	Line int `json:"line"`
}
