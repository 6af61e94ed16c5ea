package loader

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/codepal/secreport/internal/models"
)

// KubeBenchLoader reads kube-bench CIS benchmark results. Kube-bench has
// no severity concept, so every failing test is fixed at MEDIUM.
type KubeBenchLoader struct{}

// NewKubeBenchLoader creates a new kube-bench loader.
func NewKubeBenchLoader() *KubeBenchLoader {
	return &KubeBenchLoader{}
}

// Tool returns the tool name.
func (l *KubeBenchLoader) Tool() string { return "Kube-bench" }

// Paths returns the fixed kube-bench result location.
func (l *KubeBenchLoader) Paths() []string {
	return []string{filepath.Join("kubernetes-scan-results", "kube-bench-results.json")}
}

// Parse flattens kube-bench test groups into Kubernetes findings, one per
// failed test. PASS, WARN and INFO results never become findings.
func (l *KubeBenchLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report kubeBenchReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, test := range report.Tests {
		for _, result := range test.Results {
			if result.Status != "FAIL" {
				continue
			}
			f := models.NewFinding(l.Tool(), models.CategoryKubernetes,
				models.SeverityMedium, result.TestDesc)
			f.Description = strings.Join(result.TestInfo, "; ")
			f.WithAttr("test_number", result.TestNumber)
			findings = append(findings, *f)
		}
	}

	return findings, nil
}

// kubeBenchReport is the subset of the kube-bench JSON output the loader needs.
type kubeBenchReport struct {
	Tests []kubeBenchTest `json:"tests"`
}

type kubeBenchTest struct {
	Results []kubeBenchResult `json:"results"`
}

type kubeBenchResult struct {
	TestNumber string   `json:"test_number"`
	TestDesc   string   `json:"test_desc"`
	TestInfo   []string `json:"test_info"`
	Status     string   `json:"status"`
}
