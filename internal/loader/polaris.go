package loader

import (
	"encoding/json"
	"path/filepath"

	"github.com/codepal/secreport/internal/models"
)

// PolarisLoader reads Polaris Kubernetes posture check results. Polaris
// has no severity concept, so every failing check is fixed at MEDIUM.
type PolarisLoader struct{}

// NewPolarisLoader creates a new Polaris loader.
func NewPolarisLoader() *PolarisLoader {
	return &PolarisLoader{}
}

// Tool returns the tool name.
func (l *PolarisLoader) Tool() string { return "Polaris" }

// Paths returns the fixed Polaris result location.
func (l *PolarisLoader) Paths() []string {
	return []string{filepath.Join("kubernetes-scan-results", "polaris-results.json")}
}

// Parse flattens Polaris per-resource checks into Kubernetes findings,
// one per failing check. Passing checks never become findings.
func (l *PolarisLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report polarisReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, result := range report.Results {
		for _, check := range result.Checks {
			if check.Result != "FAIL" {
				continue
			}
			f := models.NewFinding(l.Tool(), models.CategoryKubernetes,
				models.SeverityMedium, check.Name)
			f.Description = check.Message
			f.WithAttr("resource", result.Kind).
				WithAttr("namespace", result.Namespace)
			findings = append(findings, *f)
		}
	}

	return findings, nil
}

// polarisReport is the subset of the Polaris JSON output the loader needs.
type polarisReport struct {
	Results []polarisResult `json:"results"`
}

type polarisResult struct {
	Kind      string         `json:"kind"`
	Namespace string         `json:"namespace"`
	Checks    []polarisCheck `json:"checks"`
}

type polarisCheck struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Result  string `json:"result"`
}
