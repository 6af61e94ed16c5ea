package loader

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codepal/secreport/internal/models"
)

// NPMAuditLoader reads npm audit results.
type NPMAuditLoader struct{}

// NewNPMAuditLoader creates a new npm audit loader.
func NewNPMAuditLoader() *NPMAuditLoader {
	return &NPMAuditLoader{}
}

// Tool returns the tool name.
func (l *NPMAuditLoader) Tool() string { return "npm audit" }

// Paths returns the fixed npm audit result location.
func (l *NPMAuditLoader) Paths() []string {
	return []string{filepath.Join("dependency-scan-results", "npm-audit-results.json")}
}

// Parse converts npm audit vulnerabilities into dependency findings. The
// vulnerabilities object is keyed by package name; keys are visited in
// sorted order so output is reproducible.
func (l *NPMAuditLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report npmAuditReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	names := make([]string, 0, len(report.Vulnerabilities))
	for name := range report.Vulnerabilities {
		names = append(names, name)
	}
	sort.Strings(names)

	var findings []models.Finding
	for _, name := range names {
		vuln := report.Vulnerabilities[name]
		f := models.NewFinding(l.Tool(), models.CategoryDependency,
			models.NormalizeSeverity(vuln.Severity), vuln.Title)
		f.Description = vuln.Description
		f.WithAttr("package", vuln.Name).
			WithAttr("version", vuln.Version).
			WithAttr("cve", strings.Join(vuln.CVEs, ", "))
		findings = append(findings, *f)
	}

	return findings, nil
}

// npmAuditReport is the subset of the npm audit JSON output the loader needs.
type npmAuditReport struct {
	Vulnerabilities map[string]npmVulnerability `json:"vulnerabilities"`
}

type npmVulnerability struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	CVEs        []string `json:"cves"`
}
