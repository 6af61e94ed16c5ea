package loader

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/codepal/secreport/internal/models"
)

// SnykLoader reads Snyk container and dependency scan results. Both files
// share the same vulnerability schema and both produce dependency
// findings.
type SnykLoader struct{}

// NewSnykLoader creates a new Snyk loader.
func NewSnykLoader() *SnykLoader {
	return &SnykLoader{}
}

// Tool returns the tool name.
func (l *SnykLoader) Tool() string { return "Snyk" }

// Paths returns the fixed container and dependency result locations.
func (l *SnykLoader) Paths() []string {
	return []string{
		filepath.Join("snyk-container-results", "snyk-container-results.json"),
		filepath.Join("dependency-scan-results", "snyk-dependency-results.json"),
	}
}

// Parse converts Snyk vulnerabilities into dependency findings.
func (l *SnykLoader) Parse(raw []byte) ([]models.Finding, error) {
	var report snykReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	var findings []models.Finding
	for _, vuln := range report.Vulnerabilities {
		f := models.NewFinding(l.Tool(), models.CategoryDependency,
			models.NormalizeSeverity(vuln.Severity), vuln.Title)
		f.Description = vuln.Description
		f.WithAttr("package", vuln.PackageName).
			WithAttr("version", vuln.Version).
			WithAttr("cve", strings.Join(vuln.Identifiers.CVE, ", "))
		findings = append(findings, *f)
	}

	return findings, nil
}

// snykReport is the subset of the Snyk JSON output the loader needs.
type snykReport struct {
	Vulnerabilities []snykVulnerability `json:"vulnerabilities"`
}

type snykVulnerability struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Severity    string          `json:"severity"`
	PackageName string          `json:"packageName"`
	Version     string          `json:"version"`
	Identifiers snykIdentifiers `json:"identifiers"`
}

type snykIdentifiers struct {
	CVE []string `json:"CVE"`
}
