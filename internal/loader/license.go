package loader

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/codepal/secreport/internal/models"
)

// LicenseCheckerLoader reads license-checker results. Packages whose
// license is missing or reported as UNKNOWN become fixed-MEDIUM findings;
// packages with a recognized license are skipped.
type LicenseCheckerLoader struct{}

// NewLicenseCheckerLoader creates a new license-checker loader.
func NewLicenseCheckerLoader() *LicenseCheckerLoader {
	return &LicenseCheckerLoader{}
}

// Tool returns the tool name.
func (l *LicenseCheckerLoader) Tool() string { return "license-checker" }

// Paths returns the fixed license-checker result location.
func (l *LicenseCheckerLoader) Paths() []string {
	return []string{filepath.Join("license-compliance-results", "license-checker-results.json")}
}

// Parse converts unlicensed packages into license compliance findings.
// The report object is keyed by package name; keys are visited in sorted
// order so output is reproducible.
func (l *LicenseCheckerLoader) Parse(raw []byte) ([]models.Finding, error) {
	var packages map[string]licenseInfo
	if err := json.Unmarshal(raw, &packages); err != nil {
		return nil, NewParseError(l.Tool(), err)
	}

	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	var findings []models.Finding
	for _, name := range names {
		info := packages[name]
		if info.License != "" && info.License != "UNKNOWN" {
			continue
		}
		f := models.NewFinding(l.Tool(), models.CategoryLicense,
			models.SeverityMedium, fmt.Sprintf("Unknown license for %s", name))
		f.Description = fmt.Sprintf("Package %s has an unknown or missing license", name)
		f.WithAttr("package", name)
		findings = append(findings, *f)
	}

	return findings, nil
}

// licenseInfo is the subset of a license-checker package entry the loader needs.
type licenseInfo struct {
	License string `json:"license"`
}
