package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepal/secreport/internal/models"
	"github.com/codepal/secreport/pkg/logger"
)

func newTestReport() *models.Report {
	return models.NewReport("test", "1.0.0", time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
}

// writeResult writes a tool result file under the results root, creating
// intermediate directories.
func writeResult(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaults_FixedOrder(t *testing.T) {
	var tools []string
	for _, l := range Defaults() {
		tools = append(tools, l.Tool())
	}

	assert.Equal(t, []string{
		"Trivy", "Snyk", "npm audit",
		"Checkov", "Tfsec", "Terrascan",
		"Polaris", "Kube-bench",
		"Bandit", "Semgrep", "ESLint Security",
		"license-checker",
	}, tools)
}

func TestRun_NoInputFiles(t *testing.T) {
	report := newTestReport()
	log := logger.NewMockLogger()

	err := Run(t.TempDir(), Defaults(), report, log)

	require.NoError(t, err)
	assert.Equal(t, models.Summary{}, report.Summary)
	assert.Empty(t, report.Findings)
	assert.False(t, log.HasMessageContaining("WARN", "Error"), "absent files are skipped silently")
}

func TestRun_LoadsFindings(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "trivy-results.sarif",
		`{"runs": [{"results": [{"ruleId": "CVE-1", "level": "critical", "message": {"text": "bad openssl"}}]}]}`)
	writeResult(t, root, filepath.Join("dependency-scan-results", "snyk-dependency-results.json"),
		`{"vulnerabilities": [{"title": "RCE", "severity": "critical", "packageName": "lodash", "version": "4.17.15", "identifiers": {}}]}`)

	report := newTestReport()
	err := Run(root, Defaults(), report, logger.NewMockLogger())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.Critical)
	require.Len(t, report.Findings, 2)
	// Loader order determines finding order: Trivy before Snyk.
	assert.Equal(t, "Trivy", report.Findings[0].Tool)
	assert.Equal(t, "Snyk", report.Findings[1].Tool)
}

func TestRun_MalformedFileDoesNotBlockOtherLoaders(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "trivy-results.sarif", `{{{ not json`)
	writeResult(t, root, filepath.Join("dependency-scan-results", "snyk-dependency-results.json"),
		`{"vulnerabilities": [{"title": "RCE", "severity": "high", "packageName": "lodash", "identifiers": {}}]}`)

	report := newTestReport()
	log := logger.NewMockLogger()
	err := Run(root, Defaults(), report, log)

	require.NoError(t, err, "a malformed file must not abort the run")
	assert.Equal(t, 1, report.Summary.High, "the Snyk findings are unaffected")
	assert.Equal(t, 0, report.Summary.Critical)
	assert.True(t, log.HasMessageContaining("WARN", "Error loading results"))
}

func TestRun_ConcreteDependencyScenario(t *testing.T) {
	// One dependency-audit file listing one package at severity critical
	// must yield exactly one critical finding carrying the package name.
	root := t.TempDir()
	writeResult(t, root, filepath.Join("dependency-scan-results", "npm-audit-results.json"),
		`{"vulnerabilities": {"minimist": {"name": "minimist", "title": "Prototype Pollution", "severity": "critical", "version": "1.2.5", "cves": ["CVE-2021-44906"]}}}`)

	report := newTestReport()
	require.NoError(t, Run(root, Defaults(), report, logger.NewMockLogger()))

	require.Len(t, report.CriticalFindings, 1)
	assert.Equal(t, "minimist", report.CriticalFindings[0].Attributes["package"])
	assert.Equal(t, 1, report.Summary.Critical)
}

func TestRun_ConcreteSARIFScenario(t *testing.T) {
	// One SARIF result at level "error": the mapping uppercases and
	// defaults unrecognized levels, so the finding lands in the MEDIUM
	// bucket with exactly one increment.
	root := t.TempDir()
	writeResult(t, root, "trivy-results.sarif",
		`{"runs": [{"results": [{"ruleId": "CVE-1", "level": "error", "message": {"text": "overflow"}}]}]}`)

	report := newTestReport()
	require.NoError(t, Run(root, Defaults(), report, logger.NewMockLogger()))

	assert.Equal(t, models.Summary{Medium: 1}, report.Summary)
	require.Len(t, report.MediumFindings, 1)
	assert.Equal(t, models.SeverityMedium, report.MediumFindings[0].Severity)
}

// contractViolationLoader emits a finding outside the severity contract.
type contractViolationLoader struct{}

func (l *contractViolationLoader) Tool() string    { return "broken" }
func (l *contractViolationLoader) Paths() []string { return []string{"broken.json"} }
func (l *contractViolationLoader) Parse(raw []byte) ([]models.Finding, error) {
	return []models.Finding{{
		Title:    "bad",
		Severity: models.Severity("ERROR"),
		Category: "Broken",
		Tool:     "broken",
	}}, nil
}

func TestRun_ContractViolationIsFatal(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, "broken.json", `{}`)

	report := newTestReport()
	err := Run(root, []Loader{&contractViolationLoader{}}, report, logger.NewMockLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid severity")
}

func TestRun_DeterministicAcrossRuns(t *testing.T) {
	root := t.TempDir()
	writeResult(t, root, filepath.Join("license-compliance-results", "license-checker-results.json"),
		`{"b-pkg": {}, "a-pkg": {"license": "UNKNOWN"}, "c-pkg": {"license": "MIT"}}`)
	writeResult(t, root, filepath.Join("kubernetes-scan-results", "polaris-results.json"),
		`{"results": [{"kind": "Deployment", "namespace": "default", "checks": [{"name": "runAsNonRoot", "result": "FAIL"}]}]}`)

	first := newTestReport()
	require.NoError(t, Run(root, Defaults(), first, logger.NewMockLogger()))

	second := newTestReport()
	require.NoError(t, Run(root, Defaults(), second, logger.NewMockLogger()))

	require.Equal(t, len(first.Findings), len(second.Findings))
	for i := range first.Findings {
		assert.Equal(t, first.Findings[i], second.Findings[i])
	}
}
