package deriver

import (
	"time"

	"github.com/codepal/secreport/internal/models"
)

// Verdict values for compliance standards.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Standard pairs a compliance standard name with a failure predicate over
// the aggregated findings. Predicates are pure and recomputed fresh each
// run. The specific predicates are placeholder policy, not an assessment
// of real regulatory compliance; the mechanism is the contract.
type Standard struct {
	Failed func(*models.Report) bool
	Name   string
}

// standards is the fixed table evaluated on every run.
var standards = []Standard{
	{Name: "OWASP Top 10", Failed: hasCritical},
	{Name: "CIS Benchmarks", Failed: hasKubernetesFindings},
	{Name: "SOC 2", Failed: hasCritical},
	{Name: "GDPR", Failed: hasDataSensitiveTitle},
}

func hasCritical(r *models.Report) bool {
	return r.Summary.Critical > 0
}

func hasKubernetesFindings(r *models.Report) bool {
	return r.HasCategoryContaining("Kubernetes")
}

func hasDataSensitiveTitle(r *models.Report) bool {
	return r.HasTitleContaining("data")
}

// DeriveCompliance populates the report's compliance status: one verdict
// per standard plus an overall verdict that fails on any critical finding.
// The timestamp is captured at derivation time.
func DeriveCompliance(r *models.Report, now time.Time) {
	status := models.ComplianceStatus{
		OverallStatus: StatusPass,
		Standards:     make(map[string]string, len(standards)),
		LastUpdated:   now,
	}

	if hasCritical(r) {
		status.OverallStatus = StatusFail
	}

	for _, standard := range standards {
		verdict := StatusPass
		if standard.Failed(r) {
			verdict = StatusFail
		}
		status.Standards[standard.Name] = verdict
	}

	r.Compliance = status
}
