package deriver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codepal/secreport/internal/models"
)

func TestDeriveCompliance(t *testing.T) {
	tests := []struct {
		name        string
		findings    []models.Finding
		wantOverall string
		wantFailed  []string
	}{
		{
			name:        "clean report passes everything",
			findings:    nil,
			wantOverall: StatusPass,
			wantFailed:  nil,
		},
		{
			name: "critical finding fails OWASP, SOC 2 and the overall verdict",
			findings: []models.Finding{
				finding(models.SeverityCritical, models.CategoryContainer, "CVE-1"),
			},
			wantOverall: StatusFail,
			wantFailed:  []string{"OWASP Top 10", "SOC 2"},
		},
		{
			name: "kubernetes finding fails CIS Benchmarks only",
			findings: []models.Finding{
				finding(models.SeverityMedium, models.CategoryKubernetes, "runAsNonRoot"),
			},
			wantOverall: StatusPass,
			wantFailed:  []string{"CIS Benchmarks"},
		},
		{
			name: "data-sensitive title fails GDPR, case-insensitively",
			findings: []models.Finding{
				finding(models.SeverityLow, models.CategoryCode, "Sensitive Data exposure in logs"),
			},
			wantOverall: StatusPass,
			wantFailed:  []string{"GDPR"},
		},
		{
			name: "high findings alone keep the overall verdict passing",
			findings: []models.Finding{
				finding(models.SeverityHigh, models.CategoryDependency, "CVE-2"),
			},
			wantOverall: StatusPass,
			wantFailed:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReport(t, tt.findings...)
			now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

			DeriveCompliance(r, now)

			assert.Equal(t, tt.wantOverall, r.Compliance.OverallStatus)
			assert.Equal(t, now, r.Compliance.LastUpdated)
			assert.Len(t, r.Compliance.Standards, len(standards),
				"every standard gets a verdict on every run")

			failed := map[string]bool{}
			for _, name := range tt.wantFailed {
				failed[name] = true
			}
			for name, verdict := range r.Compliance.Standards {
				want := StatusPass
				if failed[name] {
					want = StatusFail
				}
				assert.Equal(t, want, verdict, "standard %s", name)
			}
		})
	}
}

func TestDeriveCompliance_RecomputedFresh(t *testing.T) {
	r := newReport(t, finding(models.SeverityMedium, models.CategoryKubernetes, "hostNetwork"))

	DeriveCompliance(r, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, StatusFail, r.Compliance.Standards["CIS Benchmarks"])

	later := time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC)
	DeriveCompliance(r, later)

	assert.Equal(t, later, r.Compliance.LastUpdated)
	assert.Equal(t, StatusFail, r.Compliance.Standards["CIS Benchmarks"])
	assert.Equal(t, StatusPass, r.Compliance.Standards["GDPR"])
}
