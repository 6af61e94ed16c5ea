// Package deriver computes report-level content from already-aggregated
// findings: remediation recommendations and a per-standard compliance
// verdict. Both passes are pure functions of the report state and run
// exactly once, after all loading is complete.
package deriver

import "github.com/codepal/secreport/internal/models"

// Rule texts, appended in a fixed order so identical input always yields
// an identical recommendation list.
var (
	criticalRecommendations = []string{
		"Immediately address all critical vulnerabilities before deployment",
		"Review and update all dependencies with critical vulnerabilities",
	}
	highRecommendations = []string{
		"Prioritize fixing high-severity vulnerabilities in the next sprint",
		"Implement additional security controls for high-risk areas",
	}
	infrastructureRecommendations = []string{
		"Review and update infrastructure security configurations",
		"Implement least-privilege access controls",
	}
	kubernetesRecommendations = []string{
		"Apply Kubernetes security best practices and CIS benchmarks",
		"Enable Pod Security Policies and Network Policies",
	}
	generalRecommendations = []string{
		"Implement automated security scanning in CI/CD pipeline",
		"Regular security training for development team",
		"Establish security review process for all code changes",
		"Monitor security advisories for all dependencies",
		"Implement security incident response procedures",
	}
)

// DeriveRecommendations populates the report's recommendation list from
// its summary and findings. Each rule is evaluated independently; the
// general recommendations are always appended last.
func DeriveRecommendations(r *models.Report) {
	recommendations := []string{}

	if r.Summary.Critical > 0 {
		recommendations = append(recommendations, criticalRecommendations...)
	}

	if r.Summary.High > 0 {
		recommendations = append(recommendations, highRecommendations...)
	}

	if r.HasCategoryContaining("Infrastructure") {
		recommendations = append(recommendations, infrastructureRecommendations...)
	}

	if r.HasCategoryContaining("Kubernetes") {
		recommendations = append(recommendations, kubernetesRecommendations...)
	}

	recommendations = append(recommendations, generalRecommendations...)

	r.Recommendations = recommendations
}
