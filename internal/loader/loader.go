// Package loader converts native scan-tool output files into normalized
// findings. Each loader owns one tool's schema and severity mapping; the
// Run function walks the fixed loader order so the report's finding order
// is reproducible across runs.
package loader

import (
	"os"

	"github.com/codepal/secreport/internal/models"
	"github.com/codepal/secreport/pkg/logger"
	"github.com/codepal/secreport/pkg/pathutil"
)

// Loader converts one tool's native output into normalized findings.
//
// Paths returns the fixed result-file locations relative to the
// scan-results root; which loader handles a file is decided by which fixed
// path was opened, never by inspecting file names. Parse must flatten the
// tool's nested result structure into one finding per leaf issue, skipping
// entries whose outcome is not a failure or violation.
type Loader interface {
	// Tool returns the originating tool name, as stamped on findings.
	Tool() string
	// Paths returns candidate result files relative to the results root.
	Paths() []string
	// Parse converts raw file contents into normalized findings, in the
	// tool's native result order.
	Parse(raw []byte) ([]models.Finding, error)
}

// Defaults returns all loaders in the fixed invocation order. The order is
// part of the output contract: findings are listed and rendered in load
// order.
func Defaults() []Loader {
	return []Loader{
		NewTrivyLoader(),
		NewSnykLoader(),
		NewNPMAuditLoader(),
		NewCheckovLoader(),
		NewTfsecLoader(),
		NewTerrascanLoader(),
		NewPolarisLoader(),
		NewKubeBenchLoader(),
		NewBanditLoader(),
		NewSemgrepLoader(),
		NewESLintLoader(),
		NewLicenseCheckerLoader(),
	}
}

// Run executes every loader against the results root and forwards findings
// to the report. Absent files are skipped silently. A file that fails to
// parse is logged with its tool name and contributes zero findings; it
// never blocks other loaders. Only an aggregator contract violation aborts
// the run.
func Run(root string, loaders []Loader, report *models.Report, log logger.Logger) error {
	for _, l := range loaders {
		toolLog := log.With("tool", l.Tool())

		for _, rel := range l.Paths() {
			path, err := pathutil.JoinAndValidate(root, rel)
			if err != nil {
				toolLog.Warn("Skipping invalid result path", "path", rel, "error", err)
				continue
			}

			raw, err := os.ReadFile(path) // #nosec G304 - path is validated above
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				toolLog.Warn("Error reading results", "path", rel, "error", err)
				continue
			}

			findings, err := l.Parse(raw)
			if err != nil {
				toolLog.Warn("Error loading results", "path", rel, "error", err)
				continue
			}

			for i := range findings {
				if err := report.Add(findings[i]); err != nil {
					return err
				}
			}

			toolLog.Debug("Loaded results", "path", rel, "findings", len(findings))
		}
	}

	return nil
}
