package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/codepal/secreport/internal/config"
	"github.com/codepal/secreport/internal/deriver"
	"github.com/codepal/secreport/internal/loader"
	"github.com/codepal/secreport/internal/models"
	"github.com/codepal/secreport/internal/report"
	"github.com/codepal/secreport/pkg/logger"
)

var generateOpts struct {
	configFile string
	resultsDir string
	outputDir  string
	project    string
	version    string
	formats    string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the consolidated security report",
	Example: `  secreport generate
  secreport generate --results scan-results --output reports
  secreport generate --config secreport.yaml --formats json,html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadGenerateConfig()
		if err != nil {
			return err
		}

		result, err := runGenerate(cfg, logger.GetGlobalLogger())
		if err != nil {
			return err
		}

		printSummary(result)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOpts.configFile, "config", "", "YAML configuration file")
	generateCmd.Flags().StringVar(&generateOpts.resultsDir, "results", "", "Scan results directory (default \"scan-results\")")
	generateCmd.Flags().StringVar(&generateOpts.outputDir, "output", "", "Output directory for report files (default \".\")")
	generateCmd.Flags().StringVar(&generateOpts.project, "project", "", "Project name for report metadata")
	generateCmd.Flags().StringVar(&generateOpts.version, "project-version", "", "Project version for report metadata")
	generateCmd.Flags().StringVar(&generateOpts.formats, "formats", "", "Comma-separated report formats: json,html,pdf")
	rootCmd.AddCommand(generateCmd)
}

// loadGenerateConfig merges the optional config file with command flags;
// flags win.
func loadGenerateConfig() (*config.Config, error) {
	cfg := config.Default()
	if generateOpts.configFile != "" {
		loaded, err := config.Load(generateOpts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if generateOpts.resultsDir != "" {
		cfg.ResultsDir = generateOpts.resultsDir
	}
	if generateOpts.outputDir != "" {
		cfg.OutputDir = generateOpts.outputDir
	}
	if generateOpts.project != "" {
		cfg.Project = generateOpts.project
	}
	if generateOpts.version != "" {
		cfg.Version = generateOpts.version
	}
	if generateOpts.formats != "" {
		cfg.Formats = strings.Split(generateOpts.formats, ",")
		for i := range cfg.Formats {
			cfg.Formats[i] = strings.TrimSpace(cfg.Formats[i])
		}
	}

	return cfg, cfg.Validate()
}

// generateResult carries the finished report and the files written, for
// the console summary.
type generateResult struct {
	report *models.Report
	files  []string
}

// runGenerate executes the whole pipeline: load every tool's results,
// derive recommendations and compliance, then render the requested
// formats. Per-file load errors are contained by the loaders; only
// aggregator contract violations and output write failures return an
// error here.
func runGenerate(cfg *config.Config, log logger.Logger) (*generateResult, error) {
	log.Info("Loading scan results", "dir", cfg.ResultsDir)

	r := models.NewReport(cfg.Project, cfg.Version, time.Now())

	if err := loader.Run(cfg.ResultsDir, loader.Defaults(), r, log); err != nil {
		return nil, fmt.Errorf("aggregating findings: %w", err)
	}

	deriver.DeriveRecommendations(r)
	deriver.DeriveCompliance(r, time.Now())

	log.Info("Generating reports", "formats", strings.Join(cfg.Formats, ","))

	result := &generateResult{report: r}

	htmlPath := filepath.Join(cfg.OutputDir, "security-report.html")
	needHTML := cfg.WantsFormat("html") || cfg.WantsFormat("pdf")

	if cfg.WantsFormat("json") {
		jsonFormat, err := report.GetFormat("json", log)
		if err != nil {
			return nil, err
		}
		jsonPath := filepath.Join(cfg.OutputDir, "security-report.json")
		if err := jsonFormat.Generate(r, jsonPath); err != nil {
			return nil, err
		}
		result.files = append(result.files, jsonPath)
	}

	if needHTML {
		htmlFormat, err := report.GetFormat("html", log)
		if err != nil {
			return nil, err
		}
		if err := htmlFormat.Generate(r, htmlPath); err != nil {
			return nil, err
		}
		if cfg.WantsFormat("html") {
			result.files = append(result.files, htmlPath)
		}
	}

	if cfg.WantsFormat("pdf") {
		// PDF is optional: a missing converter degrades gracefully.
		if converter, ok := report.FindConverter(log); ok {
			pdfPath := filepath.Join(cfg.OutputDir, "security-report.pdf")
			if err := converter.Convert(htmlPath, pdfPath); err != nil {
				log.Warn("PDF conversion failed, skipping PDF output", "error", err)
			} else {
				log.Info("Generated PDF report", "path", pdfPath, "converter", converter.Name())
				result.files = append(result.files, pdfPath)
			}
		} else {
			log.Info("No PDF converter available, skipping PDF output")
		}
	}

	log.Info("Security report generation complete",
		"findings", len(r.Findings),
		"critical", r.Summary.Critical,
		"high", r.Summary.High,
		"medium", r.Summary.Medium,
		"low", r.Summary.Low,
	)

	return result, nil
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	highStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	mediumStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	lowStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// printSummary prints the human-readable run summary: severity counts,
// overall compliance verdict and the list of generated files.
func printSummary(result *generateResult) {
	r := result.report

	fmt.Println(headerStyle.Render("Summary:"))
	fmt.Printf("  %s %d\n", criticalStyle.Render("Critical:"), r.Summary.Critical)
	fmt.Printf("  %s %d\n", highStyle.Render("High:"), r.Summary.High)
	fmt.Printf("  %s %d\n", mediumStyle.Render("Medium:"), r.Summary.Medium)
	fmt.Printf("  %s %d\n", lowStyle.Render("Low:"), r.Summary.Low)
	fmt.Printf("  Overall compliance: %s\n", r.Compliance.OverallStatus)

	fmt.Println(headerStyle.Render("Files generated:"))
	for _, file := range result.files {
		fmt.Printf("  - %s\n", fileStyle.Render(file))
	}
}
