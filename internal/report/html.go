package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/codepal/secreport/internal/models"
	"github.com/codepal/secreport/pkg/logger"
	"github.com/codepal/secreport/pkg/pathutil"
)

//go:embed templates/*
var templateFS embed.FS

func init() {
	RegisterFormat("html", func(log logger.Logger) (Format, error) {
		return NewHTMLFormat(log)
	})
}

// htmlFormat renders the report into the fixed document template: summary
// cards per severity, compliance table, per-finding cards and the
// recommendation list. The template reads only the fixed finding fields,
// so absent optional attributes never break rendering.
type htmlFormat struct {
	logger logger.Logger
	tmpl   *template.Template
}

// NewHTMLFormat parses the embedded templates and returns the HTML format.
func NewHTMLFormat(log logger.Logger) (Format, error) {
	tmpl, err := template.New("report").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &htmlFormat{logger: log, tmpl: tmpl}, nil
}

// Generate writes the HTML report, overwriting any prior file. A write
// failure here is fatal to the run.
func (f *htmlFormat) Generate(r *models.Report, outputPath string) error {
	validOutputPath, err := pathutil.ValidateOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	file, err := os.Create(validOutputPath) // #nosec G304 - path is validated above
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := f.tmpl.ExecuteTemplate(file, "report.html", r); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	f.logger.Info("Generated HTML report", "path", outputPath)
	return nil
}

// Name returns the format identifier.
func (f *htmlFormat) Name() string { return "html" }

// Description returns a human-readable description.
func (f *htmlFormat) Description() string {
	return "Rendered HTML document with summary cards and finding details"
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"severityClass": func(s models.Severity) string {
			return s.Lower()
		},
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"title": cases.Title(language.English).String,
	}
}
