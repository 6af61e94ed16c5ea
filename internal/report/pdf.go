package report

import (
	"fmt"
	"os/exec"

	"github.com/codepal/secreport/pkg/logger"
)

// Converter is an HTML-to-PDF conversion backend resolved from the local
// environment.
type Converter struct {
	name    string
	command string
	args    func(htmlPath, pdfPath string) []string
}

// Name returns the converter binary name.
func (c *Converter) Name() string { return c.name }

// converters lists known backends in order of preference.
var converters = []Converter{
	{
		name:    "wkhtmltopdf",
		command: "wkhtmltopdf",
		args: func(htmlPath, pdfPath string) []string {
			return []string{
				"--enable-local-file-access",
				"--print-media-type",
				"--orientation", "Portrait",
				"--page-size", "Letter",
				"--margin-top", "20mm",
				"--margin-bottom", "20mm",
				"--margin-left", "15mm",
				"--margin-right", "15mm",
				htmlPath, pdfPath,
			}
		},
	},
	{
		name:    "weasyprint",
		command: "weasyprint",
		args: func(htmlPath, pdfPath string) []string {
			return []string{htmlPath, pdfPath}
		},
	},
	{
		name:    "chromium",
		command: "chromium",
		args: func(htmlPath, pdfPath string) []string {
			return []string{
				"--headless",
				"--disable-gpu",
				"--no-sandbox",
				"--print-to-pdf=" + pdfPath,
				htmlPath,
			}
		},
	},
	{
		name:    "google-chrome",
		command: "google-chrome",
		args: func(htmlPath, pdfPath string) []string {
			return []string{
				"--headless",
				"--disable-gpu",
				"--no-sandbox",
				"--print-to-pdf=" + pdfPath,
				htmlPath,
			}
		},
	},
}

// FindConverter checks once, at startup, whether a PDF rendering backend
// is installed and returns the first one found. When none is available the
// caller skips PDF output and the run still succeeds.
func FindConverter(log logger.Logger) (*Converter, bool) {
	for i := range converters {
		if _, err := exec.LookPath(converters[i].command); err != nil {
			log.Debug("PDF converter not found", "converter", converters[i].name)
			continue
		}
		return &converters[i], true
	}
	return nil, false
}

// Convert renders the already-produced HTML report into a PDF.
func (c *Converter) Convert(htmlPath, pdfPath string) error {
	cmd := exec.Command(c.command, c.args(htmlPath, pdfPath)...) // #nosec G204 - fixed converter table
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", c.name, err, string(output))
	}
	return nil
}
