package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/codepal/secreport/internal/models"
	"github.com/codepal/secreport/pkg/logger"
	"github.com/codepal/secreport/pkg/pathutil"
)

func init() {
	RegisterFormat("json", func(log logger.Logger) (Format, error) {
		return &jsonFormat{logger: log}, nil
	})
}

// jsonFormat writes the full report model as indented UTF-8 JSON. The dump
// is lossless, including the open attribute bags on each finding, and is
// byte-stable across runs with identical input aside from the timestamp
// fields.
type jsonFormat struct {
	logger logger.Logger
}

// Generate writes the JSON report, overwriting any prior file. A write
// failure here is fatal to the run.
func (f *jsonFormat) Generate(r *models.Report, outputPath string) error {
	validOutputPath, err := pathutil.ValidateOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(validOutputPath, data, 0o600); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}

	f.logger.Info("Generated JSON report", "path", outputPath)
	return nil
}

// Name returns the format identifier.
func (f *jsonFormat) Name() string { return "json" }

// Description returns a human-readable description.
func (f *jsonFormat) Description() string {
	return "Full report model as indented JSON"
}
