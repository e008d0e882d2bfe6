package cli

import (
	"fmt"
	"os"

	"github.com/jsfix-ci/gherkin-detailer/internal/config"
	"github.com/jsfix-ci/gherkin-detailer/internal/output"
	"github.com/jsfix-ci/gherkin-detailer/internal/report"
)

// runReport generates the report for the given source folder and prints a
// run summary. An empty source falls back to the configured default.
// Errors are returned, not printed; main reports them once on stderr.
func runReport(source string) error {
	cfg := config.Get()
	if cfg == nil {
		return ConfigError("configuration not initialized")
	}
	if source == "" {
		source = cfg.Defaults.Source
	}

	f := output.Format(GetFormat())
	if !f.IsValid() {
		return fmt.Errorf("invalid format %q (valid: text, json, plain)", f)
	}

	r := report.New(report.Options{
		ReportFolder:    cfg.Report.Folder,
		TemplatesFolder: cfg.Templates.Folder,
	})

	if verbose {
		fmt.Fprintf(os.Stderr, "reading features from %s\n", source)
		fmt.Fprintf(os.Stderr, "writing report to %s\n", cfg.Report.Folder)
	}

	if err := r.CreateGherkinsReport(source); err != nil {
		return err
	}

	summary := r.Summary()
	return output.New(f).FormatSummary(os.Stdout, &summary)
}
