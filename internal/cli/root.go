// Package cli implements the gherkin-detailer command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsfix-ci/gherkin-detailer/internal/config"
	"github.com/jsfix-ci/gherkin-detailer/internal/output"
)

var (
	cfgPath string
	format  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gherkin-detailer [source-folder]",
	Short: "Generate a static HTML report from Gherkin feature files",
	Long: `gherkin-detailer turns a folder of Gherkin feature files into a
browsable static HTML report: features, scenarios, steps, tags, and data
tables, with generation metadata.

The source folder defaults to the current directory. The report is written
to report/gherkins unless configured otherwise.

Examples:
  gherkin-detailer                  # report on ./**/*.feature
  gherkin-detailer ./specs          # report on a specific folder
  gherkin-detailer -f json ./specs  # machine-readable run summary`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(cfgPath); err != nil {
			return WrapExitCodeError(ExitConfigError, "failed to load configuration", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		source := ""
		if len(args) > 0 {
			source = args[0]
		}
		return runReport(source)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Run summary format (text, json, plain)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// Execute runs the CLI application.
func Execute() error {
	return rootCmd.Execute()
}

// GetFormat resolves the run summary format: flag first, then config,
// then the text default.
func GetFormat() string {
	if format != "" {
		return format
	}
	if cfg := config.Get(); cfg != nil && cfg.Defaults.Format != "" {
		return cfg.Defaults.Format
	}
	return string(output.FormatText)
}
