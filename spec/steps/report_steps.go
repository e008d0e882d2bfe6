// Package steps provides step definitions for the gherkin-detailer CLI specs.
package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/jsfix-ci/gherkin-detailer/spec/support"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	testEnvKey   contextKey = "testEnv"
	cliRunnerKey contextKey = "cliRunner"
)

// getTestEnv retrieves the TestEnv from context.
func getTestEnv(ctx context.Context) *support.TestEnv {
	if env, ok := ctx.Value(testEnvKey).(*support.TestEnv); ok {
		return env
	}
	return nil
}

// getCLIRunner retrieves the CLIRunner from context.
func getCLIRunner(ctx context.Context) *support.CLIRunner {
	if runner, ok := ctx.Value(cliRunnerKey).(*support.CLIRunner); ok {
		return runner
	}
	return nil
}

// InitializeReportSteps registers all report step definitions.
func InitializeReportSteps(ctx *godog.ScenarioContext) {
	// Before each scenario: set up an isolated test environment
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		env, err := support.NewTestEnv()
		if err != nil {
			return ctx, fmt.Errorf("failed to create test environment: %w", err)
		}

		// Create CLI runner pointing to the built binary
		// Assumes `go build` has been run and gherkin-detailer is in PATH
		runner := support.NewCLIRunner("")
		runner.WorkDir = env.TempDir

		ctx = context.WithValue(ctx, testEnvKey, env)
		ctx = context.WithValue(ctx, cliRunnerKey, runner)

		return ctx, nil
	})

	// After each scenario: clean up the test environment
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if env := getTestEnv(ctx); env != nil {
			if cleanupErr := env.Cleanup(); cleanupErr != nil && err == nil {
				return ctx, cleanupErr
			}
		}
		return ctx, err
	})

	ctx.Step(`^a feature file "([^"]*)" containing:$`, aFeatureFileContaining)
	ctx.Step(`^an empty features folder$`, anEmptyFeaturesFolder)
	ctx.Step(`^a stale report file "([^"]*)"$`, aStaleReportFile)
	ctx.Step(`^I run "([^"]*)"$`, iRun)
	ctx.Step(`^the command succeeds$`, theCommandSucceeds)
	ctx.Step(`^the command fails$`, theCommandFails)
	ctx.Step(`^the report folder contains "([^"]*)"$`, theReportFolderContains)
	ctx.Step(`^the report folder does not contain "([^"]*)"$`, theReportFolderDoesNotContain)
	ctx.Step(`^the report page contains "([^"]*)"$`, theReportPageContains)
	ctx.Step(`^the report page does not contain "([^"]*)"$`, theReportPageDoesNotContain)
	ctx.Step(`^the output contains "([^"]*)"$`, theOutputContains)
	ctx.Step(`^the output contains:$`, theOutputContainsDoc)
	ctx.Step(`^the error output contains "([^"]*)"$`, theErrorOutputContains)
}

func aFeatureFileContaining(ctx context.Context, name string, content *godog.DocString) (context.Context, error) {
	env := getTestEnv(ctx)
	if env == nil {
		return ctx, fmt.Errorf("test environment not initialized")
	}
	if err := env.WriteFeatureFile(name, content.Content); err != nil {
		return ctx, fmt.Errorf("failed to write feature file %s: %w", name, err)
	}
	return ctx, nil
}

func anEmptyFeaturesFolder(ctx context.Context) (context.Context, error) {
	// NewTestEnv already created an empty features folder.
	return ctx, nil
}

func aStaleReportFile(ctx context.Context, name string) (context.Context, error) {
	env := getTestEnv(ctx)
	if env == nil {
		return ctx, fmt.Errorf("test environment not initialized")
	}
	path := filepath.Join(env.ReportDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ctx, err
	}
	return ctx, os.WriteFile(path, []byte("stale"), 0644)
}

func iRun(ctx context.Context, command string) (context.Context, error) {
	runner := getCLIRunner(ctx)
	if runner == nil {
		return ctx, fmt.Errorf("CLI runner not initialized")
	}
	runner.Run(command)
	return ctx, nil
}

func theCommandSucceeds(ctx context.Context) error {
	runner := getCLIRunner(ctx)
	if runner == nil || runner.LastResult == nil {
		return fmt.Errorf("no command has been run")
	}
	if !runner.LastResult.Success() {
		return fmt.Errorf("expected success, got exit code %d\nstderr: %s",
			runner.LastResult.ExitCode, runner.LastResult.Stderr)
	}
	return nil
}

func theCommandFails(ctx context.Context) error {
	runner := getCLIRunner(ctx)
	if runner == nil || runner.LastResult == nil {
		return fmt.Errorf("no command has been run")
	}
	if runner.LastResult.Success() {
		return fmt.Errorf("expected failure, but command succeeded\nstdout: %s",
			runner.LastResult.Stdout)
	}
	return nil
}

func theReportFolderContains(ctx context.Context, name string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	if !env.ReportFileExists(name) {
		return fmt.Errorf("expected %s in report folder %s", name, env.ReportDir)
	}
	return nil
}

func theReportFolderDoesNotContain(ctx context.Context, name string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	if env.ReportFileExists(name) {
		return fmt.Errorf("expected %s to be absent from report folder", name)
	}
	return nil
}

func theReportPageContains(ctx context.Context, text string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	page, err := env.ReportPage()
	if err != nil {
		return fmt.Errorf("failed to read report page: %w", err)
	}
	if !strings.Contains(page, text) {
		return fmt.Errorf("expected report page to contain %q", text)
	}
	return nil
}

func theReportPageDoesNotContain(ctx context.Context, text string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	page, err := env.ReportPage()
	if err != nil {
		return fmt.Errorf("failed to read report page: %w", err)
	}
	if strings.Contains(page, text) {
		return fmt.Errorf("expected report page not to contain %q", text)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	runner := getCLIRunner(ctx)
	if runner == nil || runner.LastResult == nil {
		return fmt.Errorf("no command has been run")
	}
	if !runner.LastResult.StdoutContains(text) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", text, runner.LastResult.Stdout)
	}
	return nil
}

func theOutputContainsDoc(ctx context.Context, content *godog.DocString) error {
	return theOutputContains(ctx, content.Content)
}

func theErrorOutputContains(ctx context.Context, text string) error {
	runner := getCLIRunner(ctx)
	if runner == nil || runner.LastResult == nil {
		return fmt.Errorf("no command has been run")
	}
	if !strings.Contains(runner.LastResult.Stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, runner.LastResult.Stderr)
	}
	return nil
}
