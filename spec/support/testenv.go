// Package support provides test helpers and fixtures for the
// gherkin-detailer CLI specs.
package support

import (
	"os"
	"path/filepath"
)

// TestEnv holds the test environment state for a scenario.
type TestEnv struct {
	// TempDir is the temporary directory for this test run
	TempDir string
	// FeaturesDir is the folder scenario fixtures write feature files into
	FeaturesDir string
	// ReportDir is where the generated report is expected
	ReportDir string
	// OriginalDir is the directory we were in before the test
	OriginalDir string
}

// NewTestEnv creates a new isolated test environment.
// It creates a temporary directory and changes into it.
func NewTestEnv() (*TestEnv, error) {
	// Get current directory to restore later
	originalDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// Create temp directory
	tempDir, err := os.MkdirTemp("", "gherkin-detailer-test-*")
	if err != nil {
		return nil, err
	}

	featuresDir := filepath.Join(tempDir, "features")
	if err := os.MkdirAll(featuresDir, 0755); err != nil {
		os.RemoveAll(tempDir)
		return nil, err
	}

	// Change to temp directory
	if err := os.Chdir(tempDir); err != nil {
		os.RemoveAll(tempDir)
		return nil, err
	}

	return &TestEnv{
		TempDir:     tempDir,
		FeaturesDir: featuresDir,
		ReportDir:   filepath.Join(tempDir, "report", "gherkins"),
		OriginalDir: originalDir,
	}, nil
}

// Cleanup removes the temporary directory and restores the original state.
func (e *TestEnv) Cleanup() error {
	// Restore original directory
	if err := os.Chdir(e.OriginalDir); err != nil {
		return err
	}

	// Remove temp directory
	return os.RemoveAll(e.TempDir)
}

// WriteFeatureFile writes a feature file fixture into the features folder.
func (e *TestEnv) WriteFeatureFile(name, content string) error {
	path := filepath.Join(e.FeaturesDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// ReportPage returns the contents of the generated report page.
func (e *TestEnv) ReportPage() (string, error) {
	data, err := os.ReadFile(filepath.Join(e.ReportDir, "index.html"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReportFileExists checks whether a file exists inside the report folder.
func (e *TestEnv) ReportFileExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.ReportDir, name))
	return err == nil
}
