// Package config provides configuration loading and management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jsfix-ci/gherkin-detailer/internal/report"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version   int       `mapstructure:"version" yaml:"version"`
	Defaults  Defaults  `mapstructure:"defaults" yaml:"defaults"`
	Report    Report    `mapstructure:"report" yaml:"report"`
	Templates Templates `mapstructure:"templates" yaml:"templates"`
}

// Defaults contains global default settings.
type Defaults struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"`
	Source string `mapstructure:"source" yaml:"source,omitempty"`
}

// Report configures the generated report output.
type Report struct {
	Folder string `mapstructure:"folder" yaml:"folder,omitempty"`
}

// Templates configures where report templates are loaded from. An empty
// folder means the templates shipped with the binary.
type Templates struct {
	Folder string `mapstructure:"folder" yaml:"folder,omitempty"`
}

var (
	cfg     *Config
	cfgFile string
)

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gherkin-detailer"), nil
}

// Init initializes the configuration system.
// Config files are searched in the following order:
// 1. Explicit path via cfgPath parameter (--config flag)
// 2. Project-local: .gherkindetailer/config.yaml (current directory)
// 3. User global: ~/.config/gherkin-detailer/config.yaml
func Init(cfgPath string) error {
	cfgFile = cfgPath

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Check for project-local config first
		viper.AddConfigPath(".gherkindetailer")
		// Then check user global config
		configPath, err := configDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(configPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("defaults.format", "text")
	viper.SetDefault("defaults.source", "./")
	viper.SetDefault("report.folder", report.DefaultReportFolder)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration.
// Returns nil if Init has not been called.
func Get() *Config {
	return cfg
}

// ConfigFilePath returns the path to the config file being used.
func ConfigFilePath() string {
	return viper.ConfigFileUsed()
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
