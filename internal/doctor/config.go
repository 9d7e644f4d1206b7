package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"ratatop/internal/config"
)

// ConfigFileCheck verifies that a config file exists. A missing file is only
// a warning since the dashboard runs fine on built-in defaults.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check file permissions or run 'ratatop init' to create a config",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No config file found (using built-in defaults)",
			Suggestion: "Run 'ratatop init' to create a " + config.ConfigFileName + " file",
			Fixable:    true,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

// Fix writes a default config file in the current directory.
func (c *ConfigFileCheck) Fix() error {
	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(config.ConfigFileName, data, 0644)
}

// ConfigSchemaCheck verifies the config file parses and validates.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return "CONFIG" }

func (c *ConfigSchemaCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No config file to validate",
		}
	}

	if _, err := config.Load(path); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax and value ranges in " + path,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Schema valid",
	}
}

func (c *ConfigSchemaCheck) Fix() error {
	return nil // Schema issues require manual intervention
}

// RefreshRateCheck warns about aggressive refresh intervals. Sub-second
// sampling is valid but noticeably increases CPU overhead from the
// process table scan.
type RefreshRateCheck struct {
	ConfigPath string
}

func (c *RefreshRateCheck) Name() string     { return "refresh_rate" }
func (c *RefreshRateCheck) Category() string { return "CONFIG" }

func (c *RefreshRateCheck) Run() CheckResult {
	cfg, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass, // Schema check reports load errors
			Message: "Config load error",
		}
	}

	if cfg.Refresh < time.Second {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Refresh interval is aggressive: %s", cfg.Refresh),
			Suggestion: "Intervals under 1s increase sampling overhead; consider 1s or 2s",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Refresh interval: %s", cfg.Refresh),
	}
}

func (c *RefreshRateCheck) Fix() error {
	return nil
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigSchemaCheck{ConfigPath: configPath},
		&RefreshRateCheck{ConfigPath: configPath},
	}
}
