package config

import (
	"fmt"
	"time"

	"ratatop/internal/errors"
)

// Bounds for the refresh interval. The lower bound keeps the sampler from
// burning a core on process enumeration; the original workshop target of
// 16ms frames applies to rendering, not sampling.
const (
	MinRefresh = 250 * time.Millisecond
	MaxRefresh = 10 * time.Minute
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but ratatop only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade ratatop to a release that understands this config version")
	}

	if cfg.Refresh < MinRefresh {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too short", cfg.Refresh),
			fmt.Sprintf("Use at least %s to keep sampling overhead reasonable", MinRefresh))
	}
	if cfg.Refresh > MaxRefresh {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too long", cfg.Refresh),
			fmt.Sprintf("Use at most %s, otherwise the dashboard looks frozen", MaxRefresh))
	}

	if cfg.ProcessRefreshEvery < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("process_refresh_every must be at least 1, got %d", cfg.ProcessRefreshEvery),
			"Use 1 to refresh processes every tick, or a higher number to refresh less often")
	}

	if cfg.HistorySize < 2 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_size must be at least 2, got %d", cfg.HistorySize),
			"Graphs need at least two samples; 60 is a good default")
	}

	if cfg.TopProcesses < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("top_processes cannot be negative, got %d", cfg.TopProcesses),
			"Use 0 to keep all processes, or a positive limit")
	}

	if err := validateThresholds(cfg.Thresholds); err != nil {
		return err
	}

	return validateOutput(cfg.Output)
}

// validateThresholds checks warning/critical percentages for sanity.
func validateThresholds(t ThresholdConfig) error {
	if t.Warning < 1 || t.Warning > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("thresholds.warning must be between 1 and 100, got %d", t.Warning),
			"Percentage thresholds, e.g. warning: 70")
	}
	if t.Critical < 1 || t.Critical > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("thresholds.critical must be between 1 and 100, got %d", t.Critical),
			"Percentage thresholds, e.g. critical: 90")
	}
	if t.Warning >= t.Critical {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("thresholds.warning (%d) must be below thresholds.critical (%d)", t.Warning, t.Critical),
			"Warning fires first, then critical; e.g. warning: 70, critical: 90")
	}
	return nil
}

// validateOutput checks the output color mode.
func validateOutput(o OutputConfig) error {
	switch o.Color {
	case "", "auto", "always", "never":
		return nil
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color must be 'auto', 'always', or 'never', got '%s'", o.Color),
			"Check the 'output' section in your .ratatop.yaml")
	}
}
