package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .ratatop.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Refresh is how often the dashboard samples system metrics.
	Refresh time.Duration `yaml:"refresh" mapstructure:"refresh"`

	// ProcessRefreshEvery samples the process table every Nth refresh tick.
	// Process enumeration is the most expensive probe, so it runs at a
	// lower cadence than the cheap CPU/memory/network reads.
	ProcessRefreshEvery int `yaml:"process_refresh_every" mapstructure:"process_refresh_every"`

	// HistorySize is the number of samples retained per metric for graphs.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// TopProcesses limits how many processes the sampler keeps per snapshot.
	// Zero keeps all of them.
	TopProcesses int `yaml:"top_processes" mapstructure:"top_processes"`

	Thresholds ThresholdConfig `yaml:"thresholds" mapstructure:"thresholds"`
	Disk       DiskConfig      `yaml:"disk" mapstructure:"disk"`
	Network    NetworkConfig   `yaml:"network" mapstructure:"network"`
	Output     OutputConfig    `yaml:"output" mapstructure:"output"`
}

// ThresholdConfig sets the warning/critical percentages used for
// color-coding metrics throughout the dashboard.
type ThresholdConfig struct {
	Warning  int `yaml:"warning" mapstructure:"warning"`
	Critical int `yaml:"critical" mapstructure:"critical"`
}

// DiskConfig controls which volumes appear in the disk panel.
type DiskConfig struct {
	// ExcludeFstypes hides volumes by filesystem type (tmpfs, squashfs, ...).
	ExcludeFstypes []string `yaml:"exclude_fstypes" mapstructure:"exclude_fstypes"`

	// ExcludeMounts hides volumes whose mountpoint starts with any prefix.
	ExcludeMounts []string `yaml:"exclude_mounts" mapstructure:"exclude_mounts"`

	// AllDevices includes pseudo and duplicate devices when true
	// (passed through to the partition enumeration).
	AllDevices bool `yaml:"all_devices" mapstructure:"all_devices"`
}

// NetworkConfig controls which interfaces appear in the network panel.
type NetworkConfig struct {
	// Exclude hides interfaces by exact name.
	Exclude []string `yaml:"exclude" mapstructure:"exclude"`

	// HideLoopback hides lo/lo0 from the panel.
	HideLoopback bool `yaml:"hide_loopback" mapstructure:"hide_loopback"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// MarshalYAML writes Refresh as a duration string ("2s") instead of raw
// nanoseconds, so generated config files stay human-editable.
func (c *Config) MarshalYAML() (interface{}, error) {
	type plain struct {
		Version             int             `yaml:"version"`
		Refresh             string          `yaml:"refresh"`
		ProcessRefreshEvery int             `yaml:"process_refresh_every"`
		HistorySize         int             `yaml:"history_size"`
		TopProcesses        int             `yaml:"top_processes"`
		Thresholds          ThresholdConfig `yaml:"thresholds"`
		Disk                DiskConfig      `yaml:"disk"`
		Network             NetworkConfig   `yaml:"network"`
		Output              OutputConfig    `yaml:"output"`
	}

	return plain{
		Version:             c.Version,
		Refresh:             c.Refresh.String(),
		ProcessRefreshEvery: c.ProcessRefreshEvery,
		HistorySize:         c.HistorySize,
		TopProcesses:        c.TopProcesses,
		Thresholds:          c.Thresholds,
		Disk:                c.Disk,
		Network:             c.Network,
		Output:              c.Output,
	}, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:             CurrentConfigVersion,
		Refresh:             2 * time.Second,
		ProcessRefreshEvery: 2,
		HistorySize:         60,
		TopProcesses:        0,
		Thresholds: ThresholdConfig{
			Warning:  70,
			Critical: 90,
		},
		Disk: DiskConfig{
			ExcludeFstypes: []string{
				"tmpfs",
				"devtmpfs",
				"squashfs",
				"overlay",
				"autofs",
			},
			ExcludeMounts: []string{
				"/boot",
				"/snap",
			},
			AllDevices: false,
		},
		Network: NetworkConfig{
			Exclude:      []string{},
			HideLoopback: true,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
