package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"ratatop/internal/config"
	"ratatop/internal/errors"
	"ratatop/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// Init creates a new .ratatop.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		refreshStr := cfg.Refresh.String()
		topStr := strconv.Itoa(cfg.TopProcesses)
		hideLoopback := cfg.Network.HideLoopback

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often metrics are sampled (e.g. 1s, 2s, 500ms)").
					Value(&refreshStr).
					Validate(func(s string) error {
						d, err := time.ParseDuration(strings.TrimSpace(s))
						if err != nil {
							return fmt.Errorf("invalid duration")
						}
						if d < config.MinRefresh || d > config.MaxRefresh {
							return fmt.Errorf("must be between %s and %s", config.MinRefresh, config.MaxRefresh)
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Process limit").
					Description("Maximum processes shown in the table (0 = unlimited)").
					Value(&topStr).
					Validate(func(s string) error {
						n, err := strconv.Atoi(strings.TrimSpace(s))
						if err != nil || n < 0 {
							return fmt.Errorf("must be a non-negative integer")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Hide loopback interface in the network panel?").
					Value(&hideLoopback),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}

		cfg.Refresh, _ = time.ParseDuration(strings.TrimSpace(refreshStr))
		cfg.TopProcesses, _ = strconv.Atoi(strings.TrimSpace(topStr))
		cfg.Network.HideLoopback = hideLoopback
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# ratatop configuration
# Run 'ratatop' to start the dashboard with these settings.

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  ratatop            - Start the dashboard")
	fmt.Println("  ratatop snapshot   - Print one-shot metrics")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(force, nonInteractive bool) error {
	return Init(InitOptions{
		Overwrite:      force,
		NonInteractive: nonInteractive,
	})
}
