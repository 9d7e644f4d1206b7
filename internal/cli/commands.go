package cli

import (
	"os"

	"github.com/spf13/cobra"

	"ratatop/internal/errors"
)

// Command-specific flags
var (
	dashboardIntervalFlag  string
	snapshotJSONFlag       bool
	initForce              bool
	initNonInteractiveFlag bool
)

// snapshotCmd prints one set of metrics and exits
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one-shot system metrics",
	Long: `Capture a single metrics snapshot and print it to stdout.

Takes two samples one second apart so CPU usage and network rates have a
baseline to diff against.

Useful for scripts, cron jobs, and piping into other tools.

Examples:
  ratatop snapshot
  ratatop snapshot --json
  ratatop snapshot --json | jq '.data.cpu.percent'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(snapshotJSONFlag)
	},
}

// initCmd creates a new .ratatop.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .ratatop.yaml configuration",
	Long: `Initialize a new ratatop configuration file.

Creates a .ratatop.yaml file in the current directory with sensible
defaults. Guides you through the main settings with interactive prompts.

Examples:
  ratatop init
  ratatop init --force
  ratatop init --non-interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initNonInteractiveFlag)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for ratatop.

Examples:
  # Bash
  ratatop completion bash > /etc/bash_completion.d/ratatop

  # Zsh
  ratatop completion zsh > "${fpath[1]}/_ratatop"

  # Fish
  ratatop completion fish > ~/.config/fish/completions/ratatop.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// root (dashboard) flags
	rootCmd.Flags().StringVar(&dashboardIntervalFlag, "interval", "", "refresh interval override (e.g., 1s, 5s)")

	// snapshot command flags
	snapshotCmd.Flags().BoolVar(&snapshotJSONFlag, "json", false, "emit machine-readable JSON")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "skip prompts and write defaults")

	// Register all commands
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
