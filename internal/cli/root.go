package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ratatop/internal/logger"
)

// Global flags available to all subcommands
var (
	configFlag  string
	noColorFlag bool
)

// rootCmd is the base command. Running it with no subcommand starts the
// dashboard.
var rootCmd = &cobra.Command{
	Use:   "ratatop",
	Short: "Terminal resource monitor",
	Long: `ratatop is a terminal resource monitor.

It displays live CPU, memory, disk, network, and process statistics in a
full-screen dashboard with sparkline history graphs.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  Tab         Cycle focused panel
  j/k, up/down Navigate process list
  /           Filter processes
  s           Cycle sort column (CPU/MEM/PID/NAME)
  x           Terminate selected process
  p           Pause sampling
  ?           Show help

Examples:
  ratatop
  ratatop --interval 5s
  ratatop snapshot --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardIntervalFlag)
	},
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	cobra.OnInitialize(func() {
		logger.Redirect()
		logger.Default().Debug("ratatop starting, config=%q", configFlag)
	})
}
