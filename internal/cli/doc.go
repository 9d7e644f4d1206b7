// Package cli implements the ratatop command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small workflow function for the actual work:
//
//	ratatop              - Start the full-screen dashboard (root command)
//	ratatop snapshot     - Print one-shot metrics (text or --json)
//	ratatop init         - Create a .ratatop.yaml config
//	ratatop doctor       - Diagnose environment issues (--fix, --json)
//	ratatop version      - Print build information
//	ratatop completion   - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. Command-specific flags like --interval and
// --json are defined on individual commands in commands.go.
//
// # Output Modes
//
// The dashboard and human snapshot output use lipgloss styling; the color
// profile is pinned from the output.color config value (or --no-color).
// The --json flag on snapshot wraps output in JSONEnvelope so automation
// gets a stable success/error structure.
package cli
