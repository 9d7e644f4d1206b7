package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"ratatop/internal/config"
	"ratatop/internal/dashboard"
	"ratatop/internal/errors"
	"ratatop/internal/sampler"
)

// dashboardCommand starts the full-screen TUI dashboard.
func dashboardCommand(intervalFlag string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	// The --interval flag overrides the configured refresh rate.
	if intervalFlag != "" {
		parsed, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", intervalFlag),
				"Use a valid duration like 2s, 5s, or 1m")
		}
		if parsed < config.MinRefresh {
			return errors.New(errors.ErrConfig,
				"Interval too short",
				fmt.Sprintf("Minimum interval is %s to keep sampling overhead low", config.MinRefresh))
		}
		cfg.Refresh = parsed
	}

	applyColorMode(cfg.Output.Color)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"Standard output is not a terminal",
			"Run ratatop in an interactive terminal, or use 'ratatop snapshot' for scripted output.")
	}

	smp := sampler.New(cfg)
	model := dashboard.NewModel(cfg, smp)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Dashboard exited unexpectedly",
			"Check terminal compatibility; a plain xterm-256color works best.")
	}

	return nil
}

// applyColorMode pins the lipgloss color profile according to the
// output.color config value. "auto" leaves terminal detection alone.
func applyColorMode(mode string) {
	if noColorFlag {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
