package doctor

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"ratatop/internal/dashboard"
)

// TTYCheck verifies stdout is attached to a terminal.
type TTYCheck struct{}

func (c *TTYCheck) Name() string     { return "tty" }
func (c *TTYCheck) Category() string { return "TERMINAL" }

func (c *TTYCheck) Run() CheckResult {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "stdout is not a terminal",
			Suggestion: "The dashboard needs an interactive terminal; 'ratatop snapshot' works when piped",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "stdout is a terminal",
	}
}

func (c *TTYCheck) Fix() error { return nil }

// ColorCheck reports the detected color profile. The dashboard degrades
// gracefully without color but the graphs lose their thresholds.
type ColorCheck struct{}

func (c *ColorCheck) Name() string     { return "color" }
func (c *ColorCheck) Category() string { return "TERMINAL" }

func (c *ColorCheck) Run() CheckResult {
	profile := termenv.EnvColorProfile()

	name := "unknown"
	switch profile {
	case termenv.TrueColor:
		name = "truecolor"
	case termenv.ANSI256:
		name = "256 colors"
	case termenv.ANSI:
		name = "16 colors"
	case termenv.Ascii:
		name = "no color"
	}

	if profile == termenv.Ascii {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Color support: " + name,
			Suggestion: "Check $TERM and $COLORTERM, or unset NO_COLOR",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Color support: " + name,
	}
}

func (c *ColorCheck) Fix() error { return nil }

// SizeCheck warns when the terminal is too small for the full panel grid.
type SizeCheck struct{}

func (c *SizeCheck) Name() string     { return "size" }
func (c *SizeCheck) Category() string { return "TERMINAL" }

func (c *SizeCheck) Run() CheckResult {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Cannot determine terminal size",
			Suggestion: "The dashboard will still adapt once it receives a resize event",
		}
	}

	if width < dashboard.BreakpointCompact || height < dashboard.HeightMinimal {
		return CheckResult{
			Name:   c.Name(),
			Status: StatusWarn,
			Message: fmt.Sprintf("Terminal is small: %dx%d (panels stack below %d columns)",
				width, height, dashboard.BreakpointCompact),
			Suggestion: "Enlarge the terminal window for the full panel grid",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Terminal size: %dx%d", width, height),
	}
}

func (c *SizeCheck) Fix() error { return nil }

// NewTerminalChecks creates all terminal-related checks.
func NewTerminalChecks() []Check {
	return []Check{
		&TTYCheck{},
		&ColorCheck{},
		&SizeCheck{},
	}
}
