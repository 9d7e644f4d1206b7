package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpSection groups related shortcuts under a heading.
type helpSection struct {
	Title    string
	Bindings []HelpBinding
}

// helpSections defines all keyboard shortcuts shown in the help overlay.
var helpSections = []helpSection{
	{
		Title: "General",
		Bindings: []HelpBinding{
			{Key: "q / Ctrl+C", Desc: "Quit"},
			{Key: "r", Desc: "Force refresh"},
			{Key: "p", Desc: "Pause / resume sampling"},
			{Key: "Tab", Desc: "Cycle focused panel"},
			{Key: "?", Desc: "Toggle this help"},
		},
	},
	{
		Title: "Processes",
		Bindings: []HelpBinding{
			{Key: "up / k", Desc: "Select previous process"},
			{Key: "down / j", Desc: "Select next process"},
			{Key: "PgUp / PgDn", Desc: "Page through processes"},
			{Key: "Home / End", Desc: "Jump to first / last"},
			{Key: "s", Desc: "Cycle sort column"},
			{Key: "/", Desc: "Filter processes"},
			{Key: "x", Desc: "Terminate selected process"},
			{Key: "Esc", Desc: "Clear filter / close"},
		},
	},
}

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
// The baseContent parameter is preserved for future overlay blending.
func (m Model) renderHelpOverlay(_ string) string {
	lines := []string{helpTitleStyle.Render("Keyboard Shortcuts")}

	for _, section := range helpSections {
		lines = append(lines, "")
		lines = append(lines, helpSectionStyle.Render(section.Title))
		for _, binding := range section.Bindings {
			lines = append(lines, helpKeyStyle.Render(binding.Key)+helpDescStyle.Render(binding.Desc))
		}
	}

	lines = append(lines, "")
	lines = append(lines, LabelStyle.Render("Press ? to close"))

	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
