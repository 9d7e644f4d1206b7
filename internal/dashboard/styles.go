package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for metrics
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Graph colors
	ColorGraph    = lipgloss.Color("#00FFFF") // Neon cyan
	ColorGraphAlt = lipgloss.Color("#39FF14") // Neon green
)

// Default thresholds for metric severity levels. The dashboard model
// overrides these from config; the package-level helpers exist for widgets
// that render outside a model (tests, one-shot output).
const (
	DefaultWarningThreshold  = 70.0
	DefaultCriticalThreshold = 90.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	// Panel styles
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorAccent)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Text styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Process table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorAccentDim).
				Bold(true)

	TableRowStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(lipgloss.Color("#2A2A4A")).
				Bold(true)

	// Status line styles
	StatusPausedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorCritical)

	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// MetricColor returns the appropriate color for a percentage-based metric
// using the default thresholds.
func MetricColor(percent float64) lipgloss.Color {
	return MetricColorWithThresholds(percent, int(DefaultWarningThreshold), int(DefaultCriticalThreshold))
}

// MetricColorWithThresholds returns the appropriate color for a
// percentage-based metric using the provided warning and critical thresholds.
func MetricColorWithThresholds(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case percent >= float64(critical):
		return ColorCritical
	case percent >= float64(warning):
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyle returns a style with the appropriate foreground color for the metric.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}

// MetricStyleWithThresholds returns a style with the appropriate foreground
// color using custom warning and critical thresholds.
func MetricStyleWithThresholds(percent float64, warning, critical int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColorWithThresholds(percent, warning, critical))
}

// CompactProgressBar renders a minimal progress bar without brackets.
func CompactProgressBar(width int, percent float64) string {
	return CompactProgressBarWithThresholds(width, percent, int(DefaultWarningThreshold), int(DefaultCriticalThreshold))
}

// CompactProgressBarWithThresholds renders a minimal progress bar using
// custom thresholds.
func CompactProgressBarWithThresholds(width int, percent float64, warning, critical int) string {
	if width < 1 {
		width = 1
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "▰"
		} else {
			bar += "▱"
		}
	}

	return lipgloss.NewStyle().Foreground(MetricColorWithThresholds(percent, warning, critical)).Render(bar)
}

// ThinProgressBarWithThresholds renders a line-based progress bar using
// thin characters, ━ for filled segments and ─ for empty segments, colored
// by the provided thresholds.
func ThinProgressBarWithThresholds(width int, percent float64, warning, critical int) string {
	if width < 1 {
		width = 1
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "━"
		} else {
			bar += "─"
		}
	}

	return lipgloss.NewStyle().Foreground(MetricColorWithThresholds(percent, warning, critical)).Render(bar)
}

// PanelTitle renders the title line for a panel, padded to width.
// Format: Title ─────────────────────────── value
func PanelTitle(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	left := PanelTitleStyle.Render(title)
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(value)

	fillWidth := width - leftWidth - rightWidth - 2
	if fillWidth < 1 {
		fillWidth = 1
	}

	fill := MutedStyle.Render(" " + strings.Repeat("─", fillWidth) + " ")
	return left + fill + value
}
