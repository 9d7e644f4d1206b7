package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Layout proportions. CPU gets the top quarter of the body, the disk and
// memory row the next quarter, network and processes split the bottom half.
const (
	cpuRowPercent    = 25
	bottomRowPercent = 50
	diskColPercent   = 30
)

// Minimum inner dimensions below which a panel degrades to text only.
const (
	minPanelHeight = 4
	minGraphWidth  = 10
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	header := m.renderHeader()

	footer := ""
	footerHeight := 0
	if m.ShowFooter() {
		footer = m.renderFooter()
		footerHeight = lipgloss.Height(footer)
	}

	bodyHeight := m.height - lipgloss.Height(header) - footerHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if m.LayoutMode() == LayoutStandard {
		body = m.renderGrid(m.width, bodyHeight)
	} else {
		body = m.renderStacked(m.width, bodyHeight)
	}

	view := header + "\n" + body
	if footer != "" {
		view += "\n" + footer
	}

	if m.showHelp {
		return m.renderHelpOverlay(view)
	}
	return view
}

// renderGrid lays the panels out in the full multi-row grid.
func (m Model) renderGrid(width, height int) string {
	cpuHeight := height * cpuRowPercent / 100
	if cpuHeight < minPanelHeight {
		cpuHeight = minPanelHeight
	}
	bottomHeight := height * bottomRowPercent / 100
	if bottomHeight < minPanelHeight {
		bottomHeight = minPanelHeight
	}
	middleHeight := height - cpuHeight - bottomHeight
	if middleHeight < minPanelHeight {
		middleHeight = minPanelHeight
	}

	diskWidth := width * diskColPercent / 100
	if diskWidth < 20 {
		diskWidth = 20
	}
	memWidth := width - diskWidth

	netWidth := width / 2
	procWidth := width - netWidth

	cpuRow := m.renderCPUPanel(width, cpuHeight)
	middleRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderDisksPanel(diskWidth, middleHeight),
		m.renderMemoryPanel(memWidth, middleHeight),
	)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderNetworkPanel(netWidth, bottomHeight),
		m.renderProcessesPanel(procWidth, bottomHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, cpuRow, middleRow, bottomRow)
}

// renderStacked lays the panels out in a single column for narrow terminals.
// The process table gets whatever height the fixed panels leave over.
func (m Model) renderStacked(width, height int) string {
	cpuHeight := minPanelHeight
	memHeight := minPanelHeight
	diskHeight := minPanelHeight
	netHeight := minPanelHeight

	procHeight := height - cpuHeight - memHeight - diskHeight - netHeight
	if procHeight < minPanelHeight {
		procHeight = minPanelHeight
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderCPUPanel(width, cpuHeight),
		m.renderMemoryPanel(width, memHeight),
		m.renderDisksPanel(width, diskHeight),
		m.renderNetworkPanel(width, netHeight),
		m.renderProcessesPanel(width, procHeight),
	)
}

// renderHeader renders the top summary line.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("ratatop")

	var parts []string
	if m.snapshot != nil {
		parts = append(parts, fmt.Sprintf("%d cores", m.snapshot.CPU.Cores))
		parts = append(parts, fmt.Sprintf("load %.2f %.2f %.2f",
			m.snapshot.CPU.LoadAvg[0], m.snapshot.CPU.LoadAvg[1], m.snapshot.CPU.LoadAvg[2]))
		parts = append(parts, fmt.Sprintf("%d procs", len(m.snapshot.Processes)))
	} else {
		parts = append(parts, "sampling...")
	}
	if m.paused {
		parts = append(parts, StatusPausedStyle.Render("PAUSED"))
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + strings.Join(parts, " | "))

	return HeaderStyle.Width(m.width).Render(title + stats)
}

// renderFooter renders the keyboard help and status line.
func (m Model) renderFooter() string {
	if m.pendingKill != nil {
		prompt := StatusErrorStyle.Render(
			fmt.Sprintf("terminate %s (pid %d)? ", m.pendingKill.Name, m.pendingKill.PID))
		return FooterStyle.Render(prompt + MutedStyle.Render("y confirm | any other key cancels"))
	}

	if m.searching {
		return FooterStyle.Render(SearchPromptStyle.Render("search ") + m.searchInput.View())
	}

	if m.statusMsg != "" {
		return FooterStyle.Render(m.statusMsg)
	}

	hints := []string{
		"q quit",
		"tab panel",
		"j/k select",
		"/ filter",
		"s sort:" + m.sortColumn.String(),
		"x kill",
		"p pause",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// panelBox wraps content lines in a bordered panel of the exact outer size.
func (m Model) panelBox(panel Panel, lines []string, width, height int) string {
	innerWidth := width - 4
	innerHeight := height - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	style := PanelStyle
	if panel == m.focused {
		style = PanelFocusedStyle
	}

	return style.Width(width - 2).Height(innerHeight).Render(strings.Join(lines, "\n"))
}

// renderCPUPanel renders aggregate CPU usage with a braille history graph
// and a per-core usage row. Minimal layouts fall back to a plain bar.
func (m Model) renderCPUPanel(width, height int) string {
	innerWidth := width - 4
	innerHeight := height - 2

	var pct float64
	if m.snapshot != nil {
		pct = m.snapshot.CPU.Percent
	}

	value := m.metricStyle(pct).Render(fmt.Sprintf("%5.1f%%", pct))
	lines := []string{PanelTitle("CPU", value, innerWidth)}

	if m.LayoutMode() == LayoutMinimal {
		if innerHeight > 1 {
			lines = append(lines, RenderGradientBar(innerWidth, pct))
		}
		return m.panelBox(PanelCPU, lines, width, height)
	}

	perCore := m.renderPerCoreCells(innerWidth, innerHeight)
	graphHeight := innerHeight - 1 - len(perCore)
	if graphHeight > 0 {
		data := m.history.CPU(m.cfg.HistorySize)
		if len(data) > 0 {
			graph := RenderBrailleSparkline(data, max(innerWidth, minGraphWidth), graphHeight, ColorGraph)
			lines = append(lines, strings.Split(graph, "\n")...)
		} else {
			lines = append(lines, RenderGradientBar(innerWidth, pct))
		}
	}
	lines = append(lines, perCore...)

	return m.panelBox(PanelCPU, lines, width, height)
}

// renderPerCoreCells renders rows of per-core cells, each showing the core
// index, a small usage bar, and the core's latest percentage from history.
// The rows never take more than half the panel so the aggregate graph
// keeps the larger share; cores that don't fit are dropped.
func (m Model) renderPerCoreCells(innerWidth, innerHeight int) []string {
	cores := m.history.CoreCount()
	if cores == 0 {
		return nil
	}

	const cellWidth = 16
	perLine := innerWidth / cellWidth
	if perLine < 1 {
		perLine = 1
	}

	maxLines := (innerHeight - 1) / 2
	if maxLines < 1 {
		return nil
	}

	var lines []string
	var cells []string
	for i := 0; i < cores; i++ {
		series := m.history.CPUCore(i, m.cfg.HistorySize)
		var cur float64
		if len(series) > 0 {
			cur = series[len(series)-1]
		}

		cell := MutedStyle.Render(fmt.Sprintf("c%-2d", i)) + " " +
			CompactProgressBarWithThresholds(5, cur,
				m.cfg.Thresholds.Warning, m.cfg.Thresholds.Critical) +
			m.metricStyle(cur).Render(fmt.Sprintf("%4.0f%%", cur))
		cells = append(cells, cell)

		if len(cells) == perLine {
			lines = append(lines, strings.Join(cells, "  "))
			cells = nil
			if len(lines) == maxLines {
				return lines
			}
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, "  "))
	}
	return lines
}

// renderMemoryPanel renders memory usage with a history graph and usage bar.
func (m Model) renderMemoryPanel(width, height int) string {
	innerWidth := width - 4
	innerHeight := height - 2

	var pct float64
	var used, total uint64
	if m.snapshot != nil {
		pct = m.snapshot.Memory.UsedPercent
		used = m.snapshot.Memory.UsedBytes
		total = m.snapshot.Memory.TotalBytes
	}

	value := m.metricStyle(pct).Render(fmt.Sprintf("%5.1f%%", pct))
	lines := []string{PanelTitle(m.panelLabel("Memory", "Mem"), value, innerWidth)}

	usage := LabelStyle.Render(humanize.IBytes(used)) +
		MutedStyle.Render(" / ") +
		ValueStyle.Render(humanize.IBytes(total))
	lines = append(lines, usage)

	lines = append(lines, RenderGradientBar(innerWidth, pct))

	graphHeight := innerHeight - len(lines)
	if m.LayoutMode() != LayoutMinimal && graphHeight > 0 {
		data := m.history.Memory(m.cfg.HistorySize)
		if len(data) > 0 {
			graph := RenderBrailleSparkline(data, max(innerWidth, minGraphWidth), graphHeight, ColorGraph)
			lines = append(lines, strings.Split(graph, "\n")...)
		}
	}

	return m.panelBox(PanelMemory, lines, width, height)
}

// renderDisksPanel renders one usage line per mounted filesystem.
func (m Model) renderDisksPanel(width, height int) string {
	innerWidth := width - 4

	lines := []string{PanelTitle("Disks", "", innerWidth)}

	if m.snapshot == nil || len(m.snapshot.Disks) == 0 {
		lines = append(lines, MutedStyle.Render("no filesystems"))
		return m.panelBox(PanelDisks, lines, width, height)
	}

	// Mount label, bar, and usage text share the line.
	labelWidth := 12
	textWidth := 14
	barWidth := innerWidth - labelWidth - textWidth - 2
	if barWidth < 4 {
		barWidth = 4
	}

	for _, d := range m.snapshot.Disks {
		mount := truncateWithEllipsis(d.Mount, labelWidth)
		label := LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, mount))
		bar := ThinProgressBarWithThresholds(barWidth, d.UsedPercent,
			m.cfg.Thresholds.Warning, m.cfg.Thresholds.Critical)
		text := m.metricStyle(d.UsedPercent).Render(fmt.Sprintf("%5.1f%%", d.UsedPercent)) +
			MutedStyle.Render(" "+humanize.IBytes(d.TotalBytes))
		lines = append(lines, label+" "+bar+" "+text)
	}

	return m.panelBox(PanelDisks, lines, width, height)
}

// renderNetworkPanel renders per-interface throughput with sparklines.
func (m Model) renderNetworkPanel(width, height int) string {
	innerWidth := width - 4
	innerHeight := height - 2

	var totalRecv, totalSend float64
	if m.snapshot != nil {
		for _, n := range m.snapshot.Network {
			totalRecv += n.RecvRate
			totalSend += n.SendRate
		}
	}

	value := lipgloss.NewStyle().Foreground(ColorAccent).Render("↓") +
		ValueStyle.Render(FormatRate(totalRecv)) + " " +
		lipgloss.NewStyle().Foreground(ColorAccent).Render("↑") +
		ValueStyle.Render(FormatRate(totalSend))
	lines := []string{PanelTitle(m.panelLabel("Network", "Net"), value, innerWidth)}

	if m.snapshot == nil || len(m.snapshot.Network) == 0 {
		lines = append(lines, MutedStyle.Render("no interfaces"))
		return m.panelBox(PanelNetwork, lines, width, height)
	}

	labelWidth := 10
	rateWidth := 12
	sparkWidth := (innerWidth - labelWidth - 2*rateWidth - 4) / 2
	if sparkWidth < 4 {
		sparkWidth = 4
	}

	minimal := m.LayoutMode() == LayoutMinimal

	for _, n := range m.snapshot.Network {
		if len(lines) >= innerHeight {
			break
		}
		name := truncateWithEllipsis(n.Name, labelWidth)
		label := LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, name))

		down := MutedStyle.Render("↓") + fmt.Sprintf("%*s", rateWidth-1, FormatRate(n.RecvRate))
		up := MutedStyle.Render("↑") + fmt.Sprintf("%*s", rateWidth-1, FormatRate(n.SendRate))

		if minimal {
			lines = append(lines, label+" "+down+"  "+up)
			continue
		}

		recvSpark := RenderColoredMiniSparkline(
			m.history.NetworkRecv(n.Name, sparkWidth), sparkWidth, ColorGraph)
		sendSpark := RenderColoredMiniSparkline(
			m.history.NetworkSend(n.Name, sparkWidth), sparkWidth, ColorGraphAlt)

		lines = append(lines, label+" "+down+" "+recvSpark+"  "+up+" "+sendSpark)
	}

	return m.panelBox(PanelNetwork, lines, width, height)
}

// renderProcessesPanel renders the scrollable process table.
func (m Model) renderProcessesPanel(width, height int) string {
	innerWidth := width - 4
	innerHeight := height - 2

	procs := m.visibleProcesses()

	title := m.panelLabel("Processes", "Procs")
	if q := m.activeQuery(); q != "" {
		title = fmt.Sprintf("%s [/%s]", title, q)
	}
	value := MutedStyle.Render(fmt.Sprintf("%d shown, sort %s", len(procs), m.sortColumn.String()))
	lines := []string{PanelTitle(title, value, innerWidth)}

	if len(procs) == 0 {
		lines = append(lines, MutedStyle.Render("no matching processes"))
		return m.panelBox(PanelProcesses, lines, width, height)
	}

	// Column layout: PID(7) USER(10) CPU(6) MEM(6) RSS(9) NAME(rest)
	nameWidth := innerWidth - 7 - 10 - 6 - 6 - 9 - 5
	if nameWidth < 8 {
		nameWidth = 8
	}
	headerLine := fmt.Sprintf("%7s %-10s %6s %6s %9s %-*s",
		"PID", "USER", "CPU%", "MEM%", "RSS", nameWidth, "NAME")
	lines = append(lines, TableHeaderStyle.Render(headerLine))

	rowCount := innerHeight - 2
	if rowCount < 1 {
		rowCount = 1
	}

	// Recompute the window on a value copy; View cannot mutate the model.
	win := m
	win.scrollIntoView(rowCount)
	start := win.scroll
	end := start + rowCount
	if end > len(procs) {
		end = len(procs)
	}

	for i := start; i < end; i++ {
		p := procs[i]
		row := fmt.Sprintf("%7d %-10s %6.1f %6.1f %9s %-*s",
			p.PID,
			truncateWithEllipsis(p.Username, 10),
			p.CPUPercent,
			p.MemoryPercent,
			humanize.IBytes(p.MemoryBytes),
			nameWidth, truncateWithEllipsis(p.Name, nameWidth))

		if i == m.selected {
			lines = append(lines, TableSelectedStyle.Render(row))
		} else {
			lines = append(lines, TableRowStyle.Render(row))
		}
	}

	return m.panelBox(PanelProcesses, lines, width, height)
}

// metricStyle colors a percentage using the configured thresholds.
func (m Model) metricStyle(percent float64) lipgloss.Style {
	return MetricStyleWithThresholds(percent, m.cfg.Thresholds.Warning, m.cfg.Thresholds.Critical)
}

// panelLabel picks the abbreviated title below the standard breakpoint.
func (m Model) panelLabel(full, short string) string {
	if m.LayoutMode() == LayoutStandard {
		return full
	}
	return short
}

// truncateWithEllipsis truncates a string to maxLen runes, adding ellipsis
// if needed. Slicing runes rather than bytes keeps multi-byte names valid.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// FormatRate formats a bytes-per-second rate as a human-readable string.
func FormatRate(bytesPerSecond float64) string {
	if bytesPerSecond < 0 {
		bytesPerSecond = 0
	}
	return humanize.IBytes(uint64(bytesPerSecond)) + "/s"
}
