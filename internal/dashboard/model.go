package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ratatop/internal/config"
	"ratatop/internal/logger"
	"ratatop/internal/sampler"
)

// Panel identifies one of the dashboard's focusable regions.
type Panel int

const (
	PanelCPU Panel = iota
	PanelDisks
	PanelMemory
	PanelNetwork
	PanelProcesses
)

// String returns a human-readable panel name.
func (p Panel) String() string {
	switch p {
	case PanelCPU:
		return "cpu"
	case PanelDisks:
		return "disks"
	case PanelMemory:
		return "memory"
	case PanelNetwork:
		return "network"
	case PanelProcesses:
		return "processes"
	default:
		return "unknown"
	}
}

// Next cycles to the next panel in display order.
func (p Panel) Next() Panel {
	return Panel((int(p) + 1) % 5)
}

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 60 columns: stacked text-only
	// panels with usage bars instead of graphs, abbreviated titles
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 60-100 columns: stacked panels with
	// graphs, abbreviated titles
	LayoutCompact
	// LayoutStandard is for terminals 100+ columns: full multi-panel grid
	LayoutStandard
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 60
	BreakpointStandard = 100
)

// HeightMinimal is the shortest terminal that still gets a footer.
const HeightMinimal = 20

// Model is the Bubble Tea model for the resource dashboard.
type Model struct {
	cfg      *config.Config
	smp      *sampler.Sampler
	log      logger.Logger
	snapshot *sampler.Snapshot
	history  *History

	width  int
	height int

	focused  Panel
	selected int
	scroll   int

	searching   bool
	searchInput textinput.Model
	query       string

	sortColumn ProcessSort
	sortDesc   bool

	paused      bool
	pendingKill *sampler.ProcessEntry
	statusMsg   string

	sampling bool
	showHelp bool
	quitting bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a freshly captured snapshot from the sampler.
type snapshotMsg struct {
	snapshot *sampler.Snapshot
	err      error
}

// killDoneMsg reports the outcome of a terminate request.
type killDoneMsg struct {
	pid  int32
	name string
	err  error
}

// clearStatusMsg expires a transient status message.
type clearStatusMsg struct{}

// statusMsgTTL is how long transient status messages stay visible.
const statusMsgTTL = 4 * time.Second

// NewModel creates a dashboard model backed by the given sampler.
func NewModel(cfg *config.Config, smp *sampler.Sampler) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if smp == nil {
		smp = sampler.New(cfg)
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "filter processes"
	search.CharLimit = 64

	return Model{
		cfg:         cfg,
		smp:         smp,
		log:         logger.Default(),
		history:     NewHistory(cfg.HistorySize),
		focused:     PanelProcesses,
		searchInput: search,
		sortColumn:  SortByCPU,
		sortDesc:    true,
	}
}

// Init starts the tick timer and triggers the initial sample.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.sampleCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		if m.sampling {
			// Previous sample still in flight; skip this cycle.
			return m, m.tickCmd()
		}
		m.sampling = true
		return m, tea.Batch(m.tickCmd(), m.sampleCmd())

	case snapshotMsg:
		m.sampling = false
		if msg.err != nil {
			m.log.Warn("sample failed: %v", msg.err)
			m.statusMsg = StatusErrorStyle.Render("sample failed: " + msg.err.Error())
			return m, m.clearStatusCmd()
		}
		m.snapshot = msg.snapshot
		m.history.Push(msg.snapshot)
		m.clampSelection()

	case killDoneMsg:
		if msg.err != nil {
			m.statusMsg = StatusErrorStyle.Render(fmt.Sprintf("failed to terminate %s (%d): %v", msg.name, msg.pid, msg.err))
		} else {
			m.statusMsg = fmt.Sprintf("sent SIGTERM to %s (%d)", msg.name, msg.pid)
		}
		return m, m.clearStatusCmd()

	case clearStatusMsg:
		if m.paused {
			m.statusMsg = StatusPausedStyle.Render("paused")
		} else {
			m.statusMsg = ""
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.Refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd returns a command that captures one snapshot in the background.
// The collection deadline is tied to the refresh interval so a slow probe
// cannot stack up behind the next tick.
func (m Model) sampleCmd() tea.Cmd {
	smp := m.smp
	timeout := m.cfg.Refresh
	if timeout < time.Second {
		timeout = time.Second
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap := smp.Sample(ctx)
		return snapshotMsg{snapshot: snap}
	}
}

// killCmd returns a command that sends SIGTERM to the given process.
func (m Model) killCmd(p sampler.ProcessEntry) tea.Cmd {
	smp := m.smp
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		err := smp.Terminate(ctx, p.PID)
		return killDoneMsg{pid: p.PID, name: p.Name, err: err}
	}
}

// clearStatusCmd expires the status line after a short delay.
func (m Model) clearStatusCmd() tea.Cmd {
	return tea.Tick(statusMsgTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// LayoutMode returns the current layout mode based on terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width >= BreakpointStandard:
		return LayoutStandard
	case m.width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// ShowFooter returns true if the terminal is tall enough to show the footer.
func (m Model) ShowFooter() bool {
	return m.height >= HeightMinimal
}

// Paused reports whether live sampling is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// togglePause flips the pause state and surfaces it in the status line.
func (m *Model) togglePause() {
	m.paused = !m.paused
	if m.paused {
		m.statusMsg = StatusPausedStyle.Render("paused")
	} else {
		m.statusMsg = ""
	}
}
