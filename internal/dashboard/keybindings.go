package dashboard

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings as constants for consistency.
const (
	KeyQuit         = "q"
	KeyQuitAlt      = "ctrl+c"
	KeyRefresh      = "r"
	KeyCycleSort    = "s"
	KeyCyclePanel   = "tab"
	KeySelectPrev   = "up"
	KeySelectPrevK  = "k"
	KeySelectNext   = "down"
	KeySelectNextJ  = "j"
	KeySelectFirst  = "home"
	KeySelectLast   = "end"
	KeyPageUp       = "pgup"
	KeyPageDown     = "pgdown"
	KeySearch       = "/"
	KeyConfirm      = "enter"
	KeyCancel       = "esc"
	KeyPause        = "p"
	KeyKill         = "x"
	KeyKillConfirm  = "y"
	KeyToggleHelp   = "?"
)

// pageSize is how many rows pgup/pgdown move the cursor.
const pageSize = 10

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Search mode captures everything except enter/esc/ctrl+c.
	if m.searching {
		return m.handleSearchKey(msg)
	}

	// A pending kill confirmation captures the next key.
	if m.pendingKill != nil {
		return m.handleKillConfirmKey(key)
	}

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCancel {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		if m.sampling {
			return true, nil
		}
		m.sampling = true
		return true, m.sampleCmd()

	case KeyPause:
		m.togglePause()
		return true, nil

	case KeyCyclePanel:
		m.focused = m.focused.Next()
		return true, nil

	case KeyCycleSort:
		m.sortColumn = m.sortColumn.Next()
		// Name and PID read naturally ascending; usage columns descending.
		m.sortDesc = m.sortColumn == SortByCPU || m.sortColumn == SortByMemory
		m.clampSelection()
		return true, nil

	case KeySearch:
		m.searching = true
		m.searchInput.SetValue(m.query)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return true, textinput.Blink

	case KeyCancel:
		if m.query != "" {
			m.query = ""
			m.clampSelection()
		}
		return true, nil

	case KeyKill:
		if p := m.SelectedProcess(); p != nil {
			m.pendingKill = p
		}
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.visibleProcesses())-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		m.scroll = 0
		return true, nil

	case KeySelectLast:
		if n := len(m.visibleProcesses()); n > 0 {
			m.selected = n - 1
		}
		return true, nil

	case KeyPageUp:
		m.selected -= pageSize
		if m.selected < 0 {
			m.selected = 0
		}
		return true, nil

	case KeyPageDown:
		m.selected += pageSize
		if n := len(m.visibleProcesses()); m.selected >= n {
			m.selected = n - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return true, nil
	}

	return false, nil
}

// handleSearchKey routes input to the search field while search mode is open.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyConfirm:
		m.query = m.searchInput.Value()
		m.searching = false
		m.searchInput.Blur()
		m.clampSelection()
		return true, nil

	case KeyCancel:
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.clampSelection()
		return true, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.clampSelection()
	return true, cmd
}

// handleKillConfirmKey resolves a pending terminate confirmation.
func (m *Model) handleKillConfirmKey(key string) (bool, tea.Cmd) {
	target := m.pendingKill
	m.pendingKill = nil

	switch key {
	case KeyKillConfirm:
		return true, m.killCmd(*target)
	case KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit
	}

	// Any other key cancels.
	return true, nil
}
