package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratatop/internal/sampler"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func modelWithProcs(t *testing.T) Model {
	t.Helper()
	m := NewModel(nil, nil)
	m.snapshot = &sampler.Snapshot{Processes: testProcs()}
	return m
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := modelWithProcs(t)
			handled, cmd := m.HandleKeyMsg(keyMsg(key))
			assert.True(t, handled)
			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestHandleKeyMsg_Navigation(t *testing.T) {
	m := modelWithProcs(t)
	assert.Equal(t, 0, m.selected)

	for _, key := range []string{"j", "down", "j"} {
		handled, _ := m.HandleKeyMsg(keyMsg(key))
		assert.True(t, handled)
	}
	assert.Equal(t, 3, m.selected)

	// Clamped at last row
	m.HandleKeyMsg(keyMsg("j"))
	assert.Equal(t, 3, m.selected)

	m.HandleKeyMsg(keyMsg("k"))
	assert.Equal(t, 2, m.selected)

	m.HandleKeyMsg(keyMsg("home"))
	assert.Equal(t, 0, m.selected)

	// Clamped at first row
	m.HandleKeyMsg(keyMsg("up"))
	assert.Equal(t, 0, m.selected)

	m.HandleKeyMsg(keyMsg("end"))
	assert.Equal(t, 3, m.selected)
}

func TestHandleKeyMsg_Paging(t *testing.T) {
	m := modelWithProcs(t)

	m.HandleKeyMsg(keyMsg("pgdown"))
	assert.Equal(t, 3, m.selected) // Clamped to table size

	m.HandleKeyMsg(keyMsg("pgup"))
	assert.Equal(t, 0, m.selected)
}

func TestHandleKeyMsg_CyclePanel(t *testing.T) {
	m := modelWithProcs(t)
	assert.Equal(t, PanelProcesses, m.focused)

	m.HandleKeyMsg(keyMsg("tab"))
	assert.Equal(t, PanelCPU, m.focused)

	m.HandleKeyMsg(keyMsg("tab"))
	assert.Equal(t, PanelDisks, m.focused)
}

func TestHandleKeyMsg_CycleSort(t *testing.T) {
	m := modelWithProcs(t)
	assert.Equal(t, SortByCPU, m.sortColumn)
	assert.True(t, m.sortDesc)

	m.HandleKeyMsg(keyMsg("s"))
	assert.Equal(t, SortByMemory, m.sortColumn)
	assert.True(t, m.sortDesc)

	m.HandleKeyMsg(keyMsg("s"))
	assert.Equal(t, SortByPID, m.sortColumn)
	assert.False(t, m.sortDesc)

	m.HandleKeyMsg(keyMsg("s"))
	assert.Equal(t, SortByName, m.sortColumn)
	assert.False(t, m.sortDesc)
}

func TestHandleKeyMsg_Pause(t *testing.T) {
	m := modelWithProcs(t)

	m.HandleKeyMsg(keyMsg("p"))
	assert.True(t, m.paused)
	assert.NotEmpty(t, m.statusMsg)

	m.HandleKeyMsg(keyMsg("p"))
	assert.False(t, m.paused)
	assert.Empty(t, m.statusMsg)
}

func TestHandleKeyMsg_Search(t *testing.T) {
	m := modelWithProcs(t)

	handled, _ := m.HandleKeyMsg(keyMsg("/"))
	assert.True(t, handled)
	assert.True(t, m.searching)

	// Typed runes go to the search input, not the normal bindings
	m.HandleKeyMsg(keyMsg("q"))
	assert.False(t, m.quitting)
	assert.Equal(t, "q", m.searchInput.Value())

	// Enter commits the query
	m.HandleKeyMsg(keyMsg("enter"))
	assert.False(t, m.searching)
	assert.Equal(t, "q", m.query)

	// Esc clears the committed query
	m.HandleKeyMsg(keyMsg("esc"))
	assert.Empty(t, m.query)
}

func TestHandleKeyMsg_SearchCancel(t *testing.T) {
	m := modelWithProcs(t)

	m.HandleKeyMsg(keyMsg("/"))
	m.HandleKeyMsg(keyMsg("n"))
	m.HandleKeyMsg(keyMsg("esc"))

	assert.False(t, m.searching)
	assert.Empty(t, m.query)
	assert.Empty(t, m.searchInput.Value())
}

func TestHandleKeyMsg_SearchQuitStillWorks(t *testing.T) {
	m := modelWithProcs(t)

	m.HandleKeyMsg(keyMsg("/"))
	handled, cmd := m.HandleKeyMsg(keyMsg("ctrl+c"))
	assert.True(t, handled)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestHandleKeyMsg_KillFlow(t *testing.T) {
	t.Run("confirm sends kill command", func(t *testing.T) {
		m := modelWithProcs(t)
		m.selected = 0

		m.HandleKeyMsg(keyMsg("x"))
		require.NotNil(t, m.pendingKill)
		assert.Equal(t, int32(400), m.pendingKill.PID)

		handled, cmd := m.HandleKeyMsg(keyMsg("y"))
		assert.True(t, handled)
		assert.Nil(t, m.pendingKill)
		assert.NotNil(t, cmd)
	})

	t.Run("any other key cancels", func(t *testing.T) {
		m := modelWithProcs(t)
		m.HandleKeyMsg(keyMsg("x"))
		require.NotNil(t, m.pendingKill)

		handled, cmd := m.HandleKeyMsg(keyMsg("n"))
		assert.True(t, handled)
		assert.Nil(t, m.pendingKill)
		assert.Nil(t, cmd)
	})

	t.Run("kill with no selection is a no-op", func(t *testing.T) {
		m := NewModel(nil, nil)
		m.HandleKeyMsg(keyMsg("x"))
		assert.Nil(t, m.pendingKill)
	})
}

func TestHandleKeyMsg_HelpToggle(t *testing.T) {
	m := modelWithProcs(t)

	m.HandleKeyMsg(keyMsg("?"))
	assert.True(t, m.showHelp)

	// Esc closes help
	m.HandleKeyMsg(keyMsg("esc"))
	assert.False(t, m.showHelp)

	m.HandleKeyMsg(keyMsg("?"))
	m.HandleKeyMsg(keyMsg("?"))
	assert.False(t, m.showHelp)
}

func TestHandleKeyMsg_Refresh(t *testing.T) {
	m := modelWithProcs(t)

	handled, cmd := m.HandleKeyMsg(keyMsg("r"))
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.True(t, m.sampling)

	// A second refresh while one is in flight is ignored
	handled, cmd = m.HandleKeyMsg(keyMsg("r"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
}

func TestHandleKeyMsg_Unhandled(t *testing.T) {
	m := modelWithProcs(t)
	handled, _ := m.HandleKeyMsg(keyMsg("z"))
	assert.False(t, handled)
}
