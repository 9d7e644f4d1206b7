package dashboard

import (
	"sort"
	"strconv"
	"strings"

	"ratatop/internal/sampler"
)

// ProcessSort defines which column orders the process table.
type ProcessSort int

const (
	SortByCPU ProcessSort = iota
	SortByMemory
	SortByPID
	SortByName
)

// String returns a human-readable label for the sort column.
func (s ProcessSort) String() string {
	switch s {
	case SortByCPU:
		return "CPU"
	case SortByMemory:
		return "MEM"
	case SortByPID:
		return "PID"
	case SortByName:
		return "NAME"
	default:
		return "CPU"
	}
}

// Next cycles to the next sort column.
func (s ProcessSort) Next() ProcessSort {
	return ProcessSort((int(s) + 1) % 4)
}

// FilterProcesses returns the processes matching the search query.
// Matching is case-insensitive against name, username, and pid.
// An empty query matches everything.
func FilterProcesses(procs []sampler.ProcessEntry, query string) []sampler.ProcessEntry {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return procs
	}

	var matched []sampler.ProcessEntry
	for _, p := range procs {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Username), query) ||
			strings.Contains(strconv.Itoa(int(p.PID)), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SortProcesses returns a sorted copy of the process list. The input is
// never mutated; snapshots are immutable once captured.
func SortProcesses(procs []sampler.ProcessEntry, column ProcessSort, descending bool) []sampler.ProcessEntry {
	sorted := make([]sampler.ProcessEntry, len(procs))
	copy(sorted, procs)

	var less func(i, j int) bool
	switch column {
	case SortByCPU:
		less = func(i, j int) bool { return sorted[i].CPUPercent < sorted[j].CPUPercent }
	case SortByMemory:
		less = func(i, j int) bool { return sorted[i].MemoryBytes < sorted[j].MemoryBytes }
	case SortByPID:
		less = func(i, j int) bool { return sorted[i].PID < sorted[j].PID }
	case SortByName:
		less = func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		}
	default:
		less = func(i, j int) bool { return sorted[i].CPUPercent < sorted[j].CPUPercent }
	}

	if descending {
		orig := less
		less = func(i, j int) bool { return orig(j, i) }
	}

	sort.SliceStable(sorted, less)
	return sorted
}

// visibleProcesses applies the current filter and sort to the snapshot's
// process list.
func (m Model) visibleProcesses() []sampler.ProcessEntry {
	if m.snapshot == nil {
		return nil
	}
	filtered := FilterProcesses(m.snapshot.Processes, m.activeQuery())
	return SortProcesses(filtered, m.sortColumn, m.sortDesc)
}

// activeQuery returns the filter currently applied to the table: the live
// input while search mode is open, otherwise the committed query.
func (m Model) activeQuery() string {
	if m.searching {
		return m.searchInput.Value()
	}
	return m.query
}

// SelectedProcess returns the process under the cursor, or nil.
func (m Model) SelectedProcess() *sampler.ProcessEntry {
	procs := m.visibleProcesses()
	if m.selected < 0 || m.selected >= len(procs) {
		return nil
	}
	p := procs[m.selected]
	return &p
}

// clampSelection keeps the cursor and scroll offset inside the filtered
// table after a refresh or a filter change.
func (m *Model) clampSelection() {
	count := len(m.visibleProcesses())
	if count == 0 {
		m.selected = 0
		m.scroll = 0
		return
	}
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.scroll > m.selected {
		m.scroll = m.selected
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// scrollIntoView adjusts the scroll offset so the selected row is inside a
// window of the given height.
func (m *Model) scrollIntoView(height int) {
	if height < 1 {
		height = 1
	}
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+height {
		m.scroll = m.selected - height + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
