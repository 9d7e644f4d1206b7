// Package dashboard implements a real-time TUI resource monitor for the
// local machine.
//
// The dashboard displays CPU, memory, disk, network, and process statistics
// with color-coded severity and a responsive layout that adapts to terminal
// size.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds application state (snapshot, history, selection, filters)
//   - Update: Processes messages (keystrokes, tick events, new snapshots)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the configured interval (default 2s)
//  2. sampleCmd() captures a snapshot via the sampler in a background command
//  3. snapshotMsg arrives with the result, updating Model.snapshot and History
//  4. View() re-renders the dashboard with new data
//
// Pausing with 'p' suspends step 2 while keeping the tick loop alive, so
// resuming picks up the normal cadence immediately.
//
// # Layout Modes
//
// The dashboard adapts to terminal width with three layout modes:
//
//	LayoutMinimal  (<60 cols)   - Stacked panels, usage bars instead of
//	                              graphs, abbreviated titles
//	LayoutCompact  (60-100)     - Stacked panels with graphs, abbreviated
//	                              titles
//	LayoutStandard (100+)       - Full grid: CPU row, disks+memory row,
//	                              network+processes row
//
// # History and Sparklines
//
// The History type stores metric values in ring buffers for sparkline
// rendering: CPU percentage, memory percentage, and per-interface network
// throughput. Default history size is 60 samples (2 minutes at 2s refresh).
package dashboard
