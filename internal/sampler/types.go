package sampler

import "time"

// Snapshot is a point-in-time reading of all monitored subsystems.
// It is immutable once captured and replaced wholesale on each refresh tick.
type Snapshot struct {
	Taken     time.Time      `json:"taken"`
	CPU       CPUStats       `json:"cpu"`
	Memory    MemoryStats    `json:"memory"`
	Disks     []DiskStats    `json:"disks"`
	Network   []NetStats     `json:"network"`
	Processes []ProcessEntry `json:"processes"`

	// ProcessesRefreshed reports whether this snapshot re-enumerated the
	// process table or carried the previous one forward.
	ProcessesRefreshed bool `json:"processes_refreshed"`

	// Warnings lists subsystems that failed to sample this tick.
	// A snapshot with warnings is still usable; the failed panel just
	// shows stale or empty data.
	Warnings []string `json:"warnings,omitempty"`
}

// CPUStats contains CPU usage information.
type CPUStats struct {
	Percent float64    `json:"percent"`  // total usage across all cores
	PerCore []float64  `json:"per_core"` // usage per logical core
	Cores   int        `json:"cores"`
	LoadAvg [3]float64 `json:"load_avg"` // 1, 5, 15 minute load averages
}

// MemoryStats contains memory usage information.
type MemoryStats struct {
	UsedBytes      uint64  `json:"used_bytes"`
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedPercent    float64 `json:"used_percent"`
}

// DiskStats contains usage for a single mounted volume.
type DiskStats struct {
	Device      string  `json:"device"`
	Mount       string  `json:"mount"`
	Fstype      string  `json:"fstype"`
	UsedBytes   uint64  `json:"used_bytes"`
	TotalBytes  uint64  `json:"total_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// NetStats contains I/O statistics for a single network interface.
// Byte and packet counters are cumulative since boot; the rates are
// derived from the delta against the previous snapshot.
type NetStats struct {
	Name        string  `json:"name"`
	BytesRecv   uint64  `json:"bytes_recv"`
	BytesSent   uint64  `json:"bytes_sent"`
	PacketsRecv uint64  `json:"packets_recv"`
	PacketsSent uint64  `json:"packets_sent"`
	RecvRate    float64 `json:"recv_rate"` // bytes per second
	SendRate    float64 `json:"send_rate"` // bytes per second
}

// ProcessEntry describes a single process in the snapshot.
type ProcessEntry struct {
	PID           int32   `json:"pid"`
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryBytes   uint64  `json:"memory_bytes"`
	MemoryPercent float32 `json:"memory_percent"`
	State         string  `json:"state"`
}
