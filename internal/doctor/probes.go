package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"ratatop/internal/util"
)

// probeTimeout bounds each metric probe so a hung /proc read cannot
// stall the whole diagnostic run.
const probeTimeout = 5 * time.Second

// CPUProbeCheck verifies CPU counters are readable.
type CPUProbeCheck struct{}

func (c *CPUProbeCheck) Name() string     { return "cpu_probe" }
func (c *CPUProbeCheck) Category() string { return "SYSTEM" }

func (c *CPUProbeCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot read CPU info: %v", err),
			Suggestion: "Check that /proc is mounted and readable",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("CPU: %d %s", cores, util.Pluralize(cores, "core", "cores")),
	}
}

func (c *CPUProbeCheck) Fix() error { return nil }

// MemoryProbeCheck verifies memory counters are readable.
type MemoryProbeCheck struct{}

func (c *MemoryProbeCheck) Name() string     { return "memory_probe" }
func (c *MemoryProbeCheck) Category() string { return "SYSTEM" }

func (c *MemoryProbeCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot read memory info: %v", err),
			Suggestion: "Check that /proc/meminfo is readable",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Memory: %.1f GiB total", float64(vm.Total)/(1024*1024*1024)),
	}
}

func (c *MemoryProbeCheck) Fix() error { return nil }

// DiskProbeCheck verifies partitions can be enumerated.
type DiskProbeCheck struct{}

func (c *DiskProbeCheck) Name() string     { return "disk_probe" }
func (c *DiskProbeCheck) Category() string { return "SYSTEM" }

func (c *DiskProbeCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot enumerate partitions: %v", err),
			Suggestion: "Check that /proc/mounts is readable",
		}
	}

	if len(parts) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No partitions found",
			Suggestion: "The disk panel will be empty; check mount visibility in this environment",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Disks: %d %s", len(parts), util.Pluralize(len(parts), "partition", "partitions")),
	}
}

func (c *DiskProbeCheck) Fix() error { return nil }

// NetworkProbeCheck verifies interface counters are readable.
type NetworkProbeCheck struct{}

func (c *NetworkProbeCheck) Name() string     { return "network_probe" }
func (c *NetworkProbeCheck) Category() string { return "SYSTEM" }

func (c *NetworkProbeCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot read interface counters: %v", err),
			Suggestion: "Check that /proc/net/dev is readable",
		}
	}

	names := make([]string, 0, len(counters))
	for _, ctr := range counters {
		names = append(names, ctr.Name)
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Network interfaces: %s", util.JoinOrNone(names)),
	}
}

func (c *NetworkProbeCheck) Fix() error { return nil }

// ProcessProbeCheck verifies the process table is listable. On hardened
// systems /proc may be mounted with hidepid, which hides other users'
// processes without failing outright.
type ProcessProbeCheck struct{}

func (c *ProcessProbeCheck) Name() string     { return "process_probe" }
func (c *ProcessProbeCheck) Category() string { return "SYSTEM" }

func (c *ProcessProbeCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot list processes: %v", err),
			Suggestion: "Check that /proc is readable",
		}
	}

	if len(pids) < 2 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Only %d process visible", len(pids)),
			Suggestion: "/proc may be mounted with hidepid; the process table will be incomplete",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Processes: %d visible", len(pids)),
	}
}

func (c *ProcessProbeCheck) Fix() error { return nil }

// NewSystemChecks creates all metric probe checks.
func NewSystemChecks() []Check {
	return []Check{
		&CPUProbeCheck{},
		&MemoryProbeCheck{},
		&DiskProbeCheck{},
		&NetworkProbeCheck{},
		&ProcessProbeCheck{},
	}
}
