// Package sampler reads CPU, memory, disk, network, and process metrics
// from the local host via gopsutil. A Sampler is stateful: CPU and network
// readings are deltas against the previous call, so one Sampler instance
// should live for the whole dashboard session.
package sampler

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"ratatop/internal/config"
	"ratatop/internal/logger"
)

// netCounters stores cumulative interface counters for rate calculation.
type netCounters struct {
	bytesRecv uint64
	bytesSent uint64
	at        time.Time
}

// Sampler collects system metrics from the local host.
type Sampler struct {
	cfg *config.Config
	log logger.Logger

	mu       sync.Mutex
	prevNet  map[string]netCounters
	tick     int
	lastProc []ProcessEntry
	procs    *processCache
}

// New creates a sampler for the given configuration.
func New(cfg *config.Config) *Sampler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Sampler{
		cfg:     cfg,
		log:     logger.NewEnvLogger("[sampler]"),
		prevNet: make(map[string]netCounters),
		procs:   newProcessCache(),
	}
}

// SetLogger replaces the sampler's logger. Useful for tests.
func (s *Sampler) SetLogger(l logger.Logger) {
	s.log = l
}

// Sample captures a snapshot of all subsystems. Individual subsystem
// failures degrade to warnings rather than failing the whole snapshot, so
// the dashboard keeps rendering whatever still works.
func (s *Sampler) Sample(ctx context.Context) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	snap := &Snapshot{Taken: now}

	s.sampleCPU(ctx, snap)
	s.sampleMemory(ctx, snap)
	s.sampleDisks(ctx, snap)
	s.sampleNetwork(ctx, snap, now)
	s.sampleProcesses(ctx, snap)

	s.tick++
	return snap
}

func (s *Sampler) sampleCPU(ctx context.Context, snap *Snapshot) {
	// Zero interval compares against the previous call instead of blocking.
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(total) == 0 {
		s.warn(snap, "cpu", err)
		return
	}
	snap.CPU.Percent = total[0]

	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		s.log.Debug("per-core cpu unavailable: %v", err)
	} else {
		snap.CPU.PerCore = perCore
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		s.log.Debug("cpu count unavailable: %v", err)
	} else {
		snap.CPU.Cores = cores
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		snap.CPU.LoadAvg = [3]float64{avg.Load1, avg.Load5, avg.Load15}
	}
}

func (s *Sampler) sampleMemory(ctx context.Context, snap *Snapshot) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		s.warn(snap, "memory", err)
		return
	}
	snap.Memory = MemoryStats{
		UsedBytes:      vm.Used,
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
		UsedPercent:    vm.UsedPercent,
	}
}

func (s *Sampler) sampleDisks(ctx context.Context, snap *Snapshot) {
	partitions, err := disk.PartitionsWithContext(ctx, s.cfg.Disk.AllDevices)
	if err != nil {
		s.warn(snap, "disk", err)
		return
	}

	seen := make(map[string]bool)
	for _, part := range partitions {
		if s.skipPartition(part.Mountpoint, part.Fstype) {
			continue
		}
		// The same device can appear under several mountpoints (bind
		// mounts); report it once.
		if seen[part.Device] {
			continue
		}

		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			s.log.Debug("disk usage for %s unavailable: %v", part.Mountpoint, err)
			continue
		}
		if usage.Total == 0 {
			continue
		}
		seen[part.Device] = true

		snap.Disks = append(snap.Disks, DiskStats{
			Device:      part.Device,
			Mount:       part.Mountpoint,
			Fstype:      part.Fstype,
			UsedBytes:   usage.Used,
			TotalBytes:  usage.Total,
			UsedPercent: usage.UsedPercent,
		})
	}

	sort.Slice(snap.Disks, func(i, j int) bool {
		return snap.Disks[i].Mount < snap.Disks[j].Mount
	})
}

// skipPartition filters pseudo-filesystems and excluded mountpoints.
func (s *Sampler) skipPartition(mount, fstype string) bool {
	for _, excluded := range s.cfg.Disk.ExcludeFstypes {
		if fstype == excluded {
			return true
		}
	}
	for _, prefix := range s.cfg.Disk.ExcludeMounts {
		if strings.HasPrefix(mount, prefix) {
			return true
		}
	}
	return false
}

func (s *Sampler) sampleNetwork(ctx context.Context, snap *Snapshot, now time.Time) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		s.warn(snap, "network", err)
		return
	}

	for _, c := range counters {
		if s.skipInterface(c.Name) {
			continue
		}

		stat := NetStats{
			Name:        c.Name,
			BytesRecv:   c.BytesRecv,
			BytesSent:   c.BytesSent,
			PacketsRecv: c.PacketsRecv,
			PacketsSent: c.PacketsSent,
		}

		if prev, ok := s.prevNet[c.Name]; ok {
			elapsed := now.Sub(prev.at).Seconds()
			if elapsed > 0 {
				stat.RecvRate = counterRate(prev.bytesRecv, c.BytesRecv, elapsed)
				stat.SendRate = counterRate(prev.bytesSent, c.BytesSent, elapsed)
			}
		}
		s.prevNet[c.Name] = netCounters{
			bytesRecv: c.BytesRecv,
			bytesSent: c.BytesSent,
			at:        now,
		}

		snap.Network = append(snap.Network, stat)
	}

	sort.Slice(snap.Network, func(i, j int) bool {
		return snap.Network[i].Name < snap.Network[j].Name
	})
}

// skipInterface filters loopback and excluded interfaces.
func (s *Sampler) skipInterface(name string) bool {
	if s.cfg.Network.HideLoopback && (name == "lo" || name == "lo0") {
		return true
	}
	for _, excluded := range s.cfg.Network.Exclude {
		if name == excluded {
			return true
		}
	}
	return false
}

// counterRate computes bytes per second from cumulative counters.
// A counter reset (reboot of the interface, wraparound) clamps to zero.
func counterRate(prev, curr uint64, elapsedSec float64) float64 {
	if curr < prev {
		return 0
	}
	return float64(curr-prev) / elapsedSec
}

func (s *Sampler) sampleProcesses(ctx context.Context, snap *Snapshot) {
	// Process enumeration is expensive, so it runs every Nth tick and the
	// previous table is carried forward in between.
	if s.tick%s.cfg.ProcessRefreshEvery != 0 && s.lastProc != nil {
		snap.Processes = s.lastProc
		return
	}

	procs, err := s.procs.list(ctx)
	if err != nil {
		s.warn(snap, "processes", err)
		snap.Processes = s.lastProc
		return
	}

	// Highest CPU first, matching the default table order.
	sort.Slice(procs, func(i, j int) bool {
		return procs[i].CPUPercent > procs[j].CPUPercent
	})
	if s.cfg.TopProcesses > 0 && len(procs) > s.cfg.TopProcesses {
		procs = procs[:s.cfg.TopProcesses]
	}

	s.lastProc = procs
	snap.Processes = procs
	snap.ProcessesRefreshed = true
}

func (s *Sampler) warn(snap *Snapshot, subsystem string, err error) {
	msg := subsystem + " unavailable"
	if err != nil {
		msg = subsystem + ": " + err.Error()
	}
	snap.Warnings = append(snap.Warnings, msg)
	s.log.Warn("%s", msg)
}
