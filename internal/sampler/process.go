package sampler

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"

	"ratatop/internal/errors"
)

// processCache keeps process handles alive between snapshots so gopsutil's
// CPUPercent measures usage over the sampling interval instead of over the
// whole process lifetime.
type processCache struct {
	handles map[int32]*process.Process
}

func newProcessCache() *processCache {
	return &processCache{handles: make(map[int32]*process.Process)}
}

// list enumerates all processes and returns one ProcessEntry per process.
// Processes that disappear mid-enumeration are skipped silently.
func (c *processCache) list(ctx context.Context) ([]ProcessEntry, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ProcessEntry, 0, len(procs))
	alive := make(map[int32]bool, len(procs))

	for _, p := range procs {
		alive[p.Pid] = true

		// Reuse the cached handle so CPU deltas accumulate across calls.
		handle, ok := c.handles[p.Pid]
		if !ok {
			handle = p
			c.handles[p.Pid] = p
		}

		name, err := handle.NameWithContext(ctx)
		if err != nil {
			// Gone already, or a kernel thread we cannot inspect.
			continue
		}

		entry := ProcessEntry{
			PID:  p.Pid,
			Name: name,
		}

		if cpuPct, err := handle.CPUPercentWithContext(ctx); err == nil {
			entry.CPUPercent = cpuPct
		}
		if memPct, err := handle.MemoryPercentWithContext(ctx); err == nil {
			entry.MemoryPercent = memPct
		}
		if memInfo, err := handle.MemoryInfoWithContext(ctx); err == nil && memInfo != nil {
			entry.MemoryBytes = memInfo.RSS
		}
		if user, err := handle.UsernameWithContext(ctx); err == nil {
			entry.Username = user
		}
		if status, err := handle.StatusWithContext(ctx); err == nil && len(status) > 0 {
			entry.State = status[0]
		}

		entries = append(entries, entry)
	}

	// Drop handles for exited processes so the cache doesn't grow forever.
	for pid := range c.handles {
		if !alive[pid] {
			delete(c.handles, pid)
		}
	}

	return entries, nil
}

// Terminate sends SIGTERM to the process with the given pid.
func (s *Sampler) Terminate(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			fmt.Sprintf("Process %d not found", pid),
			"It may have already exited; refresh the process table")
	}

	if err := p.TerminateWithContext(ctx); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			fmt.Sprintf("Cannot terminate process %d", pid),
			"You may not own this process; try running with elevated privileges")
	}
	return nil
}

// Kill sends SIGKILL to the process with the given pid.
// Terminate is the polite default; Kill is for processes that ignore it.
func (s *Sampler) Kill(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			fmt.Sprintf("Process %d not found", pid),
			"It may have already exited; refresh the process table")
	}

	if err := p.KillWithContext(ctx); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			fmt.Sprintf("Cannot kill process %d", pid),
			"You may not own this process; try running with elevated privileges")
	}
	return nil
}
