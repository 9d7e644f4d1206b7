package dashboard

import (
	"sync"

	"ratatop/internal/sampler"
)

// DefaultHistorySize is the default number of data points to retain per metric.
const DefaultHistorySize = 60

// History retains recent metric samples in fixed-size ring buffers for
// graph rendering. It is thread-safe; snapshots arrive from Bubble Tea
// commands while the view reads concurrently.
type History struct {
	mu      sync.RWMutex
	size    int
	cpu     *ringBuffer
	perCore []*ringBuffer
	memory  *ringBuffer
	network map[string]*netHistory
}

// netHistory holds per-interface throughput history in bytes per second.
type netHistory struct {
	recv *ringBuffer
	send *ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:    size,
		cpu:     newRingBuffer(size),
		memory:  newRingBuffer(size),
		network: make(map[string]*netHistory),
	}
}

// Push records the metrics of a snapshot.
func (h *History) Push(snap *sampler.Snapshot) {
	if snap == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.cpu.push(snap.CPU.Percent)
	h.memory.push(snap.Memory.UsedPercent)

	// Core buffers are allocated on first sight so the tracker adapts to
	// whatever core count the sampler reports.
	for i, v := range snap.CPU.PerCore {
		if i >= len(h.perCore) {
			h.perCore = append(h.perCore, newRingBuffer(h.size))
		}
		h.perCore[i].push(v)
	}

	for _, iface := range snap.Network {
		hist, ok := h.network[iface.Name]
		if !ok {
			hist = &netHistory{
				recv: newRingBuffer(h.size),
				send: newRingBuffer(h.size),
			}
			h.network[iface.Name] = hist
		}
		hist.recv.push(iface.RecvRate)
		hist.send.push(iface.SendRate)
	}
}

// CPU returns the last count CPU percentage values in chronological order.
// Returns fewer values if not enough history is available.
func (h *History) CPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.getLast(count)
}

// CPUCore returns the last count usage values for one logical core in
// chronological order. Returns nil for an unknown core index.
func (h *History) CPUCore(core, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if core < 0 || core >= len(h.perCore) {
		return nil
	}
	return h.perCore[core].getLast(count)
}

// CoreCount returns how many per-core series have been observed.
func (h *History) CoreCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.perCore)
}

// Memory returns the last count memory percentage values in chronological order.
func (h *History) Memory(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.memory.getLast(count)
}

// NetworkRecv returns the last count receive rates for the interface.
func (h *History) NetworkRecv(iface string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	hist, ok := h.network[iface]
	if !ok {
		return nil
	}
	return hist.recv.getLast(count)
}

// NetworkSend returns the last count send rates for the interface.
func (h *History) NetworkSend(iface string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	hist, ok := h.network[iface]
	if !ok {
		return nil
	}
	return hist.send.getLast(count)
}

// Count returns the number of CPU data points stored.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.count
}

// Clear removes all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cpu = newRingBuffer(h.size)
	h.perCore = nil
	h.memory = newRingBuffer(h.size)
	h.network = make(map[string]*netHistory)
}

// newRingBuffer creates a ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is
	// at head-1. We want count values ending at head-1.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
