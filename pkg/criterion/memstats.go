package criterion

import (
	"runtime"
	"sync"
)

// MemSample is the allocation delta between two MemCollector samples, the
// role the teacher's proc.Snapshot played for power estimation: a resource
// reading an accumulator turns into a per-op figure (SPEC_FULL §4.10).
type MemSample struct {
	AllocsDelta uint64
	BytesDelta  uint64
}

// MemCollector samples cumulative allocation counters. Structurally
// grounded on pkg/system/proc's Collector interface in the teacher repo
// (single Sample method returning a snapshot struct), adapted from per-PID
// /proc reads to a runtime.MemStats delta — no backend detection is needed
// here because runtime.MemStats is always available and cross-platform,
// unlike the teacher's cgroup v1/v2 split.
type MemCollector interface {
	Sample() (MemSample, error)
}

type runtimeMemCollector struct {
	mu          sync.Mutex
	lastMallocs uint64
	lastBytes   uint64
}

// NewRuntimeMemCollector returns a MemCollector backed by runtime.MemStats.
func NewRuntimeMemCollector() MemCollector {
	return &runtimeMemCollector{}
}

func (c *runtimeMemCollector) Sample() (MemSample, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.mu.Lock()
	defer c.mu.Unlock()

	sample := MemSample{
		AllocsDelta: deltaU64(m.Mallocs, c.lastMallocs),
		BytesDelta:  deltaU64(m.TotalAlloc, c.lastBytes),
	}
	c.lastMallocs = m.Mallocs
	c.lastBytes = m.TotalAlloc
	return sample, nil
}

// deltaU64 guards against a counter that appears to have gone backwards
// (a wrapped 64-bit counter on a long-running process) by returning 0;
// on a collector's first read prev is 0, so the full count is returned,
// the same pattern pkg/system/proc/helper.go used for /proc counter deltas.
func deltaU64(now, prev uint64) uint64 {
	if now >= prev {
		return now - prev
	}
	return 0
}
