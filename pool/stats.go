package pool

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time view of pool usage and operation counters.
type Stats struct {
	// Layout
	Capacity      int // Arena size in bytes
	Allocated     int // Bytes in allocated runs
	Free          int // Bytes in free runs
	LargestFree   int // Length of the largest free run
	FreeRuns      int // Number of free runs
	AllocatedRuns int // Number of allocated runs

	// Counters since construction
	AllocCalls       uint64
	AllocFailures    uint64
	FreeCalls        uint64
	FreeFailures     uint64
	SplitCount       uint64
	CoalesceForward  uint64
	CoalesceBackward uint64
}

// Stats walks the run sequence and returns current figures.
func (p *Pool) Stats() Stats {
	s := Stats{
		Capacity:         p.size,
		AllocCalls:       p.stats.AllocCalls,
		AllocFailures:    p.stats.AllocFailures,
		FreeCalls:        p.stats.FreeCalls,
		FreeFailures:     p.stats.FreeFailures,
		SplitCount:       p.stats.SplitCount,
		CoalesceForward:  p.stats.CoalesceForward,
		CoalesceBackward: p.stats.CoalesceBackward,
	}
	for _, r := range p.runs {
		if r.Allocated {
			s.Allocated += r.Length
			s.AllocatedRuns++
			continue
		}
		s.Free += r.Length
		s.FreeRuns++
		s.LargestFree = max(s.LargestFree, r.Length)
	}
	return s
}

// Fragmentation is the share of free bytes outside the largest free run.
// 0 means all free memory is contiguous; it approaches 1 as free memory
// scatters into small runs.
func (s Stats) Fragmentation() float64 {
	if s.Free == 0 {
		return 0
	}
	return 1 - float64(s.LargestFree)/float64(s.Free)
}

// String renders a one-line summary with human readable sizes.
func (s Stats) String() string {
	return fmt.Sprintf(
		"capacity=%s allocated=%s free=%s largest=%s runs=%d/%d frag=%.1f%% allocs=%d frees=%d",
		humanize.IBytes(uint64(s.Capacity)),
		humanize.IBytes(uint64(s.Allocated)),
		humanize.IBytes(uint64(s.Free)),
		humanize.IBytes(uint64(s.LargestFree)),
		s.AllocatedRuns,
		s.FreeRuns,
		100*s.Fragmentation(),
		s.AllocCalls,
		s.FreeCalls,
	)
}
