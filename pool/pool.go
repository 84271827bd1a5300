package pool

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
)

// Pool manages a fixed-size arena as an ordered sequence of runs.
// - runs is sorted by offset and covers [0, size) with no gaps or overlaps
// - no two adjacent runs are both free after Free returns
// - every error return leaves runs untouched.
type Pool struct {
	arena    []byte
	release  func() error // unmaps the arena for BackingMmap, nil for heap
	size     int
	strategy Strategy
	runs     []Run
	closed   bool

	log *slog.Logger

	// Statistics for Stats() and poolmetrics
	stats poolStats
}

// poolStats holds running counters. Derived figures are computed in Stats().
type poolStats struct {
	AllocCalls       uint64 // Successful Allocate() calls
	AllocFailures    uint64 // Allocate() calls that returned an error
	FreeCalls        uint64 // Successful Free() calls
	FreeFailures     uint64 // Free() calls that returned an error
	SplitCount       uint64 // Allocations that left a free tail
	CoalesceForward  uint64 // Merges with the following run
	CoalesceBackward uint64 // Merges with the preceding run
}

// New creates a pool managing size bytes.
//
// Parameters:
//   - size: arena capacity, 0 < size <= MaxPoolSize
//   - config: strategy, backing and logger (use nil for DefaultConfig)
func New(size int, config *Config) (*Pool, error) {
	if config == nil {
		config = &DefaultConfig
	}
	if size <= 0 || size > MaxPoolSize {
		return nil, fmt.Errorf("pool size %d: %w", size, ErrInvalidArgument)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	p := &Pool{
		size:     size,
		strategy: config.Strategy,
		runs:     make([]Run, 1, 16),
		log:      config.logger(),
	}
	p.runs[0] = Run{Offset: 0, Length: size}

	switch config.Backing {
	case BackingMmap:
		data, release, err := mapArena(size)
		if err != nil {
			return nil, err
		}
		p.arena, p.release = data, release
		p.log.Debug("arena mapped", "size", size)
	default:
		p.arena = make([]byte, size)
	}
	return p, nil
}

// Size returns the arena capacity in bytes.
func (p *Pool) Size() int { return p.size }

// Strategy returns the selection strategy fixed at construction.
func (p *Pool) Strategy() Strategy { return p.strategy }

// Allocate reserves n bytes and returns the handle of the new run.
func (p *Pool) Allocate(n int) (Handle, error) {
	if p.closed {
		p.stats.AllocFailures++
		return 0, ErrClosed
	}
	if n <= 0 {
		p.stats.AllocFailures++
		return 0, fmt.Errorf("allocate %d bytes: %w", n, ErrInvalidArgument)
	}

	i, ok := p.strategy.Select(p.runs, n)
	if !ok {
		p.stats.AllocFailures++
		return 0, fmt.Errorf("allocate %d bytes: %w", n, ErrOutOfMemory)
	}

	sel := p.runs[i]
	p.runs[i] = Run{Offset: sel.Offset, Length: n, Allocated: true}
	if rem := sel.Length - n; rem > 0 {
		p.runs = slices.Insert(p.runs, i+1, Run{Offset: sel.Offset + n, Length: rem})
		p.stats.SplitCount++
		p.log.Debug("split", "off", sel.Offset, "need", n, "remainder", rem)
	}
	p.stats.AllocCalls++
	return Handle(sel.Offset), nil
}

// Free releases the run named by h and merges it with free neighbors.
func (p *Pool) Free(h Handle) error {
	if p.closed {
		p.stats.FreeFailures++
		return ErrClosed
	}
	i, ok := p.find(h)
	if !ok {
		p.stats.FreeFailures++
		return fmt.Errorf("free 0x%X: %w", uint32(h), ErrInvalidHandle)
	}
	if !p.runs[i].Allocated {
		p.stats.FreeFailures++
		return fmt.Errorf("free 0x%X: %w", uint32(h), ErrDoubleFree)
	}

	p.runs[i].Allocated = false

	// Backward first: absorbing the predecessor shifts our index down by one.
	if i > 0 && !p.runs[i-1].Allocated {
		prev := p.runs[i-1]
		p.runs[i].Offset = prev.Offset
		p.runs[i].Length += prev.Length
		p.runs = slices.Delete(p.runs, i-1, i)
		i--
		p.stats.CoalesceBackward++
		p.log.Debug("coalesce backward", "off", p.runs[i].Offset, "size", p.runs[i].Length)
	}
	if i+1 < len(p.runs) && !p.runs[i+1].Allocated {
		p.runs[i].Length += p.runs[i+1].Length
		p.runs = slices.Delete(p.runs, i+1, i+2)
		p.stats.CoalesceForward++
		p.log.Debug("coalesce forward", "off", p.runs[i].Offset, "size", p.runs[i].Length)
	}
	p.stats.FreeCalls++
	return nil
}

// Bytes returns the arena region of the allocated run named by h. The slice
// capacity ends at the run boundary.
func (p *Pool) Bytes(h Handle) ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	i, ok := p.find(h)
	if !ok || !p.runs[i].Allocated {
		return nil, fmt.Errorf("bytes 0x%X: %w", uint32(h), ErrInvalidHandle)
	}
	r := p.runs[i]
	return p.arena[r.Offset:r.End():r.End()], nil
}

// Inspect returns a copy of the run sequence in offset order.
func (p *Pool) Inspect() []Run {
	return slices.Clone(p.runs)
}

// Close releases the arena. Further calls on the pool return ErrClosed.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.arena = nil
	if p.release != nil {
		release := p.release
		p.release = nil
		if err := release(); err != nil {
			return fmt.Errorf("release arena: %w", err)
		}
		p.log.Debug("arena unmapped", "size", p.size)
	}
	return nil
}

// find locates the run starting exactly at h. The whole sequence is searched.
func (p *Pool) find(h Handle) (int, bool) {
	if int64(h) >= int64(p.size) {
		return -1, false
	}
	return slices.BinarySearchFunc(p.runs, int(h), func(r Run, off int) int {
		return cmp.Compare(r.Offset, off)
	})
}
