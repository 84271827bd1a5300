// Package pool provides a fixed-size memory pool with pluggable block
// selection.
//
// # Overview
//
// A Pool owns a single contiguous byte arena, allocated once when the pool is
// created and never resized. The arena is partitioned into runs: maximal spans
// that are either allocated or free. Runs are kept in ascending offset order
// and always cover the whole arena exactly once.
//
//	p, err := pool.New(100, &pool.Config{Strategy: pool.BestFit})
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	h, err := p.Allocate(9)
//	if err != nil {
//	    return err // errors.Is(err, pool.ErrOutOfMemory) when full
//	}
//	buf, _ := p.Bytes(h)
//	copy(buf, "payload")
//
//	err = p.Free(h)
//
// # Strategies
//
// The strategy decides which free run satisfies a request:
//
//   - FirstFit: the first free run in offset order that is large enough
//   - BestFit: the smallest free run that is large enough (earliest wins ties)
//
// The strategy is chosen at construction and cannot change afterwards.
//
// # Splitting and Coalescing
//
// Allocate splits the chosen run into an allocated head of exactly the
// requested size and a free tail. A zero-length tail is never created.
// Free merges the released run with its direct predecessor and successor
// when they are free, so two adjacent free runs never survive a Free.
//
// # Handles
//
// A Handle is the offset of an allocated run. It is checked against the run
// sequence on every call. Freeing a handle twice reports ErrDoubleFree while
// the run still exists, or ErrInvalidHandle once it has been absorbed into a
// neighbor.
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Debug Logging
//
// Set POOLKIT_LOG_ALLOC to any value to trace splits and merges on stderr
// when no Config.Logger is supplied.
package pool
