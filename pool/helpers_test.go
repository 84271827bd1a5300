package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestPool creates a heap-backed pool and closes it when the test ends.
func newTestPool(t testing.TB, size int, s Strategy) *Pool {
	t.Helper()
	p, err := New(size, &Config{Strategy: s})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// mustAlloc allocates n bytes and fails the test on error.
func mustAlloc(t testing.TB, p *Pool, n int) Handle {
	t.Helper()
	h, err := p.Allocate(n)
	require.NoError(t, err, "Allocate(%d)", n)
	return h
}

// runsOf builds a run sequence from alternating lengths, starting at offset 0.
// Negative lengths are allocated runs, positive lengths are free runs.
func runsOf(lengths ...int) []Run {
	runs := make([]Run, 0, len(lengths))
	off := 0
	for _, l := range lengths {
		r := Run{Offset: off, Length: l}
		if l < 0 {
			r.Length, r.Allocated = -l, true
		}
		runs = append(runs, r)
		off += r.Length
	}
	return runs
}

// assertInvariants verifies coverage, ordering and exhaustive coalescing.
func assertInvariants(t testing.TB, p *Pool) {
	t.Helper()

	runs := p.Inspect()
	require.NotEmpty(t, runs)
	require.Equal(t, 0, runs[0].Offset, "first run must start at 0")

	total := 0
	for i, r := range runs {
		require.Positive(t, r.Length, "run %d at %d has non-positive length", i, r.Offset)
		if i > 0 {
			prev := runs[i-1]
			require.Equal(t, prev.End(), r.Offset,
				"gap or overlap between run %d (%d+%d) and run %d (%d)",
				i-1, prev.Offset, prev.Length, i, r.Offset)
			require.False(t, !prev.Allocated && !r.Allocated,
				"adjacent free runs at %d and %d", prev.Offset, r.Offset)
		}
		total += r.Length
	}
	require.Equal(t, p.Size(), total, "runs must cover the arena exactly")
	require.NoError(t, p.Check())
}
