package pool

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_RandomAllocFree_GuardInvariants performs random alloc/free and validates
// invariants after every step, for both strategies.
func Test_RandomAllocFree_GuardInvariants(t *testing.T) {
	for _, s := range []Strategy{FirstFit, BestFit} {
		t.Run(s.String(), func(t *testing.T) {
			const size = 4096
			p := newTestPool(t, size, s)

			rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility
			live := make(map[Handle]int)
			inUse := 0

			for i := 0; i < 2000; i++ {
				if rng.Intn(3) != 0 || len(live) == 0 {
					n := 1 + rng.Intn(256)
					h, err := p.Allocate(n)
					if err != nil {
						require.ErrorIs(t, err, ErrOutOfMemory, "Step %d", i)
						require.Less(t, p.Stats().LargestFree, n, "Step %d: OOM with a large enough run", i)
					} else {
						_, dup := live[h]
						require.False(t, dup, "Step %d: handle %d handed out twice", i, h)
						live[h] = n
						inUse += n
					}
				} else {
					for h, n := range live {
						require.NoError(t, p.Free(h), "Step %d", i)
						delete(live, h)
						inUse -= n
						break
					}
				}

				assertInvariants(t, p)
				st := p.Stats()
				require.Equal(t, inUse, st.Allocated, "Step %d", i)
				require.Equal(t, len(live), st.AllocatedRuns, "Step %d", i)
			}

			for h := range live {
				require.NoError(t, p.Free(h))
			}
			require.Equal(t, runsOf(size), p.Inspect())
		})
	}
}

// Test_BestFitNeverWorseThanSmallest checks every best-fit choice against a
// brute-force search over the current runs.
func Test_BestFitNeverWorseThanSmallest(t *testing.T) {
	p := newTestPool(t, 2048, BestFit)
	rng := rand.New(rand.NewSource(7))
	var live []Handle

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 && len(live) > 0 {
			k := rng.Intn(len(live))
			require.NoError(t, p.Free(live[k]))
			live = append(live[:k], live[k+1:]...)
			continue
		}

		n := 1 + rng.Intn(128)
		runs := p.Inspect()
		want := -1
		for i, r := range runs {
			if !r.Allocated && r.Length >= n && (want < 0 || r.Length < runs[want].Length) {
				want = i
			}
		}

		h, err := p.Allocate(n)
		if want < 0 {
			require.ErrorIs(t, err, ErrOutOfMemory)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, Handle(runs[want].Offset), h)
		live = append(live, h)
	}
}

// FuzzAllocFree drives a pool with an arbitrary op stream. Every call must
// either succeed or fail with a pool sentinel, and the invariants must hold.
func FuzzAllocFree(f *testing.F) {
	f.Add([]byte{9, 1, 6, 1, 0x82, 0x80, 5}, false)
	f.Add([]byte{50, 60, 0x80, 0x80}, true)
	f.Add([]byte{0, 255, 0x81, 3}, true)

	f.Fuzz(func(t *testing.T, ops []byte, best bool) {
		s := FirstFit
		if best {
			s = BestFit
		}
		p := newTestPool(t, 256, s)
		var live []Handle

		for _, op := range ops {
			if op&0x80 == 0 {
				h, err := p.Allocate(int(op))
				switch {
				case err == nil:
					live = append(live, h)
				case errors.Is(err, ErrOutOfMemory), errors.Is(err, ErrInvalidArgument):
				default:
					t.Fatalf("Allocate(%d): %v", op, err)
				}
			} else if len(live) > 0 {
				k := int(op&0x7F) % len(live)
				require.NoError(t, p.Free(live[k]))
				live = append(live[:k], live[k+1:]...)
			} else {
				err := p.Free(Handle(op & 0x7F))
				require.True(t, errors.Is(err, ErrInvalidHandle) || errors.Is(err, ErrDoubleFree), "%v", err)
			}
			assertInvariants(t, p)
		}
	})
}
