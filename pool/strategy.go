package pool

import (
	"fmt"
	"strings"
)

// Strategy selects which free run satisfies an allocation request.
// The set is closed: FirstFit and BestFit are the only values.
type Strategy uint8

const (
	// FirstFit picks the first free run, in offset order, that is large enough.
	FirstFit Strategy = iota

	// BestFit picks the smallest free run that is large enough. On equal
	// sizes the run with the lower offset wins.
	BestFit
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "FirstFit"
	case BestFit:
		return "BestFit"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

func (s Strategy) valid() bool {
	return s == FirstFit || s == BestFit
}

// ParseStrategy parses a strategy name such as "first-fit" or "BestFit".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "firstfit", "first-fit", "first_fit", "first":
		return FirstFit, nil
	case "bestfit", "best-fit", "best_fit", "best":
		return BestFit, nil
	}
	return 0, fmt.Errorf("unknown strategy %q: %w", name, ErrInvalidArgument)
}

// Select returns the index in runs of the free run to use for an n-byte
// request, or false if no free run is large enough. It does not modify runs.
func (s Strategy) Select(runs []Run, n int) (int, bool) {
	switch s {
	case FirstFit:
		return selectFirstFit(runs, n)
	case BestFit:
		return selectBestFit(runs, n)
	}
	return -1, false
}

func usable(r Run, n int) bool {
	return !r.Allocated && r.Length >= n
}

// selectFirstFit stops at the first match.
func selectFirstFit(runs []Run, n int) (int, bool) {
	for i := range runs {
		if usable(runs[i], n) {
			return i, true
		}
	}
	return -1, false
}

// selectBestFit always scans the whole sequence. An exact fit cannot be
// beaten, so it ends the scan early.
func selectBestFit(runs []Run, n int) (int, bool) {
	best := -1
	for i := range runs {
		if !usable(runs[i], n) {
			continue
		}
		if best < 0 || runs[i].Length < runs[best].Length {
			best = i
			if runs[i].Length == n {
				break
			}
		}
	}
	return best, best >= 0
}
