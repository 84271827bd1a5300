package pool

import "fmt"

// Check verifies the run sequence invariants:
//  1. runs start at 0, are contiguous, and end at the arena size
//  2. every run has a positive length
//  3. no two adjacent runs are both free
//
// It returns an error wrapping ErrCorrupt that names the first violation.
func (p *Pool) Check() error {
	return checkRuns(p.runs, p.size)
}

func checkRuns(runs []Run, size int) error {
	if len(runs) == 0 {
		return fmt.Errorf("%w: empty run sequence", ErrCorrupt)
	}
	next := 0
	for i, r := range runs {
		if r.Length <= 0 {
			return fmt.Errorf("%w: run %d at %d has length %d", ErrCorrupt, i, r.Offset, r.Length)
		}
		if r.Offset != next {
			return fmt.Errorf("%w: run %d starts at %d, expected %d", ErrCorrupt, i, r.Offset, next)
		}
		if i > 0 && !r.Allocated && !runs[i-1].Allocated {
			return fmt.Errorf("%w: adjacent free runs at %d and %d", ErrCorrupt, runs[i-1].Offset, r.Offset)
		}
		next = r.End()
	}
	if next != size {
		return fmt.Errorf("%w: runs end at %d, arena size %d", ErrCorrupt, next, size)
	}
	return nil
}
