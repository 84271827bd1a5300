package pool

// MaxPoolSize is the largest arena a pool can manage. Offsets above it would
// not fit a Handle on 32-bit platforms.
const MaxPoolSize = 0x7FFFFFFF // 2GB - 1

// Handle is the offset of an allocated run, relative to the arena start.
type Handle uint32

// Run is one entry of the run sequence.
type Run struct {
	Offset    int  // Start of the run in the arena
	Length    int  // Size in bytes, always > 0
	Allocated bool // False for free runs
}

// End returns the offset one past the last byte of the run.
func (r Run) End() int { return r.Offset + r.Length }

func (r Run) state() string {
	if r.Allocated {
		return "allocated"
	}
	return "free"
}
