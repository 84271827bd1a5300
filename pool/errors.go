package pool

import "errors"

var (
	// ErrOutOfMemory indicates that no free run large enough was found.
	ErrOutOfMemory = errors.New("pool: out of memory")

	// ErrInvalidHandle indicates a handle that does not name a tracked run.
	ErrInvalidHandle = errors.New("pool: invalid handle")

	// ErrDoubleFree indicates an attempt to free a run that is already free.
	ErrDoubleFree = errors.New("pool: double free")

	// ErrInvalidArgument indicates a zero or out-of-range size, or a bad config.
	ErrInvalidArgument = errors.New("pool: invalid argument")

	// ErrClosed indicates use of a pool after Close.
	ErrClosed = errors.New("pool: closed")

	// ErrCorrupt indicates the run sequence no longer satisfies its invariants.
	ErrCorrupt = errors.New("pool: corrupt run sequence")
)
