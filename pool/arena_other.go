//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package pool

import (
	"errors"
	"fmt"
)

// mapArena is unavailable without mmap support.
func mapArena(int) ([]byte, func() error, error) {
	return nil, nil, fmt.Errorf("backing mmap: %w: %w", ErrInvalidArgument, errors.ErrUnsupported)
}
