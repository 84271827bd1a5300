package queue

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/poolkit/pool"
)

// Allocator is the subset of *pool.Pool the queue needs.
type Allocator interface {
	Allocate(n int) (pool.Handle, error)
	Free(h pool.Handle) error
	Bytes(h pool.Handle) ([]byte, error)
}

// Options controls queue behavior.
type Options struct {
	// Encoding transcodes strings before they are stored and back on Peek.
	// If nil, the UTF-8 bytes of the string are stored unchanged.
	Encoding encoding.Encoding
}

// entry records one stored string.
type entry struct {
	h pool.Handle
	n int // encoded length, excluding the terminator
}

// Queue is a FIFO of strings whose bytes live in an Allocator.
type Queue struct {
	alloc   Allocator
	enc     encoding.Encoding
	entries []entry
	head    int // index of the oldest entry
}

// New creates an empty queue backed by a. opts may be nil.
func New(a Allocator, opts *Options) *Queue {
	q := &Queue{alloc: a}
	if opts != nil {
		q.enc = opts.Encoding
	}
	return q
}

// Len returns the number of queued strings.
func (q *Queue) Len() int { return len(q.entries) - q.head }

// Insert copies s, plus a NUL terminator, into a new block at the tail.
func (q *Queue) Insert(s string) error {
	data := []byte(s)
	if q.enc != nil {
		var err error
		if data, err = q.enc.NewEncoder().Bytes(data); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
	}

	h, err := q.alloc.Allocate(len(data) + 1)
	if err != nil {
		if errors.Is(err, pool.ErrOutOfMemory) {
			return fmt.Errorf("%w: %w", ErrFull, err)
		}
		return err
	}
	block, err := q.alloc.Bytes(h)
	if err != nil {
		// The block was never published; hand it back before reporting.
		_ = q.alloc.Free(h)
		return err
	}
	copy(block, data)
	block[len(data)] = 0

	q.entries = append(q.entries, entry{h: h, n: len(data)})
	return nil
}

// Peek returns the oldest string without removing it.
func (q *Queue) Peek() (string, error) {
	if q.Len() == 0 {
		return "", ErrEmpty
	}
	e := q.entries[q.head]
	block, err := q.alloc.Bytes(e.h)
	if err != nil {
		return "", err
	}
	data := block[:e.n]
	if q.enc != nil {
		if data, err = q.enc.NewDecoder().Bytes(data); err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
	}
	return string(data), nil
}

// Remove frees the oldest string. If the free fails the entry is kept.
func (q *Queue) Remove() error {
	if q.Len() == 0 {
		return ErrEmpty
	}
	if err := q.alloc.Free(q.entries[q.head].h); err != nil {
		return err
	}
	q.entries[q.head] = entry{}
	q.head++

	// Compact once the consumed prefix dominates the slice.
	if q.head == len(q.entries) {
		q.entries, q.head = q.entries[:0], 0
	} else if q.head >= 32 && q.head*2 >= len(q.entries) {
		n := copy(q.entries, q.entries[q.head:])
		q.entries, q.head = q.entries[:n], 0
	}
	return nil
}
