package queue

import "errors"

var (
	// ErrFull indicates the pool had no room for the string.
	ErrFull = errors.New("queue: full")

	// ErrEmpty indicates Peek or Remove on an empty queue.
	ErrEmpty = errors.New("queue: empty")

	// ErrEncoding indicates the string could not be transcoded.
	ErrEncoding = errors.New("queue: encoding failed")
)
