// Package queue implements a FIFO queue of strings stored inside a pool.
//
// Each inserted string is copied into its own pool block of len(s)+1 bytes,
// the extra byte holding a NUL terminator. Remove frees the block of the
// oldest string. When the pool cannot satisfy an insert, the queue reports
// ErrFull; the underlying pool.ErrOutOfMemory stays matchable with errors.Is.
//
//	p, _ := pool.New(100, nil)
//	q := queue.New(p, nil)
//	_ = q.Insert("foo")
//	s, _ := q.Peek() // "foo"
//	_ = q.Remove()
//
// Strings can be transcoded before storage by setting Options.Encoding to
// any golang.org/x/text encoding, for example charmap.Windows1252.
//
// A Queue is not thread-safe, like the pool beneath it.
package queue
