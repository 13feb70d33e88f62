// Package seq provides lazy, composable transformation pipelines
// over streams of values: convert, filter, join, and flatten
// operations that wrap a stream without consuming it, plus reduce,
// collect, and observe terminals that drain one.
//
// The package is built on two abstractions. A Sequence is a one-shot
// cursor over a stream of elements; a Source is a restartable
// factory that produces fresh Sequences over the same logical
// stream. Every transformation is available at both levels: the
// Sequence form wraps a live cursor, while the Source form defers
// everything until a Sequence is resolved, so whole pipelines can be
// replayed from the top.
//
// Nothing here blocks, spawns goroutines, or performs I/O: all work
// happens synchronously inside HasNext and Next calls as elements
// are pulled through the pipeline.
package seq

import "github.com/tychoish/fun/ers"

// ErrRemoveUnsupported is returned by Remove when a sequence cannot
// remove the element it most recently produced.
const ErrRemoveUnsupported ers.Error = "remove operation unsupported"

// Sequence is a single-pass cursor over a stream of values of type
// T. Sequences are lazy: wrapping one in a transformation does no
// work until the result is pulled.
//
// HasNext reports whether the sequence can produce at least one more
// element. It is idempotent: consecutive calls with no interleaved
// Next call return the same answer, and never observably advance the
// stream, although implementations may buffer ahead internally.
// HasNext never fails: when an underlying producer breaks,
// HasNext reports false and the error surfaces from the next call to
// Next.
//
// Next produces the next element in the stream. Once the sequence is
// exhausted Next returns the zero value and io.EOF, and continues to
// do so on every subsequent call. Errors other than io.EOF indicate
// that an underlying producer failed; they are returned unchanged
// and, for buffering sequences, are sticky.
//
// Sequences are not safe for concurrent use. Pipelines that need to
// restart or share a stream should hold a Source and resolve a
// Sequence per consumer.
type Sequence[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Remove discards the element most recently produced by Next, for
// sequences that support removal, and otherwise returns
// ErrRemoveUnsupported. Every sequence this package constructs
// refuses: a wrapping sequence cannot translate a removal back onto
// an arbitrarily composed input. The capability exists for sequence
// implementations backed by containers that can delete in place.
func Remove[T any](s Sequence[T]) error {
	if rs, ok := s.(interface{ Remove() error }); ok {
		return rs.Remove()
	}
	return ErrRemoveUnsupported
}
