package seq

import (
	"errors"
	"io"
)

// Flatten returns a sequence that produces every element of every
// inner sequence: the first inner sequence's elements first,
// contiguously and in their own order, then the second's, and so on.
// Empty inner sequences are skipped, and an empty outer sequence
// flattens to an empty sequence.
func Flatten[T any](s Sequence[Sequence[T]]) Sequence[T] {
	return &flattenedSequence[T]{outer: s, current: EmptySequence[T]()}
}

// FlattenSources flattens a source of sources. Every sequence
// resolved from the result replays the pipeline from the top,
// resolving fresh inner sequences as it goes.
func FlattenSources[T any](src Source[Source[T]]) Source[T] {
	return func() Sequence[T] {
		return Flatten(Convert(src.Sequence(), Source[T].Sequence))
	}
}

// flattenedSequence tracks the outer sequence and a cursor into the
// current inner sequence, which starts empty so that the first
// HasNext advances to the first real inner sequence. The err field
// holds a failure from the outer sequence, or from an inner sequence
// that broke rather than draining.
type flattenedSequence[T any] struct {
	outer   Sequence[Sequence[T]]
	current Sequence[T]
	err     error
}

func (s *flattenedSequence[T]) HasNext() bool {
	if s.err != nil {
		return false
	}
	for !s.current.HasNext() {
		// distinguish a drained inner sequence from one whose
		// producer failed: only io.EOF lets the cursor move on
		if _, err := s.current.Next(); !errors.Is(err, io.EOF) {
			s.err = err
			return false
		}
		next, err := s.outer.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			return false
		}
		s.current = next
	}
	return true
}

func (s *flattenedSequence[T]) Next() (out T, _ error) {
	if !s.HasNext() {
		if s.err != nil {
			return out, s.err
		}
		return out, io.EOF
	}
	return s.current.Next()
}
