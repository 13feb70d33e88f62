package seq

import (
	"errors"
	"io"
)

// Join returns a sequence that produces the elements of every input
// sequence in order: all of the first's elements, then all of the
// second's, and so on. Join with no arguments returns the empty
// sequence, and with one argument returns that sequence unchanged.
func Join[T any](seqs ...Sequence[T]) Sequence[T] {
	switch len(seqs) {
	case 0:
		return EmptySequence[T]()
	case 1:
		return seqs[0]
	default:
		out := seqs[0]
		for _, next := range seqs[1:] {
			out = &joinedSequence[T]{first: out, second: next}
		}
		return out
	}
}

// JoinSources returns a source whose sequences produce the elements
// of fresh sequences from every input source, in order.
func JoinSources[T any](srcs ...Source[T]) Source[T] {
	switch len(srcs) {
	case 0:
		return EmptySource[T]()
	case 1:
		return srcs[0]
	default:
		return srcs[0].Join(srcs[1:]...)
	}
}

// joinedSequence holds no position cursor beyond the input pair
// itself: consumption moves to the second input once the first's
// exhaustion is confirmed by an io.EOF pull. The err slot records a
// first-input failure so HasNext reports false and Next keeps
// returning it.
type joinedSequence[T any] struct {
	first  Sequence[T]
	second Sequence[T]
	err    error
}

func (s *joinedSequence[T]) HasNext() bool {
	if s.err != nil {
		return false
	}
	if s.first.HasNext() {
		return true
	}
	// distinguish a drained first input from one whose producer
	// failed: only io.EOF hands the question over to the second
	if _, err := s.first.Next(); !errors.Is(err, io.EOF) {
		s.err = err
		return false
	}
	return s.second.HasNext()
}

func (s *joinedSequence[T]) Next() (out T, _ error) {
	if s.err != nil {
		return out, s.err
	}
	val, err := s.first.Next()
	switch {
	case err == nil:
		return val, nil
	case errors.Is(err, io.EOF):
		return s.second.Next()
	default:
		s.err = err
		return out, err
	}
}
