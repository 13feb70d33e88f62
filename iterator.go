package seq

import (
	"io"
	"iter"
)

// Iterator exposes the sequence's remaining elements as a standard
// library iterator, for use in a range statement. Iteration ends at
// exhaustion, when production fails, or when the loop body breaks;
// because sequences are single-pass the returned iterator is good
// for one range statement only.
func Iterator[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, err := s.Next()
			if err != nil || !yield(val) {
				return
			}
		}
	}
}

// Iterator exposes the source as a re-rangeable standard library
// iterator: every range statement resolves a fresh sequence.
func (sf Source[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) { Iterator(sf.Sequence())(yield) }
}

// SeqSequence adapts a standard library iterator into a one-shot
// sequence, pulling elements on demand.
func SeqSequence[T any](it iter.Seq[T]) Sequence[T] {
	next, stop := iter.Pull(it)
	return MakeSequence(func() (out T, _ error) {
		val, ok := next()
		if !ok {
			stop()
			return out, io.EOF
		}
		return val, nil
	})
}

// SeqSource treats a re-rangeable standard library iterator as a
// source: every resolved sequence ranges the iterator from the
// start.
func SeqSource[T any](it iter.Seq[T]) Source[T] {
	return func() Sequence[T] { return SeqSequence(it) }
}
