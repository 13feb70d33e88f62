package seq

import "io"

// EmptySequence returns a sequence with no elements: HasNext is
// always false and Next always returns io.EOF.
func EmptySequence[T any]() Sequence[T] { return emptySequence[T]{} }

// SingleSequence returns a sequence that produces exactly one
// element and is then exhausted.
func SingleSequence[T any](value T) Sequence[T] { return &singleSequence[T]{value: value} }

// SliceSequence provides sequence access to the elements of a slice,
// in index order. The sequence reads through the slice it was given
// rather than a copy, so element mutations made while the sequence
// is live are visible to it.
func SliceSequence[T any](in []T) Sequence[T] { return &sliceSequence[T]{values: in} }

// VariadicSequence produces a sequence from an arbitrary collection
// of values passed into the constructor.
func VariadicSequence[T any](in ...T) Sequence[T] { return SliceSequence(in) }

// MakeSequence adapts a pull function into a sequence. The function
// is called once for every element and reports exhaustion by
// returning io.EOF; any other error stops the sequence and is
// returned by Next from then on.
func MakeSequence[T any](pull func() (T, error)) Sequence[T] {
	return &pullSequence[T]{pull: pull}
}

type emptySequence[T any] struct{}

func (emptySequence[T]) HasNext() bool { return false }

func (emptySequence[T]) Next() (out T, _ error) { return out, io.EOF }

type singleSequence[T any] struct {
	value T
	done  bool
}

func (s *singleSequence[T]) HasNext() bool { return !s.done }

func (s *singleSequence[T]) Next() (out T, _ error) {
	if s.done {
		return out, io.EOF
	}
	var zero T
	out = s.value
	s.value = zero
	s.done = true
	return out, nil
}

type sliceSequence[T any] struct {
	values []T
	index  int
}

func (s *sliceSequence[T]) HasNext() bool { return s.index < len(s.values) }

func (s *sliceSequence[T]) Next() (out T, _ error) {
	if !s.HasNext() {
		return out, io.EOF
	}
	out = s.values[s.index]
	s.index++
	return out, nil
}

// pullSequence buffers one element so that HasNext can answer
// without losing it, and keeps the first error it sees so that
// repeated calls after exhaustion or failure are stable.
type pullSequence[T any] struct {
	pull func() (T, error)
	next T
	ok   bool
	err  error
}

func (s *pullSequence[T]) HasNext() bool {
	if s.ok {
		return true
	}
	if s.err != nil {
		return false
	}
	s.next, s.err = s.pull()
	s.ok = s.err == nil
	return s.ok
}

func (s *pullSequence[T]) Next() (out T, _ error) {
	if !s.HasNext() {
		return out, s.err
	}
	var zero T
	out = s.next
	s.next = zero
	s.ok = false
	return out, nil
}
