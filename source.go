package seq

import "github.com/tychoish/fun/dt"

// Source is a restartable factory for sequences: calling it, or its
// Sequence method, returns a fresh Sequence positioned at the
// beginning of the stream. Sources hold no cursor state of their
// own, so one Source can be resolved any number of times and the
// resulting sequences are fully independent of one another.
//
// The method set covers the transformations that keep the element
// type; Convert-style transformations that change the element type
// are package functions (ConvertSource, FlattenSources) because
// methods cannot introduce type parameters.
type Source[T any] func() Sequence[T]

// EmptySource returns a source of empty sequences.
func EmptySource[T any]() Source[T] { return func() Sequence[T] { return EmptySequence[T]() } }

// SingleSource returns a source whose sequences each produce the one
// value.
func SingleSource[T any](value T) Source[T] {
	return func() Sequence[T] { return SingleSequence(value) }
}

// SliceSource returns a source whose sequences read the slice in
// index order. The sequences share the caller's slice; none of them
// copies it.
func SliceSource[T any](in []T) Source[T] {
	return func() Sequence[T] { return SliceSequence(in) }
}

// VariadicSource produces a source from an arbitrary collection of
// values passed into the constructor.
func VariadicSource[T any](in ...T) Source[T] { return SliceSource(in) }

// Sequence resolves a fresh sequence from the source.
func (sf Source[T]) Sequence() Sequence[T] { return sf() }

// Transform returns a source whose sequences apply the converter to
// every element. Conversions between element types are available
// through ConvertSource and Converter.Source.
func (sf Source[T]) Transform(op Converter[T, T]) Source[T] { return ConvertSource(sf, op) }

// Filter returns a source whose sequences produce only elements that
// pass the check.
func (sf Source[T]) Filter(check Check[T]) Source[T] { return FilterSource(sf, check) }

// Join returns a source whose sequences produce all of this source's
// elements and then the elements of every source in next, in order.
func (sf Source[T]) Join(next ...Source[T]) Source[T] {
	out := sf
	for _, src := range next {
		first, second := out, src
		out = func() Sequence[T] { return Join(first(), second()) }
	}
	return out
}

// Observe resolves a fresh sequence and passes every element to the
// handler, as Observe.
func (sf Source[T]) Observe(fn Handler[T]) error { return ObserveSource(sf, fn) }

// Collect resolves a fresh sequence and materializes it, as Collect.
func (sf Source[T]) Collect() (dt.Slice[T], error) { return CollectSource(sf) }
