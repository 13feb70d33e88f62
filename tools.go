package seq

import (
	"errors"
	"io"

	"github.com/tychoish/fun/dt"
)

// Reduce folds every element of the sequence into an accumulator
// that starts at initial, calling the combining function once per
// element in sequence order, and returns the final accumulator.
// Reducing an empty sequence returns initial. The fold is strictly
// sequential, so the combining function may be order-sensitive and
// the accumulator type need not match the element type.
//
// When an element cannot be produced, Reduce stops and returns the
// value accumulated so far alongside the error.
func Reduce[T, A any](s Sequence[T], initial A, op Converter2[A, T, A]) (A, error) {
	acc := initial
	for {
		val, err := s.Next()
		switch {
		case err == nil:
			acc = op(acc, val)
		case errors.Is(err, io.EOF):
			return acc, nil
		default:
			return acc, err
		}
	}
}

// ReduceSource resolves a fresh sequence from the source and reduces
// it, as Reduce.
func ReduceSource[T, A any](src Source[T], initial A, op Converter2[A, T, A]) (A, error) {
	return Reduce(src.Sequence(), initial, op)
}

// Observe passes every remaining element of the sequence to the
// handler, in order, stopping at exhaustion or on the first
// production failure, which it returns.
func Observe[T any](s Sequence[T], fn Handler[T]) error {
	for {
		val, err := s.Next()
		switch {
		case err == nil:
			fn(val)
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

// ObserveSource resolves a fresh sequence from the source and passes
// every element to the handler, as Observe.
func ObserveSource[T any](src Source[T], fn Handler[T]) error {
	return Observe(src.Sequence(), fn)
}

// Collect materializes the sequence's remaining elements into a
// slice, in encounter order. The error is non-nil only when an
// underlying production fails, and in that case Collect returns the
// elements gathered before the failure alongside the error.
func Collect[T any](s Sequence[T]) (dt.Slice[T], error) {
	out := dt.Slice[T]{}
	err := Observe(s, out.Push)
	return out, err
}

// CollectSource resolves a fresh sequence from the source and
// collects it, as Collect.
func CollectSource[T any](src Source[T]) (dt.Slice[T], error) {
	return Collect(src.Sequence())
}

// Count drains the sequence and reports the number of elements it
// produced.
func Count[T any](s Sequence[T]) (int, error) {
	count := 0
	err := Observe(s, func(T) { count++ })
	return count, err
}
