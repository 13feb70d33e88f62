package seq

// Filter returns a sequence of the input's elements that pass the
// check, in their original order. The sequence reads ahead to find
// the next passing element, buffering at most one element at a time,
// and runs the check exactly once per input element no matter how
// often HasNext is called.
func Filter[T any](s Sequence[T], check Check[T]) Sequence[T] {
	return &filteredSequence[T]{input: s, check: check}
}

// FilterSource returns a source whose sequences produce only the
// elements of a fresh underlying sequence that pass the check.
func FilterSource[T any](src Source[T], check Check[T]) Source[T] {
	return func() Sequence[T] { return Filter(src.Sequence(), check) }
}

// filteredSequence holds at most one passing element in next/ok. The
// err field records why the scan stopped (io.EOF at exhaustion, or
// the input's own failure) so Next can report it repeatedly.
type filteredSequence[T any] struct {
	input Sequence[T]
	check Check[T]
	next  T
	ok    bool
	err   error
}

func (s *filteredSequence[T]) HasNext() bool {
	for !s.ok && s.err == nil {
		in, err := s.input.Next()
		if err != nil {
			s.err = err
			break
		}
		if s.check(in) {
			s.next = in
			s.ok = true
		}
	}
	return s.ok
}

func (s *filteredSequence[T]) Next() (out T, _ error) {
	if !s.HasNext() {
		return out, s.err
	}
	var zero T
	out = s.next
	s.next = zero
	s.ok = false
	return out, nil
}
