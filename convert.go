package seq

// Convert returns a sequence that applies the converter to every
// element of the input sequence: one output for every input, in
// input order. The conversion is lazy, running at most once per
// element as Next produces it, and never running for elements the
// consumer does not pull.
func Convert[I, O any](s Sequence[I], op Converter[I, O]) Sequence[O] {
	return &convertedSequence[I, O]{input: s, op: op}
}

// ConvertSource returns a source whose sequences apply the converter
// to every element of a fresh sequence from the input source.
func ConvertSource[I, O any](src Source[I], op Converter[I, O]) Source[O] {
	return func() Sequence[O] { return Convert(src.Sequence(), op) }
}

type convertedSequence[I, O any] struct {
	input Sequence[I]
	op    Converter[I, O]
}

func (s *convertedSequence[I, O]) HasNext() bool { return s.input.HasNext() }

func (s *convertedSequence[I, O]) Next() (out O, _ error) {
	in, err := s.input.Next()
	if err != nil {
		return out, err
	}
	return s.op(in), nil
}
