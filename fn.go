package seq

// Converter is a function that transforms one value into another,
// possibly of a different type. Converters parameterize Convert and
// ConvertSource.
type Converter[I, O any] func(I) O

// MakeConverter constructs a Converter from a compatible function.
func MakeConverter[I, O any](op func(I) O) Converter[I, O] { return op }

func (cf Converter[I, O]) Convert(in I) O { return cf(in) }

// Sequence returns a sequence that applies the converter to every
// element of the input sequence, as Convert.
func (cf Converter[I, O]) Sequence(s Sequence[I]) Sequence[O] { return Convert(s, cf) }

// Source returns a source whose sequences apply the converter to
// every element, as ConvertSource.
func (cf Converter[I, O]) Source(src Source[I]) Source[O] { return ConvertSource(src, cf) }

// Converter2 is a two-argument form of Converter. Reduce uses a
// Converter2 as its combining function.
type Converter2[A, B, O any] func(A, B) O

func (cf Converter2[A, B, O]) Convert(a A, b B) O { return cf(a, b) }

// Check is a function that tests a value. Checks parameterize Filter
// and FilterSource.
type Check[T any] func(T) bool

func (pf Check[T]) Run(in T) bool { return pf(in) }
func (pf Check[T]) Not() Check[T] { return func(in T) bool { return !pf(in) } }

// Check2 is a two-argument form of Check.
type Check2[A, B any] func(A, B) bool

func (pf Check2[A, B]) Run(a A, b B) bool { return pf(a, b) }
func (pf Check2[A, B]) Not() Check2[A, B] { return func(a A, b B) bool { return !pf(a, b) } }

// Handler is a function that consumes a value and returns nothing.
// Observe passes every element of a sequence to a Handler.
type Handler[T any] func(T)

// NewHandler constructs a Handler from a compatible function.
func NewHandler[T any](op func(T)) Handler[T] { return op }

func (hf Handler[T]) Handle(in T) { hf(in) }

// Handler2 is a two-argument form of Handler.
type Handler2[A, B any] func(A, B)

func (hf Handler2[A, B]) Handle(a A, b B) { hf(a, b) }
