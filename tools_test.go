package seq

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/fun/ers"
)

func TestReduce(t *testing.T) {
	t.Run("Sum", func(t *testing.T) {
		total, err := Reduce(VariadicSequence(1, 2, 3, 4), 0, func(acc int, in int) int { return acc + in })
		assert.NotError(t, err)
		assert.Equal(t, total, 10)
	})
	t.Run("EmptyReturnsInitial", func(t *testing.T) {
		total, err := Reduce(EmptySequence[int](), 42, func(acc int, in int) int { return acc + in })
		assert.NotError(t, err)
		assert.Equal(t, total, 42)
	})
	t.Run("LeftToRight", func(t *testing.T) {
		// subtraction is not associative, so the result pins
		// down the evaluation order
		out, err := Reduce(VariadicSequence(1, 2, 3), 100, func(acc int, in int) int { return acc - in })
		assert.NotError(t, err)
		assert.Equal(t, out, 94)

		trace, err := Reduce(VariadicSequence(1, 2, 3), "seed", func(acc string, in int) string {
			return fmt.Sprintf("(%s+%d)", acc, in)
		})
		assert.NotError(t, err)
		assert.Equal(t, trace, "(((seed+1)+2)+3)")
	})
	t.Run("AccumulatorType", func(t *testing.T) {
		lengths, err := Reduce(VariadicSequence("a", "bc", "def"), []int{}, func(acc []int, in string) []int {
			return append(acc, len(in))
		})
		assert.NotError(t, err)
		assert.EqualItems(t, lengths, []int{1, 2, 3})
	})
	t.Run("ErrorReturnsPartialResult", func(t *testing.T) {
		root := ers.Error("spilled")
		count := 0
		s := MakeSequence(func() (int, error) {
			count++
			if count > 2 {
				return 0, root
			}
			return count, nil
		})
		total, err := Reduce(s, 0, func(acc int, in int) int { return acc + in })
		assert.Error(t, err)
		assert.ErrorIs(t, err, root)
		check.Equal(t, total, 3)
	})
}

func TestReduceSource(t *testing.T) {
	src := VariadicSource("a", "b", "c")
	for i := 0; i < 3; i++ {
		out, err := ReduceSource(src, "", func(acc string, in string) string { return acc + in })
		assert.NotError(t, err)
		assert.Equal(t, out, "abc")
	}
}

func TestObserve(t *testing.T) {
	t.Run("VisitsInOrder", func(t *testing.T) {
		seen := []int{}
		assert.NotError(t, Observe(VariadicSequence(3, 1, 2), func(in int) { seen = append(seen, in) }))
		assert.EqualItems(t, seen, []int{3, 1, 2})
	})
	t.Run("Empty", func(t *testing.T) {
		calls := 0
		assert.NotError(t, Observe(EmptySequence[string](), func(string) { calls++ }))
		assert.Equal(t, calls, 0)
	})
	t.Run("StopsAtFirstError", func(t *testing.T) {
		root := ers.Error("spilled")
		count := 0
		s := MakeSequence(func() (int, error) {
			count++
			if count > 2 {
				return 0, root
			}
			return count, nil
		})
		seen := []int{}
		err := Observe(s, func(in int) { seen = append(seen, in) })
		assert.Error(t, err)
		assert.ErrorIs(t, err, root)
		assert.EqualItems(t, seen, []int{1, 2})
	})
}

func TestCollect(t *testing.T) {
	t.Run("Values", func(t *testing.T) {
		out, err := Collect(VariadicSequence("x", "y", "z"))
		assert.NotError(t, err)
		assert.Equal(t, out.Len(), 3)
		assert.EqualItems(t, []string(out), []string{"x", "y", "z"})
	})
	t.Run("EmptyIsUsable", func(t *testing.T) {
		out, err := Collect(EmptySequence[int]())
		assert.NotError(t, err)
		assert.Equal(t, out.Len(), 0)

		out.Push(11)
		assert.Equal(t, out.Len(), 1)
		assert.Equal(t, out.Index(0), 11)
	})
	t.Run("PartialOnError", func(t *testing.T) {
		root := errors.New("spilled")
		count := 0
		s := MakeSequence(func() (int, error) {
			count++
			if count > 1 {
				return 0, root
			}
			return count, nil
		})
		out, err := Collect(s)
		assert.Error(t, err)
		assert.ErrorIs(t, err, root)
		assert.NotErrorIs(t, err, io.EOF)
		assert.EqualItems(t, []int(out), []int{1})
	})
	t.Run("FromSource", func(t *testing.T) {
		src := VariadicSource(1, 2)
		for i := 0; i < 2; i++ {
			out, err := CollectSource(src)
			assert.NotError(t, err)
			assert.EqualItems(t, []int(out), []int{1, 2})
		}
	})
}

func TestCount(t *testing.T) {
	t.Run("Values", func(t *testing.T) {
		n, err := Count(VariadicSequence("a", "b", "c", "d"))
		assert.NotError(t, err)
		assert.Equal(t, n, 4)
	})
	t.Run("Empty", func(t *testing.T) {
		n, err := Count(EmptySequence[int]())
		assert.NotError(t, err)
		assert.Equal(t, n, 0)
	})
	t.Run("PartialOnError", func(t *testing.T) {
		root := ers.Error("spilled")
		count := 0
		s := MakeSequence(func() (int, error) {
			count++
			if count > 3 {
				return 0, root
			}
			return count, nil
		})
		n, err := Count(s)
		assert.Error(t, err)
		assert.ErrorIs(t, err, root)
		check.Equal(t, n, 3)
	})
}
