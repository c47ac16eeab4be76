package indicator

import (
	"iter"
)

// Source is a synchronous pull source. Next returns false once the source is exhausted.
type Source[T any] interface {
	Next() (T, bool)
}

// SliceSource yields the values of a slice in order.
type SliceSource[T any] struct {
	values []T
	pos    int
}

func NewSliceSource[T any](values ...T) *SliceSource[T] {
	return &SliceSource[T]{values: values}
}

func (s *SliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, false
	}

	v := s.values[s.pos]
	s.pos++
	return v, true
}

// SeqSource pulls values from an iter.Seq. Call Stop when the source is abandoned before
// it is exhausted.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

func (s *SeqSource[T]) Next() (T, bool) {
	return s.next()
}

func (s *SeqSource[T]) Stop() {
	s.stop()
}

// Iterator drives an indicator with the values of a Source, one input per output.
// Inputs are pulled lazily, only when Next is called.
type Iterator[I, O any] struct {
	ind Indicator[I, O]
	src Source[I]
}

func Iterate[I, O any](ind Indicator[I, O], src Source[I]) *Iterator[I, O] {
	return &Iterator[I, O]{ind: ind, src: src}
}

// Next pulls one input and returns the indicator output. more is false once the source is
// exhausted, in which case the indicator is not updated.
func (it *Iterator[I, O]) Next() (value O, present, more bool) {
	in, ok := it.src.Next()
	if !ok {
		return value, false, false
	}

	value, present = it.ind.Next(in)
	return value, present, true
}

// All returns the remaining outputs as a range-over-func sequence.
func (it *Iterator[I, O]) All() iter.Seq2[O, bool] {
	return func(yield func(O, bool) bool) {
		for {
			v, present, more := it.Next()
			if !more || !yield(v, present) {
				return
			}
		}
	}
}

// Seq maps every value of seq through ind. The returned sequence shares the indicator, so
// it should be ranged over only once.
func Seq[I, O any](ind Indicator[I, O], seq iter.Seq[I]) iter.Seq2[O, bool] {
	return func(yield func(O, bool) bool) {
		for in := range seq {
			if !yield(ind.Next(in)) {
				return
			}
		}
	}
}
