package indicator

// Pair holds the outputs of two indicators updated side by side.
type Pair[A, B any] struct {
	First  A
	Second B
}

// TogetherIndicator feeds the same input to two indicators. The pair is present only when
// both outputs are present.
type TogetherIndicator[I, A, B any] struct {
	last[Pair[A, B]]

	first  Indicator[I, A]
	second Indicator[I, B]
}

func Together[I, A, B any](first Indicator[I, A], second Indicator[I, B]) *TogetherIndicator[I, A, B] {
	return &TogetherIndicator[I, A, B]{first: first, second: second}
}

func (t *TogetherIndicator[I, A, B]) Next(input I) (Pair[A, B], bool) {
	a, okA := t.first.Next(input)
	b, okB := t.second.Next(input)
	return t.set(Pair[A, B]{First: a, Second: b}, okA && okB)
}

func (t *TogetherIndicator[I, A, B]) Reset() {
	t.clear()
	Reset(t.first)
	Reset(t.second)
}
