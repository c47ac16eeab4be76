package indicator

// MapIndicator applies a function to every present output of the wrapped indicator.
// Absent outputs stay absent and the function is not called.
type MapIndicator[I, O, P any] struct {
	last[P]

	inner Indicator[I, O]
	f     func(O) P
}

func Map[I, O, P any](inner Indicator[I, O], f func(O) P) *MapIndicator[I, O, P] {
	return &MapIndicator[I, O, P]{inner: inner, f: f}
}

func (m *MapIndicator[I, O, P]) Next(input I) (P, bool) {
	v, ok := m.inner.Next(input)
	if !ok {
		var zero P
		return m.set(zero, false)
	}

	return m.set(m.f(v), true)
}

func (m *MapIndicator[I, O, P]) Reset() {
	m.clear()
	Reset(m.inner)
}

// MapInputIndicator converts every input before feeding it to the wrapped indicator, for
// example a kline into its close price.
type MapInputIndicator[J, I, O any] struct {
	last[O]

	inner Indicator[I, O]
	f     func(J) I
}

func MapInput[J, I, O any](inner Indicator[I, O], f func(J) I) *MapInputIndicator[J, I, O] {
	return &MapInputIndicator[J, I, O]{inner: inner, f: f}
}

func (m *MapInputIndicator[J, I, O]) Next(input J) (O, bool) {
	return m.set(m.inner.Next(m.f(input)))
}

func (m *MapInputIndicator[J, I, O]) Reset() {
	m.clear()
	Reset(m.inner)
}
