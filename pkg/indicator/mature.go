package indicator

// MatureIndicator suppresses the first n outputs of the wrapped indicator. The wrapped
// indicator is still updated on every call so its state keeps warming up.
type MatureIndicator[I, O any] struct {
	last[O]

	inner     Indicator[I, O]
	threshold int
	count     int
	opened    bool
}

// Mature gates inner until it has been updated more than n times. n = 0 disables the gate.
func Mature[I, O any](inner Indicator[I, O], n int) (*MatureIndicator[I, O], error) {
	if err := CheckRange("maturity", float64(n), AtLeast(0)); err != nil {
		return nil, err
	}

	return &MatureIndicator[I, O]{inner: inner, threshold: n}, nil
}

func (m *MatureIndicator[I, O]) Next(input I) (O, bool) {
	v, ok := m.inner.Next(input)
	if m.count < m.threshold {
		m.count++
		var zero O
		return m.set(zero, false)
	}

	m.opened = true
	return m.set(v, ok)
}

// IsMature reports whether the gate has opened, i.e. an output of the wrapped indicator
// has been passed through.
func (m *MatureIndicator[I, O]) IsMature() bool {
	return m.opened
}

func (m *MatureIndicator[I, O]) Reset() {
	m.clear()
	m.count = 0
	m.opened = false
	Reset(m.inner)
}
