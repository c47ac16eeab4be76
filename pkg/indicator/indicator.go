// Package indicator defines the streaming indicator contract and the combinators that
// compose indicators into pipelines.
//
// An indicator consumes one input per call and produces one output. The boolean result of
// Next tells whether the output is present: indicators that always produce a value return
// true on every call, indicators with a warm-up phase (or gated by Mature) return false
// until they have enough history.
package indicator

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "indicator")

// Indicator is the incremental update contract. Next mutates the indicator state exactly once
// and returns the new output.
//
// Implementations are not safe for concurrent use.
type Indicator[I, O any] interface {
	Next(input I) (O, bool)
}

// Current is implemented by indicators that can report their last output without
// advancing their state.
type Current[O any] interface {
	Current() (O, bool)
}

// Resetter is implemented by indicators that can return to their freshly constructed state.
type Resetter interface {
	Reset()
}

// Func adapts a plain function to the Indicator interface.
type Func[I, O any] func(input I) (O, bool)

func (f Func[I, O]) Next(input I) (O, bool) {
	return f(input)
}

// Reset resets ind when it implements Resetter.
func Reset(ind any) {
	if r, ok := ind.(Resetter); ok {
		r.Reset()
	}
}

// last caches the most recent output of a combinator.
type last[O any] struct {
	value   O
	present bool
}

func (l *last[O]) set(v O, ok bool) (O, bool) {
	l.value, l.present = v, ok
	return v, ok
}

func (l *last[O]) Current() (O, bool) {
	return l.value, l.present
}

func (l *last[O]) clear() {
	var zero O
	l.value, l.present = zero, false
}

// AlwaysIndicator exposes an indicator through a value-only Next. When the wrapped indicator
// reports an absent output the fallback value is returned instead.
type AlwaysIndicator[I, O any] struct {
	inner    Indicator[I, O]
	fallback O
}

func Always[I, O any](inner Indicator[I, O], fallback O) *AlwaysIndicator[I, O] {
	return &AlwaysIndicator[I, O]{inner: inner, fallback: fallback}
}

func (a *AlwaysIndicator[I, O]) Next(input I) O {
	if v, ok := a.inner.Next(input); ok {
		return v
	}

	return a.fallback
}

func (a *AlwaysIndicator[I, O]) Reset() {
	Reset(a.inner)
}
