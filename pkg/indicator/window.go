package indicator

import (
	"github.com/c9s/indicator/pkg/indicator/window"
)

// WindowIndicator collects the last k present outputs of the wrapped indicator.
//
// Every call returns exactly k values, oldest first. Until k outputs have been produced the
// window is padded by repeating the earliest output. Absent outputs of the wrapped indicator
// are skipped; before the first present output the window itself is absent.
type WindowIndicator[I, O any] struct {
	last[[]O]

	inner  Indicator[I, O]
	buffer *window.Buffer[O]
}

func Window[I, O any](inner Indicator[I, O], k int) (*WindowIndicator[I, O], error) {
	if err := CheckPeriod("window", k); err != nil {
		return nil, err
	}

	return &WindowIndicator[I, O]{
		inner:  inner,
		buffer: window.NewBuffer[O](k),
	}, nil
}

// Next returns a fresh slice that the caller may keep.
func (w *WindowIndicator[I, O]) Next(input I) ([]O, bool) {
	v, ok := w.inner.Next(input)
	if ok {
		if w.buffer.Len() == 0 {
			w.buffer.Fill(v)
		} else {
			w.buffer.Push(v)
		}
	}

	if w.buffer.Len() == 0 {
		return w.set(nil, false)
	}

	return w.set(w.buffer.Slice(), true)
}

func (w *WindowIndicator[I, O]) Reset() {
	w.clear()
	w.buffer.Clear()
	Reset(w.inner)
}
