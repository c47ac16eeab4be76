package window

import (
	"github.com/gammazero/deque"
)

type entry struct {
	value float64
	t     int
}

// MonotonicQueue tracks the extremum of the last N pushed values.
//
// The deque holds (value, timestamp) pairs ordered so that the front is the extremum of the
// window. Before a push, back entries that can never become the extremum again are removed;
// after it, front entries older than the window are dropped. Every value enters and leaves
// the deque at most once, so a push is O(1) amortized and the deque never exceeds N entries.
//
// Equal values: the most recent one survives, so the age of the extremum is measured
// from its latest occurrence.
type MonotonicQueue struct {
	entries deque.Deque[entry]
	window  int
	t       int

	// dominates reports whether a newly pushed value makes the back value obsolete.
	dominates func(pushed, back float64) bool
}

// NewMaxQueue tracks the maximum of the last window values.
func NewMaxQueue(window int) *MonotonicQueue {
	return newMonotonicQueue(window, func(pushed, back float64) bool { return back <= pushed })
}

// NewMinQueue tracks the minimum of the last window values.
func NewMinQueue(window int) *MonotonicQueue {
	return newMonotonicQueue(window, func(pushed, back float64) bool { return back >= pushed })
}

func newMonotonicQueue(window int, dominates func(pushed, back float64) bool) *MonotonicQueue {
	if window <= 0 {
		panic("window: monotonic queue window must be positive")
	}

	q := &MonotonicQueue{window: window, t: -1, dominates: dominates}
	q.entries.SetBaseCap(window)
	return q
}

// Push adds v as the newest value of the window.
func (q *MonotonicQueue) Push(v float64) {
	q.t++

	for q.entries.Len() > 0 && q.dominates(v, q.entries.Back().value) {
		q.entries.PopBack()
	}

	q.entries.PushBack(entry{value: v, t: q.t})

	for q.entries.Front().t < q.t-q.window+1 {
		q.entries.PopFront()
	}
}

// Front returns the window extremum and the number of pushes since it was pushed.
// ok is false before the first push.
func (q *MonotonicQueue) Front() (value float64, age int, ok bool) {
	if q.entries.Len() == 0 {
		return 0, 0, false
	}

	front := q.entries.Front()
	return front.value, q.t - front.t, true
}

// Len returns the number of entries currently held by the deque.
func (q *MonotonicQueue) Len() int {
	return q.entries.Len()
}

func (q *MonotonicQueue) Window() int {
	return q.window
}

func (q *MonotonicQueue) Reset() {
	q.entries.Clear()
	q.t = -1
}
