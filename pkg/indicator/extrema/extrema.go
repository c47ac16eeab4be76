// Package extrema tracks the highest and lowest values of a sliding window.
//
// Every indicator here is backed by a monotonic deque, so an update is O(1) amortized and
// the memory is bounded by the window. Outputs are always present: before the window is
// full the extremum is taken over the inputs seen so far.
package extrema

import (
	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/indicator/window"
)

type tracker struct {
	queue *window.MonotonicQueue
}

func newTracker(period int, newQueue func(int) *window.MonotonicQueue) (tracker, error) {
	if err := indicator.CheckPeriod("period", period); err != nil {
		return tracker{}, err
	}

	return tracker{queue: newQueue(period)}, nil
}

func (t *tracker) push(v float64) (float64, int) {
	t.queue.Push(v)
	value, age, _ := t.queue.Front()
	return value, age
}

func (t *tracker) Period() int {
	return t.queue.Window()
}

func (t *tracker) Reset() {
	t.queue.Reset()
}

// Max is the highest of the last period inputs.
type Max struct {
	tracker
}

func NewMax(period int) (*Max, error) {
	t, err := newTracker(period, window.NewMaxQueue)
	if err != nil {
		return nil, err
	}

	return &Max{tracker: t}, nil
}

func (m *Max) Next(v float64) (float64, bool) {
	value, _ := m.push(v)
	return value, true
}

func (m *Max) Current() (float64, bool) {
	value, _, ok := m.queue.Front()
	return value, ok
}

// Min is the lowest of the last period inputs.
type Min struct {
	tracker
}

func NewMin(period int) (*Min, error) {
	t, err := newTracker(period, window.NewMinQueue)
	if err != nil {
		return nil, err
	}

	return &Min{tracker: t}, nil
}

func (m *Min) Next(v float64) (float64, bool) {
	value, _ := m.push(v)
	return value, true
}

func (m *Min) Current() (float64, bool) {
	value, _, ok := m.queue.Front()
	return value, ok
}

// MaxIndex is the number of updates since the highest of the last period inputs, in
// [0, period-1]. It is 0 when the latest input is the new high; among equal highs the most
// recent one counts.
type MaxIndex struct {
	tracker
}

func NewMaxIndex(period int) (*MaxIndex, error) {
	t, err := newTracker(period, window.NewMaxQueue)
	if err != nil {
		return nil, err
	}

	return &MaxIndex{tracker: t}, nil
}

func (m *MaxIndex) Next(v float64) (int, bool) {
	_, age := m.push(v)
	return age, true
}

func (m *MaxIndex) Current() (int, bool) {
	_, age, ok := m.queue.Front()
	return age, ok
}

// MinIndex is the number of updates since the lowest of the last period inputs.
type MinIndex struct {
	tracker
}

func NewMinIndex(period int) (*MinIndex, error) {
	t, err := newTracker(period, window.NewMinQueue)
	if err != nil {
		return nil, err
	}

	return &MinIndex{tracker: t}, nil
}

func (m *MinIndex) Next(v float64) (int, bool) {
	_, age := m.push(v)
	return age, true
}

func (m *MinIndex) Current() (int, bool) {
	_, age, ok := m.queue.Front()
	return age, ok
}
