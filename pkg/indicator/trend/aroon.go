package trend

import (
	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/indicator/extrema"
)

const DefaultAroonPeriod = 14

type AroonValue struct {
	Up   float64
	Down float64
}

// AroonIndicator measures how recently the highest and the lowest values of the last
// period+1 inputs occurred, on a 0 to 100 scale:
//
//	Up   = 100 * (period - periods since the highest value) / period
//	Down = 100 * (period - periods since the lowest value) / period
//
// Up is 100 right after a new high. The output is always present.
type AroonIndicator struct {
	period   int
	maxIndex *extrema.MaxIndex
	minIndex *extrema.MinIndex
	value    AroonValue
	ready    bool
}

func NewAroonIndicator(period int) (*AroonIndicator, error) {
	if err := indicator.CheckPeriod("period", period); err != nil {
		return nil, err
	}

	maxIndex, err := extrema.NewMaxIndex(period + 1)
	if err != nil {
		return nil, err
	}

	minIndex, err := extrema.NewMinIndex(period + 1)
	if err != nil {
		return nil, err
	}

	return &AroonIndicator{
		period:   period,
		maxIndex: maxIndex,
		minIndex: minIndex,
	}, nil
}

func (a *AroonIndicator) Next(v float64) (AroonValue, bool) {
	highAge, _ := a.maxIndex.Next(v)
	lowAge, _ := a.minIndex.Next(v)

	p := float64(a.period)
	a.value = AroonValue{
		Up:   100 * (p - float64(highAge)) / p,
		Down: 100 * (p - float64(lowAge)) / p,
	}
	a.ready = true
	return a.value, true
}

func (a *AroonIndicator) Current() (AroonValue, bool) {
	return a.value, a.ready
}

func (a *AroonIndicator) Reset() {
	a.maxIndex.Reset()
	a.minIndex.Reset()
	a.value = AroonValue{}
	a.ready = false
}

// AroonOscillator is Aroon Up minus Aroon Down, in [-100, 100].
type AroonOscillator struct {
	aroon *AroonIndicator
}

func NewAroonOscillator(period int) (*AroonOscillator, error) {
	aroon, err := NewAroonIndicator(period)
	if err != nil {
		return nil, err
	}

	return &AroonOscillator{aroon: aroon}, nil
}

func (o *AroonOscillator) Next(v float64) (float64, bool) {
	a, _ := o.aroon.Next(v)
	return a.Up - a.Down, true
}

func (o *AroonOscillator) Current() (float64, bool) {
	a, ok := o.aroon.Current()
	return a.Up - a.Down, ok
}

func (o *AroonOscillator) Reset() {
	o.aroon.Reset()
}
