// Package volatility contains dispersion based indicators.
package volatility

import (
	"math"

	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/indicator/window"
)

type StandardDeviationValue struct {
	Mean float64
	SD   float64
}

// StandardDeviation is the population standard deviation of the last period inputs, along
// with their mean. Missing history is filled with the first input, so the first output is
// {x, 0}. The output is always present.
type StandardDeviation struct {
	period int
	values *window.Buffer[float64]
	sum    float64
	sumSq  float64
	value  StandardDeviationValue
}

func NewStandardDeviation(period int) (*StandardDeviation, error) {
	if err := indicator.CheckPeriod("period", period); err != nil {
		return nil, err
	}

	return &StandardDeviation{
		period: period,
		values: window.NewBuffer[float64](period),
	}, nil
}

func (s *StandardDeviation) Next(v float64) (StandardDeviationValue, bool) {
	n := float64(s.period)
	if s.values.Len() == 0 {
		s.values.Fill(v)
		s.sum = v * n
		s.sumSq = v * v * n
	} else {
		old, _ := s.values.Push(v)
		s.sum += v - old
		s.sumSq += v*v - old*old
	}

	mean := s.sum / n
	// rounding can push the variance slightly below zero
	variance := math.Max(0, s.sumSq/n-mean*mean)

	s.value = StandardDeviationValue{Mean: mean, SD: math.Sqrt(variance)}
	return s.value, true
}

func (s *StandardDeviation) Current() (StandardDeviationValue, bool) {
	return s.value, s.values.Len() > 0
}

func (s *StandardDeviation) Reset() {
	s.values.Clear()
	s.sum, s.sumSq = 0, 0
	s.value = StandardDeviationValue{}
}
