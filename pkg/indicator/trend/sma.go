// Package trend contains moving averages and trend-following indicators.
package trend

import (
	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/indicator/window"
)

const DefaultSMAPeriod = 9

// SMA is the simple moving average of the last period inputs.
//
// The running sum is updated incrementally. Before period inputs have been seen the missing
// history is assumed to equal the first input, so SMA(5) over 100, 101 gives 100, 100.2.
// The output is always present.
type SMA struct {
	period int
	values *window.Buffer[float64]
	sum    float64
	value  float64
}

func NewSMA(period int) (*SMA, error) {
	if err := indicator.CheckPeriod("period", period); err != nil {
		return nil, err
	}

	return &SMA{
		period: period,
		values: window.NewBuffer[float64](period),
	}, nil
}

func (s *SMA) Next(v float64) (float64, bool) {
	if s.values.Len() == 0 {
		s.values.Fill(v)
		s.sum = v * float64(s.period)
	} else {
		old, _ := s.values.Push(v)
		s.sum += v - old
	}

	s.value = s.sum / float64(s.period)
	return s.value, true
}

func (s *SMA) Current() (float64, bool) {
	return s.value, s.values.Len() > 0
}

func (s *SMA) Period() int {
	return s.period
}

func (s *SMA) Reset() {
	s.values.Clear()
	s.sum = 0
	s.value = 0
}
