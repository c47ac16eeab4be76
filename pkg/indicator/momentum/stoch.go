package momentum

import (
	"math"

	"github.com/c9s/indicator/pkg/indicator/extrema"
	"github.com/c9s/indicator/pkg/indicator/trend"
)

const (
	DefaultStochasticsKPeriod     = 14
	DefaultStochasticsDPeriod     = 3
	DefaultStochasticsSlowDPeriod = 3
)

type StochasticsValue struct {
	K     float64
	D     float64
	SlowD float64
}

// Stochastics is the stochastic oscillator, on a 0 to 100 scale.
//
//	K     = 100 * (x - min) / (max - min) over the last kPeriod inputs
//	D     = 100 * SMA(x - min) / SMA(max - min) over dPeriod
//	SlowD = SMA(D) over slowDPeriod
//
// K and D are 50 when their denominator is zero. The first input yields 50 for all three
// lines while the averages start from zero. The output is always present.
type Stochastics struct {
	max *extrema.Max
	min *extrema.Min

	numerator   *trend.SMA
	denominator *trend.SMA
	slowD       *trend.SMA

	value StochasticsValue
	ready bool
}

func NewStochastics(kPeriod, dPeriod, slowDPeriod int) (*Stochastics, error) {
	mx, err := extrema.NewMax(kPeriod)
	if err != nil {
		return nil, err
	}

	mn, err := extrema.NewMin(kPeriod)
	if err != nil {
		return nil, err
	}

	numerator, err := trend.NewSMA(dPeriod)
	if err != nil {
		return nil, err
	}

	denominator, err := trend.NewSMA(dPeriod)
	if err != nil {
		return nil, err
	}

	slowD, err := trend.NewSMA(slowDPeriod)
	if err != nil {
		return nil, err
	}

	return &Stochastics{
		max:         mx,
		min:         mn,
		numerator:   numerator,
		denominator: denominator,
		slowD:       slowD,
	}, nil
}

func (s *Stochastics) Next(v float64) (StochasticsValue, bool) {
	high, _ := s.max.Next(v)
	low, _ := s.min.Next(v)

	if !s.ready {
		s.numerator.Next(0)
		s.denominator.Next(0)
		s.slowD.Next(0)
		s.value = StochasticsValue{K: 50, D: 50, SlowD: 50}
		s.ready = true
		return s.value, true
	}

	num, _ := s.numerator.Next(v - low)
	den, _ := s.denominator.Next(high - low)

	k := 50.0
	if high != low {
		k = 100 * (v - low) / (high - low)
	}

	d := 50.0
	if den != 0 {
		d = 100 * num / den
	}

	d = clamp(d)
	slowD, _ := s.slowD.Next(d)

	s.value = StochasticsValue{K: clamp(k), D: d, SlowD: clamp(slowD)}
	return s.value, true
}

func (s *Stochastics) Current() (StochasticsValue, bool) {
	return s.value, s.ready
}

func (s *Stochastics) Reset() {
	s.max.Reset()
	s.min.Reset()
	s.numerator.Reset()
	s.denominator.Reset()
	s.slowD.Reset()
	s.value = StochasticsValue{}
	s.ready = false
}

// clamp removes the rounding drift of the running sums from the 0 to 100 scale.
func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
