package trend

import (
	"github.com/c9s/indicator/pkg/indicator"
)

// smoother implements out = alpha*in + (1-alpha)*prev, seeded with the first input.
type smoother struct {
	alpha  float64
	value  float64
	seeded bool
}

func newSmoother(alpha float64) (smoother, error) {
	if err := indicator.CheckRange("alpha", alpha, indicator.UnitInterval); err != nil {
		return smoother{}, err
	}

	return smoother{alpha: alpha}, nil
}

func (s *smoother) Next(v float64) (float64, bool) {
	if !s.seeded {
		s.value = v
		s.seeded = true
	} else {
		s.value = s.alpha*v + (1-s.alpha)*s.value
	}

	return s.value, true
}

func (s *smoother) Current() (float64, bool) {
	return s.value, s.seeded
}

func (s *smoother) Alpha() float64 {
	return s.alpha
}

func (s *smoother) Reset() {
	s.value = 0
	s.seeded = false
}

// EMA is the exponential moving average with alpha = 2 / (period + 1).
//
// The first output equals the first input, which is the SMA of the first period inputs
// when the missing history is filled with that input. The output is always present.
type EMA struct {
	smoother
}

func NewEMA(period int) (*EMA, error) {
	if err := indicator.CheckPeriod("period", period); err != nil {
		return nil, err
	}

	return NewEMAFromAlpha(2.0 / float64(period+1))
}

// NewEMAFromAlpha creates an EMA with an explicit smoothing factor in (0, 1].
func NewEMAFromAlpha(alpha float64) (*EMA, error) {
	s, err := newSmoother(alpha)
	if err != nil {
		return nil, err
	}

	return &EMA{smoother: s}, nil
}

// RMA is Wilder's running moving average, an exponential average with alpha = 1 / period.
// It is seeded like EMA and always present.
type RMA struct {
	smoother
}

func NewRMA(period int) (*RMA, error) {
	if err := indicator.CheckPeriod("period", period); err != nil {
		return nil, err
	}

	return NewRMAFromAlpha(1.0 / float64(period))
}

func NewRMAFromAlpha(alpha float64) (*RMA, error) {
	s, err := newSmoother(alpha)
	if err != nil {
		return nil, err
	}

	return &RMA{smoother: s}, nil
}
