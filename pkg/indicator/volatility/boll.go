package volatility

import (
	"github.com/c9s/indicator/pkg/indicator"
)

const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

type BollingerValue struct {
	Average float64
	Upper   float64
	Lower   float64
}

// BollingerBands wraps the moving average with bands at multiplier standard deviations.
//
//	Upper = SMA + multiplier * SD
//	Lower = SMA - multiplier * SD
type BollingerBands struct {
	sd         *StandardDeviation
	multiplier float64
}

func NewBollingerBands(period int, multiplier float64) (*BollingerBands, error) {
	sd, err := NewStandardDeviation(period)
	if err != nil {
		return nil, err
	}

	if err := indicator.CheckRange("multiplier", multiplier, indicator.AtLeast(0)); err != nil {
		return nil, err
	}

	return &BollingerBands{sd: sd, multiplier: multiplier}, nil
}

func (b *BollingerBands) Next(v float64) (BollingerValue, bool) {
	sd, _ := b.sd.Next(v)
	return b.bands(sd), true
}

func (b *BollingerBands) bands(sd StandardDeviationValue) BollingerValue {
	band := sd.SD * b.multiplier
	return BollingerValue{
		Average: sd.Mean,
		Upper:   sd.Mean + band,
		Lower:   sd.Mean - band,
	}
}

func (b *BollingerBands) Current() (BollingerValue, bool) {
	sd, ok := b.sd.Current()
	return b.bands(sd), ok
}

func (b *BollingerBands) Reset() {
	b.sd.Reset()
}
