// Package momentum contains oscillators measuring the speed of price changes.
package momentum

import (
	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/indicator/trend"
)

const DefaultRSIPeriod = 14

// RSI is Wilder's relative strength index on a 0 to 100 scale.
//
// Gains and losses of successive inputs are smoothed with two RMAs. The first input has no
// predecessor and contributes a zero gain and a zero loss. When only one side moved the RSI
// saturates at 100 (gains only) or 0 (losses only); when neither did it is 50.
// The output is always present.
type RSI struct {
	gain *trend.RMA
	loss *trend.RMA

	prev  float64
	value float64
	count int
}

func NewRSI(period int) (*RSI, error) {
	gain, err := trend.NewRMA(period)
	if err != nil {
		return nil, err
	}

	loss, err := trend.NewRMA(period)
	if err != nil {
		return nil, err
	}

	return &RSI{gain: gain, loss: loss}, nil
}

func (r *RSI) Next(v float64) (float64, bool) {
	var up, down float64
	if r.count > 0 {
		if change := v - r.prev; change > 0 {
			up = change
		} else {
			down = -change
		}
	}

	r.prev = v
	r.count++

	gain, _ := r.gain.Next(up)
	loss, _ := r.loss.Next(down)

	switch {
	case loss == 0 && gain == 0:
		r.value = 50
	case loss == 0:
		r.value = 100
	default:
		r.value = 100 - 100/(1+gain/loss)
	}

	return r.value, true
}

func (r *RSI) Current() (float64, bool) {
	return r.value, r.count > 0
}

func (r *RSI) Reset() {
	r.gain.Reset()
	r.loss.Reset()
	r.prev = 0
	r.value = 0
	r.count = 0
}

var _ indicator.Indicator[float64, float64] = (*RSI)(nil)
