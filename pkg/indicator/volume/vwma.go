// Package volume contains volume weighted indicators fed with price/volume pairs.
package volume

import (
	"github.com/c9s/indicator/pkg/indicator/trend"
	"github.com/c9s/indicator/pkg/types"
)

const DefaultVWMAPeriod = 20

// VWMA is the volume weighted moving average of the last period inputs:
//
//	VWMA = Sum(Price * Volume) / Sum(Volume)
//
// When the window carries no volume at all the plain average price is returned instead.
// Missing history is filled with the first input. The output is always present.
type VWMA struct {
	priceVolume *trend.SMA
	volume      *trend.SMA
	price       *trend.SMA
	value       float64
	ready       bool
}

func NewVWMA(period int) (*VWMA, error) {
	pv, err := trend.NewSMA(period)
	if err != nil {
		return nil, err
	}

	v, err := trend.NewSMA(period)
	if err != nil {
		return nil, err
	}

	p, err := trend.NewSMA(period)
	if err != nil {
		return nil, err
	}

	return &VWMA{priceVolume: pv, volume: v, price: p}, nil
}

func (s *VWMA) Next(in types.PriceVolume) (float64, bool) {
	pv, _ := s.priceVolume.Next(in.InQuote())
	volume, _ := s.volume.Next(in.Volume)
	price, _ := s.price.Next(in.Price)

	if almostZero(volume) {
		s.value = price
	} else {
		s.value = pv / volume
	}

	s.ready = true
	return s.value, true
}

func (s *VWMA) Current() (float64, bool) {
	return s.value, s.ready
}

func (s *VWMA) Reset() {
	s.priceVolume.Reset()
	s.volume.Reset()
	s.price.Reset()
	s.value = 0
	s.ready = false
}

func almostZero(v float64) bool {
	return v > -0.00000000000001 && v < 0.00000000000001
}
