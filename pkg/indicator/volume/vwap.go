package volume

import (
	"github.com/c9s/indicator/pkg/types"
)

// VWAP is the cumulative volume weighted average price since the first input.
//
//	VWAP = Sum(Price * Volume) / Sum(Volume)
//
// The average is updated incrementally. The first input sets the initial value whatever its
// volume, and inputs arriving while the cumulative volume is still zero keep it.
// The output is always present.
type VWAP struct {
	value       float64
	totalVolume float64
	ready       bool
}

func NewVWAP() *VWAP {
	return &VWAP{}
}

func (s *VWAP) Next(in types.PriceVolume) (float64, bool) {
	s.totalVolume += in.Volume

	switch {
	case !s.ready:
		s.value = in.Price
		s.ready = true
	case s.totalVolume != 0:
		s.value += (in.Price - s.value) * in.Volume / s.totalVolume
	}

	return s.value, true
}

func (s *VWAP) Current() (float64, bool) {
	return s.value, s.ready
}

func (s *VWAP) Reset() {
	s.value = 0
	s.totalVolume = 0
	s.ready = false
}
