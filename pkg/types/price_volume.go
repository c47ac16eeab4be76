package types

import (
	"fmt"
)

// PriceVolume is the input of volume weighted indicators.
type PriceVolume struct {
	Price, Volume float64
}

func NewPriceVolume(p, v float64) PriceVolume {
	return PriceVolume{
		Price:  p,
		Volume: v,
	}
}

func (p PriceVolume) InQuote() float64 {
	return p.Price * p.Volume
}

func (p PriceVolume) String() string {
	return fmt.Sprintf("PriceVolume{ Price: %g, Volume: %g }", p.Price, p.Volume)
}
