package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// KLine is one OHLCV candle.
type KLine struct {
	Symbol   string   `json:"symbol" yaml:"symbol"`
	Interval Interval `json:"interval" yaml:"interval"`

	StartTime time.Time `json:"startTime" yaml:"startTime"`
	EndTime   time.Time `json:"endTime" yaml:"endTime"`

	Open   decimal.Decimal `json:"open" yaml:"open"`
	High   decimal.Decimal `json:"high" yaml:"high"`
	Low    decimal.Decimal `json:"low" yaml:"low"`
	Close  decimal.Decimal `json:"close" yaml:"close"`
	Volume decimal.Decimal `json:"volume" yaml:"volume"`
}

var three = decimal.NewFromInt(3)

// Typical returns (high + low + close) / 3.
func (k KLine) Typical() decimal.Decimal {
	return k.High.Add(k.Low).Add(k.Close).Div(three)
}

func (k KLine) Mid() decimal.Decimal {
	return k.High.Add(k.Low).Div(decimal.NewFromInt(2))
}

// PriceVolume pairs the close price with the volume of the candle.
func (k KLine) PriceVolume() PriceVolume {
	return PriceVolume{
		Price:  k.Close.InexactFloat64(),
		Volume: k.Volume.InexactFloat64(),
	}
}

func (k KLine) String() string {
	return fmt.Sprintf("%s %s %s O: %s H: %s L: %s C: %s V: %s",
		k.StartTime.Format(time.DateTime), k.Symbol, k.Interval,
		k.Open.String(), k.High.String(), k.Low.String(), k.Close.String(), k.Volume.String())
}
