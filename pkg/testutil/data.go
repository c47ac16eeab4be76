// Package testutil generates deterministic market data for tests.
package testutil

import (
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/c9s/indicator/pkg/types"
)

// RandomPrices returns a random walk of n positive prices starting near 100.
func RandomPrices(seed int64, n int) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	prices := make([]float64, n)
	p := 100.0
	for i := range prices {
		p += rnd.NormFloat64()
		if p < 1 {
			p = 1
		}

		prices[i] = p
	}

	return prices
}

// RandomKLines returns n consistent candles: low <= open, close <= high, volume >= 0.
func RandomKLines(seed int64, n int, interval types.Interval) []types.KLine {
	rnd := rand.New(rand.NewSource(seed))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	kLines := make([]types.KLine, n)
	prev := 100.0
	for i := range kLines {
		open := prev
		closePrice := math.Max(1, open+rnd.NormFloat64())
		high := math.Max(open, closePrice) + rnd.Float64()
		low := math.Max(0.5, math.Min(open, closePrice)-rnd.Float64())

		startTime := start.Add(time.Duration(i) * interval.Duration())
		kLines[i] = types.KLine{
			Symbol:    "BTCUSDT",
			Interval:  interval,
			StartTime: startTime,
			EndTime:   startTime.Add(interval.Duration() - time.Millisecond),
			Open:      roundDecimal(open),
			High:      roundDecimal(high),
			Low:       roundDecimal(low),
			Close:     roundDecimal(closePrice),
			Volume:    roundDecimal(rnd.Float64() * 10),
		}

		prev = closePrice
	}

	return kLines
}

func roundDecimal(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(4)
}

// Round rounds v to 8 decimal places.
func Round(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
