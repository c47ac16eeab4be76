package trend

import (
	"github.com/c9s/indicator/pkg/indicator"
)

const (
	DefaultMACDShortPeriod  = 12
	DefaultMACDLongPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

type MACDValue struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD is the difference between a fast and a slow EMA of the price.
//
// The signal line is the SMA of the MACD line and the histogram is MACD - Signal.
// The output is always present.
type MACD struct {
	line   *indicator.DiffIndicator[float64, float64, float64]
	signal *SMA
	value  MACDValue
	ready  bool
}

// NewMACD requires shortPeriod < longPeriod.
func NewMACD(shortPeriod, longPeriod, signalPeriod int) (*MACD, error) {
	if err := indicator.CheckLess("shortPeriod", shortPeriod, "longPeriod", longPeriod); err != nil {
		return nil, err
	}

	short, err := NewEMA(shortPeriod)
	if err != nil {
		return nil, err
	}

	long, err := NewEMA(longPeriod)
	if err != nil {
		return nil, err
	}

	signal, err := NewSMA(signalPeriod)
	if err != nil {
		return nil, err
	}

	return &MACD{
		line:   indicator.Diff[float64, float64, float64](short, long),
		signal: signal,
	}, nil
}

func (m *MACD) Next(v float64) (MACDValue, bool) {
	macd, _ := m.line.Next(indicator.Pair[float64, float64]{First: v, Second: v})
	signal, _ := m.signal.Next(macd)

	m.value = MACDValue{
		MACD:      macd,
		Signal:    signal,
		Histogram: macd - signal,
	}
	m.ready = true
	return m.value, true
}

func (m *MACD) Current() (MACDValue, bool) {
	return m.value, m.ready
}

func (m *MACD) Reset() {
	m.line.Reset()
	m.signal.Reset()
	m.value = MACDValue{}
	m.ready = false
}
