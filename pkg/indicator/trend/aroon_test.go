package trend

import (
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/testutil"
)

func TestAroonIndicator(t *testing.T) {
	aroon, err := NewAroonIndicator(4)
	require.NoError(t, err)

	inputs := []float64{6, 7, 8, 3, 2, 4}
	expected := []AroonValue{
		{Up: 100, Down: 100},
		{Up: 100, Down: 75},
		{Up: 100, Down: 50},
		{Up: 75, Down: 100},
		{Up: 50, Down: 100},
		{Up: 25, Down: 75},
	}

	for i, v := range inputs {
		out, ok := aroon.Next(v)
		assert.True(t, ok)
		assert.InDelta(t, expected[i].Up, out.Up, 1e-9, "up at %d", i)
		assert.InDelta(t, expected[i].Down, out.Down, 1e-9, "down at %d", i)
	}

	_, err = NewAroonIndicator(0)
	assert.ErrorIs(t, err, indicator.ErrInvalidParameter)
}

func TestAroonOscillator(t *testing.T) {
	osc, err := NewAroonOscillator(4)
	require.NoError(t, err)

	got := collect(t, osc, []float64{6, 7, 8, 3, 2, 4})
	assert.InDeltaSlice(t, []float64{0, 25, 50, -25, -50, -50}, got, 1e-9)

	osc.Reset()
	_, ok := osc.Current()
	assert.False(t, ok)
}

func TestAroonAgainstTalib(t *testing.T) {
	const period = 14
	prices := testutil.RandomPrices(9, 600)
	down, up := talib.Aroon(prices, prices, period)
	oscillator := talib.AroonOsc(prices, prices, period)

	aroon, _ := NewAroonIndicator(period)
	osc, _ := NewAroonOscillator(period)
	for i, p := range prices {
		out, _ := aroon.Next(p)
		o, _ := osc.Next(p)

		assert.GreaterOrEqual(t, o, -100.0)
		assert.LessOrEqual(t, o, 100.0)

		if i < period {
			continue
		}

		assert.InDelta(t, up[i], out.Up, 1e-9, "up at %d", i)
		assert.InDelta(t, down[i], out.Down, 1e-9, "down at %d", i)
		assert.InDelta(t, oscillator[i], o, 1e-9, "oscillator at %d", i)
	}
}
