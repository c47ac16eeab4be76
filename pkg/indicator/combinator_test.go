package indicator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/indicator/momentum"
	"github.com/c9s/indicator/pkg/indicator/trend"
	"github.com/c9s/indicator/pkg/testutil"
)

var smaInputs = []float64{100, 101, 101, 102, 102, 102}

func newSMA(t *testing.T, period int) *trend.SMA {
	t.Helper()
	sma, err := trend.NewSMA(period)
	require.NoError(t, err)
	return sma
}

// counter returns an indicator that is present only on even calls, along with the number
// of times it has been called.
func counter() (indicator.Func[float64, float64], *int) {
	calls := 0
	return func(v float64) (float64, bool) {
		calls++
		return v, calls%2 == 0
	}, &calls
}

func TestMap(t *testing.T) {
	m := indicator.Map(newSMA(t, 5), func(v float64) float64 { return v * 2 })

	expected := []float64{200, 200.4, 200.8, 201.6, 202.4, 203.2}
	for i, v := range smaInputs {
		out, ok := m.Next(v)
		assert.True(t, ok)
		assert.InDelta(t, expected[i], out, 1e-9)

		current, ok := m.Current()
		assert.True(t, ok)
		assert.Equal(t, out, current)
	}

	t.Run("AbsentStaysAbsent", func(t *testing.T) {
		inner, _ := counter()
		called := 0
		m := indicator.Map(inner, func(v float64) string {
			called++
			return "x"
		})

		_, ok := m.Next(1)
		assert.False(t, ok)
		assert.Equal(t, 0, called)

		out, ok := m.Next(2)
		assert.True(t, ok)
		assert.Equal(t, "x", out)
		assert.Equal(t, 1, called)
	})

	t.Run("Reset", func(t *testing.T) {
		m.Reset()
		_, ok := m.Current()
		assert.False(t, ok)

		out, _ := m.Next(10)
		assert.Equal(t, 20.0, out)
	})
}

func TestMapInput(t *testing.T) {
	type candle struct{ close float64 }

	m := indicator.MapInput(newSMA(t, 5), func(c candle) float64 { return c.close })
	for i, v := range smaInputs {
		out, ok := m.Next(candle{close: v})
		assert.True(t, ok)
		assert.InDelta(t, []float64{100, 100.2, 100.4, 100.8, 101.2, 101.6}[i], out, 1e-9)
	}
}

func TestChain(t *testing.T) {
	rsi, err := momentum.NewRSI(3)
	require.NoError(t, err)

	c := indicator.Chain(rsi, newSMA(t, 2))

	inputs := []float64{100, 101, 100, 100, 100, 102}
	expected := []float64{50, 75, 70, 40, 40, 64.05940594}
	for i, v := range inputs {
		out, ok := c.Next(v)
		assert.True(t, ok)
		assert.InDelta(t, expected[i], out, 1e-6, "at %d", i)
	}

	t.Run("Pushforward", func(t *testing.T) {
		rsi, _ := momentum.NewRSI(3)
		p := indicator.Pushforward(newSMA(t, 2), rsi)
		for i, v := range inputs {
			out, _ := p.Next(v)
			assert.InDelta(t, expected[i], out, 1e-6, "at %d", i)
		}
	})

	t.Run("DownstreamNotInvokedWhileUpstreamAbsent", func(t *testing.T) {
		upstream, _ := counter()
		downstream, calls := counter()
		c := indicator.Chain[float64, float64, float64](upstream, downstream)

		for i := 1; i <= 8; i++ {
			_, ok := c.Next(float64(i))
			assert.Equal(t, i/2, *calls)
			// present only when both sides are present
			assert.Equal(t, i%4 == 0, ok)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		c.Reset()
		_, ok := c.Current()
		assert.False(t, ok)

		out, _ := c.Next(1)
		assert.Equal(t, 50.0, out)
	})
}

func TestMature(t *testing.T) {
	m, err := indicator.Mature[float64, float64](newSMA(t, 5), 3)
	require.NoError(t, err)

	expected := []float64{100, 100.2, 100.4, 100.8, 101.2, 101.6}
	for i, v := range smaInputs {
		out, ok := m.Next(v)
		if i < 3 {
			assert.False(t, ok, "at %d", i)
			assert.False(t, m.IsMature())
			continue
		}

		assert.True(t, ok, "at %d", i)
		assert.True(t, m.IsMature())
		assert.InDelta(t, expected[i], out, 1e-9)

		current, present := m.Current()
		assert.True(t, present)
		assert.Equal(t, out, current)
	}

	t.Run("ResetClosesGate", func(t *testing.T) {
		m.Reset()
		assert.False(t, m.IsMature())

		_, ok := m.Next(100)
		assert.False(t, ok)
		assert.False(t, m.IsMature())
	})

	t.Run("MatchesUngated", func(t *testing.T) {
		sma := newSMA(t, 5)
		gated, _ := indicator.Mature[float64, float64](newSMA(t, 5), 10)
		for i, p := range testutil.RandomPrices(8, 100) {
			expected, _ := sma.Next(p)
			out, ok := gated.Next(p)
			if i < 10 {
				assert.False(t, ok)
				continue
			}

			assert.True(t, ok)
			assert.Equal(t, expected, out)

			current, _ := gated.Current()
			assert.Equal(t, out, current)
		}
	})

	t.Run("ZeroDisablesGate", func(t *testing.T) {
		m, err := indicator.Mature[float64, float64](newSMA(t, 5), 0)
		require.NoError(t, err)

		out, ok := m.Next(7)
		assert.True(t, ok)
		assert.Equal(t, 7.0, out)
	})

	t.Run("PreservesAbsence", func(t *testing.T) {
		inner, _ := counter()
		m, _ := indicator.Mature[float64, float64](inner, 1)

		var present []bool
		for i := 0; i < 5; i++ {
			_, ok := m.Next(1)
			present = append(present, ok)
		}

		assert.Equal(t, []bool{false, true, false, true, false}, present)
	})

	t.Run("Negative", func(t *testing.T) {
		m, err := indicator.Mature[float64, float64](newSMA(t, 5), -1)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, indicator.ErrInvalidParameter)
	})

	t.Run("Reset", func(t *testing.T) {
		m.Reset()
		_, ok := m.Next(100)
		assert.False(t, ok)
	})
}

func TestWindow(t *testing.T) {
	w, err := indicator.Window[float64, float64](newSMA(t, 5), 3)
	require.NoError(t, err)

	expected := [][]float64{
		{100, 100, 100},
		{100, 100, 100.2},
		{100, 100.2, 100.4},
		{100.2, 100.4, 100.8},
	}

	var kept [][]float64
	for i, v := range []float64{100, 101, 101, 102} {
		out, ok := w.Next(v)
		assert.True(t, ok)
		require.Len(t, out, 3)
		assert.InDeltaSlice(t, expected[i], out, 1e-9, "at %d", i)
		kept = append(kept, out)
	}

	// earlier windows are not overwritten by later updates
	assert.InDeltaSlice(t, expected[0], kept[0], 1e-9)

	t.Run("SkipsAbsentOutputs", func(t *testing.T) {
		inner, _ := counter()
		w, _ := indicator.Window[float64, float64](inner, 2)

		_, ok := w.Next(1)
		assert.False(t, ok)

		out, ok := w.Next(2)
		assert.True(t, ok)
		assert.Equal(t, []float64{2, 2}, out)

		out, ok = w.Next(3)
		assert.True(t, ok)
		assert.Equal(t, []float64{2, 2}, out)

		out, _ = w.Next(4)
		assert.Equal(t, []float64{2, 4}, out)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		for _, k := range []int{0, -2} {
			w, err := indicator.Window[float64, float64](newSMA(t, 5), k)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, indicator.ErrInvalidParameter)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		w.Reset()
		out, _ := w.Next(50)
		assert.Equal(t, []float64{50, 50, 50}, out)
	})
}

func TestTogether(t *testing.T) {
	ema, err := trend.NewEMA(4)
	require.NoError(t, err)

	tg := indicator.Together[float64, float64, float64](newSMA(t, 4), ema)

	inputs := []float64{101, 101, 101, 102, 102, 102}
	expected := [][2]float64{
		{101, 101}, {101, 101}, {101, 101},
		{101.25, 101.4}, {101.5, 101.64}, {101.75, 101.784},
	}

	for i, v := range inputs {
		out, ok := tg.Next(v)
		assert.True(t, ok)
		assert.InDelta(t, expected[i][0], out.First, 1e-9)
		assert.InDelta(t, expected[i][1], out.Second, 1e-9)
	}

	t.Run("AbsentWhenEitherIsAbsent", func(t *testing.T) {
		inner, _ := counter()
		tg := indicator.Together[float64, float64, float64](inner, indicator.Identity[float64]())

		_, ok := tg.Next(1)
		assert.False(t, ok)
		_, ok = tg.Next(1)
		assert.True(t, ok)
	})
}

func TestDiff(t *testing.T) {
	d := indicator.Diff[float64, float64, float64](indicator.Identity[float64](), indicator.Identity[float64]())

	inputs := [][2]float64{{0, 0}, {1, 1}, {0, 2}, {2, 0}, {3, 1}, {1, 9}}
	expected := []float64{0, 0, -2, 2, 2, -8}
	for i, in := range inputs {
		out, ok := d.Next(indicator.Pair[float64, float64]{First: in[0], Second: in[1]})
		assert.True(t, ok)
		assert.Equal(t, expected[i], out)
	}

	t.Run("Integers", func(t *testing.T) {
		d := indicator.Diff[int, int, int](indicator.Identity[int](), indicator.Constant[int, int](3))
		out, _ := d.Next(indicator.Pair[int, int]{First: 10})
		assert.Equal(t, 7, out)
	})
}

func TestConstant(t *testing.T) {
	c := indicator.Constant[float64, string]("flat")
	out, ok := c.Next(1)
	assert.True(t, ok)
	assert.Equal(t, "flat", out)

	current, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, "flat", current)
}

func TestAlways(t *testing.T) {
	inner, _ := counter()
	a := indicator.Always[float64, float64](inner, -1)

	assert.Equal(t, -1.0, a.Next(5))
	assert.Equal(t, 6.0, a.Next(6))

	sma := indicator.Always[float64, float64](newSMA(t, 2), 0)
	assert.Equal(t, 4.0, sma.Next(4))
	assert.Equal(t, 5.0, sma.Next(6))
	sma.Reset()
	assert.Equal(t, 8.0, sma.Next(8))
}
