package config

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/types"
)

var ErrUnknownIndicatorType = errors.New("unknown indicator type")

// Row is the uniform shape of a configured indicator: one kline in, one row of values out.
type Row = indicator.Indicator[types.KLine, []float64]

// ScalarSource produces the scalar input of an indicator from a kline.
type ScalarSource = indicator.Indicator[types.KLine, float64]

// Factory builds an indicator from its config.
type Factory struct {
	// Scalar is true when the indicator consumes the scalar source passed to New. Other
	// indicators read the klines directly.
	Scalar bool

	// New returns the indicator along with the names of its output columns.
	New func(c IndicatorConfig, src ScalarSource) (Row, []string, error)
}

var factories = struct {
	sync.RWMutex
	m map[string]Factory
}{m: map[string]Factory{}}

// Register makes an indicator type available to configs. It is meant to be called from init.
func Register(typ string, f Factory) {
	factories.Lock()
	defer factories.Unlock()
	factories.m[typ] = f
}

func lookup(typ string) (Factory, bool) {
	factories.RLock()
	defer factories.RUnlock()
	f, ok := factories.m[typ]
	return f, ok
}

// RegisteredTypes returns the registered indicator types, sorted.
func RegisteredTypes() []string {
	factories.RLock()
	defer factories.RUnlock()

	var typs []string
	for typ := range factories.m {
		typs = append(typs, typ)
	}

	sort.Strings(typs)
	return typs
}

// scalarRow feeds src into ind and flattens its output with values.
func scalarRow[O any](src ScalarSource, ind indicator.Indicator[float64, O], values func(O) []float64) Row {
	return indicator.Map[types.KLine, O, []float64](indicator.Chain(src, ind), values)
}

// priceVolumeRow feeds the close price and volume of every kline into ind.
func priceVolumeRow(ind indicator.Indicator[types.PriceVolume, float64]) Row {
	return indicator.Map[types.KLine, float64, []float64](
		indicator.MapInput(ind, types.KLinePriceVolumeMapper), value)
}

func value(v float64) []float64 {
	return []float64{v}
}

func index(i int) []float64 {
	return []float64{float64(i)}
}
