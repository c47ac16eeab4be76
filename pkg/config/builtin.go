package config

import (
	"github.com/c9s/indicator/pkg/indicator/extrema"
	"github.com/c9s/indicator/pkg/indicator/momentum"
	"github.com/c9s/indicator/pkg/indicator/trend"
	"github.com/c9s/indicator/pkg/indicator/volatility"
	"github.com/c9s/indicator/pkg/indicator/volume"
)

const defaultPeriod = 14

func init() {
	Register("sma", Factory{Scalar: true, New: newSMA})
	Register("ema", Factory{Scalar: true, New: newEMA})
	Register("rma", Factory{Scalar: true, New: newRMA})
	Register("rsi", Factory{Scalar: true, New: newRSI})
	Register("max", Factory{Scalar: true, New: newMax})
	Register("min", Factory{Scalar: true, New: newMin})
	Register("maxindex", Factory{Scalar: true, New: newMaxIndex})
	Register("minindex", Factory{Scalar: true, New: newMinIndex})
	Register("stddev", Factory{Scalar: true, New: newStandardDeviation})
	Register("boll", Factory{Scalar: true, New: newBollingerBands})
	Register("macd", Factory{Scalar: true, New: newMACD})
	Register("stoch", Factory{Scalar: true, New: newStochastics})
	Register("aroon", Factory{Scalar: true, New: newAroon})
	Register("aroonosc", Factory{Scalar: true, New: newAroonOscillator})
	Register("vwap", Factory{New: newVWAP})
	Register("vwma", Factory{New: newVWMA})
}

func newSMA(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	sma, err := trend.NewSMA(c.period(trend.DefaultSMAPeriod))
	if err != nil {
		return nil, nil, err
	}

	return scalarRow[float64](src, sma, value), []string{c.Name}, nil
}

func newEMA(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	var ema *trend.EMA
	var err error
	if c.Alpha != 0 {
		ema, err = trend.NewEMAFromAlpha(c.Alpha)
	} else {
		ema, err = trend.NewEMA(c.period(defaultPeriod))
	}

	if err != nil {
		return nil, nil, err
	}

	return scalarRow[float64](src, ema, value), []string{c.Name}, nil
}

func newRMA(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	var rma *trend.RMA
	var err error
	if c.Alpha != 0 {
		rma, err = trend.NewRMAFromAlpha(c.Alpha)
	} else {
		rma, err = trend.NewRMA(c.period(defaultPeriod))
	}

	if err != nil {
		return nil, nil, err
	}

	return scalarRow[float64](src, rma, value), []string{c.Name}, nil
}

func newRSI(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	rsi, err := momentum.NewRSI(c.period(momentum.DefaultRSIPeriod))
	if err != nil {
		return nil, nil, err
	}

	return scalarRow[float64](src, rsi, value), []string{c.Name}, nil
}

func newMax(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	m, err := extrema.NewMax(c.period(defaultPeriod))
	if err != nil {
		return nil, nil, err
	}

	return scalarRow[float64](src, m, value), []string{c.Name}, nil
}

func newMin(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	m, err := extrema.NewMin(c.period(defaultPeriod))
	if err != nil {
		return nil, nil, err
	}

	return scalarRow[float64](src, m, value), []string{c.Name}, nil
}

func newMaxIndex(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	m, err := extrema.NewMaxIndex(c.period(defaultPeriod))
	if err != nil {
		return nil, nil, err
	}

	return scalarRow[int](src, m, index), []string{c.Name}, nil
}

func newMinIndex(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	m, err := extrema.NewMinIndex(c.period(defaultPeriod))
	if err != nil {
		return nil, nil, err
	}

	return scalarRow[int](src, m, index), []string{c.Name}, nil
}

func newStandardDeviation(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	sd, err := volatility.NewStandardDeviation(c.period(volatility.DefaultBollingerPeriod))
	if err != nil {
		return nil, nil, err
	}

	row := scalarRow(src, sd, func(v volatility.StandardDeviationValue) []float64 {
		return []float64{v.Mean, v.SD}
	})
	return row, []string{c.Name + ".mean", c.Name + ".sd"}, nil
}

func newBollingerBands(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	multiplier := volatility.DefaultBollingerMultiplier
	if c.Multiplier != nil {
		multiplier = *c.Multiplier
	}

	boll, err := volatility.NewBollingerBands(c.period(volatility.DefaultBollingerPeriod), multiplier)
	if err != nil {
		return nil, nil, err
	}

	row := scalarRow(src, boll, func(v volatility.BollingerValue) []float64 {
		return []float64{v.Average, v.Upper, v.Lower}
	})
	return row, []string{c.Name + ".average", c.Name + ".upper", c.Name + ".lower"}, nil
}

func newMACD(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	short, long, signal := c.Short, c.Long, c.Signal
	if short == 0 {
		short = trend.DefaultMACDShortPeriod
	}
	if long == 0 {
		long = trend.DefaultMACDLongPeriod
	}
	if signal == 0 {
		signal = trend.DefaultMACDSignalPeriod
	}

	macd, err := trend.NewMACD(short, long, signal)
	if err != nil {
		return nil, nil, err
	}

	row := scalarRow(src, macd, func(v trend.MACDValue) []float64 {
		return []float64{v.MACD, v.Signal, v.Histogram}
	})
	return row, []string{c.Name, c.Name + ".signal", c.Name + ".histogram"}, nil
}

func newStochastics(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	k, d, slowD := c.K, c.D, c.SlowD
	if k == 0 {
		k = momentum.DefaultStochasticsKPeriod
	}
	if d == 0 {
		d = momentum.DefaultStochasticsDPeriod
	}
	if slowD == 0 {
		slowD = momentum.DefaultStochasticsSlowDPeriod
	}

	stoch, err := momentum.NewStochastics(k, d, slowD)
	if err != nil {
		return nil, nil, err
	}

	row := scalarRow(src, stoch, func(v momentum.StochasticsValue) []float64 {
		return []float64{v.K, v.D, v.SlowD}
	})
	return row, []string{c.Name + ".k", c.Name + ".d", c.Name + ".slowD"}, nil
}

func newAroon(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	aroon, err := trend.NewAroonIndicator(c.period(trend.DefaultAroonPeriod))
	if err != nil {
		return nil, nil, err
	}

	row := scalarRow(src, aroon, func(v trend.AroonValue) []float64 {
		return []float64{v.Up, v.Down}
	})
	return row, []string{c.Name + ".up", c.Name + ".down"}, nil
}

func newAroonOscillator(c IndicatorConfig, src ScalarSource) (Row, []string, error) {
	osc, err := trend.NewAroonOscillator(c.period(trend.DefaultAroonPeriod))
	if err != nil {
		return nil, nil, err
	}

	return scalarRow[float64](src, osc, value), []string{c.Name}, nil
}

func newVWAP(c IndicatorConfig, _ ScalarSource) (Row, []string, error) {
	return priceVolumeRow(volume.NewVWAP()), []string{c.Name}, nil
}

func newVWMA(c IndicatorConfig, _ ScalarSource) (Row, []string, error) {
	vwma, err := volume.NewVWMA(c.period(volume.DefaultVWMAPeriod))
	if err != nil {
		return nil, nil, err
	}

	return priceVolumeRow(vwma), []string{c.Name}, nil
}
