package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/indicator/pkg/indicator"
)

var IndicatorUpdateMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "indicator_updates_total",
		Help: "number of inputs fed to the indicator",
	}, []string{"indicator"})

var IndicatorAbsentMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "indicator_absent_outputs_total",
		Help: "number of updates that produced no output",
	}, []string{"indicator"})

var IndicatorValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "indicator_value",
		Help: "last present output of the indicator",
	}, []string{"indicator", "field"})

func init() {
	prometheus.MustRegister(IndicatorUpdateMetrics, IndicatorAbsentMetrics, IndicatorValueMetrics)
}

// Field extracts one named scalar from an indicator output.
type Field[O any] struct {
	Name  string
	Value func(O) float64
}

// Scalar is the field list of an indicator with a float64 output.
func Scalar() []Field[float64] {
	return []Field[float64]{{Name: "value", Value: func(v float64) float64 { return v }}}
}

// Instrumented records every update of the wrapped indicator. The presence of the wrapped
// output is passed through unchanged.
type Instrumented[I, O any] struct {
	inner  indicator.Indicator[I, O]
	fields []Field[O]

	updates prometheus.Counter
	absent  prometheus.Counter
	gauges  []prometheus.Gauge
}

// Instrument wraps ind and reports its outputs under the given indicator name.
func Instrument[I, O any](name string, ind indicator.Indicator[I, O], fields ...Field[O]) *Instrumented[I, O] {
	s := &Instrumented[I, O]{
		inner:   ind,
		fields:  fields,
		updates: IndicatorUpdateMetrics.WithLabelValues(name),
		absent:  IndicatorAbsentMetrics.WithLabelValues(name),
	}

	for _, f := range fields {
		s.gauges = append(s.gauges, IndicatorValueMetrics.WithLabelValues(name, f.Name))
	}

	return s
}

func (s *Instrumented[I, O]) Next(input I) (O, bool) {
	v, ok := s.inner.Next(input)
	s.updates.Inc()

	if !ok {
		s.absent.Inc()
		return v, ok
	}

	for i, f := range s.fields {
		s.gauges[i].Set(f.Value(v))
	}

	return v, ok
}

func (s *Instrumented[I, O]) Current() (O, bool) {
	if c, ok := s.inner.(indicator.Current[O]); ok {
		return c.Current()
	}

	var zero O
	return zero, false
}

func (s *Instrumented[I, O]) Reset() {
	indicator.Reset(s.inner)
}
