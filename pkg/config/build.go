package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/types"
)

// Pipeline is a configured indicator ready to be fed with klines.
type Pipeline struct {
	Name    string
	Columns []string
	Row     Row
}

// Build constructs every configured indicator. Construction errors of all entries are
// reported together.
func (c *Config) Build() (pipelines []Pipeline, err error) {
	for _, ic := range c.Indicators {
		row, columns, e := BuildIndicator(ic)
		if e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "indicator %q", ic.Name))
			continue
		}

		log.Debugf("built indicator %s (%s) with columns %v", ic.Name, ic.Type, columns)
		pipelines = append(pipelines, Pipeline{Name: ic.Name, Columns: columns, Row: row})
	}

	if err != nil {
		return nil, err
	}

	return pipelines, nil
}

// BuildIndicator constructs a single indicator, including its input indicator, maturity gate
// and output window.
func BuildIndicator(ic IndicatorConfig) (Row, []string, error) {
	f, ok := lookup(ic.Type)
	if !ok {
		return nil, nil, errors.Wrapf(ErrUnknownIndicatorType, "%q", ic.Type)
	}

	src, err := buildSource(ic)
	if err != nil {
		return nil, nil, err
	}

	row, columns, err := f.New(ic, src)
	if err != nil {
		return nil, nil, err
	}

	if ic.Window > 1 {
		w, err := indicator.Window[types.KLine, []float64](row, ic.Window)
		if err != nil {
			return nil, nil, err
		}

		row = indicator.Map[types.KLine, [][]float64, []float64](w, flatten)
		columns = windowColumns(columns, ic.Window)
	}

	if ic.Mature > 0 {
		m, err := indicator.Mature[types.KLine, []float64](row, ic.Mature)
		if err != nil {
			return nil, nil, err
		}

		row = m
	}

	return row, columns, nil
}

func buildSource(ic IndicatorConfig) (ScalarSource, error) {
	if ic.Of == nil {
		mapper := ic.Field.Mapper()
		return indicator.Func[types.KLine, float64](func(k types.KLine) (float64, bool) {
			return mapper(k), true
		}), nil
	}

	row, _, err := BuildIndicator(*ic.Of)
	if err != nil {
		return nil, errors.Wrap(err, "of")
	}

	return indicator.Map[types.KLine, []float64, float64](row, func(values []float64) float64 {
		return values[0]
	}), nil
}

func flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}

func windowColumns(columns []string, size int) []string {
	var out []string
	for lag := size - 1; lag >= 0; lag-- {
		for _, c := range columns {
			if lag == 0 {
				out = append(out, c)
			} else {
				out = append(out, fmt.Sprintf("%s[-%d]", c, lag))
			}
		}
	}

	return out
}
