package cmd

import (
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/indicator/pkg/config"
	"github.com/c9s/indicator/pkg/types"
)

// drawResults plots the close price and every indicator column against the kline time.
// Absent outputs leave gaps in their series.
func drawResults(title string, interval types.Interval, pipelines []config.Pipeline, results []Result) *chart.Chart {
	valueFormatter := chart.TimeMinuteValueFormatter
	if interval.Duration() >= 24*time.Hour {
		valueFormatter = chart.TimeDateValueFormatter
	} else if interval.Duration() >= time.Hour {
		valueFormatter = chart.TimeHourValueFormatter
	}

	c := &chart.Chart{
		Title: title,
		XAxis: chart.XAxis{
			ValueFormatter: valueFormatter,
		},
	}
	c.Elements = []chart.Renderable{
		chart.LegendLeft(c),
	}

	closes := chart.TimeSeries{Name: "close"}
	for _, r := range results {
		closes.XValues = append(closes.XValues, r.KLine.StartTime)
		closes.YValues = append(closes.YValues, r.KLine.Close.InexactFloat64())
	}
	c.Series = append(c.Series, closes)

	for i, p := range pipelines {
		for j, column := range p.Columns {
			s := chart.TimeSeries{Name: column}
			for _, r := range results {
				if r.Values[i] == nil {
					continue
				}

				s.XValues = append(s.XValues, r.KLine.StartTime)
				s.YValues = append(s.YValues, r.Values[i][j])
			}

			if len(s.XValues) > 0 {
				c.Series = append(c.Series, s)
			}
		}
	}

	return c
}

func writeChart(path string, c *chart.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Render(chart.PNG, f)
}
