package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"

	"github.com/c9s/indicator/pkg/config"
)

const absentCell = "-"

func newTableStyle() table.Style {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Options.SeparateRows = false
	return style
}

// renderResults writes the results as a table with one row per kline. format is one of
// table, csv or markdown.
func renderResults(w io.Writer, format string, pipelines []config.Pipeline, results []Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(newTableStyle())

	header := table.Row{"time", "close"}
	for _, p := range pipelines {
		for _, c := range p.Columns {
			header = append(header, c)
		}
	}
	t.AppendHeader(header)

	var columnConfigs []table.ColumnConfig
	for i := 2; i <= len(header); i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	t.SetColumnConfigs(columnConfigs)

	for _, r := range results {
		row := table.Row{r.KLine.StartTime.Format("2006-01-02 15:04"), r.KLine.Close.String()}
		for i, p := range pipelines {
			if r.Values[i] == nil {
				for range p.Columns {
					row = append(row, absentCell)
				}
				continue
			}

			for _, v := range r.Values[i] {
				row = append(row, fmt.Sprintf("%.4f", v))
			}
		}
		t.AppendRow(row)
	}

	switch format {
	case "table":
		t.Render()
	case "csv":
		t.RenderCSV()
	case "markdown":
		t.RenderMarkdown()
	default:
		return errors.Errorf("unsupported output format %q, expected table, csv or markdown", format)
	}

	return nil
}
