package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/indicator/pkg/config"
	"github.com/c9s/indicator/pkg/datasource/csvsource"
	"github.com/c9s/indicator/pkg/metrics"
	"github.com/c9s/indicator/pkg/types"
)

// go run ./cmd/indicator run --config indicator.yaml --csv BTCUSDT-1m.csv
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "evaluate the configured indicators over a kline csv file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		csvFile, err := cmd.Flags().GetString("csv")
		if err != nil {
			return err
		}

		if csvFile == "" {
			return errors.New("--csv option is required")
		}

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		maker, err := readerMaker(format)
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		switch output {
		case "table", "csv", "markdown":
		default:
			return errors.Errorf("unsupported output format %q, expected table, csv or markdown", output)
		}

		async, err := cmd.Flags().GetBool("async")
		if err != nil {
			return err
		}

		metricsAddr, err := cmd.Flags().GetString("metrics-addr")
		if err != nil {
			return err
		}

		configFile := viper.GetString("config")
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		fieldName, err := cmd.Flags().GetString("field")
		if err != nil {
			return err
		}

		field, err := types.ParsePriceField(fieldName)
		if err != nil {
			return err
		}

		for i := range cfg.Indicators {
			if cfg.Indicators[i].Field == "" {
				cfg.Indicators[i].Field = field
			}
		}

		pipelines, err := cfg.Build()
		if err != nil {
			return err
		}

		if metricsAddr != "" {
			for i := range pipelines {
				pipelines[i].Row = instrument(pipelines[i])
			}
		}

		reader, file, err := csvsource.OpenKLineFile(csvFile, maker)
		if err != nil {
			return err
		}
		defer file.Close()

		reader.SetSymbol(cfg.Symbol).SetInterval(cfg.Interval)

		log.Infof("evaluating %d indicators over %s", len(pipelines), csvFile)

		var results []Result
		if async {
			results, err = evaluateAsync(ctx, pipelines, reader)
			if err != nil {
				return err
			}
		} else {
			results = evaluate(pipelines, reader)
			if err := reader.Err(); err != nil {
				return err
			}
		}

		if err := renderResults(cmd.OutOrStdout(), output, pipelines, results); err != nil {
			return err
		}

		chartFile, err := cmd.Flags().GetString("chart")
		if err != nil {
			return err
		}

		if chartFile != "" {
			title := cfg.Symbol + " " + cfg.Interval.String()
			if err := writeChart(chartFile, drawResults(title, cfg.Interval, pipelines, results)); err != nil {
				return errors.Wrapf(err, "cannot render chart to %s", chartFile)
			}

			log.Infof("chart written to %s", chartFile)
		}

		if metricsAddr == "" {
			return nil
		}

		return serveMetrics(ctx, metricsAddr)
	},
}

func readerMaker(format string) (csvsource.MakeCSVKLineReader, error) {
	switch format {
	case "binance":
		return csvsource.NewBinanceCSVKLineReader, nil
	case "metatrader":
		return csvsource.NewMetaTraderCSVKLineReader, nil
	}

	return nil, errors.Errorf("unsupported csv format %q, expected binance or metatrader", format)
}

// instrument exports every column of the pipeline as a gauge.
func instrument(p config.Pipeline) config.Row {
	var fields []metrics.Field[[]float64]
	for i, c := range p.Columns {
		fields = append(fields, metrics.Field[[]float64]{
			Name:  c,
			Value: func(v []float64) float64 { return v[i] },
		})
	}

	return metrics.Instrument(p.Name, p.Row, fields...)
}

// serveMetrics serves the prometheus endpoint until ctx is done.
func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errC := make(chan error, 1)
	go func() {
		errC <- srv.ListenAndServe()
	}()

	log.Infof("serving metrics on %s/metrics, press Ctrl-C to exit", addr)

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Errorf("metrics server shutdown error")
	}

	return nil
}

func init() {
	runCmd.Flags().String("csv", "", "the kline csv file")
	runCmd.Flags().String("format", "binance", "csv layout of the kline file, binance or metatrader")
	runCmd.Flags().String("output", "table", "output format, table, csv or markdown")
	runCmd.Flags().String("field", "close", "kline field fed to indicators that do not set one")
	runCmd.Flags().Bool("async", false, "run every indicator in its own goroutine")
	runCmd.Flags().String("chart", "", "draw the close price and the indicator columns to this png file")
	runCmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address after the evaluation, e.g. :9090")
	RootCmd.AddCommand(runCmd)
}
