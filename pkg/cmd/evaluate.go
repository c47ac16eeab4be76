package cmd

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/indicator/pkg/config"
	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/types"
)

// Result holds the outputs of every pipeline for one kline. Values[i] is nil when
// pipeline i had no output.
type Result struct {
	KLine  types.KLine
	Values [][]float64
}

// evaluate feeds every kline of src to all pipelines in turn.
func evaluate(pipelines []config.Pipeline, src indicator.Source[types.KLine]) []Result {
	var results []Result
	for k, ok := src.Next(); ok; k, ok = src.Next() {
		r := Result{KLine: k, Values: make([][]float64, len(pipelines))}
		for i, p := range pipelines {
			if v, present := p.Row.Next(k); present {
				r.Values[i] = v
			}
		}

		results = append(results, r)
	}

	return results
}

// evaluateAsync runs every pipeline in its own goroutine. Klines received from src are
// broadcast to all pipelines.
func evaluateAsync(ctx context.Context, pipelines []config.Pipeline, src indicator.AsyncSource[types.KLine]) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)

	ins := make([]chan types.KLine, len(pipelines))
	samples := make([][]indicator.Sample[[]float64], len(pipelines))

	for i, p := range pipelines {
		ins[i] = make(chan types.KLine)
		out := indicator.Pipe[types.KLine, []float64](ctx, p.Row, ins[i])

		g.Go(func() error {
			for s := range out {
				samples[i] = append(samples[i], s)
			}
			return nil
		})
	}

	var klines []types.KLine
	g.Go(func() error {
		defer func() {
			for _, in := range ins {
				close(in)
			}
		}()

		for {
			k, err := src.Recv(ctx)
			if errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return err
			}

			klines = append(klines, k)
			for _, in := range ins {
				select {
				case in <- k:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(klines))
	for j, k := range klines {
		results[j] = Result{KLine: k, Values: make([][]float64, len(pipelines))}
	}

	for i := range pipelines {
		if len(samples[i]) != len(klines) {
			return nil, errors.Errorf("pipeline %s produced %d outputs for %d klines", pipelines[i].Name, len(samples[i]), len(klines))
		}

		for j, s := range samples[i] {
			if s.Present {
				results[j].Values[i] = s.Value
			}
		}
	}

	return results, nil
}
