package indicator_test

import (
	"context"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicator/pkg/indicator"
)

var expectedSMA = []float64{100, 100.2, 100.4, 100.8, 101.2, 101.6}

func TestIterate(t *testing.T) {
	it := indicator.Iterate[float64, float64](newSMA(t, 5), indicator.NewSliceSource(smaInputs...))

	var got []float64
	for {
		v, present, more := it.Next()
		if !more {
			break
		}

		assert.True(t, present)
		got = append(got, v)
	}

	assert.InDeltaSlice(t, expectedSMA, got, 1e-9)

	_, _, more := it.Next()
	assert.False(t, more)

	t.Run("Lazy", func(t *testing.T) {
		pulled := 0
		src := indicator.FromSeq(func(yield func(float64) bool) {
			for _, v := range smaInputs {
				pulled++
				if !yield(v) {
					return
				}
			}
		})
		defer src.Stop()

		it := indicator.Iterate[float64, float64](newSMA(t, 5), src)
		assert.Equal(t, 0, pulled)

		v, _, _ := it.Next()
		assert.Equal(t, 100.0, v)
		assert.Equal(t, 1, pulled)
	})

	t.Run("All", func(t *testing.T) {
		it := indicator.Iterate[float64, float64](newSMA(t, 5), indicator.NewSliceSource(smaInputs...))

		var got []float64
		for v, present := range it.All() {
			assert.True(t, present)
			got = append(got, v)
			if len(got) == 2 {
				break
			}
		}

		assert.InDeltaSlice(t, expectedSMA[:2], got, 1e-9)

		// the iterator continues where the loop stopped
		v, _, more := it.Next()
		assert.True(t, more)
		assert.InDelta(t, expectedSMA[2], v, 1e-9)
	})
}

func TestSeq(t *testing.T) {
	var got []float64
	for v, present := range indicator.Seq[float64, float64](newSMA(t, 5), slices.Values(smaInputs)) {
		assert.True(t, present)
		got = append(got, v)
	}

	assert.InDeltaSlice(t, expectedSMA, got, 1e-9)

	t.Run("AbsentOutputs", func(t *testing.T) {
		m, err := indicator.Mature[float64, float64](newSMA(t, 5), 4)
		require.NoError(t, err)

		var present []bool
		for _, ok := range indicator.Seq[float64, float64](m, slices.Values(smaInputs)) {
			present = append(present, ok)
		}

		assert.Equal(t, []bool{false, false, false, false, true, true}, present)
	})
}

func TestStream(t *testing.T) {
	ch := make(chan float64, len(smaInputs))
	for _, v := range smaInputs {
		ch <- v
	}
	close(ch)

	ctx := context.Background()
	stream := indicator.NewStream[float64, float64](newSMA(t, 5), indicator.NewChanSource(ch))

	var got []float64
	for {
		v, present, err := stream.Recv(ctx)
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		assert.True(t, present)
		got = append(got, v)
	}

	assert.InDeltaSlice(t, expectedSMA, got, 1e-9)

	t.Run("Each", func(t *testing.T) {
		stream := indicator.NewStream[float64, float64](newSMA(t, 5), indicator.NewChanSource(ch))
		err := stream.Each(ctx, func(v float64, present bool) error {
			return errors.New("closed channel should not yield")
		})
		assert.NoError(t, err)
	})

	t.Run("Cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stream := indicator.NewStream[float64, float64](newSMA(t, 5), indicator.NewChanSource(make(chan float64)))
		_, _, err := stream.Recv(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPipe(t *testing.T) {
	in := make(chan float64)
	go func() {
		defer close(in)
		for _, v := range smaInputs {
			in <- v
		}
	}()

	var got []float64
	for s := range indicator.Pipe[float64, float64](context.Background(), newSMA(t, 5), in) {
		assert.True(t, s.Present)
		got = append(got, s.Value)
	}

	assert.InDeltaSlice(t, expectedSMA, got, 1e-9)

	t.Run("Cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		out := indicator.Pipe[float64, float64](ctx, newSMA(t, 5), make(chan float64))
		cancel()

		select {
		case _, ok := <-out:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("pipe was not closed after cancellation")
		}
	})
}
