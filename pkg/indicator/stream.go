package indicator

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// AsyncSource is a pull source that may block. Recv returns io.EOF once the source is
// exhausted, which is a normal termination.
type AsyncSource[T any] interface {
	Recv(ctx context.Context) (T, error)
}

// ChanSource adapts a channel to AsyncSource. A closed channel reports io.EOF.
type ChanSource[T any] struct {
	C <-chan T
}

func NewChanSource[T any](c <-chan T) *ChanSource[T] {
	return &ChanSource[T]{C: c}
}

func (s *ChanSource[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()

	case v, ok := <-s.C:
		if !ok {
			return zero, io.EOF
		}

		return v, nil
	}
}

// Stream drives an indicator with the values of an AsyncSource.
type Stream[I, O any] struct {
	ind Indicator[I, O]
	src AsyncSource[I]
}

func NewStream[I, O any](ind Indicator[I, O], src AsyncSource[I]) *Stream[I, O] {
	return &Stream[I, O]{ind: ind, src: src}
}

// Recv waits for the next input and returns the indicator output for it. When the source
// fails, including io.EOF on exhaustion, the indicator is left untouched and the error
// is returned unchanged.
func (s *Stream[I, O]) Recv(ctx context.Context) (O, bool, error) {
	in, err := s.src.Recv(ctx)
	if err != nil {
		var zero O
		return zero, false, err
	}

	v, ok := s.ind.Next(in)
	return v, ok, nil
}

// Each calls fn for every output until the source is exhausted. io.EOF is not reported
// as an error.
func (s *Stream[I, O]) Each(ctx context.Context, fn func(v O, present bool) error) error {
	for {
		v, ok, err := s.Recv(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if err := fn(v, ok); err != nil {
			return err
		}
	}
}

// Sample is one output delivered by Pipe.
type Sample[O any] struct {
	Value   O
	Present bool
}

// Pipe updates ind with every value received from in and sends the outputs to the returned
// channel. The output channel is closed when in is closed or ctx is done.
func Pipe[I, O any](ctx context.Context, ind Indicator[I, O], in <-chan I) <-chan Sample[O] {
	out := make(chan Sample[O])

	go func() {
		defer close(out)

		err := NewStream(ind, NewChanSource(in)).Each(ctx, func(v O, present bool) error {
			select {
			case out <- Sample[O]{Value: v, Present: present}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

		if err != nil {
			log.WithError(err).Debug("indicator pipe stopped")
			return
		}

		log.Debug("indicator pipe drained")
	}()

	return out
}
