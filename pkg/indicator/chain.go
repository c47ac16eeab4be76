package indicator

// Composition feeds the output of an upstream indicator into a downstream indicator.
// When the upstream output is absent the composition is absent and the downstream
// indicator is not invoked, so its state only advances on present values.
type Composition[I, M, O any] struct {
	last[O]

	upstream   Indicator[I, M]
	downstream Indicator[M, O]
}

// Chain composes upstream then downstream.
func Chain[I, M, O any](upstream Indicator[I, M], downstream Indicator[M, O]) *Composition[I, M, O] {
	return &Composition[I, M, O]{upstream: upstream, downstream: downstream}
}

// Pushforward composes with the outer indicator applied last, i.e. outer(inner(x)).
func Pushforward[I, M, O any](outer Indicator[M, O], inner Indicator[I, M]) *Composition[I, M, O] {
	return Chain(inner, outer)
}

func (c *Composition[I, M, O]) Next(input I) (O, bool) {
	m, ok := c.upstream.Next(input)
	if !ok {
		var zero O
		return c.set(zero, false)
	}

	return c.set(c.downstream.Next(m))
}

func (c *Composition[I, M, O]) Reset() {
	c.clear()
	Reset(c.upstream)
	Reset(c.downstream)
}
