package indicator

// IdentityIndicator returns its input unchanged.
type IdentityIndicator[T any] struct {
	last[T]
}

func Identity[T any]() *IdentityIndicator[T] {
	return &IdentityIndicator[T]{}
}

func (i *IdentityIndicator[T]) Next(input T) (T, bool) {
	return i.set(input, true)
}

func (i *IdentityIndicator[T]) Reset() {
	i.clear()
}

// ConstantIndicator ignores its input and always returns the same value.
type ConstantIndicator[I, O any] struct {
	value O
}

func Constant[I, O any](value O) *ConstantIndicator[I, O] {
	return &ConstantIndicator[I, O]{value: value}
}

func (c *ConstantIndicator[I, O]) Next(_ I) (O, bool) {
	return c.value, true
}

func (c *ConstantIndicator[I, O]) Current() (O, bool) {
	return c.value, true
}
