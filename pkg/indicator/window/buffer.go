// Package window provides the bounded buffers used by windowed indicators.
package window

import (
	"github.com/gammazero/deque"
)

// Buffer keeps the last Cap() values pushed into it, oldest first.
type Buffer[T any] struct {
	values deque.Deque[T]
	size   int
}

// NewBuffer creates a buffer holding up to size values. size must be positive.
func NewBuffer[T any](size int) *Buffer[T] {
	if size <= 0 {
		panic("window: buffer size must be positive")
	}

	b := &Buffer[T]{size: size}
	b.values.SetBaseCap(size)
	return b
}

// Push appends v. When the buffer is full the oldest value is evicted and returned.
func (b *Buffer[T]) Push(v T) (evicted T, ok bool) {
	if b.values.Len() == b.size {
		evicted, ok = b.values.PopFront(), true
	}

	b.values.PushBack(v)
	return evicted, ok
}

// Fill pushes v until the buffer is full.
func (b *Buffer[T]) Fill(v T) {
	for b.values.Len() < b.size {
		b.values.PushBack(v)
	}
}

// At returns the i-th value, 0 being the oldest.
func (b *Buffer[T]) At(i int) T {
	return b.values.At(i)
}

// Last returns the i-th value counting from the newest one.
func (b *Buffer[T]) Last(i int) T {
	return b.values.At(b.values.Len() - 1 - i)
}

func (b *Buffer[T]) Len() int {
	return b.values.Len()
}

func (b *Buffer[T]) Cap() int {
	return b.size
}

func (b *Buffer[T]) Full() bool {
	return b.values.Len() == b.size
}

// Slice copies the buffered values, oldest first.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.values.Len())
	for i := range out {
		out[i] = b.values.At(i)
	}

	return out
}

func (b *Buffer[T]) Clear() {
	b.values.Clear()
}
