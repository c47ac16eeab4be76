package window

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bruteForce(values []float64, window int, better func(a, b float64) bool) (float64, int) {
	start := len(values) - window
	if start < 0 {
		start = 0
	}

	best, at := values[start], start
	for i := start + 1; i < len(values); i++ {
		if better(values[i], best) || values[i] == best {
			best, at = values[i], i
		}
	}

	return best, len(values) - 1 - at
}

func TestMonotonicQueue(t *testing.T) {
	_, _, ok := NewMaxQueue(3).Front()
	assert.False(t, ok)

	t.Run("Max", func(t *testing.T) {
		q := NewMaxQueue(3)
		expected := []struct {
			in    float64
			value float64
			age   int
		}{
			{1, 1, 0},
			{3, 3, 0},
			{2, 3, 1},
			{1, 3, 2},
			{0, 2, 2},
			{5, 5, 0},
			{5, 5, 0},
		}

		for i, e := range expected {
			q.Push(e.in)
			v, age, ok := q.Front()
			assert.True(t, ok)
			assert.Equal(t, e.value, v, "value at %d", i)
			assert.Equal(t, e.age, age, "age at %d", i)
		}
	})

	t.Run("Min", func(t *testing.T) {
		q := NewMinQueue(2)
		for _, v := range []float64{4, 2, 3, 3} {
			q.Push(v)
		}

		v, age, _ := q.Front()
		assert.Equal(t, 3.0, v)
		assert.Equal(t, 0, age)
	})

	t.Run("BruteForce", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		for _, window := range []int{1, 2, 5, 14} {
			maxQ, minQ := NewMaxQueue(window), NewMinQueue(window)
			var values []float64
			for i := 0; i < 500; i++ {
				// coarse values so ties happen often
				v := float64(rnd.Intn(20))
				values = append(values, v)
				maxQ.Push(v)
				minQ.Push(v)

				expMax, expMaxAge := bruteForce(values, window, func(a, b float64) bool { return a > b })
				expMin, expMinAge := bruteForce(values, window, func(a, b float64) bool { return a < b })

				gotMax, gotMaxAge, _ := maxQ.Front()
				gotMin, gotMinAge, _ := minQ.Front()
				assert.Equal(t, expMax, gotMax)
				assert.Equal(t, expMaxAge, gotMaxAge)
				assert.Equal(t, expMin, gotMin)
				assert.Equal(t, expMinAge, gotMinAge)
				assert.LessOrEqual(t, maxQ.Len(), window)
				assert.LessOrEqual(t, minQ.Len(), window)
			}
		}
	})

	t.Run("Reset", func(t *testing.T) {
		q := NewMaxQueue(3)
		q.Push(10)
		q.Push(1)
		q.Reset()
		q.Push(2)
		v, age, _ := q.Front()
		assert.Equal(t, 2.0, v)
		assert.Equal(t, 0, age)
	})
}
