package indicator

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of types Diff can subtract.
type Number interface {
	constraints.Integer | constraints.Float
}

// DiffIndicator subtracts the outputs of two indicators fed with the two halves of a Pair.
type DiffIndicator[A, B any, O Number] struct {
	last[O]

	lhs Indicator[A, O]
	rhs Indicator[B, O]
}

func Diff[A, B any, O Number](lhs Indicator[A, O], rhs Indicator[B, O]) *DiffIndicator[A, B, O] {
	return &DiffIndicator[A, B, O]{lhs: lhs, rhs: rhs}
}

func (d *DiffIndicator[A, B, O]) Next(input Pair[A, B]) (O, bool) {
	l, okL := d.lhs.Next(input.First)
	r, okR := d.rhs.Next(input.Second)
	if !okL || !okR {
		var zero O
		return d.set(zero, false)
	}

	return d.set(l-r, true)
}

func (d *DiffIndicator[A, B, O]) Reset() {
	d.clear()
	Reset(d.lhs)
	Reset(d.rhs)
}
