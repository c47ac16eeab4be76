package indicator

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is the root of every construction error. Use errors.Is to
// distinguish it from other failures.
var ErrInvalidParameter = errors.New("invalid parameter")

// Range describes the accepted values of a numeric parameter.
type Range struct {
	Min, Max       float64
	HasMin, HasMax bool

	// MinExclusive makes the lower bound open, e.g. (0, 1] for a smoothing factor.
	MinExclusive bool
}

func AtLeast(min float64) Range {
	return Range{Min: min, HasMin: true}
}

func Between(min, max float64) Range {
	return Range{Min: min, Max: max, HasMin: true, HasMax: true}
}

// UnitInterval is (0, 1], the valid range of a smoothing factor.
var UnitInterval = Range{Min: 0, Max: 1, HasMin: true, HasMax: true, MinExclusive: true}

func (r Range) Contains(v float64) bool {
	if r.HasMin {
		if r.MinExclusive && v <= r.Min {
			return false
		}

		if !r.MinExclusive && v < r.Min {
			return false
		}
	}

	if r.HasMax && v > r.Max {
		return false
	}

	return true
}

func (r Range) format(name string) string {
	lower := "<="
	if r.MinExclusive {
		lower = "<"
	}

	switch {
	case r.HasMin && r.HasMax:
		return fmt.Sprintf("%s %s %s <= %s", formatFloat(r.Min), lower, name, formatFloat(r.Max))
	case r.HasMin:
		return fmt.Sprintf("%s %s %s", formatFloat(r.Min), lower, name)
	case r.HasMax:
		return fmt.Sprintf("%s <= %s", name, formatFloat(r.Max))
	}

	return name
}

// ParameterError is returned by constructors when a parameter is out of its range.
type ParameterError struct {
	Name  string
	Value float64
	Range Range
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: expected to be %s, but actually %s",
		ErrInvalidParameter.Error(), e.Range.format(e.Name), formatFloat(e.Value))
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// RelationError is returned when two parameters violate a required ordering,
// e.g. the short period of MACD must be less than the long period.
type RelationError struct {
	Operator         string
	LHSName, RHSName string
	LHS, RHS         float64
}

func (e *RelationError) Error() string {
	return fmt.Sprintf("%s: expected to be %s %s %s, found %s %s %s",
		ErrInvalidParameter.Error(),
		e.LHSName, e.Operator, e.RHSName,
		formatFloat(e.LHS), e.Operator, formatFloat(e.RHS))
}

func (e *RelationError) Unwrap() error {
	return ErrInvalidParameter
}

// CheckPeriod validates a window length, which must be at least 1.
func CheckPeriod(name string, period int) error {
	return CheckRange(name, float64(period), AtLeast(1))
}

func CheckRange(name string, value float64, r Range) error {
	if r.Contains(value) {
		return nil
	}

	return &ParameterError{Name: name, Value: value, Range: r}
}

// CheckLess validates lhs < rhs.
func CheckLess(lhsName string, lhs int, rhsName string, rhs int) error {
	if lhs < rhs {
		return nil
	}

	return &RelationError{
		Operator: "<",
		LHSName:  lhsName,
		RHSName:  rhsName,
		LHS:      float64(lhs),
		RHS:      float64(rhs),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
