package types

import (
	"time"
)

type Interval string

func (i Interval) Duration() time.Duration {
	if m, ok := SupportedIntervals[i]; ok {
		return time.Duration(m) * time.Minute
	}

	return 0
}

func (i Interval) String() string {
	return string(i)
}

var Interval1m = Interval("1m")
var Interval5m = Interval("5m")
var Interval15m = Interval("15m")
var Interval1h = Interval("1h")
var Interval4h = Interval("4h")
var Interval1d = Interval("1d")

var SupportedIntervals = map[Interval]int{
	Interval1m:  1,
	Interval5m:  5,
	Interval15m: 15,
	Interval1h:  60,
	Interval4h:  60 * 4,
	Interval1d:  60 * 24,
}
