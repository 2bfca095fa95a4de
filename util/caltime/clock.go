package caltime

import "time"

// Clock is the time source behind [Now].
//
// The package default reads the host's system clock. Tests substitute a controllable source
// using [SetClock] rather than depending on real time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

var clock Clock = systemClock{}

// SetClock replaces the package time source and returns the previous one.
//
// Passing nil restores the system clock.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current instant at millisecond resolution.
func Now() Time {
	return WrapTimeMilli(clock.Now())
}

// NowUTC returns the current instant at millisecond resolution in UTC.
func NowUTC() Time {
	return WrapTimeMilli(clock.Now().UTC())
}
