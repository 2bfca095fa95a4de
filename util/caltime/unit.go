package caltime

import (
	"fmt"
	"strings"
)

// Unit is one calendar granularity among [Milli] .. [Year].
//
// Units below [Month] have a fixed length in milliseconds. [Month] and [Year] have variable
// length and are always handled with calendar-field arithmetic.
//
// Unit is a closed enumeration. Passing a value outside of it to any of the unit-aware
// operations is a programming error and panics.
type Unit int

const (
	Milli Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

const (
	msPerSecond int64 = 1000
	msPerMinute int64 = 60 * msPerSecond
	msPerHour   int64 = 60 * msPerMinute
	msPerDay    int64 = 24 * msPerHour
	msPerWeek   int64 = 7 * msPerDay
)

var unitNames = [...]string{
	Milli:  "millisecond",
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

func (u Unit) String() string {
	if u < Milli || u > Year {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// fixedMillis returns the length of u in milliseconds.
//
// Only valid for units below [Month], month and year lengths vary.
func (u Unit) fixedMillis() int64 {
	switch u {
	case Milli:
		return 1
	case Second:
		return msPerSecond
	case Minute:
		return msPerMinute
	case Hour:
		return msPerHour
	case Day:
		return msPerDay
	case Week:
		return msPerWeek
	}
	panicUnsupportedUnit(u)
	return 0
}

var unitAliases = map[string]Unit{
	"ms":          Milli,
	"milli":       Milli,
	"millisecond": Milli,
	"s":           Second,
	"sec":         Second,
	"second":      Second,
	"min":         Minute,
	"minute":      Minute,
	"h":           Hour,
	"hour":        Hour,
	"d":           Day,
	"day":         Day,
	"w":           Week,
	"week":        Week,
	"mo":          Month,
	"month":       Month,
	"y":           Year,
	"year":        Year,
}

// ParseUnit maps a unit name (e.g., "day", "d", "months") to its [Unit] value.
func ParseUnit(s string) (Unit, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if u, ok := unitAliases[v]; ok {
		return u, nil
	}
	// accept plural forms, e.g. "days"
	if u, ok := unitAliases[strings.TrimSuffix(v, "s")]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("unknown time unit '%s'", s)
}

// Unsupported unit values are a contract violation, not a runtime input error.
func panicUnsupportedUnit(u Unit) {
	panic(fmt.Sprintf("unsupported time unit: %v", u))
}
