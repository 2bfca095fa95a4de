package caltime

import "time"

// Shift adds n units to t and returns the shifted instant, t is not modified.
//
// The shift is applied to the calendar field of the unit ("set field to current value plus n"),
// not as a raw millisecond offset, so day-of-month carry rules apply: one month after Jan 31 is
// Mar 3 on non-leap years, one year after Feb 29 is Mar 1. For [Week] the shift is n*7 days.
//
// n truncates toward zero for [Day] and coarser units. For sub-day units the fractional part
// is carried into milliseconds, e.g. shifting by 1.5 [Hour] moves 90 minutes.
func Shift(t Time, n float64, u Unit, opts ...Options) Time {
	return shift(t, n, u, mergeOptions(opts).fields())
}

func shift(t Time, n float64, u Unit, f fields) Time {
	v := f.view(t)
	year, month, day := v.Date()
	hour, min, sec := v.Clock()
	nsec := v.Nanosecond()

	whole := int(n)
	if u < Day {
		// sub-day units keep the fractional part, carried as milliseconds
		fracMs := int((n - float64(whole)) * float64(u.fixedMillis()))
		nsec += fracMs * int(time.Millisecond)
	}

	switch u {
	case Milli:
		nsec += whole * int(time.Millisecond)
	case Second:
		sec += whole
	case Minute:
		min += whole
	case Hour:
		hour += whole
	case Day:
		day += whole
	case Week:
		day += int(n * 7)
	case Month:
		month += time.Month(whole)
	case Year:
		year += whole
	default:
		panicUnsupportedUnit(u)
	}
	return f.make(year, month, day, hour, min, sec, nsec)
}

// Diff returns the signed distance from start to end measured in u, as a real number.
//
// Units up to [Week] have fixed length, the raw millisecond delta is divided by it and the
// result may be fractional (36 hours in days is 1.5). [Month] is computed by walking calendar
// fields because months have unequal length: the integer month count plus the fractional
// position inside the straddling month. [Year] is the month diff divided by 12.
func Diff(start Time, end Time, u Unit) float64 {
	switch u {
	case Milli, Second, Minute, Hour, Day, Week:
		return float64(end.UnixMilli()-start.UnixMilli()) / float64(u.fixedMillis())
	case Month:
		return monthDiff(start, end)
	case Year:
		return monthDiff(start, end) / 12
	}
	panicUnsupportedUnit(u)
	return 0
}

func monthDiff(start Time, end Time) float64 {
	s, e := start.UnixMilli(), end.UnixMilli()
	if s == e {
		return 0
	}
	sign := int64(1)
	if e < s {
		sign = -1
	}

	f := Options{}.fields()
	sv, ev := f.view(start), f.view(end)
	m := int64(ev.Year()-sv.Year())*12 + int64(ev.Month()-sv.Month())

	anchor := shift(start, float64(m), Month, f)
	if a := anchor.UnixMilli(); (sign > 0 && a > e) || (sign < 0 && a < e) {
		// stepping by whole months overshot end, the start's day-of-month carried over into
		// the next month, back off one step
		m -= sign
		anchor = shift(start, float64(m), Month, f)
	}

	next := shift(anchor, float64(sign), Month, f)
	intervalMs := next.UnixMilli() - anchor.UnixMilli()
	if intervalMs == 0 {
		return float64(m)
	}
	return float64(m) + float64(e-anchor.UnixMilli())/float64(intervalMs)*float64(sign)
}

// StartOf normalizes t down to the earliest instant in the same u bucket.
//
// For [Week] the bucket starts at the most recent occurrence of [Options.WeekStart] at or
// before t.
func StartOf(t Time, u Unit, opts ...Options) Time {
	o := mergeOptions(opts)
	return startOf(t, u, o, o.fields())
}

func startOf(t Time, u Unit, o Options, f fields) Time {
	v := f.view(t)
	year, month, day := v.Date()
	hour, min, sec := v.Clock()
	msec := v.Nanosecond() / int(time.Millisecond)

	switch u {
	case Milli:
		return f.make(year, month, day, hour, min, sec, msec*int(time.Millisecond))
	case Second:
		return f.make(year, month, day, hour, min, sec, 0)
	case Minute:
		return f.make(year, month, day, hour, min, 0, 0)
	case Hour:
		return f.make(year, month, day, hour, 0, 0, 0)
	case Day:
		return f.make(year, month, day, 0, 0, 0, 0)
	case Week:
		d := f.make(year, month, day, 0, 0, 0, 0)
		offset := (int(f.view(d).Weekday()) - int(o.WeekStart) + 7) % 7
		return shift(d, float64(-offset), Day, f)
	case Month:
		return f.make(year, month, 1, 0, 0, 0, 0)
	case Year:
		return f.make(year, time.January, 1, 0, 0, 0, 0)
	}
	panicUnsupportedUnit(u)
	return Time{}
}

// EndOf normalizes t up to the last millisecond in the same u bucket.
//
// EndOf is always exactly one millisecond before the start of the next bucket.
func EndOf(t Time, u Unit, opts ...Options) Time {
	o := mergeOptions(opts)
	f := o.fields()
	if u == Milli {
		return startOf(t, u, o, f)
	}
	return shift(shift(startOf(t, u, o, f), 1, u, f), -1, Milli, f)
}

// IsSame reports whether a and b fall in the same u bucket.
func IsSame(a Time, b Time, u Unit, opts ...Options) bool {
	return StartOf(a, u, opts...).EqualMilli(StartOf(b, u, opts...))
}
