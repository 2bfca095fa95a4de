package caltime

import "time"

// Options controls the unit-aware operations.
//
// The zero value is the default: local calendar fields, weeks starting on Sunday.
type Options struct {
	// Read and construct calendar fields in UTC instead of the host's local time zone.
	UTC bool

	// Weekday that a week bucket aligns to, defaults to [time.Sunday].
	WeekStart time.Weekday
}

func mergeOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return Options{}
}

// fields is the calendar field accessor set selected by [Options.UTC].
//
// The unit-aware operations are written once against fields, reading calendar components via
// view and constructing instants via make, so the local and UTC paths share the same code.
type fields struct {
	loc *time.Location
}

func (o Options) fields() fields {
	if o.UTC {
		return fields{time.UTC}
	}
	return fields{time.Local}
}

func (f fields) view(t Time) time.Time {
	return t.Time.In(f.loc)
}

// make constructs a [Time] from calendar fields, out-of-range fields are normalized by
// [time.Date]. The calendar carry rules (e.g., Jan 31 plus one month landing on Mar 3) come
// from this normalization.
func (f fields) make(year int, month time.Month, day, hour, min, sec, nsec int) Time {
	return Time{time.Date(year, month, day, hour, min, sec, nsec, f.loc)}
}
