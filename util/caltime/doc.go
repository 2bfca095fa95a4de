// Package for calendar arithmetic.
//
// The core type in this package is [Time]. [Time] is an enhanced wrapper of [time.Time] with
// millisecond resolution. You can use [Time] directly in your codebase or only as a tool for
// [time.Time] processing, e.g.,
//
//	var monday time.Time = caltime.StartOf(caltime.Now(), caltime.Week, caltime.Options{WeekStart: time.Monday}).Unwrap()
//
// Unit-aware operations ([Shift], [Diff], [StartOf], [EndOf], [IsSame]) work on calendar fields
// rather than raw millisecond offsets, so month and year arithmetic follows the standard
// calendar carry rules (one month after Jan 31 lands in March on non-leap years).
//
// Operations that take [Options] can be switched between the host's local time zone and UTC
// field sets, and the weekday that starts a week bucket is configurable.
//
// [Time] implements [sql.Scanner] and [driver.Valuer] for database values and [json.Marshaler]
// and [json.Unmarshaler] for json processing. By default [Time] is marshalled as milliseconds
// since unix epoch, use [SetTimeMarshalFormat] to change that.
//
// [Time] can be unmarshalled from various formats, e.g,
//   - [time.RFC3339]
//   - [time.RFC3339Nano]
//   - `2006-01-02 15:04:05.999999`
//   - `2006-01-02`
//   - `2006-01-02T15:04:05.999999`
//   - `milliseconds since unix epoch`
//   - `seconds since unix epoch`
//
// You can add extra unmarshalling formats using [AddTimeParseFormat], or overwrite the
// unmarshalling formats entirely using [SetTimeParseFormat].
//
// [Now] reads the package [Clock], which can be replaced in tests using [SetClock].
package caltime
