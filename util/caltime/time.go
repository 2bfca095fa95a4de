package caltime

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/igen-org/igen-go/util/strutil"
)

const (
	ClassicDateTimeFormat  = "2006/01/02 15:04:05"
	StdDateTimeFormat      = "2006-01-02 15:04:05"
	StdDateTimeMilliFormat = "2006-01-02 15:04:05.000"
	SQLDateTimeFormat      = "2006-01-02 15:04:05.999999"
	SQLDateTimeFormatWithT = "2006-01-02T15:04:05.999999"
	SQLDateFormat          = "2006-01-02"
)

var (
	timeMarshalFormat = ""
)

// Enhanced wrapper of time.Time with millisecond resolution.
//
// Time is an immutable value, every operation in this package returns a new Time and never
// mutates its input. To cast from time.Time to Time, use [WrapTime]. To cast from Time to
// time.Time, use [Time.Unwrap].
//
// This type implements sql.Scanner and driver.Valuer, it can be safely used in database code
// just like time.Time. It also implements json/encoding Marshaler and Unmarshaler.
type Time struct {
	time.Time
}

func WrapTime(t time.Time) Time {
	return Time{t}
}

// WrapTimeMilli truncates t down to millisecond resolution before wrapping.
func WrapTimeMilli(t time.Time) Time {
	return Time{t.Truncate(time.Millisecond)}
}

// OfDate constructs a Time at midnight of the given date in the field set selected by opts.
func OfDate(year int, month time.Month, day int, opts ...Options) Time {
	return mergeOptions(opts).fields().make(year, month, day, 0, 0, 0, 0)
}

func (t Time) Unwrap() time.Time {
	return t.Time
}

func (t Time) GoString() string {
	return t.String()
}

func (t Time) Add(d time.Duration) Time {
	t.Time = t.Time.Add(d)
	return t
}

func (t Time) Sub(u Time) time.Duration {
	return t.Time.Sub(u.Time)
}

func (t Time) AddDate(years int, months int, days int) Time {
	t.Time = t.Time.AddDate(years, months, days)
	return t
}

func (t Time) After(u Time) bool {
	return t.Time.After(u.Time)
}

func (t Time) Before(u Time) bool {
	return t.Time.Before(u.Time)
}

// EqualMilli reports whether t and u land on the same epoch millisecond.
func (t Time) EqualMilli(u Time) bool {
	return t.UnixMilli() == u.UnixMilli()
}

func (t Time) In(z *time.Location) Time {
	return WrapTime(t.Unwrap().In(z))
}

// Format as 2006-01-02
func (t Time) FormatDate() string {
	return t.Unwrap().Format(time.DateOnly)
}

// Format as 2006/01/02 15:04:05
func (t Time) FormatClassic() string {
	return t.Unwrap().Format(ClassicDateTimeFormat)
}

// Format as 2006-01-02 15:04:05
func (t Time) FormatStd() string {
	return t.Unwrap().Format(StdDateTimeFormat)
}

// Format as 2006-01-02 15:04:05.000
func (t Time) FormatStdMilli() string {
	return t.Unwrap().Format(StdDateTimeMilliFormat)
}

// Format as [time.RFC3339]
func (t Time) FormatRFC3339() string {
	return t.Unwrap().Format(time.RFC3339)
}

func (t Time) String() string {
	return t.Unwrap().Format("2006-01-02 15:04:05.999 (MST)")
}

// Format renders t with the given layout through the field set selected by opts.
func Format(t Time, layout string, opts ...Options) string {
	return mergeOptions(opts).fields().view(t).Format(layout)
}

// SetTimeMarshalFormat overrides how [Time] is marshalled to json.
//
// By default [Time] is marshalled as milliseconds since unix epoch.
func SetTimeMarshalFormat(fmt string) {
	timeMarshalFormat = fmt
}

// Implements encoding/json Marshaler
func (t Time) MarshalJSON() ([]byte, error) {
	var v string
	if timeMarshalFormat != "" {
		v = strutil.QuoteStr(t.Unwrap().Format(timeMarshalFormat)) // other format configured
	} else {
		v = fmt.Sprintf("%d", t.UnixMilli()) // epoch milli by default
	}
	return strutil.UnsafeStr2Byt(v), nil
}

// Implements encoding/json Unmarshaler.
func (t *Time) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" || s == "null" {
		return nil
	}
	if err := t.Scan(strutil.UnquoteStr(s)); err != nil {
		return fmt.Errorf("failed to UnmarshalJSON Time '%s', %w", s, err)
	}
	return nil
}

// Implements driver.Valuer in database/sql.
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Truncate(time.Millisecond), nil
}
