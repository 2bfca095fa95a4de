package caltime

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/igen-org/igen-go/util/hash"
)

const epochSecondMax = 9999999999 // 2286-11-21, values above this are read as epoch milliseconds

var parseTimeFormats = []string{
	time.RFC3339Nano,
	SQLDateTimeFormat,
	SQLDateFormat,
	SQLDateTimeFormatWithT,
}

// AddTimeParseFormat registers extra formats used when parsing strings.
func AddTimeParseFormat(fmt ...string) {
	s := hash.NewSet(parseTimeFormats...)
	s.AddAll(fmt)
	parseTimeFormats = s.CopyKeys()
}

// SetTimeParseFormat overwrites the formats used when parsing strings.
func SetTimeParseFormat(fmt ...string) {
	s := hash.NewSet(fmt...)
	parseTimeFormats = s.CopyKeys()
}

// Parse converts v into a [Time].
//
// v may be a string, a numeric epoch timestamp (seconds or milliseconds), a [time.Time] or a
// [Time]. Timezone-less strings are interpreted in the host's local zone by default, or in UTC
// when [Options.UTC] is set.
func Parse(v any, opts ...Options) (Time, error) {
	loc := time.Local
	if mergeOptions(opts).UTC {
		loc = time.UTC
	}
	var t Time
	return t, t.ScanLoc(v, loc)
}

// MayParse is [Parse] except that parsing failures yield the zero [Time].
func MayParse(v any, opts ...Options) Time {
	t, _ := Parse(v, opts...)
	return t
}

// Implements sql.Scanner in database/sql.
func (t *Time) Scan(value interface{}) error {
	return t.ScanLoc(value, nil)
}

// ScanLoc converts value into *t, interpreting timezone-less strings in loc.
func (t *Time) ScanLoc(value interface{}, loc *time.Location) error {
	if value == nil {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	switch v := value.(type) {
	case Time:
		*t = WrapTimeMilli(v.Time)
	case time.Time:
		*t = WrapTimeMilli(v)
	case []byte:
		return t.scanStr(string(v), loc)
	case string:
		return t.scanStr(v, loc)
	case *string:
		return t.scanStr(*v, loc)
	case int64, int, uint, uint64, int32, uint32, int16, uint16,
		*int64, *int, *uint, *uint64, *int32, *uint32, *int16, *uint16:
		rv := reflect.Indirect(reflect.ValueOf(v))
		if rv.CanUint() {
			t.scanEpoch(int64(rv.Uint()), loc)
		} else {
			t.scanEpoch(rv.Int(), loc)
		}
	default:
		return fmt.Errorf("invalid field type '%v' for Time, unable to convert, %#v", reflect.TypeOf(value), v)
	}
	return nil
}

func (t *Time) scanStr(s string, loc *time.Location) error {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.scanEpoch(n, loc)
		return nil
	}
	parsed, err := FuzzParseTimeLoc(parseTimeFormats, s, loc)
	if err != nil {
		return err
	}
	*t = WrapTimeMilli(parsed)
	return nil
}

func (t *Time) scanEpoch(n int64, loc *time.Location) {
	if n > epochSecondMax {
		*t = WrapTimeMilli(time.UnixMilli(n).In(loc))
	} else {
		*t = WrapTimeMilli(time.Unix(n, 0).In(loc))
	}
}

// FuzzParseTime attempts to parse value with each format until one succeeds, in UTC.
func FuzzParseTime(formats []string, value string) (time.Time, error) {
	return FuzzParseTimeLoc(formats, value, time.UTC)
}

// FuzzParseTimeLoc attempts to parse value with each format until one succeeds.
//
// Timezone-less formats are interpreted in loc.
func FuzzParseTimeLoc(formats []string, value string, loc *time.Location) (time.Time, error) {
	if len(formats) < 1 {
		return time.Time{}, errors.New("formats is empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	var t time.Time
	var err error
	for _, f := range formats {
		t, err = time.ParseInLocation(f, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return t, fmt.Errorf("failed to parse time '%s'", value)
}
