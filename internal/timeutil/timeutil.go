// Package timeutil normalizes broken-down civil time to UTC for the
// codec engine's UTCTime/GeneralizedTime encoders and decoders.
//
// The canonical approach converts to an absolute instant, applies any
// timezone offset, then converts back, avoiding the field-by-field borrow
// arithmetic bugs documented against the source this module's time codecs
// are descended from.
package timeutil

import "time"

// Civil is a broken-down civil time, as carried by codec.Time.
type Civil struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Millisecond          int
}

// ToUTC converts a Civil time expressed in a given fixed offset (in
// minutes, east of UTC) to its UTC equivalent, by constructing an absolute
// instant and letting time.Time do the normalization (including any
// day/month/year carry).
func ToUTC(c Civil, offsetMinutes int) Civil {
	loc := time.FixedZone("", offsetMinutes*60)
	t := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second,
		c.Millisecond*int(time.Millisecond), loc).UTC()

	return FromTime(t)
}

// FromTime converts a time.Time (assumed already in, or convertible to,
// UTC) into a Civil value.
func FromTime(t time.Time) Civil {
	u := t.UTC()

	return Civil{
		Year:        u.Year(),
		Month:       int(u.Month()),
		Day:         u.Day(),
		Hour:        u.Hour(),
		Minute:      u.Minute(),
		Second:      u.Second(),
		Millisecond: u.Nanosecond() / int(time.Millisecond),
	}
}

// ToTime converts a Civil UTC value into a time.Time.
func (c Civil) ToTime() time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second,
		c.Millisecond*int(time.Millisecond), time.UTC)
}

// InUTCWindow reports whether the year falls within the range UTCTime can
// represent in this module's DER profile ([1950, 2050]); outside that
// window, CHOICE OF TIME falls through to GeneralizedTime.
func (c Civil) InUTCWindow() bool {
	return c.Year >= 1950 && c.Year <= 2050
}

// UTCTimeTwoDigitYear maps a full year to the two-digit year UTCTime
// encodes: years >= 2000 use year-2000, otherwise year-1900.
func UTCTimeTwoDigitYear(year int) int {
	if year >= 2000 {
		return year - 2000
	}

	return year - 1900
}

// FullYearFromUTCTime maps UTCTime's two-digit year back to a full year:
// values >= 50 are 19xx, otherwise 20xx.
func FullYearFromUTCTime(yy int) int {
	if yy >= 50 {
		return 1900 + yy
	}

	return 2000 + yy
}

// FileTimeEpoch100ns is the 100ns-tick offset between the Windows FILETIME
// epoch (1601-01-01) and the Unix epoch (1970-01-01), used by the external
// 100ns-since-epoch integer representation this module's time type
// supports for interoperability with the broader platform API.
const FileTimeEpoch100ns = 116444736000000000

// ToFileTime converts a UTC time.Time to a 100ns-since-1601 integer.
func ToFileTime(t time.Time) int64 {
	return t.UTC().UnixNano()/100 + FileTimeEpoch100ns
}

// FromFileTime converts a 100ns-since-1601 integer to a UTC time.Time.
func FromFileTime(ft int64) time.Time {
	unixNanos := (ft - FileTimeEpoch100ns) * 100
	return time.Unix(0, unixNanos).UTC()
}
