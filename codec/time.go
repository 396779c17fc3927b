package codec

import (
	"fmt"

	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/internal/timeutil"
	"github.com/arloliu/asn1der/types"
)

// Time is broken-down civil time, always normalized to UTC before
// encoding.
type Time = timeutil.Civil

// SizeUTCTime returns the total TLV size EncodeUTCTime would produce: 2
// (tag+length) + 13 content octets ("YYMMDDHHMMSSZ").
const SizeUTCTime = 2 + 13

// SizeGeneralizedTime returns the total TLV size EncodeGeneralizedTime
// would produce: 2 (tag+length) + 15 content octets ("YYYYMMDDHHMMSSZ").
const SizeGeneralizedTime = 2 + 15

// EncodeUTCTime encodes t as a DER UTCTime: ASCII "YYMMDDHHMMSSZ".
// Fails with ErrBadEncode if t.Year is outside [1950, 2050].
func EncodeUTCTime(req outbuf.Request, t Time) (out []byte, required int, err error) {
	if !t.InUTCWindow() {
		return nil, 0, fmt.Errorf("%w: year %d outside UTCTime window [1950, 2050]", errs.ErrBadEncode, t.Year)
	}

	required = SizeUTCTime
	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagUTCTime, 13)
	yy := timeutil.UTCTimeTwoDigitYear(t.Year)
	buf = appendDigits2(buf, yy)
	buf = appendDigits2(buf, t.Month)
	buf = appendDigits2(buf, t.Day)
	buf = appendDigits2(buf, t.Hour)
	buf = appendDigits2(buf, t.Minute)
	buf = appendDigits2(buf, t.Second)
	buf = append(buf, 'Z')

	return buf, required, nil
}

// EncodeGeneralizedTime encodes t as a DER GeneralizedTime: ASCII
// "YYYYMMDDHHMMSSZ".
func EncodeGeneralizedTime(req outbuf.Request, t Time) (out []byte, required int, err error) {
	required = SizeGeneralizedTime
	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagGeneralizedTime, 15)
	buf = appendDigits4(buf, t.Year)
	buf = appendDigits2(buf, t.Month)
	buf = appendDigits2(buf, t.Day)
	buf = appendDigits2(buf, t.Hour)
	buf = appendDigits2(buf, t.Minute)
	buf = appendDigits2(buf, t.Second)
	buf = append(buf, 'Z')

	return buf, required, nil
}

// EncodeChoiceOfTime encodes t as UTCTime when its year falls in [1950,
// 2050], and as GeneralizedTime otherwise.
func EncodeChoiceOfTime(req outbuf.Request, t Time) (out []byte, required int, err error) {
	if t.InUTCWindow() {
		return EncodeUTCTime(req, t)
	}

	return EncodeGeneralizedTime(req, t)
}

func appendDigits2(dst []byte, v int) []byte {
	if v < 0 {
		v = -v
	}

	return append(dst, byte('0'+(v/10)%10), byte('0'+v%10))
}

func appendDigits4(dst []byte, v int) []byte {
	return append(dst, byte('0'+(v/1000)%10), byte('0'+(v/100)%10), byte('0'+(v/10)%10), byte('0'+v%10))
}

func parseDigits(b []byte) (int, error) {
	v := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, errs.ErrCorrupt
		}

		v = v*10 + int(c-'0')
	}

	return v, nil
}

// parseOffset parses a trailing timezone designator ("Z", "+HHMM",
// "-HHMM", "+HH", or "-HH") and returns its offset in minutes east of
// UTC (0 for "Z") plus the number of bytes it consumed.
func parseOffset(b []byte) (minutes int, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, errs.ErrCorrupt
	}

	if b[0] == 'Z' {
		return 0, 1, nil
	}

	sign := 1
	switch b[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, 0, errs.ErrCorrupt
	}

	rest := b[1:]
	if len(rest) != 2 && len(rest) != 4 {
		return 0, 0, errs.ErrCorrupt
	}

	hh, err := parseDigits(rest[0:2])
	if err != nil {
		return 0, 0, err
	}
	if hh >= 24 {
		return 0, 0, errs.ErrCorrupt
	}

	mm := 0
	if len(rest) == 4 {
		mm, err = parseDigits(rest[2:4])
		if err != nil {
			return 0, 0, err
		}
		if mm >= 60 {
			return 0, 0, errs.ErrCorrupt
		}
	}

	return sign * (hh*60 + mm), 1 + len(rest), nil
}

// DecodeUTCTime decodes a DER UTCTime TLV: content format
// "YYMMDDHHMMSS" followed by "Z", "+HHMM"/"-HHMM", or "+HH"/"-HH". The
// result is normalized to UTC.
func DecodeUTCTime(data []byte) (t Time, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagUTCTime)
	if err != nil {
		return Time{}, 0, err
	}

	if contentLen < 10 {
		return Time{}, 0, errs.ErrCorrupt
	}

	content := data[headerLen : headerLen+contentLen]

	yy, err := parseDigits(content[0:2])
	if err != nil {
		return Time{}, 0, err
	}

	civil, err := parseCivilFields(content[2:], timeutil.FullYearFromUTCTime(yy))
	if err != nil {
		return Time{}, 0, err
	}

	return civil, headerLen + contentLen, nil
}

// parseCivilFields parses "MMDDHHMMSS" plus a trailing timezone
// designator, folding any offset into the returned, already-UTC Civil
// value. year is the full year resolved by the caller (UTCTime's
// two-digit rule, or GeneralizedTime's own four digits).
func parseCivilFields(b []byte, year int) (Time, error) {
	if len(b) < 8 {
		return Time{}, errs.ErrCorrupt
	}

	month, err := parseDigits(b[0:2])
	if err != nil {
		return Time{}, err
	}

	day, err := parseDigits(b[2:4])
	if err != nil {
		return Time{}, err
	}

	hour, err := parseDigits(b[4:6])
	if err != nil {
		return Time{}, err
	}
	if hour >= 24 {
		return Time{}, errs.ErrCorrupt
	}

	minute, err := parseDigits(b[6:8])
	if err != nil {
		return Time{}, err
	}
	if minute >= 60 {
		return Time{}, errs.ErrCorrupt
	}

	rest := b[8:]
	second := 0
	if len(rest) >= 2 && rest[0] >= '0' && rest[0] <= '9' {
		second, err = parseDigits(rest[0:2])
		if err != nil {
			return Time{}, err
		}
		rest = rest[2:]
	}

	offsetMinutes, _, err := parseOffset(rest)
	if err != nil {
		return Time{}, err
	}

	civil := Time{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}

	return timeutil.ToUTC(civil, offsetMinutes), nil
}

// DecodeGeneralizedTime decodes a DER GeneralizedTime TLV: content format
// "YYYYMMDDHHMMSS" with an optional ".fff" fractional-second suffix,
// followed by "Z", "+HHMM"/"-HHMM", or "+HH"/"-HH". The result is
// normalized to UTC.
func DecodeGeneralizedTime(data []byte) (t Time, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagGeneralizedTime)
	if err != nil {
		return Time{}, 0, err
	}

	if contentLen < 10 {
		return Time{}, 0, errs.ErrCorrupt
	}

	content := data[headerLen : headerLen+contentLen]

	year, err := parseDigits(content[0:4])
	if err != nil {
		return Time{}, 0, err
	}

	fieldsAndTZ := content[4:]

	// Split off an optional ".fff" fractional-second segment before the
	// timezone designator.
	msec := 0
	if idx := indexByte(fieldsAndTZ, '.'); idx >= 0 {
		tzStart := idx + 1
		for tzStart < len(fieldsAndTZ) && fieldsAndTZ[tzStart] >= '0' && fieldsAndTZ[tzStart] <= '9' {
			tzStart++
		}

		frac := fieldsAndTZ[idx+1 : tzStart]
		msec, err = parseMillis(frac)
		if err != nil {
			return Time{}, 0, err
		}

		fieldsAndTZ = append(append([]byte{}, fieldsAndTZ[:idx]...), fieldsAndTZ[tzStart:]...)
	}

	civil, err := parseCivilFields(fieldsAndTZ, year)
	if err != nil {
		return Time{}, 0, err
	}
	civil.Millisecond = msec

	return civil, headerLen + contentLen, nil
}

func parseMillis(frac []byte) (int, error) {
	if len(frac) == 0 {
		return 0, nil
	}

	v, err := parseDigits(frac)
	if err != nil {
		return 0, err
	}

	switch len(frac) {
	case 1:
		return v * 100, nil
	case 2:
		return v * 10, nil
	default:
		return v % 1000, nil
	}
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}

	return -1
}

// DecodeChoiceOfTime decodes either a UTCTime or GeneralizedTime TLV,
// dispatching on the leading tag octet.
func DecodeChoiceOfTime(data []byte) (t Time, consumed int, err error) {
	if len(data) < 1 {
		return Time{}, 0, errs.ErrEOD
	}

	switch types.Tag(data[0]) {
	case types.TagUTCTime:
		return DecodeUTCTime(data)
	case types.TagGeneralizedTime:
		return DecodeGeneralizedTime(data)
	default:
		return Time{}, 0, errs.ErrBadTag
	}
}
