package codec

import (
	"math"

	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/intcodec"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// smallIntContent renders v as the minimal-length two's-complement
// big-endian content octets for a DER INTEGER.
func smallIntContent(v int64) []byte {
	var raw [8]byte
	for i := 7; i >= 0; i-- {
		raw[i] = byte(v)
		v >>= 8
	}

	content := intcodec.TrimSignedBE(raw[:])

	return content
}

// SizeSmallInt returns the total TLV size EncodeSmallInt would produce for v.
func SizeSmallInt(v int64) int {
	return der.HeaderSize(len(smallIntContent(v)))
}

// EncodeSmallInt encodes v as a DER INTEGER using the minimal two's
// complement representation: a leading 0x00 pad is added when a positive
// value's top bit would otherwise read as negative, and a leading 0xFF pad
// when a negative value's top bit would otherwise read as positive.
func EncodeSmallInt(req outbuf.Request, v int64) (out []byte, required int, err error) {
	content := smallIntContent(v)
	required = der.HeaderSize(len(content))

	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, err := req.Resolve(required)
	if err != nil {
		return nil, required, err
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagInteger, len(content))
	buf = append(buf, content...)

	return buf, required, nil
}

// DecodeSmallInt decodes a DER INTEGER TLV into a platform-width signed
// integer. The encoded content is limited to 8 octets (the width of
// int64); longer encodings fail with ErrLarge, zero-length content fails
// with ErrCorrupt, and truncated input fails with ErrEOD.
func DecodeSmallInt(data []byte) (v int64, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagInteger)
	if err != nil {
		return 0, 0, err
	}

	if contentLen == 0 {
		return 0, 0, errs.ErrCorrupt
	}

	if contentLen > 8 {
		return 0, 0, errs.ErrLarge
	}

	content := data[headerLen : headerLen+contentLen]

	v = int64(int8(content[0])) // sign-extend from the MSB
	for _, b := range content[1:] {
		v = v<<8 | int64(b)
	}

	return v, headerLen + contentLen, nil
}

// MaxSmallIntContentLen is the longest content an int64-backed DER
// INTEGER can ever need: 8 octets, the size of math.MinInt64's minimal
// two's-complement form.
var MaxSmallIntContentLen = len(smallIntContent(math.MinInt64))
