// Package der implements the wire-framing primitives shared by every
// codec in this module: DER length octets and the tag+length header
// every TLV element begins with.
package der

import (
	"github.com/arloliu/asn1der/endian"
	"github.com/arloliu/asn1der/errs"
)

// lengthEngine is the byte-order engine this package uses to build and
// parse a long-form length's multi-byte value. DER length octets are
// always big-endian, regardless of host or caller endianness.
var lengthEngine = endian.GetBigEndianEngine()

// MaxLengthOctets is the implementation limit on the number of octets a
// long-form length may use. DER itself allows up to 126; this module
// caps at 4, which covers content up to 4GiB.
const MaxLengthOctets = 4

// EncodeLength returns the DER length octets for a content length of n.
//
// Lengths up to 0x7F are encoded in short form (one octet). Larger lengths
// use long form: one octet 0x80|k followed by k big-endian octets holding
// n, using the minimum k that represents n.
func EncodeLength(n int) []byte {
	if n < 0 {
		panic("der: negative length")
	}

	if n <= 0x7F {
		return []byte{byte(n)}
	}

	k := lengthOctetCount(n)
	var full [4]byte
	lengthEngine.PutUint32(full[:], uint32(n))

	out := make([]byte, 1+k)
	out[0] = 0x80 | byte(k)
	copy(out[1:], full[4-k:])

	return out
}

// AppendLength appends the DER length octets for n to dst and returns the
// extended slice, avoiding an intermediate allocation for callers that
// already hold a growable buffer.
func AppendLength(dst []byte, n int) []byte {
	if n <= 0x7F {
		return append(dst, byte(n))
	}

	k := lengthOctetCount(n)
	var full [4]byte
	lengthEngine.PutUint32(full[:], uint32(n))

	dst = append(dst, 0x80|byte(k))
	dst = append(dst, full[4-k:]...)

	return dst
}

// LengthSize returns the number of octets EncodeLength(n) would produce,
// without constructing the slice. Used by encoders' sizing pass.
func LengthSize(n int) int {
	if n <= 0x7F {
		return 1
	}

	return 1 + lengthOctetCount(n)
}

func lengthOctetCount(n int) int {
	k := 0
	for v := n; v > 0; v >>= 8 {
		k++
	}

	if k == 0 {
		k = 1
	}

	return k
}

// DecodeLength parses a DER length field from the start of b.
//
// Returns the decoded content length and the number of octets the length
// field itself occupied. Fails with ErrEOD if b is too short to hold a
// length field, ErrLarge if the long form requires more than
// MaxLengthOctets octets, and ErrCorrupt if the long form's declared
// octet count overruns b.
func DecodeLength(b []byte) (n int, consumed int, err error) {
	if len(b) < 1 {
		return 0, 0, errs.ErrEOD
	}

	first := b[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}

	k := int(first &^ 0x80)
	if k == 0 {
		// 0x80 alone is BER indefinite-length, out of scope for DER.
		return 0, 0, errs.ErrCorrupt
	}

	if k > MaxLengthOctets {
		return 0, 0, errs.ErrLarge
	}

	if len(b) < 1+k {
		return 0, 0, errs.ErrEOD
	}

	var full [4]byte
	copy(full[4-k:], b[1:1+k])
	n = int(lengthEngine.Uint32(full[:]))

	// DER requires the shortest form; a long-form length that fits in the
	// short form, or whose leading octet is redundant padding, is illegal.
	if n <= 0x7F {
		return 0, 0, errs.ErrCorrupt
	}
	if k > 1 && b[1] == 0 {
		return 0, 0, errs.ErrCorrupt
	}

	return n, 1 + k, nil
}
