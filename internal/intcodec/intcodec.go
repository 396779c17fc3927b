// Package intcodec implements the trim/pad rules shared by this module's
// signed and unsigned integer encodings: computing the minimal DER byte
// count for a value and determining whether a sign-disambiguating pad
// byte is required.
package intcodec

// NeedsPositivePad reports whether a positive (or unsigned) value whose
// most-significant retained byte is msb needs a leading 0x00 pad so its
// top bit does not read as a sign bit.
func NeedsPositivePad(msb byte) bool {
	return msb&0x80 != 0
}

// NeedsNegativePad reports whether a negative value whose most-significant
// retained byte is msb needs a leading 0xFF pad so its top bit reads as a
// sign bit.
func NeedsNegativePad(msb byte) bool {
	return msb&0x80 == 0
}

// TrimUnsignedBE returns the minimal-length suffix of a big-endian unsigned
// magnitude, dropping redundant leading 0x00 bytes. An all-zero input
// trims to a single 0x00 byte (DER INTEGER 0).
func TrimUnsignedBE(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0x00 {
		i++
	}

	return b[i:]
}

// TrimSignedBE returns the minimal-length suffix of a big-endian
// two's-complement value, dropping redundant leading 0x00 (for a positive
// value) or 0xFF (for a negative value) bytes, i.e. bytes whose removal
// does not change the represented sign.
func TrimSignedBE(b []byte) []byte {
	i := 0
	for i < len(b)-1 {
		if b[i] == 0x00 && b[i+1]&0x80 == 0 {
			i++
			continue
		}
		if b[i] == 0xFF && b[i+1]&0x80 != 0 {
			i++
			continue
		}

		break
	}

	return b[i:]
}

// ReverseBytes returns a new slice with b's bytes in reverse order,
// converting between this module's little-endian blob convention for
// multi-byte integers and DER's big-endian wire order.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}

	return out
}
