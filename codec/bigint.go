package codec

import (
	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/intcodec"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// MultiByteInt is an arbitrary-width integer represented as a
// little-endian byte blob, either a two's-complement signed value or an
// unsigned magnitude. This module does not interpret the blob as a
// big.Int; it only trims, pads, and reverses it per DER's rules.
type MultiByteInt struct {
	Bytes  []byte
	Signed bool
}

// multiByteContent renders m's big-endian, minimal-length, sign-correct
// DER INTEGER content octets.
func multiByteContent(m MultiByteInt) []byte {
	be := intcodec.ReverseBytes(m.Bytes)
	if len(be) == 0 {
		be = []byte{0x00}
	}

	if m.Signed {
		// Two's-complement input already carries its own sign bit once
		// trimmed to minimal width; no further pad is ever needed.
		return intcodec.TrimSignedBE(be)
	}

	trimmed := intcodec.TrimUnsignedBE(be)
	if intcodec.NeedsPositivePad(trimmed[0]) {
		padded := make([]byte, 0, len(trimmed)+1)
		padded = append(padded, 0x00)

		return append(padded, trimmed...)
	}

	return trimmed
}

// SizeMultiByteInt returns the total TLV size EncodeMultiByteInt would
// produce for m.
func SizeMultiByteInt(m MultiByteInt) int {
	return der.HeaderSize(len(multiByteContent(m)))
}

// EncodeMultiByteInt encodes m as a DER INTEGER.
func EncodeMultiByteInt(req outbuf.Request, m MultiByteInt) (out []byte, required int, err error) {
	content := multiByteContent(m)
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

// DecodeMultiByteInt decodes a DER INTEGER TLV into a little-endian byte
// blob. When signed is true, the output preserves the two's-complement
// representation; when false, a single leading (most-significant) 0x00
// pad byte is dropped if present before reversing to little-endian.
func DecodeMultiByteInt(data []byte, signed bool) (out MultiByteInt, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagInteger)
	if err != nil {
		return MultiByteInt{}, 0, err
	}

	if contentLen == 0 {
		return MultiByteInt{}, 0, errs.ErrCorrupt
	}

	content := data[headerLen : headerLen+contentLen]

	if !signed && len(content) > 1 && content[0] == 0x00 {
		content = content[1:]
	}

	return MultiByteInt{Bytes: intcodec.ReverseBytes(content), Signed: signed}, headerLen + contentLen, nil
}

// SizeMultiByteUInt returns the total TLV size for an unsigned multi-byte
// integer encode of bytes (little-endian).
func SizeMultiByteUInt(littleEndian []byte) int {
	return SizeMultiByteInt(MultiByteInt{Bytes: littleEndian})
}

// EncodeMultiByteUInt encodes an unsigned little-endian blob as a DER
// INTEGER, applying the unsigned pad-byte rule: an explicit leading 0x00
// whenever the most significant retained byte's top bit is set.
func EncodeMultiByteUInt(req outbuf.Request, littleEndian []byte) (out []byte, required int, err error) {
	return EncodeMultiByteInt(req, MultiByteInt{Bytes: littleEndian})
}

// DecodeMultiByteUInt decodes a DER INTEGER TLV as an unsigned
// little-endian blob, dropping a redundant leading 0x00 pad if present.
func DecodeMultiByteUInt(data []byte) (littleEndian []byte, consumed int, err error) {
	m, n, err := DecodeMultiByteInt(data, false)
	return m.Bytes, n, err
}
