package codec

import (
	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/intcodec"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// enumeratedContent encodes a 32-bit unsigned value via the same
// trim/pad rule as an unsigned multi-byte integer.
func enumeratedContent(v uint32) []byte {
	be := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	trimmed := intcodec.TrimUnsignedBE(be)
	if intcodec.NeedsPositivePad(trimmed[0]) {
		return append([]byte{0x00}, trimmed...)
	}

	return trimmed
}

// SizeEnumerated returns the total TLV size EncodeEnumerated would
// produce for v.
func SizeEnumerated(v uint32) int {
	return der.HeaderSize(len(enumeratedContent(v)))
}

// EncodeEnumerated encodes v as a DER ENUMERATED: the same content rules
// as an unsigned multi-byte integer, with the tag overwritten to
// ENUMERATED.
func EncodeEnumerated(req outbuf.Request, v uint32) (out []byte, required int, err error) {
	content := enumeratedContent(v)
	required = der.HeaderSize(len(content))

	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, err := req.Resolve(required)
	if err != nil {
		return nil, required, err
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagEnumerated, len(content))
	buf = append(buf, content...)

	return buf, required, nil
}

// DecodeEnumerated decodes a DER ENUMERATED TLV into an unsigned 32-bit
// value. A single leading zero sign byte is tolerated.
func DecodeEnumerated(data []byte) (v uint32, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagEnumerated)
	if err != nil {
		return 0, 0, err
	}

	if contentLen == 0 {
		return 0, 0, errs.ErrCorrupt
	}

	content := data[headerLen : headerLen+contentLen]
	if len(content) > 1 && content[0] == 0x00 {
		content = content[1:]
	}

	if len(content) > 4 {
		return 0, 0, errs.ErrLarge
	}

	for _, b := range content {
		v = v<<8 | uint32(b)
	}

	return v, headerLen + contentLen, nil
}
