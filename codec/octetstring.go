package codec

import (
	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// SizeOctetString returns the total TLV size EncodeOctetString would
// produce for content.
func SizeOctetString(content []byte) int {
	return der.HeaderSize(len(content))
}

// EncodeOctetString encodes content as a DER OCTET STRING: a raw, byte-for-byte copy.
func EncodeOctetString(req outbuf.Request, content []byte) (out []byte, required int, err error) {
	required = der.HeaderSize(len(content))

	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagOctetString, len(content))
	buf = append(buf, content...)

	return buf, required, nil
}

// DecodeOctetString decodes a DER OCTET STRING TLV. When req.NoCopy is
// set, the returned byte slice aliases the input buffer instead of being
// copied; its lifetime is then tied to the input's.
func DecodeOctetString(req outbuf.DecodeRequest, data []byte) (content []byte, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagOctetString)
	if err != nil {
		return nil, 0, err
	}

	raw := data[headerLen : headerLen+contentLen]
	if req.NoCopy {
		return raw, headerLen + contentLen, nil
	}

	cp := make([]byte, len(raw))
	copy(cp, raw)

	return cp, headerLen + contentLen, nil
}
