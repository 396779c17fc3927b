package codec

import (
	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// RDNAttribute is a single attribute-type/value pair within an RDN: a DER
// SEQUENCE of an OID and a name-value string.
type RDNAttribute struct {
	OID   OID
	Value NameValue
}

// SizeRDNAttribute returns the total TLV size EncodeRDNAttribute would
// produce for a.
func SizeRDNAttribute(a RDNAttribute) (int, error) {
	oidSize, err := SizeOID(a.OID)
	if err != nil {
		return 0, err
	}

	valSize, err := SizeNameValue(a.Value)
	if err != nil {
		return 0, err
	}

	return der.HeaderSize(oidSize + valSize), nil
}

// EncodeRDNAttribute encodes a as a DER SEQUENCE containing its OID
// followed by its name-value, the shared inner codec also used directly
// by callers that only need a bare name-value (see codec/namevalue.go).
func EncodeRDNAttribute(req outbuf.Request, a RDNAttribute) (out []byte, required int, err error) {
	oidSize, err := SizeOID(a.OID)
	if err != nil {
		return nil, 0, err
	}

	valSize, err := SizeNameValue(a.Value)
	if err != nil {
		return nil, 0, err
	}

	contentLen := oidSize + valSize
	required = der.HeaderSize(contentLen)
	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	oidContentBytes, err := oidContent(a.OID)
	if err != nil {
		return nil, required, err
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagSequence, contentLen)
	buf = der.AppendHeader(buf, types.TagObjectID, len(oidContentBytes))
	buf = append(buf, oidContentBytes...)
	buf = der.AppendHeader(buf, a.Value.Tag, len(a.Value.Bytes))
	buf = append(buf, a.Value.Bytes...)

	return buf, required, nil
}

// DecodeRDNAttribute decodes a DER SEQUENCE(OID, NameValue) TLV from the
// start of data.
func DecodeRDNAttribute(req outbuf.DecodeRequest, data []byte) (a RDNAttribute, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagSequence)
	if err != nil {
		return RDNAttribute{}, 0, err
	}

	content := data[headerLen : headerLen+contentLen]

	oid, oidConsumed, err := DecodeOID(content)
	if err != nil {
		return RDNAttribute{}, 0, err
	}

	val, valConsumed, err := DecodeNameValue(req, content[oidConsumed:])
	if err != nil {
		return RDNAttribute{}, 0, err
	}

	return RDNAttribute{OID: oid, Value: val}, headerLen + oidConsumed + valConsumed, nil
}
