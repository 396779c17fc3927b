package codec

import (
	"fmt"

	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// NameValue is a tagged string value: one of NumericString,
// PrintableString, or IA5String, carrying its raw bytes uninterpreted
// (no charset conversion or validation beyond the tag check).
type NameValue struct {
	Tag   types.Tag
	Bytes []byte
}

func validNameValueTag(tag types.Tag) bool {
	switch tag {
	case types.TagNumericString, types.TagPrintableString, types.TagIA5String:
		return true
	default:
		return false
	}
}

// SizeNameValue returns the total TLV size EncodeNameValue would produce for v.
func SizeNameValue(v NameValue) (int, error) {
	if !validNameValueTag(v.Tag) {
		return 0, fmt.Errorf("%w: unsupported name-value tag %s", errs.ErrInvalidParameter, v.Tag)
	}

	return der.HeaderSize(len(v.Bytes)), nil
}

// EncodeNameValue encodes v using the tag selected by v.Tag; an
// unsupported tag (including any tag outside the three name-value string
// types) fails with ErrInvalidParameter.
func EncodeNameValue(req outbuf.Request, v NameValue) (out []byte, required int, err error) {
	if !validNameValueTag(v.Tag) {
		return nil, 0, fmt.Errorf("%w: unsupported name-value tag %s", errs.ErrInvalidParameter, v.Tag)
	}

	required = der.HeaderSize(len(v.Bytes))
	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, v.Tag, len(v.Bytes))
	buf = append(buf, v.Bytes...)

	return buf, required, nil
}

// DecodeNameValue decodes a NumericString, PrintableString, or IA5String
// TLV from the start of data. When req.NoCopy is set, the returned bytes
// alias the input buffer.
func DecodeNameValue(req outbuf.DecodeRequest, data []byte) (v NameValue, consumed int, err error) {
	if len(data) < 1 {
		return NameValue{}, 0, errs.ErrEOD
	}

	tag := types.Tag(data[0])
	if !validNameValueTag(tag) {
		return NameValue{}, 0, errs.ErrBadTag
	}

	contentLen, headerLen, err := der.ReadHeader(data, tag)
	if err != nil {
		return NameValue{}, 0, err
	}

	raw := data[headerLen : headerLen+contentLen]
	if !req.NoCopy {
		cp := make([]byte, len(raw))
		copy(cp, raw)
		raw = cp
	}

	return NameValue{Tag: tag, Bytes: raw}, headerLen + contentLen, nil
}
