package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// OID is an object identifier in dotted-decimal text form, e.g.
// "1.2.840.113549".
type OID string

// components parses the dotted-decimal text into its numeric
// components. Each component must fit in 32 bits.
func (o OID) components() ([]uint32, error) {
	parts := strings.Split(string(o), ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: OID %q needs at least two components", errs.ErrInvalidParameter, o)
	}

	out := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: OID %q: invalid component %q", errs.ErrInvalidParameter, o, p)
		}

		out[i] = uint32(v)
	}

	return out, nil
}

// base128Size returns the number of base-128 octets needed to encode v.
func base128Size(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

func appendBase128(dst []byte, v uint32) []byte {
	var tmp [5]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte(v & 0x7F)
		v >>= 7
		if v == 0 {
			break
		}
	}

	for j := i; j < len(tmp)-1; j++ {
		dst = append(dst, tmp[j]|0x80)
	}

	return append(dst, tmp[len(tmp)-1])
}

// oidContent builds the raw content octets (without tag/length) for an OID.
func oidContent(o OID) ([]byte, error) {
	comps, err := o.components()
	if err != nil {
		return nil, err
	}

	c1, c2 := comps[0], comps[1]
	content := []byte{byte(40*c1 + c2)}

	for _, v := range comps[2:] {
		content = appendBase128(content, v)
	}

	return content, nil
}

// SizeOID returns the total TLV size (tag + length + content octets) that
// EncodeOID would produce for oid, without constructing it.
func SizeOID(oid OID) (int, error) {
	content, err := oidContent(oid)
	if err != nil {
		return 0, err
	}

	return der.HeaderSize(len(content)), nil
}

// EncodeOID encodes oid as a DER OBJECT IDENTIFIER TLV.
//
// First two components collapse to one octet (40*c1 + c2); each
// subsequent component is emitted as 1-5 base-128 octets, MSB first, with
// the continuation bit set on all but the last octet of each component.
func EncodeOID(req outbuf.Request, oid OID) (out []byte, required int, err error) {
	content, err := oidContent(oid)
	if err != nil {
		return nil, 0, err
	}

	required = der.HeaderSize(len(content))
	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, err := req.Resolve(required)
	if err != nil {
		return nil, required, err
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagObjectID, len(content))
	buf = append(buf, content...)

	return buf, required, nil
}

// DecodeOID decodes a DER OBJECT IDENTIFIER TLV from the start of data,
// returning its dotted-decimal text form and the number of bytes consumed.
func DecodeOID(data []byte) (oid OID, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagObjectID)
	if err != nil {
		return "", 0, err
	}

	if contentLen == 0 {
		return "", 0, errs.ErrCorrupt
	}

	content := data[headerLen : headerLen+contentLen]

	first := uint32(content[0])

	var c1, c2 uint32
	switch {
	case first < 40:
		c1, c2 = 0, first
	case first < 80:
		c1, c2 = 1, first-40
	default:
		c1, c2 = 2, first-80
	}

	comps := []uint32{c1, c2}

	i := 1
	for i < len(content) {
		v, n, derr := decodeBase128(content[i:])
		if derr != nil {
			return "", 0, derr
		}

		comps = append(comps, v)
		i += n
	}

	parts := make([]string, len(comps))
	for idx, c := range comps {
		parts[idx] = strconv.FormatUint(uint64(c), 10)
	}

	return OID(strings.Join(parts, ".")), headerLen + contentLen, nil
}

func decodeBase128(b []byte) (v uint32, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, errs.ErrEOD
	}

	for i, octet := range b {
		if i == 4 && octet&0x80 != 0 {
			// A fifth continuation octet would overflow uint32.
			return 0, 0, errs.ErrLarge
		}

		v = v<<7 | uint32(octet&0x7F)
		if octet&0x80 == 0 {
			return v, i + 1, nil
		}
	}

	return 0, 0, errs.ErrEOD
}
