package codec

import (
	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// Name is an X.509 distinguished name: a DER SEQUENCE OF RDN, insertion
// order preserved (unlike RDN's SET OF members, a Name's RDNs carry
// ordering significance and are never resorted).
type Name []RDN

// SizeName returns the total TLV size EncodeName would produce for n.
func SizeName(n Name) (int, error) {
	total := 0
	for _, r := range n {
		sz, err := SizeRDN(r)
		if err != nil {
			return 0, err
		}

		total += sz
	}

	return der.HeaderSize(total), nil
}

// EncodeName encodes n as a DER SEQUENCE OF RDN, each RDN encoded by
// EncodeRDN in the order given.
func EncodeName(req outbuf.Request, n Name) (out []byte, required int, err error) {
	members := make([][]byte, len(n))
	total := 0

	scratch := outbuf.GetScratch()
	defer outbuf.PutScratch(scratch)

	for i, r := range n {
		sz, serr := SizeRDN(r)
		if serr != nil {
			return nil, 0, serr
		}

		scratch.Reset()
		scratch.Grow(sz)

		memberOut, _, rerr := EncodeRDN(outbuf.Request{Out: scratch.B[:sz]}, r)
		if rerr != nil {
			return nil, 0, rerr
		}

		member := make([]byte, len(memberOut))
		copy(member, memberOut)
		members[i] = member
		total += len(member)
	}

	required = der.HeaderSize(total)
	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagSequence, total)
	for _, m := range members {
		buf = append(buf, m...)
	}

	return buf, required, nil
}

// DecodeName decodes a DER SEQUENCE OF RDN TLV from the start of data.
func DecodeName(req outbuf.DecodeRequest, data []byte) (n Name, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagSequence)
	if err != nil {
		return nil, 0, err
	}

	content := data[headerLen : headerLen+contentLen]

	var out Name
	pos := 0
	for pos < len(content) {
		r, rn, rerr := DecodeRDN(req, content[pos:])
		if rerr != nil {
			return nil, 0, rerr
		}

		out = append(out, r)
		pos += rn
	}

	return out, headerLen + contentLen, nil
}
