package codec

import (
	"bytes"
	"sort"

	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// RDN is a relative distinguished name: a DER SET OF attribute, encoded in
// ascending order of each member's serialized bytes (full bytes.Compare
// over the complete TLV, not a truncating length subtraction).
type RDN []RDNAttribute

// SizeRDN returns the total TLV size EncodeRDN would produce for r.
func SizeRDN(r RDN) (int, error) {
	total := 0
	for _, a := range r {
		n, err := SizeRDNAttribute(a)
		if err != nil {
			return 0, err
		}

		total += n
	}

	return der.HeaderSize(total), nil
}

// EncodeRDN encodes r as a DER SET OF, with members sorted by the raw
// bytes of their own TLV encoding. This makes encoding commutative over
// the input order: any permutation of the same multiset of attributes
// produces identical output.
func EncodeRDN(req outbuf.Request, r RDN) (out []byte, required int, err error) {
	members := make([][]byte, len(r))
	total := 0

	scratch := outbuf.GetScratch()
	defer outbuf.PutScratch(scratch)

	for i, a := range r {
		n, serr := SizeRDNAttribute(a)
		if serr != nil {
			return nil, 0, serr
		}

		scratch.Reset()
		scratch.Grow(n)

		memberOut, _, aerr := EncodeRDNAttribute(outbuf.Request{Out: scratch.B[:n]}, a)
		if aerr != nil {
			return nil, 0, aerr
		}

		member := make([]byte, len(memberOut))
		copy(member, memberOut)
		members[i] = member
		total += len(member)
	}

	sort.Slice(members, func(i, j int) bool {
		return compareDER(members[i], members[j]) < 0
	})

	required = der.HeaderSize(total)
	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagSet, total)
	for _, m := range members {
		buf = append(buf, m...)
	}

	return buf, required, nil
}

// compareDER orders two serialized TLVs per DER SET OF rules: shorter
// sorts before longer when one is a prefix of the other, otherwise plain
// byte-wise comparison decides it. bytes.Compare already implements
// exactly this rule; it is named here so the choice is visible at the
// call site, rather than a length-subtraction shortcut that can overflow
// or truncate for large elements.
func compareDER(a, b []byte) int {
	return bytes.Compare(a, b)
}

// DecodeRDN decodes a DER SET OF RDNAttribute TLV from the start of data.
// Members are returned in their encoded (sorted) order; this module does
// not reorder them back to any original insertion order, since DER does
// not preserve one.
func DecodeRDN(req outbuf.DecodeRequest, data []byte) (r RDN, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagSet)
	if err != nil {
		return nil, 0, err
	}

	content := data[headerLen : headerLen+contentLen]

	var out RDN
	pos := 0
	for pos < len(content) {
		a, n, aerr := DecodeRDNAttribute(req, content[pos:])
		if aerr != nil {
			return nil, 0, aerr
		}

		out = append(out, a)
		pos += n
	}

	return out, headerLen + contentLen, nil
}
