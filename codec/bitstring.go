package codec

import (
	"github.com/arloliu/asn1der/der"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// BitString is a DER BIT STRING: a byte blob plus the count of unused
// bits in its final octet. UnusedBits values >= 8 are tolerated on
// encode by clamping to 8 (i.e. treating the last input byte as wholly
// unused).
type BitString struct {
	Bytes      []byte
	UnusedBits uint8
}

// clampedUnusedBits clamps u to [0, 8], per this module's tolerance for
// out-of-range unused-bit counts.
func clampedUnusedBits(u uint8) uint8 {
	if u > 8 {
		return 8
	}

	return u
}

// dataByteCount returns the number of input bytes BIT STRING content
// retains:
//
//	dataBytes = (cbData*8 - cUnusedBits)/8 + 1  if cbData*8 > cUnusedBits
//	dataBytes = 0                                otherwise
func dataByteCount(cbData int, unusedBits uint8) int {
	totalBits := cbData * 8
	if totalBits <= int(unusedBits) {
		return 0
	}

	return (totalBits-int(unusedBits))/8 + 1
}

// SizeBitString returns the total TLV size EncodeBitString would produce.
func SizeBitString(b BitString) int {
	n := dataByteCount(len(b.Bytes), clampedUnusedBits(b.UnusedBits))

	return der.HeaderSize(1 + n)
}

// EncodeBitString encodes b as a DER BIT STRING. Content is the unused-bit
// count octet followed by the first dataByteCount(len(b.Bytes),
// unusedBits) bytes of input, with the last emitted byte masked so its
// trailing unused bits read as zero.
func EncodeBitString(req outbuf.Request, b BitString) (out []byte, required int, err error) {
	unused := clampedUnusedBits(b.UnusedBits)
	n := dataByteCount(len(b.Bytes), unused)
	required = der.HeaderSize(1 + n)

	if req.SizeOnly() {
		return nil, required, nil
	}

	buf, rerr := req.Resolve(required)
	if rerr != nil {
		return nil, required, rerr
	}

	buf = buf[:0]
	buf = der.AppendHeader(buf, types.TagBitString, 1+n)
	buf = append(buf, unused)
	if n > 0 {
		buf = append(buf, b.Bytes[:n]...)
		buf[len(buf)-1] &= 0xFF << unused
	}

	return buf, required, nil
}

// DecodeBitString decodes a DER BIT STRING TLV. When req.NoCopy is set,
// the returned byte blob aliases the input; otherwise it is a fresh copy.
func DecodeBitString(req outbuf.DecodeRequest, data []byte) (out BitString, consumed int, err error) {
	contentLen, headerLen, err := der.ReadHeader(data, types.TagBitString)
	if err != nil {
		return BitString{}, 0, err
	}

	if contentLen == 0 {
		return BitString{}, 0, errs.ErrCorrupt
	}

	content := data[headerLen : headerLen+contentLen]
	unused := content[0]
	if unused > 7 {
		return BitString{}, 0, errs.ErrCorrupt
	}

	payload := content[1:]
	if !req.NoCopy {
		cp := make([]byte, len(payload))
		copy(cp, payload)
		payload = cp
	}

	return BitString{Bytes: payload, UnusedBits: unused}, headerLen + contentLen, nil
}
