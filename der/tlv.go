package der

import (
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/types"
)

// HeaderSize returns the number of octets a TLV header (tag + length)
// occupies for a content length of contentLen. Every primitive encoder
// uses this during its sizing pass to compute SizeX = HeaderSize(...) +
// contentLen.
func HeaderSize(contentLen int) int {
	return 1 + LengthSize(contentLen)
}

// AppendHeader appends a tag octet and DER length octets for contentLen
// to dst, returning the extended slice. The content itself is appended by
// the caller immediately afterward.
func AppendHeader(dst []byte, tag types.Tag, contentLen int) []byte {
	dst = append(dst, byte(tag))
	return AppendLength(dst, contentLen)
}

// ReadHeader verifies the leading tag octet of data against want, decodes
// the following length field, and checks that data holds at least that
// many content octets.
//
// Returns the content length and the total header size consumed (tag
// octet plus length octets); the content itself begins at data[headerLen:].
func ReadHeader(data []byte, want types.Tag) (contentLen int, headerLen int, err error) {
	if len(data) < 1 {
		return 0, 0, errs.ErrEOD
	}

	if types.Tag(data[0]) != want {
		return 0, 0, errs.ErrBadTag
	}

	n, consumed, err := DecodeLength(data[1:])
	if err != nil {
		return 0, 0, err
	}

	headerLen = 1 + consumed
	if len(data)-headerLen < n {
		return 0, 0, errs.ErrEOD
	}

	return n, headerLen, nil
}
