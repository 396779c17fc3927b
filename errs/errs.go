// Package errs defines the sentinel errors returned by the codec engine.
//
// Call sites wrap a sentinel with additional context using fmt.Errorf's
// %w verb (e.g. fmt.Errorf("%w: tag 0x%02x", errs.ErrBadTag, got)); callers
// that need to branch on the error kind use errors.Is against the sentinels
// below.
package errs

import "errors"

var (
	// ErrInvalidParameter covers null/missing required input, invalid flag
	// combinations, unsupported string types, and malformed OID text.
	ErrInvalidParameter = errors.New("asn1der: invalid parameter")

	// ErrMoreData indicates the caller's output buffer was too small and the
	// ALLOC flag was not set. The required size is available both as the
	// encoder's required-size return value and via MoreDataError.Required
	// for callers that prefer errors.As.
	ErrMoreData = errors.New("asn1der: buffer too small")

	// ErrBadTag indicates the leading tag octet did not match the expected
	// tag for the structure being decoded.
	ErrBadTag = errors.New("asn1der: unexpected tag")

	// ErrEOD indicates the input ended before a complete TLV could be read.
	ErrEOD = errors.New("asn1der: unexpected end of data")

	// ErrCorrupt indicates a non-minimal or otherwise illegal DER encoding.
	ErrCorrupt = errors.New("asn1der: corrupt encoding")

	// ErrLarge indicates a length field required more octets than this
	// implementation supports (4-octet length limit).
	ErrLarge = errors.New("asn1der: length field too large")

	// ErrInternal indicates an internal inconsistency that should not be
	// reachable from well-formed input; surfaced rather than panicking so
	// library callers keep control flow.
	ErrInternal = errors.New("asn1der: internal error")

	// ErrBadEncode indicates an encode-domain error, such as a time value
	// outside the range its chosen wire format can represent.
	ErrBadEncode = errors.New("asn1der: value cannot be encoded")

	// ErrFileNotFound indicates dispatch found no built-in codec and no
	// external provider registered for the requested identifier.
	ErrFileNotFound = errors.New("asn1der: no codec for structure identifier")
)

// MoreDataError is returned (wrapping ErrMoreData) when an encoder needs a
// larger caller-supplied buffer. Required is always also returned as the
// encoder's required-size result, so callers may use either.
type MoreDataError struct {
	Required int
}

func (e *MoreDataError) Error() string {
	return ErrMoreData.Error()
}

func (e *MoreDataError) Unwrap() error {
	return ErrMoreData
}
