package outbuf

import (
	"fmt"

	"github.com/arloliu/asn1der/errs"
)

// Request models the encoder half of the codec engine's output buffer
// protocol: the caller either wants just the required size (Out == nil,
// Alloc == false), wants the encoder to allocate a fresh buffer (Alloc ==
// true), or has supplied a buffer to write into (Out != nil).
type Request struct {
	// Out is the caller-supplied output buffer. A nil Out with Alloc
	// false is a sizing query: the encoder reports the required size and
	// writes nothing.
	Out []byte

	// Alloc requests that the encoder allocate its own output buffer via
	// Allocator (or make([]byte, n) if Allocator is nil). Ownership of the
	// allocated buffer transfers to the caller.
	Alloc bool

	// Allocator, when set, is used instead of make([]byte, n) to satisfy
	// an Alloc request. Lets callers route output through their own
	// arena or pool.
	Allocator func(n int) []byte
}

// SizeOnly reports whether this request is a pure sizing query.
func (r Request) SizeOnly() bool {
	return r.Out == nil && !r.Alloc
}

// Resolve returns a buffer of exactly `required` bytes for the encoder to
// write into, following the branch table in the codec engine's output
// buffer protocol:
//
//   - Alloc set: allocate required bytes (via Allocator or make) and
//     return them; ownership transfers to the caller.
//   - Out supplied but shorter than required: fail with ErrMoreData,
//     wrapped in a *errs.MoreDataError carrying the required size.
//   - Out supplied and large enough: return Out[:required].
//
// Callers must check SizeOnly before calling Resolve; Resolve panics if
// called on a pure sizing request, since there is no buffer to resolve.
func (r Request) Resolve(required int) ([]byte, error) {
	if r.Alloc {
		alloc := r.Allocator
		if alloc == nil {
			alloc = func(n int) []byte { return make([]byte, n) }
		}

		buf := alloc(required)
		if len(buf) < required {
			return nil, fmt.Errorf("%w: allocator returned %d bytes, need %d", errs.ErrInternal, len(buf), required)
		}

		return buf[:required], nil
	}

	if r.Out == nil {
		panic("outbuf: Resolve called on a sizing-only request")
	}

	if len(r.Out) < required {
		return nil, &errs.MoreDataError{Required: required}
	}

	return r.Out[:required], nil
}

// DecodeRequest extends Request with the decoder-only flags from the
// codec engine's external API: NoCopy lets byte-blob outputs alias the
// input buffer instead of copying, and ShareOID allows (but does not
// require) decoded OID text to be shared between calls.
type DecodeRequest struct {
	Request

	// NoCopy lets octet string, bit string, and name-value decoders
	// return a slice that aliases the input buffer rather than a copy.
	// The returned slice's lifetime is then tied to the input's.
	NoCopy bool

	// ShareOID permits (but does not require) decoded OID strings to be
	// shared across calls instead of freshly allocated. This
	// implementation always allocates a fresh string, since Go string
	// headers make sharing free at the language level regardless.
	ShareOID bool
}
