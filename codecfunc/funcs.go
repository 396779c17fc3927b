// Package codecfunc declares the function shapes an externally loaded
// provider module exports, shared between dispatch (which calls them) and
// provider (which loads them) without making either package depend on the
// other.
package codecfunc

import "github.com/arloliu/asn1der/internal/outbuf"

// Encoder is the exported function shape for a provider-supplied encoder.
type Encoder func(req outbuf.Request, value any) (out []byte, required int, err error)

// Decoder is the exported function shape for a provider-supplied decoder.
type Decoder func(req outbuf.DecodeRequest, data []byte) (value any, consumed int, err error)
