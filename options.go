package asn1der

import (
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/internal/outopts"
	"github.com/arloliu/asn1der/types"
)

// encodeConfig is the target EncodeOptions configure.
type encodeConfig struct {
	encodingType types.EncodingType
	req          outbuf.Request
}

func newEncodeConfig() *encodeConfig {
	return &encodeConfig{
		encodingType: types.CertEncodingDER,
		req:          outbuf.Request{Alloc: true},
	}
}

// EncodeOption configures a call to Encode.
type EncodeOption = outopts.Option[*encodeConfig]

func applyEncodeOptions(cfg *encodeConfig, opts []EncodeOption) error {
	return outopts.Apply(cfg, opts...)
}

// WithEncodingType selects the encoding-type family a call targets
// (types.CertEncodingDER by default, or types.MsgEncodingDER).
func WithEncodingType(t types.EncodingType) EncodeOption {
	return outopts.NoError(func(c *encodeConfig) { c.encodingType = t })
}

// WithOutBuffer supplies a caller-owned buffer for Encode to write into
// instead of allocating one. Disables the default ALLOC behavior.
func WithOutBuffer(buf []byte) EncodeOption {
	return outopts.NoError(func(c *encodeConfig) {
		c.req.Out = buf
		c.req.Alloc = false
	})
}

// WithAllocator routes Encode's ALLOC-flagged allocation through fn
// instead of a plain make([]byte, n).
func WithAllocator(fn func(int) []byte) EncodeOption {
	return outopts.NoError(func(c *encodeConfig) {
		c.req.Allocator = fn
		c.req.Alloc = true
	})
}

// WithSizeOnly turns the call into a sizing query: no buffer is written,
// and the returned byte slice is always nil.
func WithSizeOnly() EncodeOption {
	return outopts.NoError(func(c *encodeConfig) {
		c.req.Out = nil
		c.req.Alloc = false
	})
}

// decodeConfig is the target DecodeOptions configure.
type decodeConfig struct {
	encodingType types.EncodingType
	req          outbuf.DecodeRequest
}

func newDecodeConfig() *decodeConfig {
	return &decodeConfig{encodingType: types.CertEncodingDER}
}

// DecodeOption configures a call to Decode.
type DecodeOption = outopts.Option[*decodeConfig]

func applyDecodeOptions(cfg *decodeConfig, opts []DecodeOption) error {
	return outopts.Apply(cfg, opts...)
}

// WithDecodeEncodingType selects the encoding-type family a Decode call
// targets (types.CertEncodingDER by default, or types.MsgEncodingDER).
func WithDecodeEncodingType(t types.EncodingType) DecodeOption {
	return outopts.NoError(func(c *decodeConfig) { c.encodingType = t })
}

// WithNoCopy lets byte-blob outputs (OCTET STRING, BIT STRING, NameValue)
// alias the input buffer instead of being copied. The returned value's
// lifetime is then tied to the input buffer's.
func WithNoCopy() DecodeOption {
	return outopts.NoError(func(c *decodeConfig) { c.req.NoCopy = true })
}

// WithShareOID permits, but does not require, decoded OID strings to be
// shared rather than freshly allocated per call.
func WithShareOID() DecodeOption {
	return outopts.NoError(func(c *decodeConfig) { c.req.ShareOID = true })
}

// WithDecodeOutBuffer sets the decode request's Out buffer. None of the
// built-in decoders read it; they allocate their own output.
func WithDecodeOutBuffer(buf []byte) DecodeOption {
	return outopts.NoError(func(c *decodeConfig) { c.req.Out = buf })
}
