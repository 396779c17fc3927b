// Package dispatch routes a structure identifier and encoding-type mask
// to the concrete codec routine that handles it: the built-in compile-time
// table first, an external provider second.
package dispatch

import (
	"fmt"

	"github.com/arloliu/asn1der/codec"
	"github.com/arloliu/asn1der/codecfunc"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/types"
)

// Entry pairs the encode and decode routines registered for one structure
// identifier.
type Entry struct {
	Encode codecfunc.Encoder
	Decode codecfunc.Decoder
}

func wrap[T any](enc func(outbuf.Request, T) ([]byte, int, error)) codecfunc.Encoder {
	return func(req outbuf.Request, value any) ([]byte, int, error) {
		v, ok := value.(T)
		if !ok {
			var zero T
			return nil, 0, fmt.Errorf("%w: expected %T, got %T", errs.ErrInvalidParameter, zero, value)
		}

		return enc(req, v)
	}
}

func wrapDecode[T any](dec func([]byte) (T, int, error)) codecfunc.Decoder {
	return func(_ outbuf.DecodeRequest, data []byte) (any, int, error) {
		v, n, err := dec(data)
		return v, n, err
	}
}

func wrapDecodeReq[T any](dec func(outbuf.DecodeRequest, []byte) (T, int, error)) codecfunc.Decoder {
	return func(req outbuf.DecodeRequest, data []byte) (any, int, error) {
		v, n, err := dec(req, data)
		return v, n, err
	}
}

// Table is the compile-time catalog of built-in structure identifiers,
// keyed by both the numeric form (types.StructXxx constants) and the
// well-known textual OIDs this module recognizes natively. Dispatch
// consults this table before falling back to a registered provider.
var Table = map[types.StructID]Entry{
	types.NumericStructID(types.StructName): {
		Encode: wrap(codec.EncodeName),
		Decode: wrapDecodeReq(codec.DecodeName),
	},
	types.NumericStructID(types.StructOctetString): {
		Encode: wrap(codec.EncodeOctetString),
		Decode: wrapDecodeReq(codec.DecodeOctetString),
	},
	types.NumericStructID(types.StructBits): {
		Encode: wrap(codec.EncodeBitString),
		Decode: wrapDecodeReq(codec.DecodeBitString),
	},
	types.NumericStructID(types.StructInteger): {
		Encode: wrap(codec.EncodeSmallInt),
		Decode: wrapDecode(codec.DecodeSmallInt),
	},
	types.NumericStructID(types.StructMultiByteInteger): {
		Encode: wrap(codec.EncodeMultiByteInt),
		Decode: wrapDecode(func(data []byte) (codec.MultiByteInt, int, error) {
			return codec.DecodeMultiByteInt(data, true)
		}),
	},
	types.NumericStructID(types.StructMultiByteUInt): {
		Encode: wrap(codec.EncodeMultiByteUInt),
		Decode: wrapDecode(codec.DecodeMultiByteUInt),
	},
	types.NumericStructID(types.StructEnumerated): {
		Encode: wrap(codec.EncodeEnumerated),
		Decode: wrapDecode(codec.DecodeEnumerated),
	},
	types.NumericStructID(types.StructChoiceOfTime): {
		Encode: wrap(codec.EncodeChoiceOfTime),
		Decode: wrapDecode(codec.DecodeChoiceOfTime),
	},
	types.NumericStructID(types.StructUTCTime): {
		Encode: wrap(codec.EncodeUTCTime),
		Decode: wrapDecode(codec.DecodeUTCTime),
	},

	types.OIDStructID(types.OIDSigningTime): {
		Encode: wrap(codec.EncodeUTCTime),
		Decode: wrapDecode(codec.DecodeUTCTime),
	},
	types.OIDStructID(types.OIDCRLReason): {
		Encode: wrap(codec.EncodeEnumerated),
		Decode: wrapDecode(codec.DecodeEnumerated),
	},
	types.OIDStructID(types.OIDKeyUsage): {
		Encode: wrap(codec.EncodeBitString),
		Decode: wrapDecodeReq(codec.DecodeBitString),
	},
	types.OIDStructID(types.OIDSubjectKeyIdentifier): {
		Encode: wrap(codec.EncodeOctetString),
		Decode: wrapDecodeReq(codec.DecodeOctetString),
	},
}
