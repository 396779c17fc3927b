// Package asn1der provides a dispatch-driven ASN.1 DER codec engine:
// encode and decode Go values against a catalog of structure identifiers
// (small integers for the built-in catalog, textual OIDs for everything
// else) without the caller needing to import the codec or dispatch
// packages directly.
//
// # Core Features
//
//   - Canonical DER encoding: minimal length form, minimal two's-complement
//     integers, lexicographically sorted SET OF members
//   - A built-in dispatch table for certificate/message structures (Name,
//     OCTET STRING, BIT STRING, INTEGER, multi-byte INTEGER, ENUMERATED,
//     UTCTime/GeneralizedTime) plus an external provider registry for
//     anything else
//   - ALLOC / NOCOPY / SHARE_OID behavior exposed as functional options
//     that fill in the request structs the dispatch layer takes
//
// # Basic Usage
//
//	import (
//	    "github.com/arloliu/asn1der/codec"
//	    "github.com/arloliu/asn1der/types"
//	)
//
//	n := codec.Name{codec.RDN{{
//	    OID:   codec.OID("2.5.4.3"),
//	    Value: codec.NameValue{Tag: types.TagPrintableString, Bytes: []byte("X")},
//	}}}
//
//	der, err := asn1der.Encode(types.NumericStructID(types.StructName), n)
//
//	var decoded codec.Name
//	err = asn1der.Decode(types.NumericStructID(types.StructName), der, &decoded)
//
// # Package Structure
//
// This package is a thin wrapper around dispatch and provider, choosing
// sensible defaults (ALLOC on for Encode, CertEncodingDER unless overridden)
// so the common case needs no options at all. Fine-grained control, such
// as registering an external provider, choosing the message-encoding
// family, or reusing a caller-supplied buffer, goes through the options
// below or through dispatch/provider directly.
package asn1der

import (
	"fmt"
	"reflect"

	"github.com/arloliu/asn1der/dispatch"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/provider"
	"github.com/arloliu/asn1der/types"
)

// Encode dispatches value to the codec registered for structID and
// returns its DER encoding. Defaults to CertEncodingDER and an
// allocated output buffer; override either with EncodeOptions.
func Encode(structID types.StructID, value any, opts ...EncodeOption) ([]byte, error) {
	cfg := newEncodeConfig()
	if err := applyEncodeOptions(cfg, opts); err != nil {
		return nil, err
	}

	out, _, err := dispatch.Encode(cfg.encodingType, structID, cfg.req, value)

	return out, err
}

// Decode dispatches data to the codec registered for structID and, on
// success, assigns the decoded value into out. out must be a non-nil
// pointer to a type the codec's decoded value is assignable to; pass nil
// to discard the value and only check the error.
func Decode(structID types.StructID, data []byte, out any, opts ...DecodeOption) error {
	cfg := newDecodeConfig()
	if err := applyDecodeOptions(cfg, opts); err != nil {
		return err
	}

	val, _, err := dispatch.Decode(cfg.encodingType, structID, cfg.req, data)
	if err != nil {
		return err
	}

	return assignOut(out, val)
}

// EncodeLegacy encodes value against structID using CertEncodingDER and an
// allocated output buffer, with no flags available. Mirrors the codec
// engine's legacy entry point for callers migrating from it.
func EncodeLegacy(structID types.StructID, value any) ([]byte, error) {
	return dispatch.EncodeLegacy(types.CertEncodingDER, structID, value)
}

// DecodeLegacy decodes data against structID using CertEncodingDER and
// default (copying) flags, assigning the result into out.
func DecodeLegacy(structID types.StructID, data []byte, out any) error {
	val, err := dispatch.DecodeLegacy(types.CertEncodingDER, structID, data)
	if err != nil {
		return err
	}

	return assignOut(out, val)
}

// assignOut writes val into *out via reflection. A nil out is a
// discard-the-value call and always succeeds.
func assignOut(out any, val any) error {
	if out == nil {
		return nil
	}

	ptr := reflect.ValueOf(out)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("%w: out must be a non-nil pointer", errs.ErrInvalidParameter)
	}

	elem := ptr.Elem()
	valRef := reflect.ValueOf(val)

	if !valRef.IsValid() {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}

	if !valRef.Type().AssignableTo(elem.Type()) {
		return fmt.Errorf("%w: decoded value of type %s is not assignable to %s", errs.ErrInvalidParameter, valRef.Type(), elem.Type())
	}

	elem.Set(valRef)

	return nil
}

// DefaultProviderStore returns the provider.Store backing the package-level
// Encode/Decode/EncodeLegacy/DecodeLegacy functions, so a caller can
// register external providers without building its own dispatch.Dispatcher.
func DefaultProviderStore() provider.Store {
	return dispatch.DefaultStore()
}
