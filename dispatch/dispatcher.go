package dispatch

import (
	"fmt"

	"github.com/arloliu/asn1der/codecfunc"
	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/provider"
	"github.com/arloliu/asn1der/types"
)

// Dispatcher routes an Encode/Decode call to a built-in codec routine or,
// on a miss, to an externally registered provider. A Dispatcher holds no
// state of its own beyond its Store and ModuleLoader; construct one per
// process and share it across goroutines.
type Dispatcher struct {
	store  provider.Store
	loader *provider.ModuleLoader
}

// NewDispatcher creates a Dispatcher backed by store for provider lookups
// and loader for resolving provider module symbols.
func NewDispatcher(store provider.Store, loader *provider.ModuleLoader) *Dispatcher {
	return &Dispatcher{store: store, loader: loader}
}

// Encode resolves structID to a codec routine, the built-in Table first
// and a registered provider second, and runs it against req. encodingType
// must include at least one recognized bit (types.CertEncodingDER or
// types.MsgEncodingDER); an invalid mask fails immediately, matching the
// platform contract's dispatch validation rule.
func (d *Dispatcher) Encode(encodingType types.EncodingType, structID types.StructID, req outbuf.Request, value any) (out []byte, required int, err error) {
	if !encodingType.Valid() {
		return nil, 0, fmt.Errorf("%w: encoding type %d", errs.ErrInvalidParameter, encodingType)
	}

	if entry, ok := Table[structID]; ok {
		return entry.Encode(req, value)
	}

	enc, err := d.resolveEncoder(encodingType, structID)
	if err != nil {
		return nil, 0, err
	}

	return enc(req, value)
}

// Decode resolves structID to a codec routine and runs it against data.
func (d *Dispatcher) Decode(encodingType types.EncodingType, structID types.StructID, req outbuf.DecodeRequest, data []byte) (value any, consumed int, err error) {
	if !encodingType.Valid() {
		return nil, 0, fmt.Errorf("%w: encoding type %d", errs.ErrInvalidParameter, encodingType)
	}

	if entry, ok := Table[structID]; ok {
		return entry.Decode(req, data)
	}

	dec, err := d.resolveDecoder(encodingType, structID)
	if err != nil {
		return nil, 0, err
	}

	return dec(req, data)
}

// EncodeLegacy forwards to Encode with an allocating (ALLOC) request, so
// the output buffer is always allocated; callers pass no flags.
func (d *Dispatcher) EncodeLegacy(encodingType types.EncodingType, structID types.StructID, value any) (out []byte, err error) {
	out, _, err = d.Encode(encodingType, structID, outbuf.Request{Alloc: true}, value)
	return out, err
}

// DecodeLegacy forwards to Decode with default (copying) decode flags.
func (d *Dispatcher) DecodeLegacy(encodingType types.EncodingType, structID types.StructID, data []byte) (value any, err error) {
	value, _, err = d.Decode(encodingType, structID, outbuf.DecodeRequest{}, data)
	return value, err
}

func (d *Dispatcher) lookupDescriptor(encodingType types.EncodingType, funcName provider.FuncKind, structID types.StructID) (provider.Descriptor, error) {
	if d.store == nil {
		return provider.Descriptor{}, fmt.Errorf("%w: no provider store configured for %s", errs.ErrFileNotFound, structID)
	}

	key := provider.Key{EncodingType: encodingType, FuncName: funcName, StructID: structID}

	desc, ok := d.store.Lookup(key)
	if !ok {
		return provider.Descriptor{}, fmt.Errorf("%w: no codec registered for %s", errs.ErrFileNotFound, structID)
	}

	if d.loader == nil {
		return provider.Descriptor{}, fmt.Errorf("%w: provider module %q registered but no loader configured", errs.ErrFileNotFound, desc.ModulePath)
	}

	return desc, nil
}

func (d *Dispatcher) resolveEncoder(encodingType types.EncodingType, structID types.StructID) (codecfunc.Encoder, error) {
	desc, err := d.lookupDescriptor(encodingType, provider.FuncEncoder, structID)
	if err != nil {
		return nil, err
	}

	sym, err := d.loader.Resolve(desc, string(provider.FuncEncoder))
	if err != nil {
		return nil, err
	}

	fn, ok := sym.(func(outbuf.Request, any) ([]byte, int, error))
	if !ok {
		return nil, fmt.Errorf("%w: provider module %q symbol has wrong signature", errs.ErrInternal, desc.ModulePath)
	}

	return codecfunc.Encoder(fn), nil
}

func (d *Dispatcher) resolveDecoder(encodingType types.EncodingType, structID types.StructID) (codecfunc.Decoder, error) {
	desc, err := d.lookupDescriptor(encodingType, provider.FuncDecoder, structID)
	if err != nil {
		return nil, err
	}

	sym, err := d.loader.Resolve(desc, string(provider.FuncDecoder))
	if err != nil {
		return nil, err
	}

	fn, ok := sym.(func(outbuf.DecodeRequest, []byte) (any, int, error))
	if !ok {
		return nil, fmt.Errorf("%w: provider module %q symbol has wrong signature", errs.ErrInternal, desc.ModulePath)
	}

	return codecfunc.Decoder(fn), nil
}
