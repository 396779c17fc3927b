package dispatch

import (
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/arloliu/asn1der/provider"
	"github.com/arloliu/asn1der/types"
)

// defaultDispatcher is the package-level Dispatcher the root asn1der
// package's Encode/Decode wrappers use. Its Store starts as an empty
// MemStore; external providers are registered against it through
// DefaultStore, or a separate Dispatcher can be built via NewDispatcher.
var defaultDispatcher = NewDispatcher(provider.NewMemStore(), provider.NewModuleLoader())

// DefaultStore returns the provider.Store backing the package-level
// Encode/Decode functions, so callers can Register providers against it
// without constructing their own Dispatcher.
func DefaultStore() provider.Store {
	return defaultDispatcher.store
}

// Encode dispatches through the package-level default Dispatcher.
func Encode(encodingType types.EncodingType, structID types.StructID, req outbuf.Request, value any) ([]byte, int, error) {
	return defaultDispatcher.Encode(encodingType, structID, req, value)
}

// Decode dispatches through the package-level default Dispatcher.
func Decode(encodingType types.EncodingType, structID types.StructID, req outbuf.DecodeRequest, data []byte) (any, int, error) {
	return defaultDispatcher.Decode(encodingType, structID, req, data)
}

// EncodeLegacy dispatches through the package-level default Dispatcher,
// forwarding to Encode without an alloc/flags parameter.
func EncodeLegacy(encodingType types.EncodingType, structID types.StructID, value any) ([]byte, error) {
	return defaultDispatcher.EncodeLegacy(encodingType, structID, value)
}

// DecodeLegacy dispatches through the package-level default Dispatcher.
func DecodeLegacy(encodingType types.EncodingType, structID types.StructID, data []byte) (any, error) {
	return defaultDispatcher.DecodeLegacy(encodingType, structID, data)
}
