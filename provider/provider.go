// Package provider implements the codec engine's external provider
// registry: a lookup from a logical key to the module that should handle
// encoding or decoding for a structure identifier the built-in dispatch
// table does not recognize.
package provider

import (
	"fmt"
	"sync"

	"github.com/arloliu/asn1der/errs"
	"github.com/arloliu/asn1der/types"
)

// FuncKind names which of an encode/decode pair (legacy or current) a
// Key addresses.
type FuncKind string

const (
	FuncEncoder       FuncKind = "encoder"
	FuncDecoder       FuncKind = "decoder"
	FuncEncoderLegacy FuncKind = "encoder_legacy"
	FuncDecoderLegacy FuncKind = "decoder_legacy"
)

// Key is the logical registry key: an encoding-type mask, which function
// a call is resolving, and the structure identifier it targets.
type Key struct {
	EncodingType types.EncodingType
	FuncName     FuncKind
	StructID     types.StructID
}

// String renders k in the registry's textual key format: the encoding
// type as a decimal mask, the function name, and the structure
// identifier's own String() form ("#NNNN" or a bare OID).
func (k Key) String() string {
	return fmt.Sprintf("%d/%s/%s", k.EncodingType, k.FuncName, k.StructID)
}

// Descriptor is what a registry entry stores: the module path a loader
// resolves to an opaque handle, plus an optional override for the
// exported function name inside that module (the registry key's
// FuncName is used when ModuleFunc is empty).
type Descriptor struct {
	ModulePath string
	ModuleFunc string
}

// Store is the external provider registry surface: register and
// unregister descriptors, and look them up by key. GetValue/SetValue
// additionally let a caller stash or retrieve an arbitrary associated
// value (a loaded handle, a cache entry) keyed by the same Key.
type Store interface {
	Register(key Key, desc Descriptor) error
	Unregister(key Key) error
	Lookup(key Key) (Descriptor, bool)
	GetValue(key Key) (any, bool)
	SetValue(key Key, value any) error
}

// MemStore is the in-process reference Store implementation: a
// mutex-guarded map, safe for concurrent Register/Lookup calls from
// multiple dispatch goroutines.
type MemStore struct {
	mu     sync.RWMutex
	descs  map[Key]Descriptor
	values map[Key]any
}

// NewMemStore creates an empty in-memory provider registry.
func NewMemStore() *MemStore {
	return &MemStore{
		descs:  make(map[Key]Descriptor),
		values: make(map[Key]any),
	}
}

// Register adds or replaces the descriptor for key.
func (s *MemStore) Register(key Key, desc Descriptor) error {
	if desc.ModulePath == "" {
		return fmt.Errorf("%w: provider descriptor needs a module path", errs.ErrInvalidParameter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.descs[key] = desc

	return nil
}

// Unregister removes key's descriptor and any associated value. It is not
// an error to unregister a key that was never registered.
func (s *MemStore) Unregister(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.descs, key)
	delete(s.values, key)

	return nil
}

// Lookup returns key's descriptor, if one is registered.
func (s *MemStore) Lookup(key Key) (Descriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.descs[key]

	return d, ok
}

// GetValue returns the value associated with key, if any was set via
// SetValue.
func (s *MemStore) GetValue(key Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]

	return v, ok
}

// SetValue associates value with key, replacing any prior value.
func (s *MemStore) SetValue(key Key, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

// DumpEntry pairs a registered Key with its Descriptor, the shape
// provider/filestore persists one registry row as.
type DumpEntry struct {
	Key        Key
	Descriptor Descriptor
}

// Dump returns every registered descriptor, for provider/filestore to
// snapshot to disk.
func (s *MemStore) Dump() []DumpEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DumpEntry, 0, len(s.descs))
	for k, d := range s.descs {
		out = append(out, DumpEntry{Key: k, Descriptor: d})
	}

	return out
}

var _ Store = (*MemStore)(nil)
