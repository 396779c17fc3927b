// Package filestore persists a provider.Store's descriptors to a single
// JSON snapshot on disk, optionally compressed, so a process's registered
// providers survive a restart without re-running every Register call.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arloliu/asn1der/compress"
	"github.com/arloliu/asn1der/format"
	"github.com/arloliu/asn1der/provider"
	"github.com/arloliu/asn1der/types"
)

// entry is the on-disk shape of one registry row. provider.Key embeds a
// types.StructID union that doesn't round-trip through JSON field names
// directly, so it is flattened here instead of embedding provider.Key.
type entry struct {
	EncodingType uint32            `json:"encoding_type"`
	FuncName     provider.FuncKind `json:"func_name"`
	StructKind   uint8             `json:"struct_kind"`
	StructNum    uint32            `json:"struct_num,omitempty"`
	StructOID    string            `json:"struct_oid,omitempty"`
	ModulePath   string            `json:"module_path"`
	ModuleFunc   string            `json:"module_func,omitempty"`
}

// Store persists provider.Key/Descriptor rows to a single file at path.
type Store struct {
	path        string
	compression format.CompressionType
}

// New creates a filestore bound to path, compressing snapshots with
// compression (format.CompressionNone disables compression).
func New(path string, compression format.CompressionType) *Store {
	return &Store{path: path, compression: compression}
}

// Save writes entries to the filestore's path as a single compressed JSON
// snapshot, overwriting any existing file.
func (s *Store) Save(entries []provider.DumpEntry) error {
	rows := make([]entry, 0, len(entries))
	for _, e := range entries {
		row := entry{
			EncodingType: uint32(e.Key.EncodingType),
			FuncName:     e.Key.FuncName,
			ModulePath:   e.Descriptor.ModulePath,
			ModuleFunc:   e.Descriptor.ModuleFunc,
		}

		if e.Key.StructID.Kind == types.StructKindNumeric {
			row.StructNum = e.Key.StructID.Num
		} else {
			row.StructKind = 1
			row.StructOID = e.Key.StructID.OID
		}

		rows = append(rows, row)
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("filestore: marshaling snapshot: %w", err)
	}

	codec, err := compress.CreateCodec(s.compression, "filestore snapshot")
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("filestore: compressing snapshot: %w", err)
	}

	return os.WriteFile(s.path, compressed, 0o600)
}

// Load reads the filestore's snapshot and replays every descriptor into
// store via Register.
func (s *Store) Load(store provider.Store) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("filestore: reading snapshot: %w", err)
	}

	codec, err := compress.CreateCodec(s.compression, "filestore snapshot")
	if err != nil {
		return err
	}

	decompressed, err := codec.Decompress(raw)
	if err != nil {
		return fmt.Errorf("filestore: decompressing snapshot: %w", err)
	}

	var rows []entry
	if err := json.Unmarshal(decompressed, &rows); err != nil {
		return fmt.Errorf("filestore: unmarshaling snapshot: %w", err)
	}

	for _, row := range rows {
		key := provider.Key{
			EncodingType: types.EncodingType(row.EncodingType),
			FuncName:     row.FuncName,
		}

		if row.StructKind == 0 {
			key.StructID = types.NumericStructID(row.StructNum)
		} else {
			key.StructID = types.OIDStructID(row.StructOID)
		}

		desc := provider.Descriptor{ModulePath: row.ModulePath, ModuleFunc: row.ModuleFunc}

		if err := store.Register(key, desc); err != nil {
			return fmt.Errorf("filestore: replaying %s: %w", key, err)
		}
	}

	return nil
}
