// Package compress provides compression and decompression codecs for
// provider registry snapshots written by provider/filestore.
//
// # Overview
//
// A filestore snapshot is a single JSON document holding every registered
// provider descriptor. It is written rarely (on Register/Unregister) and
// read once per process at startup, so the selection criteria here favor
// compression ratio and simplicity over raw throughput.
//
// Four algorithms are supported:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Selecting an algorithm
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "filestore snapshot")
//	compressed, err := codec.Compress(snapshotJSON)
//	...
//	original, err := codec.Decompress(compressed)
//
// Zstd is the right default for filestore: snapshots are JSON text (which
// compresses well) and are read infrequently enough that Zstd's slower
// compression time never matters. S2 or LZ4 are reasonable alternatives
// when a deployment writes a snapshot on every Register call and wants to
// keep that path cheap. None exists mainly for tests and for environments
// where the snapshot is already small.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress
