package compress

// ZstdCompressor provides Zstandard compression, one of the codecs a
// provider/filestore snapshot can be written with.
//
// Zstd favors compression ratio over speed, which fits filestore's access
// pattern: snapshots are JSON text, written rarely and read once at
// startup, so a slower compression pass costs nothing that matters.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
