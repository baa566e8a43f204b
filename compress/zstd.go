package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of
// the built-in codecs and suits window snapshots kept in cold storage.
//
// With cgo enabled the codec is backed by github.com/valyala/gozstd, otherwise
// by the pure Go github.com/klauspost/compress/zstd. Both produce standard
// zstd frames, so either build decodes the other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
