package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Symbols computes the xxHash64 fingerprint of a word's cardinality followed
// by its symbols. Word length is implied by len(symbols).
func Symbols(c uint8, symbols []uint8) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{c})
	_, _ = d.Write(symbols)

	return d.Sum64()
}
