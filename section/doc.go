// Package section defines the fixed 24-byte header shared by word and window
// snapshots.
//
// The first two bytes carry a magic number that identifies the snapshot kind
// and version together with the byte order of everything that follows:
//
//	0xEC10  word snapshot v1
//	0xED10  window snapshot v1
//
// Bit 1 selects big-endian. The header records the word shape (n, w, c), the
// number of payload items, the value encoding and compression of the payload,
// and an xxhash64 checksum of the payload before compression.
package section
