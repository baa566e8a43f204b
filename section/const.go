package section

const (
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicWordV1Opt   = 0xEC10 // MagicWordV1Opt marks a version 1 word snapshot.
	MagicWindowV1Opt = 0xED10 // MagicWindowV1Opt marks a version 1 window snapshot.
)

// HeaderSize is the fixed size of a snapshot header in bytes.
//
// Layout (multi-byte fields use the byte order selected by the endianness
// bit, except Options which is always little-endian so the bit can be read):
//
//	0-1   Options: magic number and endianness bit
//	2     value encoding (window snapshots)
//	3     payload compression
//	4-7   series length n
//	8-9   word length w
//	10    cardinality c
//	11    reserved, zero
//	12-15 payload item count: symbols for a word, resident samples for a window
//	16-23 xxhash64 of the uncompressed payload
const HeaderSize = 24
