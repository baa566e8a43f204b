package format

type (
	EncodingType    uint8
	CompressionType uint8
	PayloadKind     uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores IEEE 754 values as-is.
	TypeGorilla EncodingType = 0x3 // TypeGorilla represents Gorilla XOR encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindWord   PayloadKind = 0x1 // KindWord is a snapshot of a single word.
	KindWindow PayloadKind = 0x2 // KindWindow is a snapshot of a sliding window.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (k PayloadKind) String() string {
	switch k {
	case KindWord:
		return "Word"
	case KindWindow:
		return "Window"
	default:
		return "Unknown"
	}
}
