package section

import (
	"encoding/binary"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
)

// Header is the fixed-size header at the start of every snapshot.
type Header struct {
	// N is the series length the word summarizes, 0 when unknown.
	N uint32 // byte offset 4-7
	// Count is the number of payload items.
	Count uint32 // byte offset 12-15
	// Checksum is the xxhash64 of the payload before compression.
	Checksum uint64 // byte offset 16-23
	// W is the word length.
	W uint16 // byte offset 8-9
	// C is the cardinality.
	C uint8 // byte offset 10

	Flag Flag // byte offset 0-3
}

// NewHeader creates a header for kind with a default flag.
func NewHeader(kind format.PayloadKind) *Header {
	return &Header{Flag: NewFlag(kind)}
}

// Parse reads the header from exactly HeaderSize bytes and validates its
// flag.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.N = engine.Uint32(data[4:8])
	h.W = engine.Uint16(data[8:10])
	h.C = data[10]
	if data[11] != 0 {
		return errs.ErrInvalidPayload
	}
	h.Count = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.EncodingType, h.Flag.CompressionType)
	dst = engine.AppendUint32(dst, h.N)
	dst = engine.AppendUint16(dst, h.W)
	dst = append(dst, h.C, 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader parses the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
