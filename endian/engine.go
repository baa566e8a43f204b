// Package endian selects the byte order of snapshot payloads.
//
// EndianEngine joins binary.ByteOrder and binary.AppendByteOrder so encoders
// can append directly to their buffers:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
//
// Little-endian is the default for snapshots. The engines are the stateless
// values from encoding/binary and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the byte order of the host.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine writes little-endian.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}
