// Package endian provides byte order utilities for binary encoding and decoding.
//
// The .vec container format is little-endian on every platform, so this
// package exposes a single engine backed by binary.LittleEndian. The
// interface form combines ByteOrder and AppendByteOrder from encoding/binary
// so header codecs can both read fields in place and append them to buffers
// without referencing a concrete byte order.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for byte order operations.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// keeping it fully compatible with existing Go code.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the .vec
// archive format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
