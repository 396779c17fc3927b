// Package endian provides the byte order engine used for DER's multi-byte
// length octets.
//
// This package combines encoding/binary's ByteOrder and AppendByteOrder
// interfaces into a single EndianEngine interface.
//
// DER length and tag octets are always big-endian, regardless of host or
// caller endianness; package der uses GetBigEndianEngine() for its
// multi-byte length construction and parsing:
//
//	import "github.com/arloliu/asn1der/endian"
//
//	engine := endian.GetBigEndianEngine()
//	engine.PutUint32(buf, n)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, satisfied by binary.BigEndian and
// binary.LittleEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
