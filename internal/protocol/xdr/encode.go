package xdr

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ============================================================================
// XDR Encoding Primitives - Go Values → Wire Format
// ============================================================================
//
// All helpers append to a caller-owned bytes.Buffer. The buffer is built by
// a single encode call and never shared, so writes cannot observe partial
// state from another goroutine.

// WriteUint32 encodes a 32-bit unsigned integer in XDR format.
//
// Per RFC 4506 Section 4.1 (Integer):
// Unsigned 32-bit integers are encoded in big-endian byte order. The value
// is inherently 4-byte aligned, so no padding follows.
func WriteUint32(buf *bytes.Buffer, v uint32) error {
	if err := binary.Write(buf, binary.BigEndian, v); err != nil {
		return fmt.Errorf("write uint32: %w", err)
	}
	return nil
}

// WriteUint64 encodes a 64-bit unsigned integer in XDR format.
//
// Per RFC 4506 Section 4.5 (Hyper Integer):
// Unsigned 64-bit integers are encoded in big-endian byte order.
func WriteUint64(buf *bytes.Buffer, v uint64) error {
	if err := binary.Write(buf, binary.BigEndian, v); err != nil {
		return fmt.Errorf("write uint64: %w", err)
	}
	return nil
}

// WriteInt32 encodes a 32-bit signed integer in XDR format.
//
// Per RFC 4506 Section 4.1 (Integer):
// Signed 32-bit integers are encoded big-endian using two's complement.
func WriteInt32(buf *bytes.Buffer, v int32) error {
	if err := binary.Write(buf, binary.BigEndian, v); err != nil {
		return fmt.Errorf("write int32: %w", err)
	}
	return nil
}

// WriteInt64 encodes a 64-bit signed integer in XDR format.
//
// Per RFC 4506 Section 4.5 (Hyper Integer):
// Signed 64-bit integers are encoded big-endian using two's complement.
func WriteInt64(buf *bytes.Buffer, v int64) error {
	if err := binary.Write(buf, binary.BigEndian, v); err != nil {
		return fmt.Errorf("write int64: %w", err)
	}
	return nil
}

// WriteBool encodes a boolean value in XDR format.
//
// Per RFC 4506 Section 4.4 (Boolean):
// Booleans are encoded as a uint32 where 0 = false, 1 = true.
func WriteBool(buf *bytes.Buffer, v bool) error {
	var val uint32
	if v {
		val = 1
	}
	return WriteUint32(buf, val)
}

// WriteEnum encodes an enumerated value in XDR format.
//
// Per RFC 4506 Section 4.3 (Enumeration):
// Enums are encoded exactly like uint32, but only declared members are
// valid. A value outside the set fails with ErrValueOutOfRange rather than
// producing bytes no conforming peer can decode.
func WriteEnum(buf *bytes.Buffer, v uint32, set *EnumSet) error {
	if !set.Contains(v) {
		return fmt.Errorf("enum %s: value %d: %w", set.Name(), v, ErrValueOutOfRange)
	}
	return WriteUint32(buf, v)
}

// WriteOpaque encodes variable-length opaque data in XDR format.
//
// Per RFC 4506 Section 4.10 (Variable-Length Opaque Data):
// Format: [length:uint32][data:bytes][padding:0-3 zero bytes]
//
// The length prefix counts data bytes only, excluding padding. A zero-length
// value emits exactly the 4-byte length field and nothing else.
//
// maxLen is the declared bound for this item (for example 64 bytes for an
// NFSv3 file handle). A maxLen of 0 means no declared bound. Oversized data
// fails with ErrValueOutOfRange instead of being silently truncated.
//
// Example:
//
//	[]byte{0x01, 0x02, 0x03} → [00 00 00 03][01 02 03][00] (8 bytes total)
func WriteOpaque(buf *bytes.Buffer, data []byte, maxLen uint32) error {
	length := uint32(len(data))
	if maxLen > 0 && length > maxLen {
		return fmt.Errorf("opaque length %d exceeds bound %d: %w", length, maxLen, ErrValueOutOfRange)
	}
	if err := WriteUint32(buf, length); err != nil {
		return fmt.Errorf("write opaque length: %w", err)
	}
	if _, err := buf.Write(data); err != nil {
		return fmt.Errorf("write opaque data: %w", err)
	}
	return WritePadding(buf, length)
}

// WriteFixedOpaque encodes fixed-length opaque data in XDR format.
//
// Per RFC 4506 Section 4.9 (Fixed-Length Opaque Data):
// Format: [data:size bytes][padding:0-3 zero bytes]
//
// No length prefix is emitted; the size is static and known to both peers
// from the schema. The data must be exactly size bytes, otherwise the
// encode fails with ErrValueOutOfRange.
func WriteFixedOpaque(buf *bytes.Buffer, data []byte, size uint32) error {
	if uint32(len(data)) != size {
		return fmt.Errorf("fixed opaque length %d, want %d: %w", len(data), size, ErrValueOutOfRange)
	}
	if _, err := buf.Write(data); err != nil {
		return fmt.Errorf("write fixed opaque data: %w", err)
	}
	return WritePadding(buf, size)
}

// WriteString encodes a string in XDR format.
//
// Per RFC 4506 Section 4.11 (String):
// Identical layout to variable-length opaque data over the string's bytes:
// [length:uint32][data:bytes][padding:0-3 zero bytes]
//
// maxLen behaves as in WriteOpaque (for example 255 bytes for an NFSv3
// filename).
//
// Example:
//
//	"abc" (3 bytes) → [00 00 00 03][61 62 63][00] (8 bytes total)
//	"test" (4 bytes) → [00 00 00 04][74 65 73 74] (8 bytes total)
func WriteString(buf *bytes.Buffer, s string, maxLen uint32) error {
	length := uint32(len(s))
	if maxLen > 0 && length > maxLen {
		return fmt.Errorf("string length %d exceeds bound %d: %w", length, maxLen, ErrValueOutOfRange)
	}
	if err := WriteUint32(buf, length); err != nil {
		return fmt.Errorf("write string length: %w", err)
	}
	if _, err := buf.WriteString(s); err != nil {
		return fmt.Errorf("write string data: %w", err)
	}
	return WritePadding(buf, length)
}

// WritePadding writes zero bytes to align to a 4-byte boundary.
//
// Per RFC 4506 Section 3:
// All XDR items occupy a multiple of 4 bytes. After variable-length data,
// 0-3 zero bytes round the item up to the next boundary.
//
// Padding calculation: (4 - (dataLen % 4)) % 4
func WritePadding(buf *bytes.Buffer, dataLen uint32) error {
	padding := (4 - (dataLen % 4)) % 4
	if padding > 0 {
		var pad [3]byte
		if _, err := buf.Write(pad[:padding]); err != nil {
			return fmt.Errorf("write padding: %w", err)
		}
	}
	return nil
}
