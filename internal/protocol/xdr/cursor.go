package xdr

import (
	"encoding/binary"
	"fmt"
)

// ============================================================================
// XDR Decoding Primitives - Wire Format → Go Values
// ============================================================================

// DefaultMaxVarLen is the default upper bound for a single variable-length
// item. NFS does not carry opaque fields larger than 1 MiB in the structures
// this codec handles; anything bigger is a corrupt or adversarial length
// prefix, not data.
const DefaultMaxVarLen = 1024 * 1024

// Cursor reads typed XDR values from a borrowed byte slice.
//
// A Cursor never takes ownership of the input: it holds a non-owning view
// plus a read position, and every variable-length read copies the bytes out.
// Decoded values therefore outlive the input buffer safely, and the caller
// may reuse or discard the slice after decoding.
//
// Every read checks the remaining input first and fails with ErrTruncated
// if the slice is too short, making short-input failures deterministic
// rather than dependent on io.EOF translation.
//
// A Cursor is single-use, per-call state. It is not safe for concurrent use,
// but distinct cursors over distinct (or even shared, since reads never
// mutate the input) slices are.
type Cursor struct {
	data      []byte
	off       int
	maxVarLen uint32
	strict    bool
}

// Option adjusts decode behavior.
type Option func(*Cursor)

// WithMaxVarLen overrides the maximum accepted length of a single
// variable-length item. The bound is mandatory: passing 0 keeps
// DefaultMaxVarLen rather than disabling the check.
func WithMaxVarLen(n uint32) Option {
	return func(c *Cursor) {
		if n > 0 {
			c.maxVarLen = n
		}
	}
}

// WithStrictPadding makes the cursor reject non-zero padding bytes with
// ErrMalformed. RFC 4506 mandates zero padding, but some real-world peers
// emit garbage there, so the default is to skip padding without inspecting
// it. See the package tests for both policies.
func WithStrictPadding() Option {
	return func(c *Cursor) {
		c.strict = true
	}
}

// NewCursor returns a cursor over data positioned at offset 0.
func NewCursor(data []byte, opts ...Option) *Cursor {
	c := &Cursor{
		data:      data,
		maxVarLen: DefaultMaxVarLen,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Offset reports the current read position in bytes.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining reports how many unread bytes are left.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// need verifies n more bytes are available.
func (c *Cursor) need(n int) error {
	if c.Remaining() < n {
		return fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, c.off, c.Remaining(), ErrTruncated)
	}
	return nil
}

// Uint32 reads a big-endian 32-bit unsigned integer (RFC 4506 Section 4.1).
func (c *Cursor) Uint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, fmt.Errorf("read uint32: %w", err)
	}
	v := binary.BigEndian.Uint32(c.data[c.off:])
	c.off += 4
	return v, nil
}

// Uint64 reads a big-endian 64-bit unsigned integer (RFC 4506 Section 4.5).
func (c *Cursor) Uint64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, fmt.Errorf("read uint64: %w", err)
	}
	v := binary.BigEndian.Uint64(c.data[c.off:])
	c.off += 8
	return v, nil
}

// Int32 reads a big-endian 32-bit signed integer (RFC 4506 Section 4.1).
func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()
	if err != nil {
		return 0, fmt.Errorf("read int32: %w", err)
	}
	return int32(v), nil
}

// Int64 reads a big-endian 64-bit signed integer (RFC 4506 Section 4.5).
func (c *Cursor) Int64() (int64, error) {
	v, err := c.Uint64()
	if err != nil {
		return 0, fmt.Errorf("read int64: %w", err)
	}
	return int64(v), nil
}

// Bool reads an XDR boolean (RFC 4506 Section 4.4).
//
// Only 0 and 1 are valid encodings; any other value fails with
// ErrInvalidValue rather than being coerced to true.
func (c *Cursor) Bool() (bool, error) {
	v, err := c.Uint32()
	if err != nil {
		return false, fmt.Errorf("read bool: %w", err)
	}
	if v > 1 {
		return false, fmt.Errorf("bool value %d: %w", v, ErrInvalidValue)
	}
	return v == 1, nil
}

// Enum reads an enumerated value (RFC 4506 Section 4.3) and checks it
// against the declared member set. Out-of-set values fail with
// ErrInvalidValue.
func (c *Cursor) Enum(set *EnumSet) (uint32, error) {
	v, err := c.Uint32()
	if err != nil {
		return 0, fmt.Errorf("read enum %s: %w", set.Name(), err)
	}
	if !set.Contains(v) {
		return 0, fmt.Errorf("enum %s: value %d: %w", set.Name(), v, ErrInvalidValue)
	}
	return v, nil
}

// Opaque reads variable-length opaque data (RFC 4506 Section 4.10):
// a 4-byte length prefix, the data, then padding to a 4-byte boundary.
//
// The returned slice is a copy; it does not alias the input.
//
// maxLen is the per-item declared bound (0 means only the cursor-wide
// maximum applies). A length prefix above the effective bound fails with
// ErrInvalidValue; a length the remaining input cannot satisfy fails with
// ErrTruncated.
func (c *Cursor) Opaque(maxLen uint32) ([]byte, error) {
	length, err := c.Uint32()
	if err != nil {
		return nil, fmt.Errorf("read opaque length: %w", err)
	}

	bound := c.maxVarLen
	if maxLen > 0 && maxLen < bound {
		bound = maxLen
	}
	if length > bound {
		return nil, fmt.Errorf("opaque length %d exceeds bound %d: %w", length, bound, ErrInvalidValue)
	}
	if err := c.need(int(length)); err != nil {
		return nil, fmt.Errorf("read opaque data: %w", err)
	}

	data := make([]byte, length)
	copy(data, c.data[c.off:])
	c.off += int(length)

	if err := c.skipPadding(length); err != nil {
		return nil, fmt.Errorf("opaque padding: %w", err)
	}
	return data, nil
}

// FixedOpaque reads fixed-length opaque data (RFC 4506 Section 4.9):
// exactly size bytes, then padding to a 4-byte boundary. No length prefix
// is present on the wire; the size comes from the schema.
//
// The returned slice is a copy; it does not alias the input.
func (c *Cursor) FixedOpaque(size uint32) ([]byte, error) {
	if err := c.need(int(size)); err != nil {
		return nil, fmt.Errorf("read fixed opaque: %w", err)
	}

	data := make([]byte, size)
	copy(data, c.data[c.off:])
	c.off += int(size)

	if err := c.skipPadding(size); err != nil {
		return nil, fmt.Errorf("fixed opaque padding: %w", err)
	}
	return data, nil
}

// String reads an XDR string (RFC 4506 Section 4.11). Same wire layout as
// Opaque; the bytes are interpreted as UTF-8 without validation, matching
// NFSv3's treatment of names as uninterpreted octets.
func (c *Cursor) String(maxLen uint32) (string, error) {
	data, err := c.Opaque(maxLen)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// skipPadding consumes the 0-3 padding bytes that follow dataLen bytes of
// variable-length data. In strict mode non-zero padding fails with
// ErrMalformed; otherwise padding content is ignored.
func (c *Cursor) skipPadding(dataLen uint32) error {
	padding := int((4 - (dataLen % 4)) % 4)
	if padding == 0 {
		return nil
	}
	if err := c.need(padding); err != nil {
		return err
	}
	if c.strict {
		for i := 0; i < padding; i++ {
			if c.data[c.off+i] != 0 {
				return fmt.Errorf("non-zero padding byte 0x%02x at offset %d: %w",
					c.data[c.off+i], c.off+i, ErrMalformed)
			}
		}
	}
	c.off += padding
	return nil
}
