package xdr_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/marmos91/nfswire/internal/protocol/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures: a small wire vocabulary exercising every field kind.

type wirePoint struct {
	X uint32
	Y uint32
}

type wireRecord struct {
	ID      uint32
	Flags   uint32 `xdr:"flag_bits"`
	Mode    uint32
	Seq     int64
	Ready   bool
	Tag     string
	Payload []byte
	Digest  []byte
	Origin  wirePoint
	Extra   *wirePoint
}

var testModeSet = xdr.NewEnumSet("mode", 1, 2, 3)

var pointSchema = xdr.MustSchema("point", wirePoint{},
	xdr.Field{Name: "x", Kind: xdr.KindUint32},
	xdr.Field{Name: "y", Kind: xdr.KindUint32},
)

var recordSchema = xdr.MustSchema("record", wireRecord{},
	xdr.Field{Name: "id", Kind: xdr.KindUint32},
	xdr.Field{Name: "flag_bits", Kind: xdr.KindUint32},
	xdr.Field{Name: "mode", Kind: xdr.KindEnum, Enum: testModeSet},
	xdr.Field{Name: "seq", Kind: xdr.KindInt64},
	xdr.Field{Name: "ready", Kind: xdr.KindBool},
	xdr.Field{Name: "tag", Kind: xdr.KindString, MaxLen: 16},
	xdr.Field{Name: "payload", Kind: xdr.KindOpaque, MaxLen: 64},
	xdr.Field{Name: "digest", Kind: xdr.KindFixedOpaque, Size: 6},
	xdr.Field{Name: "origin", Kind: xdr.KindStruct, Elem: pointSchema},
	xdr.Field{Name: "extra", Kind: xdr.KindOptional, Elem: pointSchema},
)

func sampleRecord() wireRecord {
	return wireRecord{
		ID:      7,
		Flags:   0x80,
		Mode:    2,
		Seq:     -9,
		Ready:   true,
		Tag:     "abc",
		Payload: []byte{1, 2, 3, 4, 5},
		Digest:  []byte{9, 8, 7, 6, 5, 4},
		Origin:  wirePoint{X: 1, Y: 2},
		Extra:   &wirePoint{X: 3, Y: 4},
	}
}

// TestSchema_RoundTrip tests that a value passed through encode and decode
// comes back equal, that the encoding is 4-byte aligned, and that encoding
// is deterministic.
func TestSchema_RoundTrip(t *testing.T) {
	in := sampleRecord()

	var buf bytes.Buffer
	require.NoError(t, recordSchema.Encode(&buf, in))
	assert.Zero(t, buf.Len()%4, "encoding must be a multiple of 4 bytes")

	var again bytes.Buffer
	require.NoError(t, recordSchema.Encode(&again, in))
	assert.Equal(t, buf.Bytes(), again.Bytes(), "encoding must be deterministic")

	var out wireRecord
	require.NoError(t, recordSchema.Decode(xdr.NewCursor(buf.Bytes()), &out))
	assert.Empty(t, cmp.Diff(in, out, cmpopts.EquateEmpty()))
}

// TestSchema_EncodeAcceptsPointer tests that both T and *T encode
// identically.
func TestSchema_EncodeAcceptsPointer(t *testing.T) {
	in := sampleRecord()

	var byValue, byPointer bytes.Buffer
	require.NoError(t, recordSchema.Encode(&byValue, in))
	require.NoError(t, recordSchema.Encode(&byPointer, &in))
	assert.Equal(t, byValue.Bytes(), byPointer.Bytes())
}

// TestSchema_OptionalAbsent tests RFC 4506 Section 4.19 optional-data: a
// nil pointer encodes as a single false boolean and decodes back to nil.
func TestSchema_OptionalAbsent(t *testing.T) {
	in := sampleRecord()
	in.Extra = nil

	var buf bytes.Buffer
	require.NoError(t, recordSchema.Encode(&buf, in))

	var out wireRecord
	require.NoError(t, recordSchema.Decode(xdr.NewCursor(buf.Bytes()), &out))
	assert.Nil(t, out.Extra)

	// The absent arm is 4 bytes shorter than the bool-prefixed 8-byte point.
	withExtra := sampleRecord()
	var full bytes.Buffer
	require.NoError(t, recordSchema.Encode(&full, withExtra))
	assert.Equal(t, full.Len()-8, buf.Len())
}

// TestSchema_DecodeKeepsTargetOnFailure tests the no-partial-decode
// guarantee: a failing decode leaves the destination untouched.
func TestSchema_DecodeKeepsTargetOnFailure(t *testing.T) {
	in := sampleRecord()
	var buf bytes.Buffer
	require.NoError(t, recordSchema.Encode(&buf, in))

	out := wireRecord{ID: 999, Tag: "sentinel"}
	truncated := buf.Bytes()[:buf.Len()-2]

	err := recordSchema.Decode(xdr.NewCursor(truncated), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrTruncated)
	assert.EqualValues(t, 999, out.ID, "failed decode must not modify the target")
	assert.Equal(t, "sentinel", out.Tag)
}

// TestSchema_DecodeTargetValidation tests that only a non-nil pointer of
// the schema's type is accepted as a destination.
func TestSchema_DecodeTargetValidation(t *testing.T) {
	var rec wireRecord
	assert.Error(t, recordSchema.Decode(xdr.NewCursor(nil), rec), "value target")
	assert.Error(t, recordSchema.Decode(xdr.NewCursor(nil), (*wireRecord)(nil)), "nil pointer target")
	assert.Error(t, recordSchema.Decode(xdr.NewCursor(nil), &wirePoint{}), "wrong type target")
}

// TestSchema_ErrorsNameTheField tests that codec errors carry the
// type.field path of the failing field.
func TestSchema_ErrorsNameTheField(t *testing.T) {
	in := sampleRecord()
	in.Tag = "this string is longer than the declared sixteen byte bound"

	var buf bytes.Buffer
	err := recordSchema.Encode(&buf, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrValueOutOfRange)
	assert.ErrorContains(t, err, "record.tag")
}

// TestSchema_EnumValidation tests enum checking on both directions: encode
// refuses values outside the set, decode rejects them on the wire.
func TestSchema_EnumValidation(t *testing.T) {
	in := sampleRecord()
	in.Mode = 99

	var buf bytes.Buffer
	err := recordSchema.Encode(&buf, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrValueOutOfRange)

	buf.Reset()
	good := sampleRecord()
	require.NoError(t, recordSchema.Encode(&buf, good))

	// Corrupt the mode field on the wire (third uint32).
	wire := buf.Bytes()
	wire[11] = 0x63

	var out wireRecord
	err = recordSchema.Decode(xdr.NewCursor(wire), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
	assert.ErrorContains(t, err, "record.mode")
}

// TestSchema_FixedOpaqueSize tests that fixed opaque fields enforce their
// static size at encode time.
func TestSchema_FixedOpaqueSize(t *testing.T) {
	in := sampleRecord()
	in.Digest = []byte{1, 2, 3}

	var buf bytes.Buffer
	err := recordSchema.Encode(&buf, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrValueOutOfRange)
	assert.ErrorContains(t, err, "record.digest")
}

// TestNewSchema_Validation tests that schema construction rejects field
// tables that do not match the Go struct.
func TestNewSchema_Validation(t *testing.T) {
	tests := []struct {
		name      string
		prototype any
		field     xdr.Field
		wantErr   string
	}{
		{
			name:      "unknown wire name",
			prototype: wirePoint{},
			field:     xdr.Field{Name: "z", Kind: xdr.KindUint32},
			wantErr:   "no struct field",
		},
		{
			name:      "kind mismatch",
			prototype: wirePoint{},
			field:     xdr.Field{Name: "x", Kind: xdr.KindString},
			wantErr:   "not representable",
		},
		{
			name:      "enum without member set",
			prototype: wirePoint{},
			field:     xdr.Field{Name: "x", Kind: xdr.KindEnum},
			wantErr:   "without a member set",
		},
		{
			name:      "struct without nested schema",
			prototype: wireRecord{},
			field:     xdr.Field{Name: "origin", Kind: xdr.KindStruct},
			wantErr:   "without a nested schema",
		},
		{
			name:      "optional requires a pointer field",
			prototype: wireRecord{},
			field:     xdr.Field{Name: "origin", Kind: xdr.KindOptional, Elem: pointSchema},
			wantErr:   "requires *",
		},
		{
			name:      "fixed opaque without size",
			prototype: wireRecord{},
			field:     xdr.Field{Name: "digest", Kind: xdr.KindFixedOpaque},
			wantErr:   "without a size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := xdr.NewSchema("bad", tt.prototype, tt.field)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := xdr.NewSchema("bad", 42)
	require.Error(t, err)
	assert.ErrorContains(t, err, "must be a struct")
}

// TestNewSchema_TagOverridesName tests that an `xdr` tag binds the wire
// name exactly and removes the field from name matching.
func TestNewSchema_TagOverridesName(t *testing.T) {
	// Flags carries `xdr:"flag_bits"`, so the Go name must not resolve.
	_, err := xdr.NewSchema("bad", wireRecord{},
		xdr.Field{Name: "flags", Kind: xdr.KindUint32},
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no struct field")
}

// TestSchema_Fields tests that the published field table is a copy and
// preserves declaration order.
func TestSchema_Fields(t *testing.T) {
	fields := recordSchema.Fields()
	require.Len(t, fields, 10)
	assert.Equal(t, "id", fields[0].Name)
	assert.Equal(t, "extra", fields[9].Name)

	fields[0].Name = "mutated"
	assert.Equal(t, "id", recordSchema.Fields()[0].Name, "Fields must return a copy")
}
