package xdr

import (
	"fmt"
	"reflect"
	"strings"
)

// ============================================================================
// Field Kinds
// ============================================================================

// Kind identifies the wire encoding of a schema field.
type Kind uint8

const (
	// KindUint32 is a big-endian 32-bit unsigned integer.
	KindUint32 Kind = iota + 1
	// KindUint64 is a big-endian 64-bit unsigned integer.
	KindUint64
	// KindInt32 is a big-endian 32-bit two's complement integer.
	KindInt32
	// KindInt64 is a big-endian 64-bit two's complement integer.
	KindInt64
	// KindBool is a uint32 restricted to 0 or 1.
	KindBool
	// KindEnum is a uint32 restricted to a declared member set.
	KindEnum
	// KindOpaque is length-prefixed variable-length opaque data.
	KindOpaque
	// KindFixedOpaque is opaque data of a static size with no length prefix.
	KindFixedOpaque
	// KindString is a length-prefixed byte string.
	KindString
	// KindStruct is a nested structure encoded by its own schema.
	KindStruct
	// KindOptional is a bool-prefixed nested structure (XDR's "*type",
	// RFC 4506 Section 4.19), used for NFSv3's post_op_attr.
	KindOptional
)

// String returns the kind name as used in schema dumps.
func (k Kind) String() string {
	switch k {
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindOpaque:
		return "opaque<>"
	case KindFixedOpaque:
		return "opaque[]"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	case KindOptional:
		return "optional"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ============================================================================
// Enum Sets
// ============================================================================

// EnumSet is the declared member set of an XDR enum. Sets are built at
// initialization and read-only afterwards.
type EnumSet struct {
	name    string
	members map[uint32]struct{}
}

// NewEnumSet builds an enum set from its declared members.
func NewEnumSet(name string, members ...uint32) *EnumSet {
	set := &EnumSet{
		name:    name,
		members: make(map[uint32]struct{}, len(members)),
	}
	for _, m := range members {
		set.members[m] = struct{}{}
	}
	return set
}

// Name returns the declared enum type name.
func (s *EnumSet) Name() string {
	return s.name
}

// Contains reports whether v is a declared member.
func (s *EnumSet) Contains(v uint32) bool {
	_, ok := s.members[v]
	return ok
}

// ============================================================================
// Schemas
// ============================================================================

// Field is one entry of a schema: a wire name, a kind, and the kind's
// parameters. Fields are value types; schemas copy them on construction.
type Field struct {
	// Name is the wire-level field name, matching the protocol definition
	// (e.g. "obj_attributes"). It resolves to a Go struct field via the
	// `xdr` tag, or by case- and underscore-insensitive name match.
	Name string

	// Kind selects the wire encoding.
	Kind Kind

	// Elem is the nested schema for KindStruct and KindOptional fields.
	Elem *Schema

	// Enum is the member set for KindEnum fields.
	Enum *EnumSet

	// MaxLen bounds KindOpaque and KindString lengths (0 = only the
	// decoder-wide maximum applies).
	MaxLen uint32

	// Size is the static byte count of KindFixedOpaque fields.
	Size uint32
}

// Schema is the ordered, immutable field table of one structure type.
//
// The declared field order is the wire contract: two implementations sharing
// the same order interoperate, and the order must never change once
// published, independent of how the Go struct lays out its fields. The
// binding between schema entries and struct fields is resolved once, at
// construction, so the per-call encode/decode walk does no name lookups.
type Schema struct {
	name   string
	goType reflect.Type
	fields []Field
	index  []int
}

// NewSchema builds and validates a schema for the struct type of prototype.
//
// Every declared field must resolve to an exported struct field of a
// compatible Go type; any mismatch is an initialization-time error, never a
// runtime surprise. The returned schema is immutable.
func NewSchema(name string, prototype any, fields ...Field) (*Schema, error) {
	goType := reflect.TypeOf(prototype)
	if goType == nil || goType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema %s: prototype must be a struct, got %T", name, prototype)
	}

	s := &Schema{
		name:   name,
		goType: goType,
		fields: append([]Field(nil), fields...),
		index:  make([]int, len(fields)),
	}

	for i := range s.fields {
		f := &s.fields[i]
		idx, err := resolveField(goType, f.Name)
		if err != nil {
			return nil, fmt.Errorf("schema %s: field %s: %w", name, f.Name, err)
		}
		if err := checkFieldKind(f, goType.Field(idx).Type); err != nil {
			return nil, fmt.Errorf("schema %s: field %s: %w", name, f.Name, err)
		}
		s.index[i] = idx
	}

	return s, nil
}

// MustSchema is like NewSchema but panics on error. Intended for package
// init blocks where a bad schema is a programming error.
func MustSchema(name string, prototype any, fields ...Field) *Schema {
	s, err := NewSchema(name, prototype, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the declared wire type name.
func (s *Schema) Name() string {
	return s.name
}

// GoType returns the Go struct type this schema encodes.
func (s *Schema) GoType() reflect.Type {
	return s.goType
}

// Fields returns a copy of the ordered field table, for inspection.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// resolveField finds the struct field backing a wire name: by `xdr` tag
// first, then by comparing names with case and underscores ignored
// ("obj_attributes" matches ObjAttributes).
func resolveField(goType reflect.Type, wireName string) (int, error) {
	want := normalizeFieldName(wireName)
	for i := 0; i < goType.NumField(); i++ {
		sf := goType.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, ok := sf.Tag.Lookup("xdr"); ok {
			if tag == wireName {
				return i, nil
			}
			continue
		}
		if normalizeFieldName(sf.Name) == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no struct field in %s matches wire name %q", goType, wireName)
}

func normalizeFieldName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// checkFieldKind validates that a schema field's kind is representable by
// the Go type backing it.
func checkFieldKind(f *Field, goType reflect.Type) error {
	switch f.Kind {
	case KindUint32:
		if goType.Kind() != reflect.Uint32 {
			return kindMismatch(f, goType)
		}
	case KindEnum:
		if goType.Kind() != reflect.Uint32 {
			return kindMismatch(f, goType)
		}
		if f.Enum == nil {
			return fmt.Errorf("enum field without a member set")
		}
	case KindUint64:
		if goType.Kind() != reflect.Uint64 {
			return kindMismatch(f, goType)
		}
	case KindInt32:
		if goType.Kind() != reflect.Int32 {
			return kindMismatch(f, goType)
		}
	case KindInt64:
		if goType.Kind() != reflect.Int64 {
			return kindMismatch(f, goType)
		}
	case KindBool:
		if goType.Kind() != reflect.Bool {
			return kindMismatch(f, goType)
		}
	case KindOpaque:
		if goType.Kind() != reflect.Slice || goType.Elem().Kind() != reflect.Uint8 {
			return kindMismatch(f, goType)
		}
	case KindFixedOpaque:
		if goType.Kind() != reflect.Slice || goType.Elem().Kind() != reflect.Uint8 {
			return kindMismatch(f, goType)
		}
		if f.Size == 0 {
			return fmt.Errorf("fixed opaque field without a size")
		}
	case KindString:
		if goType.Kind() != reflect.String {
			return kindMismatch(f, goType)
		}
	case KindStruct:
		if f.Elem == nil {
			return fmt.Errorf("struct field without a nested schema")
		}
		if goType != f.Elem.goType {
			return fmt.Errorf("nested schema %s encodes %s, struct field is %s",
				f.Elem.name, f.Elem.goType, goType)
		}
	case KindOptional:
		if f.Elem == nil {
			return fmt.Errorf("optional field without a nested schema")
		}
		if goType.Kind() != reflect.Ptr || goType.Elem() != f.Elem.goType {
			return fmt.Errorf("optional schema %s requires *%s, struct field is %s",
				f.Elem.name, f.Elem.goType, goType)
		}
	default:
		return fmt.Errorf("unknown field kind %v", f.Kind)
	}
	return nil
}

func kindMismatch(f *Field, goType reflect.Type) error {
	return fmt.Errorf("kind %s not representable by Go type %s", f.Kind, goType)
}
