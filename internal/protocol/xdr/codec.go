package xdr

import (
	"bytes"
	"fmt"
	"reflect"
)

// ============================================================================
// Composite Structure Codec
// ============================================================================
//
// The walk visits fields in schema order and dispatches each one to the
// matching primitive or, for nested structures, recurses into the nested
// schema at the current buffer/cursor position. Schema order alone
// determines the byte layout.

// Encode appends the XDR encoding of v to buf. v must be the schema's Go
// struct type or a pointer to it.
func (s *Schema) Encode(buf *bytes.Buffer, v any) error {
	rv, err := s.structValue(v)
	if err != nil {
		return err
	}
	return s.encodeValue(buf, rv)
}

// Decode reads one value from c into v, which must be a non-nil pointer to
// the schema's Go struct type.
//
// On failure nothing is written to v: fields are assembled in a scratch
// value and copied out only after every field has decoded, so a caller
// never observes a partially built structure.
func (s *Schema) Decode(c *Cursor, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Type() != s.goType {
		return fmt.Errorf("schema %s: decode target must be non-nil *%s, got %T", s.name, s.goType, v)
	}

	scratch := reflect.New(s.goType).Elem()
	if err := s.decodeValue(c, scratch); err != nil {
		return err
	}
	rv.Elem().Set(scratch)
	return nil
}

// structValue unwraps v into the schema's struct value.
func (s *Schema) structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("schema %s: encode value is a nil pointer", s.name)
		}
		rv = rv.Elem()
	}
	if rv.Type() != s.goType {
		return reflect.Value{}, fmt.Errorf("schema %s: encode value must be %s, got %T", s.name, s.goType, v)
	}
	return rv, nil
}

// encodeValue walks the schema over an already-unwrapped struct value.
func (s *Schema) encodeValue(buf *bytes.Buffer, rv reflect.Value) error {
	for i := range s.fields {
		f := &s.fields[i]
		if err := encodeField(buf, f, rv.Field(s.index[i])); err != nil {
			return fmt.Errorf("%s.%s: %w", s.name, f.Name, err)
		}
	}
	return nil
}

// decodeValue walks the schema over an addressable struct value. Any field
// failure aborts immediately; the caller discards the partial scratch value.
func (s *Schema) decodeValue(c *Cursor, rv reflect.Value) error {
	for i := range s.fields {
		f := &s.fields[i]
		if err := decodeField(c, f, rv.Field(s.index[i])); err != nil {
			return fmt.Errorf("%s.%s: %w", s.name, f.Name, err)
		}
	}
	return nil
}

func encodeField(buf *bytes.Buffer, f *Field, fv reflect.Value) error {
	switch f.Kind {
	case KindUint32:
		return WriteUint32(buf, uint32(fv.Uint()))
	case KindEnum:
		return WriteEnum(buf, uint32(fv.Uint()), f.Enum)
	case KindUint64:
		return WriteUint64(buf, fv.Uint())
	case KindInt32:
		return WriteInt32(buf, int32(fv.Int()))
	case KindInt64:
		return WriteInt64(buf, fv.Int())
	case KindBool:
		return WriteBool(buf, fv.Bool())
	case KindOpaque:
		return WriteOpaque(buf, fv.Bytes(), f.MaxLen)
	case KindFixedOpaque:
		return WriteFixedOpaque(buf, fv.Bytes(), f.Size)
	case KindString:
		return WriteString(buf, fv.String(), f.MaxLen)
	case KindStruct:
		return f.Elem.encodeValue(buf, fv)
	case KindOptional:
		// RFC 4506 Section 4.19: optional-data is a bool arm followed by
		// the payload when present. nil pointer = absent.
		if fv.IsNil() {
			return WriteBool(buf, false)
		}
		if err := WriteBool(buf, true); err != nil {
			return err
		}
		return f.Elem.encodeValue(buf, fv.Elem())
	default:
		return fmt.Errorf("unknown field kind %v", f.Kind)
	}
}

func decodeField(c *Cursor, f *Field, fv reflect.Value) error {
	switch f.Kind {
	case KindUint32:
		v, err := c.Uint32()
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case KindEnum:
		v, err := c.Enum(f.Enum)
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case KindUint64:
		v, err := c.Uint64()
		if err != nil {
			return err
		}
		fv.SetUint(v)
	case KindInt32:
		v, err := c.Int32()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case KindInt64:
		v, err := c.Int64()
		if err != nil {
			return err
		}
		fv.SetInt(v)
	case KindBool:
		v, err := c.Bool()
		if err != nil {
			return err
		}
		fv.SetBool(v)
	case KindOpaque:
		v, err := c.Opaque(f.MaxLen)
		if err != nil {
			return err
		}
		fv.SetBytes(v)
	case KindFixedOpaque:
		v, err := c.FixedOpaque(f.Size)
		if err != nil {
			return err
		}
		fv.SetBytes(v)
	case KindString:
		v, err := c.String(f.MaxLen)
		if err != nil {
			return err
		}
		fv.SetString(v)
	case KindStruct:
		return f.Elem.decodeValue(c, fv)
	case KindOptional:
		present, err := c.Bool()
		if err != nil {
			return err
		}
		if !present {
			fv.SetZero()
			return nil
		}
		elem := reflect.New(f.Elem.goType)
		if err := f.Elem.decodeValue(c, elem.Elem()); err != nil {
			return err
		}
		fv.Set(elem)
	default:
		return fmt.Errorf("unknown field kind %v", f.Kind)
	}
	return nil
}
