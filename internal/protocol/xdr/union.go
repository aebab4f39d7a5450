package xdr

import (
	"bytes"
	"fmt"
	"reflect"
)

// ============================================================================
// XDR Discriminated Result Unions
// ============================================================================
//
// NFSv3 results are discriminated unions over a status code: a leading
// uint32 selects either the "resok" arm (status equals the success value) or
// a single shared "resfail" arm (every other declared status). This matches
// how the protocol models failures: one fail shape for all non-zero codes,
// not a distinct arm per code.
//
// Per RFC 4506 Section 4.15 (Discriminated Unions):
// The discriminant is always encoded as a uint32 before the arm data.

// UnionConfig declares a result union over a Go struct with a status field
// and one pointer field per arm.
type UnionConfig struct {
	// StatusField, OkField and FailField are the wire names of the
	// discriminant and the two arm fields. They default to "status",
	// "resok" and "resfail".
	StatusField string
	OkField     string
	FailField   string

	// OkStatus is the discriminant value selecting the ok arm.
	OkStatus uint32

	// Statuses is the full declared status set, including OkStatus.
	// A decoded discriminant outside this set fails with
	// ErrUnknownDiscriminant; an encoded one fails with
	// ErrValueOutOfRange.
	Statuses *EnumSet

	// Ok and Fail are the arm schemas. They may reference the same schema
	// when the protocol gives both arms the same shape (NFSv3 GETATTR).
	Ok   *Schema
	Fail *Schema
}

// UnionSchema encodes and decodes one discriminated result type.
// Like Schema, it is built once at initialization and immutable afterwards.
type UnionSchema struct {
	name      string
	goType    reflect.Type
	okStatus  uint32
	statuses  *EnumSet
	ok, fail  *Schema
	statusIdx int
	okIdx     int
	failIdx   int
}

// NewUnion builds and validates a result-union schema for the struct type
// of prototype. The status field must be a uint32 kind; the arm fields must
// be pointers to the arm schemas' struct types.
func NewUnion(name string, prototype any, cfg UnionConfig) (*UnionSchema, error) {
	goType := reflect.TypeOf(prototype)
	if goType == nil || goType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("union %s: prototype must be a struct, got %T", name, prototype)
	}
	if cfg.Ok == nil || cfg.Fail == nil {
		return nil, fmt.Errorf("union %s: both arm schemas are required", name)
	}
	if cfg.Statuses == nil {
		return nil, fmt.Errorf("union %s: a declared status set is required", name)
	}
	if !cfg.Statuses.Contains(cfg.OkStatus) {
		return nil, fmt.Errorf("union %s: success status %d is not in the declared set", name, cfg.OkStatus)
	}

	statusField := cfg.StatusField
	if statusField == "" {
		statusField = "status"
	}
	okField := cfg.OkField
	if okField == "" {
		okField = "resok"
	}
	failField := cfg.FailField
	if failField == "" {
		failField = "resfail"
	}

	u := &UnionSchema{
		name:     name,
		goType:   goType,
		okStatus: cfg.OkStatus,
		statuses: cfg.Statuses,
		ok:       cfg.Ok,
		fail:     cfg.Fail,
	}

	var err error
	if u.statusIdx, err = resolveField(goType, statusField); err != nil {
		return nil, fmt.Errorf("union %s: %w", name, err)
	}
	if goType.Field(u.statusIdx).Type.Kind() != reflect.Uint32 {
		return nil, fmt.Errorf("union %s: status field %s must have uint32 kind", name, statusField)
	}
	if u.okIdx, err = resolveArm(goType, okField, cfg.Ok); err != nil {
		return nil, fmt.Errorf("union %s: %w", name, err)
	}
	if u.failIdx, err = resolveArm(goType, failField, cfg.Fail); err != nil {
		return nil, fmt.Errorf("union %s: %w", name, err)
	}

	return u, nil
}

// MustUnion is like NewUnion but panics on error. Intended for package init
// blocks.
func MustUnion(name string, prototype any, cfg UnionConfig) *UnionSchema {
	u, err := NewUnion(name, prototype, cfg)
	if err != nil {
		panic(err)
	}
	return u
}

func resolveArm(goType reflect.Type, wireName string, arm *Schema) (int, error) {
	idx, err := resolveField(goType, wireName)
	if err != nil {
		return 0, err
	}
	ft := goType.Field(idx).Type
	if ft.Kind() != reflect.Ptr || ft.Elem() != arm.goType {
		return 0, fmt.Errorf("arm field %s must be *%s, got %s", wireName, arm.goType, ft)
	}
	return idx, nil
}

// Name returns the declared wire type name.
func (u *UnionSchema) Name() string {
	return u.name
}

// GoType returns the Go struct type this union encodes.
func (u *UnionSchema) GoType() reflect.Type {
	return u.goType
}

// OkStatus returns the discriminant value selecting the ok arm.
func (u *UnionSchema) OkStatus() uint32 {
	return u.okStatus
}

// Arms returns the ok and fail arm schemas.
func (u *UnionSchema) Arms() (ok, fail *Schema) {
	return u.ok, u.fail
}

// Encode appends the discriminant and the selected arm to buf. The arm
// matching the status must be populated: encoding a success status with a
// nil ok arm (or a declared failure status with a nil fail arm) fails with
// ErrValueOutOfRange, as does a status outside the declared set.
func (u *UnionSchema) Encode(buf *bytes.Buffer, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return fmt.Errorf("union %s: encode value is a nil pointer", u.name)
		}
		rv = rv.Elem()
	}
	if rv.Type() != u.goType {
		return fmt.Errorf("union %s: encode value must be %s, got %T", u.name, u.goType, v)
	}
	return u.encodeValue(buf, rv)
}

func (u *UnionSchema) encodeValue(buf *bytes.Buffer, rv reflect.Value) error {
	status := uint32(rv.Field(u.statusIdx).Uint())
	if !u.statuses.Contains(status) {
		return fmt.Errorf("%s: status %d outside declared set %s: %w",
			u.name, status, u.statuses.Name(), ErrValueOutOfRange)
	}
	if err := WriteUint32(buf, status); err != nil {
		return fmt.Errorf("%s: write discriminant: %w", u.name, err)
	}

	arm, armIdx, armName := u.fail, u.failIdx, "resfail"
	if status == u.okStatus {
		arm, armIdx, armName = u.ok, u.okIdx, "resok"
	}
	av := rv.Field(armIdx)
	if av.IsNil() {
		return fmt.Errorf("%s: status %d selects %s arm but it is nil: %w",
			u.name, status, armName, ErrValueOutOfRange)
	}
	if err := arm.encodeValue(buf, av.Elem()); err != nil {
		return fmt.Errorf("%s.%s: %w", u.name, armName, err)
	}
	return nil
}

// Decode reads the discriminant and the selected arm from c into v, which
// must be a non-nil pointer to the union's Go struct type. The unselected
// arm is left nil. On failure nothing is written to v.
func (u *UnionSchema) Decode(c *Cursor, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Type() != u.goType {
		return fmt.Errorf("union %s: decode target must be non-nil *%s, got %T", u.name, u.goType, v)
	}

	scratch := reflect.New(u.goType).Elem()
	if err := u.decodeValue(c, scratch); err != nil {
		return err
	}
	rv.Elem().Set(scratch)
	return nil
}

func (u *UnionSchema) decodeValue(c *Cursor, rv reflect.Value) error {
	status, err := c.Uint32()
	if err != nil {
		return fmt.Errorf("%s: read discriminant: %w", u.name, err)
	}
	if !u.statuses.Contains(status) {
		return fmt.Errorf("%s: status %d: %w", u.name, status, ErrUnknownDiscriminant)
	}
	rv.Field(u.statusIdx).SetUint(uint64(status))

	arm, armIdx, armName := u.fail, u.failIdx, "resfail"
	if status == u.okStatus {
		arm, armIdx, armName = u.ok, u.okIdx, "resok"
	}
	av := reflect.New(arm.goType)
	if err := arm.decodeValue(c, av.Elem()); err != nil {
		return fmt.Errorf("%s.%s: %w", u.name, armName, err)
	}
	rv.Field(armIdx).Set(av)
	return nil
}
