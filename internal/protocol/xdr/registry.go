package xdr

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/marmos91/nfswire/internal/logger"
)

// ============================================================================
// Schema Registry
// ============================================================================
//
// The registry maps wire type names and Go struct types to their codecs.
// It is populated during package init (the type library's init block) and
// read-only afterwards, which is what makes Marshal and Unmarshal safe for
// unsynchronized concurrent use.

// Codec is the common surface of Schema and UnionSchema: one registered
// wire type with its encode/decode pair.
type Codec interface {
	// Name returns the registered wire type name (e.g. "fattr3").
	Name() string
	// GoType returns the Go struct type the codec operates on.
	GoType() reflect.Type
	// Encode appends the XDR encoding of v to buf.
	Encode(buf *bytes.Buffer, v any) error
	// Decode reads one value from c into v (a non-nil struct pointer).
	Decode(c *Cursor, v any) error
}

var registry = struct {
	mu     sync.RWMutex
	byName map[string]Codec
	byType map[reflect.Type]Codec
}{
	byName: make(map[string]Codec),
	byType: make(map[reflect.Type]Codec),
}

// Register adds a codec to the process-wide registry. Registering the same
// type name or the same Go type twice is an error: schemas are the wire
// contract and must be declared exactly once.
func Register(c Codec) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, dup := registry.byName[c.Name()]; dup {
		return fmt.Errorf("xdr: type name %q already registered", c.Name())
	}
	if prev, dup := registry.byType[c.GoType()]; dup {
		return fmt.Errorf("xdr: Go type %s already registered as %q", c.GoType(), prev.Name())
	}
	registry.byName[c.Name()] = c
	registry.byType[c.GoType()] = c
	return nil
}

// MustRegister is like Register but panics on error. Intended for package
// init blocks, where a duplicate registration is a programming error.
func MustRegister(c Codec) {
	if err := Register(c); err != nil {
		panic(err)
	}
}

// Lookup returns the codec registered for a wire type name.
func Lookup(name string) (Codec, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	c, ok := registry.byName[name]
	return c, ok
}

// Registered returns all registered codecs sorted by type name, for
// inspection (schema dumps, the CLI's schemas command).
func Registered() []Codec {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]Codec, 0, len(registry.byName))
	for _, c := range registry.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// lookupType finds the codec for a Go struct type.
func lookupType(t reflect.Type) (Codec, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	c, ok := registry.byType[t]
	if !ok {
		return nil, fmt.Errorf("xdr: no schema registered for Go type %s", t)
	}
	return c, nil
}

// Marshal encodes a registered value into a fresh byte slice.
//
// v may be the registered struct type or a pointer to it. The returned
// slice is exclusively owned by the caller; its length is always a multiple
// of 4 and encoding the same value twice yields identical bytes.
func Marshal(v any) ([]byte, error) {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	c, err := lookupType(t)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, v); err != nil {
		codecMetrics().observeEncode(c.Name(), err)
		return nil, err
	}
	codecMetrics().observeEncode(c.Name(), nil)

	logger.Debug("Encoded XDR value", "type", c.Name(), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Unmarshal decodes data into v, a non-nil pointer to a registered struct
// type.
//
// The input slice is borrowed, never retained: every variable-length field
// is copied out, so v remains valid after the caller reuses data. Options
// control the mandatory variable-length bound and the padding policy.
// Trailing bytes after the decoded value are not an error; RPC message
// bodies routinely carry further items.
func Unmarshal(data []byte, v any, opts ...Option) error {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Ptr {
		return fmt.Errorf("xdr: unmarshal target must be a non-nil struct pointer, got %T", v)
	}
	c, err := lookupType(t.Elem())
	if err != nil {
		return err
	}

	cursor := NewCursor(data, opts...)
	if err := c.Decode(cursor, v); err != nil {
		codecMetrics().observeDecode(c.Name(), err)
		return err
	}
	codecMetrics().observeDecode(c.Name(), nil)

	logger.Debug("Decoded XDR value", "type", c.Name(), "bytes", cursor.Offset())
	return nil
}

// UnmarshalByName decodes data as the named wire type and returns a pointer
// to the freshly allocated value. Used when the type is selected at runtime
// (the CLI decoding a capture by procedure name).
func UnmarshalByName(name string, data []byte, opts ...Option) (any, error) {
	c, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("xdr: no schema registered for type name %q", name)
	}
	v := reflect.New(c.GoType()).Interface()
	if err := Unmarshal(data, v, opts...); err != nil {
		return nil, err
	}
	return v, nil
}
