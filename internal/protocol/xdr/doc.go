// Package xdr implements schema-driven XDR (External Data Representation)
// encoding and decoding per RFC 4506.
//
// XDR is the standard data serialization format used by Sun RPC protocols
// including NFS. Instead of hand-writing one encode/decode pair per protocol
// structure, this package encodes and decodes arbitrary structures from an
// explicit, inspectable Schema: an ordered table of (wire name, field kind)
// entries declared once at initialization. The schema order is the wire
// contract; the in-memory layout of the Go struct never influences the byte
// layout.
//
// Key characteristics of XDR:
//   - Big-endian byte order for all multi-byte integers
//   - 4-byte alignment for all data types
//   - Variable-length data is preceded by a 4-byte length
//   - Strings and opaque data are zero-padded to 4-byte boundaries
//
// The package is organized in three layers:
//   - Primitives: Write* helpers appending to a bytes.Buffer, and a Cursor
//     that reads typed values from a borrowed byte slice with mandatory
//     length bounds (encode.go, cursor.go).
//   - Schema engine: Schema (ordered field tables walked generically via
//     reflection resolved at registration time) and UnionSchema
//     (status-discriminated ok/fail result variants) (schema.go, codec.go,
//     union.go).
//   - Registry: process-wide table mapping type names and Go types to their
//     schemas, populated during init and immutable afterwards (registry.go).
//
// All codec paths are purely computational: no I/O, no blocking, no shared
// mutable state after registration. Encode and decode are safe for
// concurrent use.
//
// Reference: RFC 4506 - XDR: External Data Representation Standard
// https://tools.ietf.org/html/rfc4506
package xdr
