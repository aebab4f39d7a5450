// Package types provides NFSv3 protocol types, constants, and wire schemas.
//
// NFS version 3 (RFC 1813) transmits its procedure arguments and results in
// XDR (RFC 4506). This package declares the closed set of structures the
// codec handles - file attributes, lookup, access checks, filesystem info,
// and path configuration - together with one wire schema per structure.
//
// The schemas are the wire contract: each is an ordered field table
// registered once at package initialization and consumed generically by the
// xdr package's composite and result-union codecs. Field order matches the
// RFC 1813 declarations bit-for-bit; reordering a schema silently breaks
// interoperability, so schemas are never modified after registration.
//
// References:
//   - RFC 1813 - NFS Version 3 Protocol Specification
//   - RFC 4506 - XDR: External Data Representation Standard
package types
