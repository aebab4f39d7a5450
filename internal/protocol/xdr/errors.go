package xdr

import "errors"

// ============================================================================
// Error Taxonomy
// ============================================================================
//
// Decode failures are per-call, recoverable conditions: the dispatch layer
// above this codec turns them into protocol-level error replies. Encode
// failures are caller precondition violations and surface immediately rather
// than silently truncating data.
//
// Composite and union codecs annotate these sentinels with the failing
// type and field name via fmt.Errorf("%s.%s: %w", ...), so callers match
// with errors.Is.

var (
	// ErrTruncated reports that the input ended before the value it was
	// supposed to contain. Removing even a single byte from a valid
	// encoding produces this error.
	ErrTruncated = errors.New("xdr: truncated input")

	// ErrInvalidValue reports a decoded value outside its declared range:
	// a boolean that is neither 0 nor 1, an enum outside its value set, or
	// a variable-length item whose length prefix exceeds the configured
	// maximum.
	ErrInvalidValue = errors.New("xdr: invalid value")

	// ErrUnknownDiscriminant reports a result-union status value that is
	// not a member of the union's declared status set, so neither branch
	// schema applies.
	ErrUnknownDiscriminant = errors.New("xdr: unknown union discriminant")

	// ErrMalformed reports structurally invalid input that is not merely
	// short: non-zero padding bytes when strict padding is enabled.
	ErrMalformed = errors.New("xdr: malformed input")

	// ErrValueOutOfRange reports an encode-side precondition violation:
	// a value that does not fit its declared bound, such as an oversized
	// opaque field, a fixed-size field of the wrong length, an enum value
	// outside its set, or a union status with no matching branch.
	ErrValueOutOfRange = errors.New("xdr: value out of range")
)
