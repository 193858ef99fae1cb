package gstile

import "errors"

// Error kinds (spec §7). These are sentinel values: callers match them
// with errors.Is, and wrapped context is added with fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidArgument covers min_length <= 0, a mark-length mismatch, or
	// negative similarity_precision.
	ErrInvalidArgument = errors.New("gstile: invalid argument")

	// ErrOverflow signals a token sequence longer than the implementation's
	// index type supports.
	ErrOverflow = errors.New("gstile: sequence length overflow")

	// ErrResourceExhaustion signals an allocation failure while preparing a
	// single comparison. The driver aborts that comparison and continues
	// with the rest of the batch (spec §7 "Propagation").
	ErrResourceExhaustion = errors.New("gstile: resource exhausted")
)

// EmptyInput is not an error (spec §7): callers that hit it get an empty
// TileSet or an empty result iterator, not an error value.
