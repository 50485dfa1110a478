package envi

import (
	"errors"

	"github.com/jhyttinen/go-envi/internal/dtype"
)

// Error kinds reported by the codec. Every failure wraps one of these and
// surfaces immediately; nothing is retried or silently defaulted.
var (
	// ErrParse reports a header grammar violation: missing ENVI magic,
	// missing "=", an unterminated quote or list, or a field the static
	// type table cannot coerce.
	ErrParse = errors.New("malformed ENVI header")

	// ErrMissingDataFile reports that no raw companion file could be
	// located next to the header.
	ErrMissingDataFile = errors.New("no raw data file found")

	// ErrUnknownFormat reports an unrecognized data-type, byte-order, or
	// interleave value.
	ErrUnknownFormat = dtype.ErrUnknownFormat

	// ErrSizeMismatch reports a raw buffer shorter than the header
	// geometry implies.
	ErrSizeMismatch = errors.New("raw data shorter than geometry implies")

	// ErrUnsupportedDType reports an element type for which an operation
	// has no defined policy.
	ErrUnsupportedDType = errors.New("unsupported element type")

	// ErrUnsupportedValue reports a header value an operation cannot
	// accept: a non-positive or overflowing geometry dimension, or a
	// value shape the serializer cannot render.
	ErrUnsupportedValue = errors.New("unsupported header value")
)
