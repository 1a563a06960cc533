package culture

import "errors"

var (
	// ErrUnsupportedCulture is returned when a culture code is malformed
	// or names a culture with no supported resources, even after base
	// language fallback.
	ErrUnsupportedCulture = errors.New("unsupported culture")

	// ErrMalformedResource is returned when an embedded trigger resource
	// fails to parse or one of its patterns fails to compile.
	ErrMalformedResource = errors.New("malformed culture resource")
)
