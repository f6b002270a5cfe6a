package pixops

import "errors"

// Errors returned by the public entry points. They describe contract
// violations by the caller; details are wrapped with fmt.Errorf, so test
// with errors.Is.
var (
	// ErrInvalidArgument is returned for scale factors outside (0, MaxScale],
	// reductions whose filter table would be too large, an empty or
	// out-of-range render rectangle, zero source dimensions, a non-positive
	// check size or a placement outside the destination.
	ErrInvalidArgument = errors.New("pixops: invalid argument")

	// ErrUnsupportedFormat is returned for channel counts other than 3 or 4,
	// alpha on a 3-channel buffer, or scaling a source with alpha into a
	// destination without alpha.
	ErrUnsupportedFormat = errors.New("pixops: unsupported format")

	// ErrBufferTooSmall is returned when a buffer's rowstride, dimensions or
	// pixel slice cannot hold the declared geometry.
	ErrBufferTooSmall = errors.New("pixops: buffer too small")
)
