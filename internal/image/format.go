// Package image describes the packed pixel layouts accepted by pixops and
// reads and writes them as image files.
package image

// Format represents a packed 8-bit-per-channel pixel layout.
type Format uint8

const (
	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8 Format = iota

	// FormatRGBA8 is 32-bit RGBA with straight (non-premultiplied) alpha.
	FormatRGBA8

	// FormatRGBX8 is 32-bit RGB with one padding byte per pixel.
	// The padding byte is ignored on read and never written.
	FormatRGBX8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the last byte of a pixel is alpha.
	HasAlpha bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGB8:  {BytesPerPixel: 3, HasAlpha: false},
	FormatRGBA8: {BytesPerPixel: 4, HasAlpha: true},
	FormatRGBX8: {BytesPerPixel: 4, HasAlpha: false},
}

// FormatFor returns the format with the given channel count and alpha flag.
// ok is false for combinations pixops does not accept: channel counts other
// than 3 or 4, and alpha on a 3-channel layout.
func FormatFor(channels int, hasAlpha bool) (f Format, ok bool) {
	switch {
	case channels == 3 && !hasAlpha:
		return FormatRGB8, true
	case channels == 4 && hasAlpha:
		return FormatRGBA8, true
	case channels == 4:
		return FormatRGBX8, true
	default:
		return 0, false
	}
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBX8:
		return "RGBX8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes returns the minimum length of a buffer of the given size and
// stride: every row but the last spans stride bytes, the last only its pixels.
func (f Format) ImageBytes(width, height, stride int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return stride*(height-1) + f.RowBytes(width)
}
