package pixops

import (
	"fmt"
	"image"

	intImage "github.com/gogpu/pixops/internal/image"
)

// Buffer describes a caller-owned rectangle of packed 8-bit pixels.
//
// Channel c of pixel (x, y) lives at Pix[y*Rowstride + x*Channels + c].
// Channels is 3 (RGB) or 4. With HasAlpha the fourth byte is straight
// alpha; a 4-channel buffer without alpha is RGBX and its fourth byte is
// padding that pixops neither reads nor writes.
//
// The engine never allocates, resizes or retains a Buffer. Sources are only
// read, so one source may be shared by concurrent calls; a destination
// must not be used by two calls at once.
type Buffer struct {
	Pix       []byte
	Width     int
	Height    int
	Rowstride int
	Channels  int
	HasAlpha  bool
}

// NewBuffer allocates a zeroed buffer with a tightly packed rowstride.
func NewBuffer(width, height, channels int, hasAlpha bool) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: buffer size %dx%d", ErrInvalidArgument, width, height)
	}
	format, ok := intImage.FormatFor(channels, hasAlpha)
	if !ok {
		return nil, unsupportedLayout(channels, hasAlpha)
	}
	stride := format.RowBytes(width)
	return &Buffer{
		Pix:       make([]byte, stride*height),
		Width:     width,
		Height:    height,
		Rowstride: stride,
		Channels:  channels,
		HasAlpha:  hasAlpha,
	}, nil
}

// Bounds returns the buffer's rectangle, anchored at (0, 0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Rowstride + x*b.Channels
}

// Sub returns a view of the part of b inside r, sharing b's pixels.
// The view's (0, 0) is r.Min. An empty intersection yields a zero-sized
// buffer.
func (b *Buffer) Sub(r image.Rectangle) *Buffer {
	r = r.Intersect(b.Bounds())
	sub := &Buffer{
		Rowstride: b.Rowstride,
		Channels:  b.Channels,
		HasAlpha:  b.HasAlpha,
	}
	if r.Empty() {
		return sub
	}
	sub.Width = r.Dx()
	sub.Height = r.Dy()
	sub.Pix = b.Pix[b.PixOffset(r.Min.X, r.Min.Y):]
	return sub
}

// Clone returns a copy of b with its own pixel memory and the same
// rowstride.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Pix = append([]byte(nil), b.Pix...)
	return &c
}

// format resolves the buffer's pixel layout.
func (b *Buffer) format() (intImage.Format, error) {
	f, ok := intImage.FormatFor(b.Channels, b.HasAlpha)
	if !ok {
		return 0, unsupportedLayout(b.Channels, b.HasAlpha)
	}
	return f, nil
}

// checkGeometry verifies that b can hold width x height pixels.
func (b *Buffer) checkGeometry(role string, width, height int) error {
	f, err := b.format()
	if err != nil {
		return fmt.Errorf("%s: %w", role, err)
	}
	if b.Rowstride < f.RowBytes(width) {
		return fmt.Errorf("%w: %s rowstride %d < %d", ErrBufferTooSmall, role, b.Rowstride, f.RowBytes(width))
	}
	if b.Width < width || b.Height < height {
		return fmt.Errorf("%w: %s is %dx%d, need %dx%d", ErrBufferTooSmall, role, b.Width, b.Height, width, height)
	}
	if need := f.ImageBytes(width, height, b.Rowstride); len(b.Pix) < need {
		return fmt.Errorf("%w: %s has %d bytes, need %d", ErrBufferTooSmall, role, len(b.Pix), need)
	}
	return nil
}

func unsupportedLayout(channels int, hasAlpha bool) error {
	return fmt.Errorf("%w: %d channels (alpha=%t)", ErrUnsupportedFormat, channels, hasAlpha)
}
