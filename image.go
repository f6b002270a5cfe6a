package pixops

import (
	"image"

	"golang.org/x/image/draw"
)

// FromNRGBA returns a 4-channel alpha buffer sharing img's pixels.
// img must not be empty.
func FromNRGBA(img *image.NRGBA) *Buffer {
	r := img.Rect
	return &Buffer{
		Pix:       img.Pix[img.PixOffset(r.Min.X, r.Min.Y):],
		Width:     r.Dx(),
		Height:    r.Dy(),
		Rowstride: img.Stride,
		Channels:  4,
		HasAlpha:  true,
	}
}

// FromImage converts img into a new buffer anchored at (0, 0).
// Non-NRGBA images are copied through x/image/draw's Copy.
//
// Images that report themselves opaque become 3-channel RGB buffers;
// everything else becomes straight-alpha RGBA. An *image.NRGBA is shared,
// not copied.
func FromImage(img image.Image) *Buffer {
	if n, ok := img.(*image.NRGBA); ok {
		return FromNRGBA(n)
	}

	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(n, image.Point{}, img, b, draw.Src, nil)

	if o, ok := img.(interface{ Opaque() bool }); !ok || !o.Opaque() {
		return FromNRGBA(n)
	}

	rgb := &Buffer{
		Pix:       make([]byte, 3*b.Dx()*b.Dy()),
		Width:     b.Dx(),
		Height:    b.Dy(),
		Rowstride: 3 * b.Dx(),
		Channels:  3,
	}
	for y := 0; y < rgb.Height; y++ {
		s := n.Pix[y*n.Stride:]
		d := rgb.Pix[y*rgb.Rowstride:]
		for x := 0; x < rgb.Width; x++ {
			copy(d[3*x:3*x+3], s[4*x:4*x+3])
		}
	}
	return rgb
}

// NRGBA copies b into a new image. Buffers without alpha become opaque.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		s := b.Pix[y*b.Rowstride:]
		d := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			p := s[x*b.Channels:]
			q := d[4*x : 4*x+4]
			q[0], q[1], q[2] = p[0], p[1], p[2]
			if b.HasAlpha {
				q[3] = p[3]
			} else {
				q[3] = 0xff
			}
		}
	}
	return img
}
