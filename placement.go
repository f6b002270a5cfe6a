package pixops

import (
	"fmt"
	"image"
	"math"
)

// Placement positions a scaled source inside a destination buffer.
//
// The source is scaled by (ScaleX, ScaleY) and its origin placed at
// (OffsetX, OffsetY) in destination coordinates, rounded to whole pixels.
// Only Rect is updated; it must lie inside the destination.
type Placement struct {
	Rect    image.Rectangle
	OffsetX float64
	OffsetY float64
	ScaleX  float64
	ScaleY  float64
}

// Fit returns the placement that stretches a srcW x srcH source over the
// whole of a dstW x dstH destination.
func Fit(srcW, srcH, dstW, dstH int) Placement {
	return Placement{
		Rect:   image.Rect(0, 0, dstW, dstH),
		ScaleX: float64(dstW) / float64(srcW),
		ScaleY: float64(dstH) / float64(srcH),
	}
}

// renderRect returns Rect in the scaled image's coordinates.
func (p Placement) renderRect() image.Rectangle {
	off := image.Pt(int(math.Floor(p.OffsetX+0.5)), int(math.Floor(p.OffsetY+0.5)))
	return p.Rect.Sub(off)
}

// target returns the view of dst that Rect selects.
func (p Placement) target(dst *Buffer) (*Buffer, error) {
	if dst == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	if p.Rect.Empty() || !p.Rect.In(dst.Bounds()) {
		return nil, fmt.Errorf("%w: placement %v outside destination %v", ErrInvalidArgument, p.Rect, dst.Bounds())
	}
	return dst.Sub(p.Rect), nil
}

// ScaleOnto scales src into the area of dst selected by p, overwriting it.
func ScaleOnto(dst, src *Buffer, p Placement, interp InterpType) error {
	view, err := p.target(dst)
	if err != nil {
		return err
	}
	return Scale(view, p.renderRect(), src, p.ScaleX, p.ScaleY, interp)
}

// CompositeOnto scales src and blends it over the area of dst selected by p.
func CompositeOnto(dst, src *Buffer, p Placement, interp InterpType, overallAlpha uint8) error {
	view, err := p.target(dst)
	if err != nil {
		return err
	}
	return Composite(view, p.renderRect(), src, p.ScaleX, p.ScaleY, interp, overallAlpha)
}

// CompositeColorOnto scales src and blends it over a checkerboard in the
// area of dst selected by p. The checkerboard phase is relative to p.Rect.Min.
func CompositeColorOnto(dst, src *Buffer, p Placement, interp InterpType, overallAlpha uint8, check Checkerboard) error {
	view, err := p.target(dst)
	if err != nil {
		return err
	}
	return CompositeColor(view, p.renderRect(), src, p.ScaleX, p.ScaleY, interp, overallAlpha, check)
}

// ScaleSimple returns a new width x height buffer, in src's layout, holding
// src stretched to that size.
func ScaleSimple(src *Buffer, width, height int, interp InterpType) (*Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	dst, err := NewBuffer(width, height, src.Channels, src.HasAlpha)
	if err != nil {
		return nil, err
	}
	if err := ScaleOnto(dst, src, Fit(src.Width, src.Height, width, height), interp); err != nil {
		return nil, err
	}
	return dst, nil
}

// CompositeColorSimple returns a new width x height buffer, in src's
// layout, holding src stretched to that size over a checkerboard of
// checkSize cells anchored at the buffer origin.
func CompositeColorSimple(src *Buffer, width, height int, interp InterpType, overallAlpha uint8,
	checkSize int, color1, color2 uint32) (*Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	dst, err := NewBuffer(width, height, src.Channels, src.HasAlpha)
	if err != nil {
		return nil, err
	}
	check := Checkerboard{Size: checkSize, Color1: color1, Color2: color2}
	if err := CompositeColorOnto(dst, src, Fit(src.Width, src.Height, width, height), interp, overallAlpha, check); err != nil {
		return nil, err
	}
	return dst, nil
}
