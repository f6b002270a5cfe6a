package pixops

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/pixops/internal/blend"
	"github.com/gogpu/pixops/internal/filter"
)

// Checkerboard describes the synthetic background of CompositeColor.
//
// Destination pixel (dx, dy), relative to the destination buffer, lies in
// cell floor((dx+X)/Size) + floor((dy+Y)/Size). Even cells show Color1,
// odd cells Color2. Colours are packed 0xRRGGBB.
type Checkerboard struct {
	X, Y   int
	Size   int
	Color1 uint32
	Color2 uint32
}

// Scale renders the part of src scaled by (scaleX, scaleY) that falls
// inside render, overwriting dst.
//
// The scaled image's origin is render-plane (0, 0); dst's pixel (0, 0)
// receives render-plane pixel render.Min, so dst must be at least
// render.Dx() x render.Dy(). Nothing outside that area of dst is written.
// Source reads beyond the edge replicate the nearest edge pixel.
//
// A source with alpha can only be scaled into a destination with alpha;
// otherwise ErrUnsupportedFormat is returned.
//
// Scale factors must lie in (0, MaxScale]. Filtered reductions are further
// limited by the size of their weight table; factors beyond either bound,
// or a render rectangle too far out for 16.16 source positions, return
// ErrInvalidArgument. The same limits apply to Composite and CompositeColor.
func Scale(dst *Buffer, render image.Rectangle, src *Buffer, scaleX, scaleY float64, interp InterpType) error {
	j, err := newJob(dst, render, src, scaleX, scaleY, interp)
	if err != nil {
		return err
	}
	if src.HasAlpha && !dst.HasAlpha {
		return fmt.Errorf("%w: source alpha cannot be scaled into a destination without alpha", ErrUnsupportedFormat)
	}
	return scale(j)
}

// Composite renders like Scale but blends the result over the existing
// destination pixels with the straight-alpha over operator.
//
// The effective alpha of each filtered pixel is its own alpha (255 for
// sources without alpha) times overallAlpha/255. A destination with alpha
// receives the composited alpha. Pixels where the effective alpha is zero
// are left untouched, so overallAlpha == 0 never modifies dst.
func Composite(dst *Buffer, render image.Rectangle, src *Buffer, scaleX, scaleY float64, interp InterpType, overallAlpha uint8) error {
	j, err := newJob(dst, render, src, scaleX, scaleY, interp)
	if err != nil {
		return err
	}
	switch {
	case overallAlpha == 0:
		Logger().Debug("pixops: composite with zero alpha skipped")
		return nil
	case overallAlpha == 0xff && !src.HasAlpha:
		return scale(j)
	}
	store := blend.Over{DstAlpha: dst.HasAlpha}
	return run(j, overallAlpha, func(int) blend.Over { return store })
}

// CompositeColor renders like Composite, but blends over the checkerboard
// described by check instead of over the destination's content, which is
// never read. The colour channels of every pixel in the render area are
// overwritten and a destination alpha channel is set to opaque.
func CompositeColor(dst *Buffer, render image.Rectangle, src *Buffer, scaleX, scaleY float64, interp InterpType,
	overallAlpha uint8, check Checkerboard) error {
	j, err := newJob(dst, render, src, scaleX, scaleY, interp)
	if err != nil {
		return err
	}
	if check.Size <= 0 {
		return fmt.Errorf("%w: check size %d", ErrInvalidArgument, check.Size)
	}
	checker := blend.Checker{
		X:      check.X,
		Y:      check.Y,
		Size:   check.Size,
		Color1: check.Color1,
		Color2: check.Color2,
	}
	return run(j, overallAlpha, func(dy int) blend.CheckerRow {
		return checker.Row(dy, dst.HasAlpha)
	})
}

func scale(j *job) error {
	store := blend.Scale{DstAlpha: j.dst.HasAlpha}
	return run(j, 0xff, func(int) blend.Scale { return store })
}

// job is one validated call.
type job struct {
	dst    *Buffer
	render image.Rectangle
	src    *Buffer
	scaleX float64
	scaleY float64
	interp InterpType
}

func newJob(dst *Buffer, render image.Rectangle, src *Buffer, scaleX, scaleY float64, interp InterpType) (*job, error) {
	if dst == nil || src == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	if !interp.IsValid() {
		return nil, fmt.Errorf("%w: interpolation type %d", ErrInvalidArgument, interp)
	}
	if !validScale(scaleX) || !validScale(scaleY) {
		return nil, fmt.Errorf("%w: scale factors %gx%g", ErrInvalidArgument, scaleX, scaleY)
	}
	if render.Empty() {
		return nil, fmt.Errorf("%w: empty render rectangle %v", ErrInvalidArgument, render)
	}
	if !fixedRange(render.Min.X, render.Max.X, scaleX) || !fixedRange(render.Min.Y, render.Max.Y, scaleY) {
		return nil, fmt.Errorf("%w: render rectangle %v at scale %gx%g exceeds fixed-point range",
			ErrInvalidArgument, render, scaleX, scaleY)
	}
	if src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("%w: source size %dx%d", ErrInvalidArgument, src.Width, src.Height)
	}
	if err := src.checkGeometry("source", src.Width, src.Height); err != nil {
		return nil, err
	}
	if err := dst.checkGeometry("destination", render.Dx(), render.Dy()); err != nil {
		return nil, err
	}

	// At unit scale every sample lands on a pixel centre and all filters
	// reduce to a copy.
	if scaleX == 1 && scaleY == 1 && interp != InterpNearest {
		Logger().Debug("pixops: unit scale, using nearest", "requested", interp)
		interp = InterpNearest
	}
	if interp != InterpNearest {
		if err := filter.Check(interp.kind(), scaleX, scaleY); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}

	return &job{
		dst:    dst,
		render: render,
		src:    src,
		scaleX: scaleX,
		scaleY: scaleY,
		interp: interp,
	}, nil
}

// MaxScale is the largest accepted scale factor: one source pixel spans
// at most 65536 destination pixels, the finest step of the 16.16 source
// coordinates.
const MaxScale = filter.One

func validScale(s float64) bool {
	return s > 0 && s <= MaxScale
}

// fixedRange reports whether the 16.16 source positions of render
// coordinates lo..hi at scale s fit comfortably in an int64.
func fixedRange(lo, hi int, s float64) bool {
	m := math.Max(math.Abs(float64(lo)), math.Abs(float64(hi))) + 1
	return m*(filter.One/s) < 1<<62
}
