package pixops

import (
	"math"

	"github.com/gogpu/pixops/internal/blend"
	"github.com/gogpu/pixops/internal/filter"
)

// sampler reads the alpha of a source pixel. The layouts without alpha
// are opaque.
type sampler interface {
	opaque | translucent
	alpha(p []byte) uint32
}

type opaque struct{}

func (opaque) alpha([]byte) uint32 { return 0xff }

type translucent struct{}

func (translucent) alpha(p []byte) uint32 { return uint32(p[3]) }

// storer is a per-pixel store policy.
type storer interface {
	blend.Scale | blend.Over | blend.CheckerRow
	Store(d []byte, dx int, s blend.Sum)
}

// run resamples j.src into j.dst, handing every filtered pixel to the
// store returned by row for its destination row. The filter and source
// layout are chosen here, once per call.
func run[T storer](j *job, overallAlpha uint8, row func(dy int) T) error {
	if j.src.HasAlpha {
		return runWith[translucent](j, overallAlpha, row)
	}
	return runWith[opaque](j, overallAlpha, row)
}

func runWith[S sampler, T storer](j *job, overallAlpha uint8, row func(dy int) T) error {
	var s S
	alpha := float64(overallAlpha) / 0xff

	if j.interp == InterpNearest {
		weight := uint32(math.Floor(filter.One*alpha + 0.5))
		Logger().Debug("pixops: resample",
			"interp", j.interp,
			"render", j.render,
			"scale_x", j.scaleX,
			"scale_y", j.scaleY,
		)
		nearest(s, j, weight, row)
		return nil
	}

	f, err := filter.New(j.interp.kind(), j.scaleX, j.scaleY, alpha)
	if err != nil {
		return err
	}
	Logger().Debug("pixops: resample",
		"interp", j.interp,
		"render", j.render,
		"scale_x", j.scaleX,
		"scale_y", j.scaleY,
		"taps_x", f.X.N,
		"taps_y", f.Y.N,
	)
	filtered(s, j, f, row)
	return nil
}

// nearest copies the source pixel under each destination pixel centre,
// weighted by weight (65536 for an opaque copy).
func nearest[S sampler, T storer](s S, j *job, weight uint32, row func(dy int) T) {
	src, dst := j.src, j.dst
	xStep := int64(filter.One / j.scaleX)
	yStep := int64(filter.One / j.scaleY)

	cols := make([]int, j.render.Dx())
	for dx := range cols {
		x := int64(j.render.Min.X+dx)*xStep + xStep/2
		cols[dx] = clamp(int(x>>filter.ScaleShift), 0, src.Width-1) * src.Channels
	}

	for dy := 0; dy < j.render.Dy(); dy++ {
		y := int64(j.render.Min.Y+dy)*yStep + yStep/2
		sy := clamp(int(y>>filter.ScaleShift), 0, src.Height-1)
		line := src.Pix[sy*src.Rowstride:]
		out := dst.Pix[dy*dst.Rowstride:]
		store := row(dy)

		for dx, off := range cols {
			p := line[off:]
			ta := s.alpha(p) * weight
			store.Store(out[dx*dst.Channels:], dx, blend.Sum{
				R: ta * uint32(p[0]),
				G: ta * uint32(p[1]),
				B: ta * uint32(p[2]),
				A: ta,
			})
		}
	}
}

// filtered applies a weight table to every destination pixel.
//
// Source positions are 16.16 fixed point; the top SubsampleBits of the
// fraction select the weight block. Each row is split into a leading edge,
// an interior run whose taps are all inside the source, and a trailing
// edge. Only the edges clamp.
func filtered[S sampler, T storer](s S, j *job, f *filter.Filter, row func(dy int) T) {
	src, dst := j.src, j.dst
	nx, taps := f.X.N, f.Taps()
	width := j.render.Dx()

	xStep := int64(filter.One / j.scaleX)
	yStep := int64(filter.One / j.scaleY)
	xOffset := int64(math.Floor(f.X.Offset * filter.One))
	yOffset := int64(math.Floor(f.Y.Offset * filter.One))

	lines := make([][]byte, f.Y.N)
	y := int64(j.render.Min.Y)*yStep + yOffset
	for dy := 0; dy < j.render.Dy(); dy++ {
		yStart := int(y >> filter.ScaleShift)
		for i := range lines {
			sy := clamp(yStart+i, 0, src.Height-1)
			lines[i] = src.Pix[sy*src.Rowstride:]
		}
		weights := f.Row(phase(y))
		out := dst.Pix[dy*dst.Rowstride:]
		store := row(dy)

		x := int64(j.render.Min.X)*xStep + xOffset
		dx := 0
		for ; dx < width && x < 0; dx++ {
			block := weights[phase(x)*taps:][:taps]
			sum := accumulateClamped(s, block, nx, lines, int(x>>filter.ScaleShift), src.Width, src.Channels)
			store.Store(out[dx*dst.Channels:], dx, sum)
			x += xStep
		}
		for ; dx < width && int(x>>filter.ScaleShift)+nx <= src.Width; dx++ {
			block := weights[phase(x)*taps:][:taps]
			sum := accumulate(s, block, nx, lines, int(x>>filter.ScaleShift)*src.Channels, src.Channels)
			store.Store(out[dx*dst.Channels:], dx, sum)
			x += xStep
		}
		for ; dx < width; dx++ {
			block := weights[phase(x)*taps:][:taps]
			sum := accumulateClamped(s, block, nx, lines, int(x>>filter.ScaleShift), src.Width, src.Channels)
			store.Store(out[dx*dst.Channels:], dx, sum)
			x += xStep
		}

		y += yStep
	}
}

// phase extracts the sub-pixel phase of a 16.16 coordinate.
func phase(v int64) int {
	return int(v>>(filter.ScaleShift-filter.SubsampleBits)) & filter.SubsampleMask
}

// accumulate sums a block whose taps all lie inside the source rows,
// starting at byte offset off.
func accumulate[S sampler](s S, block []int32, nx int, lines [][]byte, off, bpp int) blend.Sum {
	var sum blend.Sum
	for i, line := range lines {
		p := line[off:]
		for _, w := range block[i*nx : (i+1)*nx] {
			if w != 0 {
				ta := s.alpha(p) * uint32(w)
				sum.R += ta * uint32(p[0])
				sum.G += ta * uint32(p[1])
				sum.B += ta * uint32(p[2])
				sum.A += ta
			}
			p = p[bpp:]
		}
	}
	return sum
}

// accumulateClamped sums a block starting at source column xStart,
// replicating edge pixels for taps outside [0, width).
func accumulateClamped[S sampler](s S, block []int32, nx int, lines [][]byte, xStart, width, bpp int) blend.Sum {
	var sum blend.Sum
	for i, line := range lines {
		for k, w := range block[i*nx : (i+1)*nx] {
			if w == 0 {
				continue
			}
			p := line[clamp(xStart+k, 0, width-1)*bpp:]
			ta := s.alpha(p) * uint32(w)
			sum.R += ta * uint32(p[0])
			sum.G += ta * uint32(p[1])
			sum.B += ta * uint32(p[2])
			sum.A += ta
		}
	}
	return sum
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
