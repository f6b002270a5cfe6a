package filter

import (
	"errors"
	"fmt"
	"math"
)

// Fixed-point layout shared with the resampler.
const (
	// ScaleShift is the number of fractional bits in source coordinates.
	ScaleShift = 16

	// SubsampleBits selects how many sub-pixel phases a table holds.
	SubsampleBits = 4

	// Subsample is the number of sub-pixel phases per axis.
	Subsample = 1 << SubsampleBits

	// SubsampleMask extracts a phase index.
	SubsampleMask = Subsample - 1

	// One is the fixed-point weight of a full, opaque sample.
	One = 1 << ScaleShift
)

// MaxWeights bounds the number of int32 entries in one table (64 MiB).
// It admits square reductions down to roughly 1/250 with every kind.
const MaxWeights = 1 << 24

// ErrTooLarge is returned when a table would exceed MaxWeights.
var ErrTooLarge = errors.New("filter: weight table too large")

// Kind selects the 1-D kernel used on both axes.
type Kind uint8

const (
	// Tiles is a box (area-averaging) filter.
	Tiles Kind = iota + 1

	// Bilinear is linear reconstruction when enlarging, Tiles when reducing.
	Bilinear

	// Hyper integrates a bilinear reconstruction over the pixel footprint.
	Hyper
)

// String returns the kernel name.
func (k Kind) String() string {
	switch k {
	case Tiles:
		return "Tiles"
	case Bilinear:
		return "Bilinear"
	case Hyper:
		return "Hyper"
	default:
		return "Unknown"
	}
}

// Filter is a 2-D fixed-point weight table.
//
// Weights is laid out as [yPhase][xPhase][Y.N][X.N]. All weights are
// non-negative and each (yPhase, xPhase) block sums to Total.
type Filter struct {
	X, Y    Dimension
	Weights []int32
	Total   int32
}

// New builds the table for kind at the given scale factors.
// overallAlpha in [0, 1] scales every weight.
func New(kind Kind, scaleX, scaleY, overallAlpha float64) (*Filter, error) {
	var dim func(float64) Dimension
	switch kind {
	case Tiles:
		dim = TilesDimension
	case Bilinear:
		dim = BilinearDimension
	case Hyper:
		dim = HyperDimension
	default:
		return nil, fmt.Errorf("filter: unknown kind %d", kind)
	}
	if !(scaleX > 0) || !(scaleY > 0) || math.IsInf(scaleX, 0) || math.IsInf(scaleY, 0) {
		return nil, fmt.Errorf("filter: invalid scale %gx%g", scaleX, scaleY)
	}
	if err := Check(kind, scaleX, scaleY); err != nil {
		return nil, err
	}

	f := &Filter{
		X:     dim(scaleX),
		Y:     dim(scaleY),
		Total: int32(math.Floor(One*overallAlpha + 0.5)),
	}
	f.build(overallAlpha)
	return f, nil
}

// Check reports whether a table for kind at the given scale factors fits
// in MaxWeights.
func Check(kind Kind, scaleX, scaleY float64) error {
	nx, okX := taps(kind, scaleX)
	ny, okY := taps(kind, scaleY)
	if !okX || !okY || nx*ny > MaxWeights/(Subsample*Subsample) {
		return fmt.Errorf("%w: %s at scale %gx%g", ErrTooLarge, kind, scaleX, scaleY)
	}
	return nil
}

// taps returns the per-axis tap count of kind at scale, computed in float
// so that tiny scales cannot overflow.
func taps(kind Kind, scale float64) (int, bool) {
	var extra float64
	switch kind {
	case Tiles:
		extra = 1
	case Bilinear:
		if scale > 1 {
			return 2, true
		}
		extra = 1
	case Hyper:
		extra = 3
	default:
		return 0, false
	}
	n := math.Ceil(1/scale + extra)
	if !(n <= MaxWeights) {
		return 0, false
	}
	return int(n), true
}

// Taps returns the number of weights per phase block.
func (f *Filter) Taps() int {
	return f.X.N * f.Y.N
}

// Block returns the weights for the given sub-pixel phases, row-major
// with Y.N rows of X.N taps.
func (f *Filter) Block(yPhase, xPhase int) []int32 {
	n := f.Taps()
	i := (yPhase*Subsample + xPhase) * n
	return f.Weights[i : i+n]
}

// Row returns the Subsample phase blocks sharing yPhase, concatenated.
func (f *Filter) Row(yPhase int) []int32 {
	n := f.Taps() * Subsample
	return f.Weights[yPhase*n : (yPhase+1)*n]
}

func (f *Filter) build(overallAlpha float64) {
	nx, ny := f.X.N, f.Y.N
	f.Weights = make([]int32, Subsample*Subsample*nx*ny)
	for yp := 0; yp < Subsample; yp++ {
		wy := f.Y.Phase(yp)
		for xp := 0; xp < Subsample; xp++ {
			wx := f.X.Phase(xp)
			block := f.Block(yp, xp)
			var total int32
			for i := 0; i < ny; i++ {
				for j := 0; j < nx; j++ {
					w := int32(wx[j]*wy[i]*overallAlpha*One + 0.5)
					if w < 0 {
						w = 0
					}
					block[i*nx+j] = w
					total += w
				}
			}
			correct(block, f.Total-total)
		}
	}
}

// correct spreads the rounding residual over the block so that it sums to
// the requested total. The residual goes to the largest weights first and
// never drives a weight negative.
func correct(block []int32, residual int32) {
	for residual != 0 {
		best := -1
		for i, w := range block {
			if residual < 0 && w == 0 {
				continue
			}
			if best < 0 || w > block[best] {
				best = i
			}
		}
		if best < 0 {
			return
		}
		if residual > 0 {
			block[best] += residual
			return
		}
		take := -residual
		if take > block[best] {
			take = block[best]
		}
		block[best] -= take
		residual += take
	}
}
