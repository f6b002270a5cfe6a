package filter

import "math"

// Dimension is a 1-D kernel sampled at Subsample sub-pixel phases.
//
// Weights holds Subsample rows of N taps. Row p applies to a destination
// pixel whose source position has fractional part p/Subsample; tap i reads
// source pixel floor(pos + Offset) + i.
type Dimension struct {
	N       int
	Offset  float64
	Weights []float64
}

// Phase returns the N tap weights for sub-pixel phase p.
func (d *Dimension) Phase(p int) []float64 {
	return d.Weights[p*d.N : (p+1)*d.N]
}

// boxOverlap returns the length of [x, a) ∩ [i, i+1), the part of source
// pixel i covered by a footprint starting at x and ending at a.
func boxOverlap(i int, x, a float64) float64 {
	fi := float64(i)
	if fi < x {
		if fi+1 > x {
			return math.Min(fi+1, a) - x
		}
		return 0
	}
	if a > fi {
		return math.Min(fi+1, a) - fi
	}
	return 0
}

// TilesDimension returns a box filter: the destination pixel's footprint
// covers 1/scale source pixels and each tap is its fractional coverage.
func TilesDimension(scale float64) Dimension {
	n := int(math.Ceil(1/scale + 1))
	d := Dimension{
		N:       n,
		Offset:  0,
		Weights: make([]float64, Subsample*n),
	}
	for p := 0; p < Subsample; p++ {
		x := float64(p) / Subsample
		a := x + 1/scale
		w := d.Phase(p)
		for i := range w {
			w[i] = boxOverlap(i, x, a) * scale
		}
	}
	return d
}

// BilinearDimension interpolates linearly between two taps when
// enlarging and falls back to TilesDimension when reducing.
func BilinearDimension(scale float64) Dimension {
	if scale <= 1 {
		return TilesDimension(scale)
	}
	d := Dimension{
		N:       2,
		Offset:  0.5 * (1/scale - 1),
		Weights: make([]float64, Subsample*2),
	}
	for p := 0; p < Subsample; p++ {
		x := float64(p) / Subsample
		w := d.Phase(p)
		w[0] = 1 - x
		w[1] = x
	}
	return d
}

// linearBoxHalf integrates f(t) = t over [b0, b1] ∩ [0, 1].
// Two of these, mirrored, integrate a triangle spike over a box.
func linearBoxHalf(b0, b1 float64) float64 {
	var x0, x1 float64
	switch {
	case b0 > 0:
		if b0 >= 1 {
			return 0
		}
		x0 = b0
	case b1 > 0:
		x0 = 0
	default:
		return 0
	}
	x1 = math.Min(1, b1)
	return 0.5 * (x1*x1 - x0*x0)
}

// HyperDimension integrates a bilinear reconstruction over the
// destination pixel's footprint. It reads one extra tap on each side of
// TilesDimension and is the most expensive kernel.
func HyperDimension(scale float64) Dimension {
	n := int(math.Ceil(1/scale + 3))
	d := Dimension{
		N:       n,
		Offset:  -1,
		Weights: make([]float64, Subsample*n),
	}
	for p := 0; p < Subsample; p++ {
		x := float64(p) / Subsample
		a := x + 1/scale
		w := d.Phase(p)
		for i := range w {
			fi := float64(i)
			v := linearBoxHalf(0.5+fi-a, 0.5+fi-x)
			v += linearBoxHalf(1.5+x-fi, 1.5+a-fi)
			w[i] = v * scale
		}
	}
	return d
}
