// Package blend implements the per-pixel store policies of the pixops
// resampler: plain scaling, the "over" operator onto existing pixels, and
// "over" onto a synthetic checkerboard.
//
// Inputs are the filtered sums of one destination pixel (see Sum). All
// arithmetic is integer and every result is rounded to nearest, never
// truncated. Alpha is straight (not premultiplied) on both sides.
package blend

// Full is the alpha sum of a fully opaque, fully weighted pixel:
// 255 * 65536.
const Full = 0xff << 16

const half = Full / 2

// Sum is the filtered value of one destination pixel.
//
// A is Σ alpha·w over the filter taps (at most Full) and R, G, B are
// Σ alpha·w·channel. Opaque sources contribute alpha 255.
type Sum struct {
	R, G, B, A uint32
}

// divRound divides n by d rounding to nearest. d must be non-zero.
func divRound(n, d uint64) byte {
	return byte((n + d/2) / d)
}

// unpremul returns the straight channel value of an alpha-weighted sum.
func unpremul(c, a uint32) byte {
	return divRound(uint64(c), uint64(a))
}

// over blends a weighted source sum onto an opaque background channel.
//
// Formula: (c + bg·(Full-a)) / Full
func over(c, a uint32, bg byte) byte {
	return byte((uint64(c) + uint64(bg)*uint64(Full-a) + half) / Full)
}

// alpha8 converts an alpha sum to an 8-bit alpha value.
func alpha8(a uint32) byte {
	return byte((a + 1<<15) >> 16)
}
