package blend

// Checker is a two-colour checkerboard used as the background when
// visualizing transparency.
//
// The cell of destination pixel (dx, dy) is
// floor((dx+X)/Size) + floor((dy+Y)/Size); even cells take Color1, odd
// cells Color2. Colours are packed 0xRRGGBB.
type Checker struct {
	X, Y   int
	Size   int
	Color1 uint32
	Color2 uint32
}

// CheckerRow stores onto one destination row of a Checker.
// The destination's previous content is never read.
type CheckerRow struct {
	DstAlpha bool

	x, size int
	even    [3]byte
	odd     [3]byte
}

// Row returns the store for destination row dy. Size must be positive.
func (c Checker) Row(dy int, dstAlpha bool) CheckerRow {
	row := CheckerRow{
		DstAlpha: dstAlpha,
		x:        c.X,
		size:     c.Size,
		even:     unpackRGB(c.Color1),
		odd:      unpackRGB(c.Color2),
	}
	if floorDiv(dy+c.Y, c.Size)&1 != 0 {
		row.even, row.odd = row.odd, row.even
	}
	return row
}

// At returns the checker colour of destination column dx.
func (r CheckerRow) At(dx int) [3]byte {
	if floorDiv(dx+r.x, r.size)&1 != 0 {
		return r.odd
	}
	return r.even
}

// Store blends s over the checker colour of column dx and writes the
// result to d. The stored pixel is always opaque.
func (r CheckerRow) Store(d []byte, dx int, s Sum) {
	bg := r.At(dx)
	d[0] = over(s.R, s.A, bg[0])
	d[1] = over(s.G, s.A, bg[1])
	d[2] = over(s.B, s.A, bg[2])
	if r.DstAlpha {
		d[3] = 0xff
	}
}

func unpackRGB(c uint32) [3]byte {
	return [3]byte{byte(c >> 16), byte(c >> 8), byte(c)}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
