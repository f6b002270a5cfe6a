package blend

// Scale overwrites the destination with the filtered source.
// A transparent sum stores transparent black.
type Scale struct {
	// DstAlpha reports whether the destination's fourth byte is alpha.
	DstAlpha bool
}

// Store writes s into the pixel at d. dx is unused.
func (p Scale) Store(d []byte, _ int, s Sum) {
	if s.A == 0 {
		d[0], d[1], d[2] = 0, 0, 0
		if p.DstAlpha {
			d[3] = 0
		}
		return
	}
	d[0] = unpremul(s.R, s.A)
	d[1] = unpremul(s.G, s.A)
	d[2] = unpremul(s.B, s.A)
	if p.DstAlpha {
		d[3] = alpha8(s.A)
	}
}

// Over composites the filtered source onto the destination pixel with the
// straight-alpha over operator. A transparent sum leaves the destination
// untouched.
type Over struct {
	DstAlpha bool
}

// Store blends s into the pixel at d. dx is unused.
func (p Over) Store(d []byte, _ int, s Sum) {
	if s.A == 0 {
		return
	}
	if !p.DstAlpha {
		d[0] = over(s.R, s.A, d[0])
		d[1] = over(s.G, s.A, d[1])
		d[2] = over(s.B, s.A, d[2])
		return
	}

	// With both alphas scaled to Full·255:
	//   w  = 255·a + da·(Full-a)
	//   c' = (255·c + dc·da·(Full-a)) / w
	da := uint64(d[3])
	rest := da * uint64(Full-s.A)
	w := 255*uint64(s.A) + rest
	d[0] = divRound(255*uint64(s.R)+uint64(d[0])*rest, w)
	d[1] = divRound(255*uint64(s.G)+uint64(d[1])*rest, w)
	d[2] = divRound(255*uint64(s.B)+uint64(d[2])*rest, w)
	d[3] = divRound(w, Full)
}
