package blend

import "testing"

func TestDivRound(t *testing.T) {
	tests := []struct {
		n, d uint64
		want byte
	}{
		{0, 1, 0},
		{5, 2, 3},
		{4, 3, 1},
		{255 * Full, Full, 255},
		{127*Full + half, Full, 128},
		{127*Full + half - 1, Full, 127},
	}
	for _, tt := range tests {
		if got := divRound(tt.n, tt.d); got != tt.want {
			t.Errorf("divRound(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestUnpremulRoundTrip(t *testing.T) {
	// Every alpha/channel pair must survive a unit-weight sum exactly.
	for a := uint32(1); a <= 255; a++ {
		for c := uint32(0); c <= 255; c++ {
			sa := a << 16
			if got := unpremul(sa*c, sa); uint32(got) != c {
				t.Fatalf("unpremul(%d*%d) = %d, want %d", a, c, got, c)
			}
		}
		if got := alpha8(a << 16); uint32(got) != a {
			t.Errorf("alpha8(%d<<16) = %d, want %d", a, got, a)
		}
	}
}

func TestOverEndpoints(t *testing.T) {
	for c := uint32(0); c <= 255; c += 15 {
		for bg := 0; bg <= 255; bg += 17 {
			if got := over(Full*c, Full, byte(bg)); uint32(got) != c {
				t.Errorf("over opaque source %d on %d = %d", c, bg, got)
			}
			if got := over(0, 0, byte(bg)); int(got) != bg {
				t.Errorf("over transparent source on %d = %d", bg, got)
			}
		}
	}
}
