package filter

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewBlocksSumToTotal(t *testing.T) {
	kinds := []Kind{Tiles, Bilinear, Hyper}
	alphas := []float64{0, 0.25, 128.0 / 255, 1}
	for _, kind := range kinds {
		for _, s := range []float64{0.3, 1, 2.5} {
			for _, alpha := range alphas {
				t.Run(fmt.Sprintf("%s/%g/%g", kind, s, alpha), func(t *testing.T) {
					f, err := New(kind, s, 1/s, alpha)
					if err != nil {
						t.Fatalf("New: %v", err)
					}
					if want := int32(One*alpha + 0.5); f.Total != want {
						t.Errorf("Total = %d, want %d", f.Total, want)
					}
					for yp := 0; yp < Subsample; yp++ {
						for xp := 0; xp < Subsample; xp++ {
							var sum int32
							for _, w := range f.Block(yp, xp) {
								if w < 0 {
									t.Fatalf("block (%d,%d) has negative weight %d", yp, xp, w)
								}
								sum += w
							}
							if sum != f.Total {
								t.Fatalf("block (%d,%d) sums to %d, want %d", yp, xp, sum, f.Total)
							}
						}
					}
				})
			}
		}
	}
}

func TestNewLayout(t *testing.T) {
	f, err := New(Hyper, 0.5, 2, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.X.N != 5 || f.Y.N != 4 {
		t.Fatalf("taps = %dx%d, want 5x4", f.X.N, f.Y.N)
	}
	if f.Taps() != 20 {
		t.Errorf("Taps() = %d, want 20", f.Taps())
	}
	if len(f.Weights) != Subsample*Subsample*20 {
		t.Errorf("len(Weights) = %d", len(f.Weights))
	}
	row := f.Row(3)
	block := f.Block(3, 2)
	if &row[2*f.Taps()] != &block[0] {
		t.Error("Row and Block disagree on layout")
	}
}

func TestNewUnitScaleTilesIsCopyAtPhaseZero(t *testing.T) {
	f, err := New(Tiles, 1, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []int32{One, 0, 0, 0}
	for i, w := range f.Block(0, 0) {
		if w != want[i] {
			t.Errorf("Block(0, 0) = %v, want %v", f.Block(0, 0), want)
			break
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Kind(0), 1, 1, 1); err == nil {
		t.Error("New(Kind(0)) should fail")
	}
	for _, s := range []float64{0, -1} {
		if _, err := New(Tiles, s, 1, 1); err == nil {
			t.Errorf("New with scale %g should fail", s)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		kind   Kind
		sx, sy float64
		ok     bool
	}{
		{Tiles, 0.01, 0.01, true},
		{Hyper, 0.004, 0.004, true},
		{Bilinear, 1e6, 1e6, true},
		{Tiles, 0.001, 0.001, false},
		{Hyper, 0.003, 0.003, false},
		{Bilinear, 0.001, 0.5, true},
		{Tiles, 1e-300, 1, false},
		{Hyper, 1, 1e-12, false},
	}
	for _, tt := range tests {
		err := Check(tt.kind, tt.sx, tt.sy)
		if tt.ok && err != nil {
			t.Errorf("Check(%s, %g, %g) = %v, want nil", tt.kind, tt.sx, tt.sy, err)
		}
		if !tt.ok && !errors.Is(err, ErrTooLarge) {
			t.Errorf("Check(%s, %g, %g) = %v, want ErrTooLarge", tt.kind, tt.sx, tt.sy, err)
		}
	}

	if _, err := New(Tiles, 1e-300, 1, 1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("New with tiny scale error = %v, want ErrTooLarge", err)
	}
}

func TestCorrect(t *testing.T) {
	tests := []struct {
		name     string
		block    []int32
		residual int32
		want     []int32
	}{
		{"add to largest", []int32{1, 5, 3}, 2, []int32{1, 7, 3}},
		{"take from largest", []int32{1, 5, 3}, -2, []int32{1, 3, 3}},
		{"spill over", []int32{2, 1, 0}, -3, []int32{0, 0, 0}},
		{"nothing to take", []int32{0, 0}, -1, []int32{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct(tt.block, tt.residual)
			for i := range tt.want {
				if tt.block[i] != tt.want[i] {
					t.Errorf("got %v, want %v", tt.block, tt.want)
					break
				}
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{Tiles: "Tiles", Bilinear: "Bilinear", Hyper: "Hyper", Kind(9): "Unknown"} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
