package pixops

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func TestFromImage(t *testing.T) {
	t.Run("nrgba is shared", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
		b := FromImage(img)
		if b.Channels != 4 || !b.HasAlpha || b.Rowstride != img.Stride {
			t.Fatalf("layout = %+v", b)
		}
		b.Pix[0] = 7
		if img.Pix[0] != 7 {
			t.Error("buffer does not share the NRGBA pixels")
		}
	})

	t.Run("opaque rgba becomes rgb", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(10, 10, 12, 11))
		img.Set(10, 10, color.RGBA{R: 1, G: 2, B: 3, A: 255})
		img.Set(11, 10, color.RGBA{R: 4, G: 5, B: 6, A: 255})
		b := FromImage(img)
		if b.Channels != 3 || b.HasAlpha {
			t.Fatalf("layout = %+v, want RGB", b)
		}
		if want := []byte{1, 2, 3, 4, 5, 6}; !bytes.Equal(b.Pix, want) {
			t.Errorf("Pix = %v, want %v", b.Pix, want)
		}
	})

	t.Run("translucent rgba becomes nrgba", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, color.NRGBA{R: 200, A: 128})
		b := FromImage(img)
		if b.Channels != 4 || !b.HasAlpha {
			t.Fatalf("layout = %+v, want RGBA", b)
		}
		if b.Pix[3] != 128 {
			t.Errorf("alpha = %d, want 128", b.Pix[3])
		}
	})
}

func TestBufferNRGBA(t *testing.T) {
	b := &Buffer{Pix: []byte{1, 2, 3, 0, 4, 5, 6, 0}, Width: 2, Height: 1, Rowstride: 8, Channels: 4}
	img := b.NRGBA()
	if want := []byte{1, 2, 3, 255, 4, 5, 6, 255}; !bytes.Equal(img.Pix, want) {
		t.Errorf("RGBX to NRGBA = %v, want %v", img.Pix, want)
	}
}

// TestNearestMatchesXDraw checks integer-factor enlargement against the
// nearest-neighbour scaler of golang.org/x/image/draw.
func TestNearestMatchesXDraw(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 19)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}

	for _, factor := range []int{2, 3} {
		w, h := 3*factor, 2*factor
		want := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(want, want.Rect, src, src.Rect, draw.Src, nil)

		got, err := ScaleSimple(FromNRGBA(src), w, h, InterpNearest)
		if err != nil {
			t.Fatalf("ScaleSimple: %v", err)
		}
		if !bytes.Equal(got.NRGBA().Pix, want.Pix) {
			t.Errorf("factor %d: pixops and x/image/draw disagree", factor)
		}
	}
}
