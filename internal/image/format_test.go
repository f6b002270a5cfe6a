package image

import "testing"

func TestFormatFor(t *testing.T) {
	tests := []struct {
		channels int
		alpha    bool
		want     Format
		ok       bool
	}{
		{3, false, FormatRGB8, true},
		{4, true, FormatRGBA8, true},
		{4, false, FormatRGBX8, true},
		{3, true, 0, false},
		{1, false, 0, false},
		{5, true, 0, false},
	}
	for _, tt := range tests {
		got, ok := FormatFor(tt.channels, tt.alpha)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("FormatFor(%d, %t) = %v, %t, want %v, %t", tt.channels, tt.alpha, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format Format
		bpp    int
		alpha  bool
		name   string
	}{
		{FormatRGB8, 3, false, "RGB8"},
		{FormatRGBA8, 4, true, "RGBA8"},
		{FormatRGBX8, 4, false, "RGBX8"},
	}
	for _, tt := range tests {
		if got := tt.format.BytesPerPixel(); got != tt.bpp {
			t.Errorf("%s.BytesPerPixel() = %d, want %d", tt.name, got, tt.bpp)
		}
		if got := tt.format.HasAlpha(); got != tt.alpha {
			t.Errorf("%s.HasAlpha() = %t, want %t", tt.name, got, tt.alpha)
		}
		if got := tt.format.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if !tt.format.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.name)
		}
	}

	invalid := Format(99)
	if invalid.IsValid() || invalid.BytesPerPixel() != 0 || invalid.String() != "Unknown" {
		t.Errorf("Format(99) should be invalid, got bpp=%d name=%q", invalid.BytesPerPixel(), invalid)
	}
}

func TestImageBytes(t *testing.T) {
	tests := []struct {
		format        Format
		width, height int
		stride        int
		want          int
	}{
		{FormatRGB8, 4, 3, 12, 36},
		{FormatRGB8, 4, 3, 16, 44},
		{FormatRGBA8, 1, 1, 4, 4},
		{FormatRGBX8, 2, 5, 100, 408},
		{FormatRGB8, 0, 5, 3, 0},
	}
	for _, tt := range tests {
		if got := tt.format.ImageBytes(tt.width, tt.height, tt.stride); got != tt.want {
			t.Errorf("%v.ImageBytes(%d, %d, %d) = %d, want %d", tt.format, tt.width, tt.height, tt.stride, got, tt.want)
		}
	}
}
