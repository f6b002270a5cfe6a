// Command pixscale scales an image file, optionally compositing it over a
// solid background or a checkerboard.
//
// Usage:
//
//	pixscale -in photo.jpg -out thumb.png -width 320 -interp hyper
//	pixscale -in icon.png -out preview.png -scale 4 -mode checker -check-size 8
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixops"
	intImage "github.com/gogpu/pixops/internal/image"
)

type config struct {
	in, out   string
	width     int
	height    int
	scale     float64
	interp    pixops.InterpType
	mode      string
	alpha     uint8
	checkSize int
	color1    uint32
	color2    uint32
	bg        uint32
}

func main() {
	var (
		in        = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		out       = flag.String("out", "out.png", "output image (png, jpeg, bmp, tiff)")
		width     = flag.Int("width", 0, "output width (0 = from -scale or aspect ratio)")
		height    = flag.Int("height", 0, "output height (0 = from -scale or aspect ratio)")
		scale     = flag.Float64("scale", 1, "scale factor used when -width and -height are unset")
		interp    = flag.String("interp", "bilinear", "filter: nearest, tiles, bilinear, hyper")
		mode      = flag.String("mode", "scale", "store policy: scale, composite, checker")
		alpha     = flag.Uint("alpha", 255, "overall alpha for composite and checker modes (0-255)")
		checkSize = flag.Int("check-size", 16, "checkerboard cell size in pixels")
		color1    = flag.String("color1", "cccccc", "first checkerboard colour (RRGGBB)")
		color2    = flag.String("color2", "999999", "second checkerboard colour (RRGGBB)")
		bg        = flag.String("bg", "ffffff", "background colour for composite mode (RRGGBB)")
		verbose   = flag.Bool("v", false, "log filter decisions")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixops.SetLogger(logger)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *alpha > math.MaxUint8 {
		log.Fatalf("-alpha %d out of range 0-255", *alpha)
	}

	cfg := config{
		in:        *in,
		out:       *out,
		width:     *width,
		height:    *height,
		scale:     *scale,
		mode:      *mode,
		alpha:     uint8(*alpha),
		checkSize: *checkSize,
	}
	var err error
	if cfg.interp, err = pixops.ParseInterp(*interp); err != nil {
		log.Fatalf("Invalid -interp: %v", err)
	}
	for _, c := range []struct {
		name string
		src  string
		dst  *uint32
	}{
		{"color1", *color1, &cfg.color1},
		{"color2", *color2, &cfg.color2},
		{"bg", *bg, &cfg.bg},
	} {
		if *c.dst, err = parseColor(c.src); err != nil {
			log.Fatalf("Invalid -%s: %v", c.name, err)
		}
	}

	if err := run(cfg, logger); err != nil {
		log.Fatalf("Failed: %v", err)
	}
}

func run(cfg config, logger *slog.Logger) error {
	img, err := intImage.Load(cfg.in)
	if err != nil {
		return err
	}
	src := pixops.FromImage(img)
	w, h := outputSize(src.Width, src.Height, cfg)
	logger.Debug("loaded", "path", cfg.in, "width", src.Width, "height", src.Height, "alpha", src.HasAlpha)

	start := time.Now()
	dst, err := render(src, w, h, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := intImage.Save(cfg.out, dst.NRGBA()); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "%s: %dx%d -> %dx%d, %d pixels, %s in %v\n",
		cfg.out, src.Width, src.Height, w, h, w*h, cfg.interp, elapsed.Round(time.Microsecond))
	return nil
}

func render(src *pixops.Buffer, w, h int, cfg config) (*pixops.Buffer, error) {
	switch cfg.mode {
	case "scale":
		return pixops.ScaleSimple(src, w, h, cfg.interp)

	case "composite":
		dst, err := pixops.NewBuffer(w, h, 3, false)
		if err != nil {
			return nil, err
		}
		fill(dst, cfg.bg)
		err = pixops.CompositeOnto(dst, src, pixops.Fit(src.Width, src.Height, w, h), cfg.interp, cfg.alpha)
		return dst, err

	case "checker":
		return pixops.CompositeColorSimple(src, w, h, cfg.interp, cfg.alpha, cfg.checkSize, cfg.color1, cfg.color2)

	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

// outputSize resolves the output dimensions, keeping the aspect ratio when
// only one of width and height is given.
func outputSize(sw, sh int, cfg config) (int, int) {
	w, h := cfg.width, cfg.height
	switch {
	case w > 0 && h > 0:
	case w > 0:
		h = int(math.Round(float64(sh) * float64(w) / float64(sw)))
	case h > 0:
		w = int(math.Round(float64(sw) * float64(h) / float64(sh)))
	default:
		w = int(math.Round(float64(sw) * cfg.scale))
		h = int(math.Round(float64(sh) * cfg.scale))
	}
	return max(w, 1), max(h, 1)
}

func parseColor(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return 0, err
	}
	if v > 0xffffff {
		return 0, fmt.Errorf("colour %q has more than 24 bits", s)
	}
	return uint32(v), nil
}

func fill(b *pixops.Buffer, c uint32) {
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Rowstride:]
		for x := 0; x < b.Width; x++ {
			p := row[x*b.Channels:]
			p[0], p[1], p[2] = byte(c>>16), byte(c>>8), byte(c)
		}
	}
}
