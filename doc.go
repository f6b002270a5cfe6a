// Package pixops scales, translates and alpha-composites rectangles of
// packed 8-bit pixels.
//
// # Overview
//
// pixops is a single-pass, filter-parameterized resampler. A caller hands
// it a source Buffer, a destination Buffer, a pair of scale factors and a
// render rectangle in the scaled image's coordinates; pixops computes every
// destination pixel of that rectangle from the source and stores it with one
// of three policies:
//
//   - Scale overwrites the destination
//   - Composite blends over the destination with the over operator
//   - CompositeColor blends over a synthetic checkerboard
//
// # Quick Start
//
//	src := pixops.FromImage(img)
//	dst, err := pixops.ScaleSimple(src, 320, 240, pixops.InterpBilinear)
//	if err != nil {
//	    return err
//	}
//	thumb := dst.NRGBA()
//
// # Filters
//
// InterpNearest, InterpTiles, InterpBilinear and InterpHyper trade speed
// for quality in that order. All filters replicate edge pixels for samples
// outside the source and round every result to the nearest 8-bit value.
//
// # Coordinate System
//
// The scaled image's origin is (0, 0). Source pixel (sx, sy) covers
// [sx*scaleX, (sx+1)*scaleX) horizontally in the scaled image, and likewise
// vertically. The destination buffer's (0, 0) receives the render
// rectangle's top-left pixel, which lets callers render a viewport of a
// large scaled image without allocating all of it.
//
// # Concurrency
//
// Calls keep no state between them. Concurrent calls may share a source;
// each destination must be used by one call at a time.
package pixops
