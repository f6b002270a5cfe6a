// Package filter builds the fixed-point weight tables used by the pixops
// resampler.
//
// A table is built from two separable dimensions. Each dimension samples its
// 1-D kernel at Subsample sub-pixel phases; the 2-D table is the outer
// product of the two, scaled to 16.16 fixed point and corrected so that
// every phase sums to exactly round(65536 * overall alpha).
//
// Supported kernels:
//   - Tiles: box filter, each source pixel weighted by its overlap with the
//     destination pixel's footprint
//   - Bilinear: linear reconstruction when enlarging, Tiles when reducing
//   - Hyper: box footprint convolved with a triangle (integrated bilinear)
package filter
