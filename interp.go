package pixops

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixops/internal/filter"
)

// InterpType selects the resampling filter.
//
// The numeric values are stable and may be stored or exchanged as
// integers.
type InterpType uint8

const (
	// InterpNearest picks the source pixel nearest to each destination
	// pixel's centre. Fastest; blocky when enlarging.
	InterpNearest InterpType = 0

	// InterpTiles averages every source pixel under the destination pixel's
	// footprint, weighted by coverage. Cost grows with the reduction ratio;
	// the right choice for large reductions.
	InterpTiles InterpType = 1

	// InterpBilinear interpolates the four nearest source pixels when
	// enlarging and behaves like InterpTiles when reducing.
	InterpBilinear InterpType = 2

	// InterpHyper integrates a bilinear reconstruction over the footprint.
	// Highest quality and slowest.
	InterpHyper InterpType = 3
)

// String returns a string representation of the interpolation type.
func (t InterpType) String() string {
	switch t {
	case InterpNearest:
		return "Nearest"
	case InterpTiles:
		return "Tiles"
	case InterpBilinear:
		return "Bilinear"
	case InterpHyper:
		return "Hyper"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is one of the four defined filters.
func (t InterpType) IsValid() bool {
	return t <= InterpHyper
}

// ParseInterp parses a filter name as printed by String, case-insensitive.
func ParseInterp(s string) (InterpType, error) {
	for t := InterpNearest; t <= InterpHyper; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidArgument, s)
}

// kind maps a non-nearest filter to its weight-table kernel.
func (t InterpType) kind() filter.Kind {
	switch t {
	case InterpTiles:
		return filter.Tiles
	case InterpBilinear:
		return filter.Bilinear
	default:
		return filter.Hyper
	}
}
