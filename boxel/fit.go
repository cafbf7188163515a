package boxel

import (
	"math"

	"github.com/katalvlaran/circuits/point"
)

// maxFitCells caps the per-axis boxel count chosen by FitOptions.
const maxFitCells = 256

// FitOptions sizes a grid that covers the bounding box of points with
// roughly one point per boxel, then applies opts on top.
//
//	– Origin = the minimum corner of the points.
//	– Cells  = ⌈∛N⌉, clamped to [1, 256].
//	– Side   = ⌈extent / Cells⌉ where extent is the widest axis span.
//
// With no points it returns DefaultOptions(opts...).
// Complexity: O(N).
func FitOptions(points []point.Point, opts ...Option) Options {
	if len(points) == 0 {
		return DefaultOptions(opts...)
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = point.New(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
		hi = point.New(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
	}
	extent := max(hi.X-lo.X, hi.Y-lo.Y, hi.Z-lo.Z) + 1

	cells := int(math.Ceil(math.Cbrt(float64(len(points)))))
	cells = max(1, min(cells, maxFitCells))
	if int64(cells) > extent {
		cells = int(extent)
	}
	side := (extent + int64(cells) - 1) / int64(cells)

	o := Options{
		Origin:       lo,
		Side:         side,
		Cells:        cells,
		SearchRadius: DefaultSearchRadius,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
