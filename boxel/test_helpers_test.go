package boxel_test

import (
	"math/rand"

	"github.com/katalvlaran/circuits/boxel"
	"github.com/katalvlaran/circuits/point"
)

// randomPoints returns n points uniformly spread over [0, span)³ with a fixed seed.
func randomPoints(n int, span int64, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.New(r.Int63n(span), r.Int63n(span), r.Int63n(span))
	}

	return pts
}

// bruteNearest scans every box and returns the closest eligible one,
// breaking ties by the lower ID.
func bruteNearest(idx *boxel.Index, id uint32) (uint32, int64, bool) {
	jb := idx.Box(id)
	var (
		bestID uint32
		best   = boxel.NoDistance
	)
	for _, other := range idx.Boxes() {
		if other.ID() == id || jb.Linked(other.ID()) {
			continue
		}
		d := jb.Point().SquaredDistance(other.Point())
		if d < best || (d == best && other.ID() < bestID) {
			best, bestID = d, other.ID()
		}
	}

	return bestID, best, best != boxel.NoDistance
}
