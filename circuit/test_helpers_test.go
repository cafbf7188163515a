package circuit_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/katalvlaran/circuits/boxel"
	"github.com/katalvlaran/circuits/point"
	"github.com/stretchr/testify/require"
)

// fixture is the 20-point reference input.
const fixture = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

// fixturePoints parses the reference input.
func fixturePoints(t testing.TB) []point.Point {
	pts, err := point.Read(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, pts, 20)

	return pts
}

// buildIndex indexes pts with opts, failing the test on error.
func buildIndex(t testing.TB, pts []point.Point, opts boxel.Options) *boxel.Index {
	idx, err := boxel.Build(pts, opts)
	require.NoError(t, err)

	return idx
}

// randomPoints returns n seeded points in [0, span)³.
func randomPoints(n int, span, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.New(r.Int63n(span), r.Int63n(span), r.Int63n(span))
	}

	return pts
}

// pairRef is one oracle pair, A < B.
type pairRef struct {
	A, B uint32
	Dist int64
}

// sortedPairs lists every pair ordered by (distance, A, B): the order in
// which closest-pair-first linking must consume them.
func sortedPairs(pts []point.Point) []pairRef {
	out := make([]pairRef, 0, len(pts)*(len(pts)-1)/2)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			out = append(out, pairRef{A: uint32(i), B: uint32(j), Dist: pts[i].SquaredDistance(pts[j])})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dist != out[j].Dist {
			return out[i].Dist < out[j].Dist
		}
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// oracleFull runs Kruskal over sortedPairs and returns the X product of the
// merge that connects everything, plus the number of pairs consumed.
func oracleFull(pts []point.Point) (int64, int) {
	parent := make([]int, len(pts))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			x = parent[x]
		}

		return x
	}
	comps := len(pts)
	for i, p := range sortedPairs(pts) {
		ra, rb := find(int(p.A)), find(int(p.B))
		if ra == rb {
			continue
		}
		parent[ra] = rb
		comps--
		if comps == 1 {
			return pts[p.A].X * pts[p.B].X, i + 1
		}
	}

	return 0, 0
}
