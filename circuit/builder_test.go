package circuit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/circuits/boxel"
	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/point"
	"github.com/katalvlaran/circuits/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunFull_ThreePoints walks the smallest interesting case:
// round 1 links (0,0,0)-(1,0,0) at distance 1, round 2 joins (100,0,0) via
// (1,0,0) at 9801, and the answer is 1·100.
func TestRunFull_ThreePoints(t *testing.T) {
	pts := []point.Point{point.New(0, 0, 0), point.New(1, 0, 0), point.New(100, 0, 0)}
	b, err := circuit.NewBuilder(buildIndex(t, pts, boxel.DefaultOptions()))
	require.NoError(t, err)

	got, err := b.RunFull()
	require.NoError(t, err)
	assert.Equal(t, int64(100), got)

	links := b.Links()
	require.Len(t, links, 2)
	assert.LessOrEqual(t, b.Rounds(), len(pts)-1)
	assert.Equal(t, pts[0], links[0].From)
	assert.Equal(t, pts[1], links[0].To)
	assert.Equal(t, int64(1), links[0].Dist)
	assert.Equal(t, pts[1], links[1].From)
	assert.Equal(t, pts[2], links[1].To)
	assert.Equal(t, int64(9801), links[1].Dist)
	assert.True(t, links[1].Merged)
	assert.Equal(t, 3, b.Largest())
	assert.Equal(t, 1, b.Circuits())
}

// TestFixture_Bounded runs 10 rounds over the 20-point fixture: circuits of
// sizes 5, 4 and 2 lead, so the answer is 40, and the trace must equal the
// first ten pairs of the (distance, low ID, high ID) order.
func TestFixture_Bounded(t *testing.T) {
	pts := fixturePoints(t)
	b, err := circuit.NewBuilder(buildIndex(t, pts, boxel.DefaultOptions()))
	require.NoError(t, err)

	got, err := b.RunBounded(circuit.RoundsFor(len(pts)))
	require.NoError(t, err)
	assert.Equal(t, int64(40), got)
	assert.Equal(t, 10, b.Rounds())

	want := sortedPairs(pts)[:10]
	var trace []pairRef
	for _, l := range b.Links() {
		trace = append(trace, pairRef{A: l.A, B: l.B, Dist: l.Dist})
	}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}

	// The first links are known by position.
	at := func(s string) point.Point {
		p, err := point.Parse(s)
		require.NoError(t, err)
		return p
	}
	links := b.Links()
	assert.ElementsMatch(t, []point.Point{at("162,817,812"), at("425,690,689")}, []point.Point{links[0].From, links[0].To})
	assert.ElementsMatch(t, []point.Point{at("162,817,812"), at("431,825,988")}, []point.Point{links[1].From, links[1].To})
	assert.ElementsMatch(t, []point.Point{at("906,360,560"), at("805,96,715")}, []point.Point{links[2].From, links[2].To})
	assert.ElementsMatch(t, []point.Point{at("431,825,988"), at("425,690,689")}, []point.Point{links[3].From, links[3].To})
	assert.False(t, links[3].Merged, "fourth link closes a loop inside one circuit")

	sizes := b.ComponentSizes()
	assert.Equal(t, []int{5, 4, 2, 2}, sizes[:4])
	sum := 0
	for _, s := range sizes {
		sum += s
	}
	assert.Equal(t, len(pts), sum)
}

// TestFixture_Full connects the fixture completely; the final link joins
// 216,146,977 and 117,168,530, giving 216·117.
func TestFixture_Full(t *testing.T) {
	pts := fixturePoints(t)
	b, err := circuit.NewBuilder(buildIndex(t, pts, boxel.DefaultOptions()))
	require.NoError(t, err)

	got, err := b.RunFull()
	require.NoError(t, err)
	assert.Equal(t, int64(25272), got)

	want, rounds := oracleFull(pts)
	assert.Equal(t, want, got)
	assert.Equal(t, rounds, b.Rounds())

	merges := 0
	for _, l := range b.Links() {
		if l.Merged {
			merges++
		}
	}
	assert.Equal(t, len(pts)-1, merges)
}

// TestGlobalMinimum checks, round by round on a fine grid that exercises
// neighbour pruning and fallbacks, that each link is the closest pair not
// yet linked.
func TestGlobalMinimum(t *testing.T) {
	pts := randomPoints(120, 2000, 42)
	idx := buildIndex(t, pts, boxel.DefaultOptions(boxel.WithSide(100), boxel.WithCells(20)))
	b, err := circuit.NewBuilder(idx, circuit.WithWorkers(4))
	require.NoError(t, err)

	order := sortedPairs(pts)
	for i := 0; i < 300; i++ {
		link, err := b.Step()
		require.NoError(t, err)
		require.Equal(t, order[i], pairRef{A: link.A, B: link.B, Dist: link.Dist}, "round %d", i+1)

		// Adjacency stays symmetric and duplicate-free.
		a, c := idx.Box(link.A), idx.Box(link.B)
		require.True(t, a.Linked(link.B))
		require.True(t, c.Linked(link.A))
		require.Equal(t, 1, countOf(a.Links(), link.To))
		require.Equal(t, 1, countOf(c.Links(), link.From))
	}
}

// TestRunFull_MatchesOracle compares the full build on random input with a
// plain Kruskal pass over every pair.
func TestRunFull_MatchesOracle(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		pts := randomPoints(80, 5000, seed)
		b, err := circuit.NewBuilder(buildIndex(t, pts, boxel.FitOptions(pts)))
		require.NoError(t, err)

		got, err := b.RunFull()
		require.NoError(t, err)
		want, rounds := oracleFull(pts)
		assert.Equal(t, want, got, "seed %d", seed)
		assert.Equal(t, rounds, b.Rounds(), "seed %d", seed)
		assert.Equal(t, 1, b.Circuits())
	}
}

// TestDeterministicAcrossWorkers gives the same trace for any fan-out.
func TestDeterministicAcrossWorkers(t *testing.T) {
	pts := randomPoints(100, 300, 9) // dense: many equal distances
	var first []circuit.Link
	for _, w := range []int{1, 2, 3, 8, 64} {
		b, err := circuit.NewBuilder(buildIndex(t, pts, boxel.FitOptions(pts)), circuit.WithWorkers(w))
		require.NoError(t, err)
		_, err = b.RunBounded(150)
		require.NoError(t, err)
		if first == nil {
			first = b.Links()
			continue
		}
		if diff := cmp.Diff(first, b.Links()); diff != "" {
			t.Fatalf("workers=%d diverged (-first +got):\n%s", w, diff)
		}
	}
}

// TestRunBounded_SizesSum checks the independent recount covers every box.
func TestRunBounded_SizesSum(t *testing.T) {
	pts := randomPoints(200, 10_000, 5)
	b, err := circuit.NewBuilder(buildIndex(t, pts, boxel.FitOptions(pts)))
	require.NoError(t, err)
	_, err = b.RunBounded(120)
	require.NoError(t, err)

	sum := 0
	for _, s := range b.ComponentSizes() {
		sum += s
	}
	assert.Equal(t, len(pts), sum)
	assert.Equal(t, b.Circuits(), len(b.ComponentSizes()))
}

// TestErrors covers the failure conditions of the builder.
func TestErrors(t *testing.T) {
	_, err := circuit.NewBuilder(nil)
	assert.ErrorIs(t, err, circuit.ErrNilIndex)

	one := buildIndex(t, []point.Point{point.New(1, 2, 3)}, boxel.DefaultOptions())
	b, err := circuit.NewBuilder(one)
	require.NoError(t, err)
	_, err = b.Step()
	assert.ErrorIs(t, err, circuit.ErrNoCandidate)
	_, err = b.RunFull()
	assert.ErrorIs(t, err, circuit.ErrNoCandidate)
	_, err = b.RunBounded(1)
	assert.ErrorIs(t, err, circuit.ErrNoCandidate)

	// Three points have three pairs; a fourth round has nothing left.
	three := buildIndex(t, []point.Point{point.New(0, 0, 0), point.New(1, 0, 0), point.New(2, 0, 0)}, boxel.DefaultOptions())
	b, err = circuit.NewBuilder(three)
	require.NoError(t, err)
	_, err = b.RunBounded(4)
	assert.ErrorIs(t, err, circuit.ErrNoCandidate)
	assert.Equal(t, 3, b.Rounds())
}

// TestProgress reports rounds in bounded mode and circuit size in full mode.
func TestProgress(t *testing.T) {
	pts := fixturePoints(t)

	var bounded []int
	b, err := circuit.NewBuilder(buildIndex(t, pts, boxel.DefaultOptions()),
		circuit.WithProgress(progress.FromFunc(func(done, total int) {
			assert.Equal(t, 10, total)
			bounded = append(bounded, done)
		})))
	require.NoError(t, err)
	_, err = b.RunBounded(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, bounded)

	var full []int
	b, err = circuit.NewBuilder(buildIndex(t, pts, boxel.DefaultOptions()),
		circuit.WithProgress(progress.FromFunc(func(done, total int) {
			assert.Equal(t, 20, total)
			full = append(full, done)
		})))
	require.NoError(t, err)
	_, err = b.RunFull()
	require.NoError(t, err)
	require.NotEmpty(t, full)
	assert.Equal(t, 20, full[len(full)-1])
	assert.IsNonDecreasing(t, full)
}

// TestCompute dispatches on mode and rejects unknown ones.
func TestCompute(t *testing.T) {
	pts := fixturePoints(t)

	res, err := circuit.Compute(buildIndex(t, pts, boxel.DefaultOptions()), circuit.WithMode(circuit.ModeBounded))
	require.NoError(t, err)
	assert.Equal(t, int64(40), res.Value)
	assert.Equal(t, 10, res.Rounds)
	assert.Equal(t, circuit.ModeBounded, res.Mode)

	res, err = circuit.Compute(buildIndex(t, pts, boxel.DefaultOptions()), circuit.WithMode(circuit.ModeFull), circuit.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, int64(25272), res.Value)
	assert.Equal(t, []int{20}, res.Sizes)
	assert.Equal(t, res.Rounds, res.Last.Round)
	assert.Equal(t, int64(25272), res.Last.From.X*res.Last.To.X)

	_, err = circuit.Compute(buildIndex(t, pts, boxel.DefaultOptions()), circuit.WithMode("spiral"))
	assert.ErrorIs(t, err, circuit.ErrUnknownMode)
}

// TestRoundsFor picks the fixture budget only for 20 points.
func TestRoundsFor(t *testing.T) {
	assert.Equal(t, 10, circuit.RoundsFor(20))
	assert.Equal(t, 1000, circuit.RoundsFor(1000))
	assert.Equal(t, 1000, circuit.RoundsFor(21))
}

func countOf(list []point.Point, p point.Point) int {
	n := 0
	for _, q := range list {
		if q == p {
			n++
		}
	}

	return n
}
