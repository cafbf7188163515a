package boxel

import (
	"github.com/katalvlaran/circuits/point"
)

// Nearest returns the closest box to box id that is neither id itself nor
// already linked to it.
//
// Steps:
//  1. Scan the box's own boxel.
//  2. For each neighbour boxel within SearchRadius (clipped to the grid),
//     compute a lower bound on the squared distance to anything it can hold;
//     scan it only if that bound does not exceed the best distance so far.
//  3. If nothing was found, or the best distance is not strictly below the
//     shell bound of the searched cube, scan every box instead.
//
// Equal distances resolve to the lower box ID, so the result never depends
// on scheduling. Returns a Candidate with Dist == NoDistance when no box is
// eligible (fewer than two boxes, or id already linked to all of them).
// Read-only; safe for concurrent use with other readers.
func (idx *Index) Nearest(id uint32) Candidate {
	best := Candidate{From: id, Dist: NoDistance}
	jb := idx.Box(id)
	if jb == nil {
		return best
	}

	c, _ := idx.cellOf(jb.pos)
	idx.scan(jb, idx.buckets[idx.index(c[0], c[1], c[2])], &best)
	for _, off := range idx.offsets {
		nx, ny, nz := c[0]+off[0], c[1]+off[1], c[2]+off[2]
		if !idx.InBounds(nx, ny, nz) {
			continue
		}
		if idx.lowerBound(jb.pos, nx, ny, nz) > best.Dist {
			continue
		}
		idx.scan(jb, idx.buckets[idx.index(nx, ny, nz)], &best)
	}

	if best.Found() && best.Dist < idx.shellBound(jb.pos, c) {
		return best
	}

	full := Candidate{From: id, Dist: NoDistance, Exhaustive: true}
	for _, other := range idx.boxes {
		idx.consider(jb, other, &full)
	}

	return full
}

// scan folds every eligible member of a boxel into best.
func (idx *Index) scan(jb *JunctionBox, members []uint32, best *Candidate) {
	for _, m := range members {
		idx.consider(jb, idx.boxes[m], best)
	}
}

func (idx *Index) consider(jb, other *JunctionBox, best *Candidate) {
	if other.id == jb.id || jb.linked.Contains(other.id) {
		return
	}
	c := Candidate{From: jb.id, To: other.id, Dist: jb.pos.SquaredDistance(other.pos), Exhaustive: best.Exhaustive}
	if c.Less(*best) {
		*best = c
	}
}

// lowerBound is the smallest squared distance from p to any integer point of
// boxel (cx,cy,cz): per axis, the gap to the boxel's extent if p lies outside it.
func (idx *Index) lowerBound(p point.Point, cx, cy, cz int) int64 {
	cell := [3]int{cx, cy, cz}
	var d int64
	for axis := 0; axis < 3; axis++ {
		v := p.Axis(axis)
		lo := idx.opts.Origin.Axis(axis) + int64(cell[axis])*idx.opts.Side
		hi := lo + idx.opts.Side - 1
		switch {
		case v < lo:
			d += (lo - v) * (lo - v)
		case v > hi:
			d += (v - hi) * (v - hi)
		}
	}

	return d
}

// shellBound is the smallest squared distance from p to any point outside the
// cube of boxels within SearchRadius of cell c. Faces lying on the grid
// boundary are ignored since nothing exists beyond them; NoDistance means the
// searched cube covers the whole grid.
func (idx *Index) shellBound(p point.Point, c [3]int) int64 {
	r := idx.opts.SearchRadius
	bound := NoDistance
	for axis := 0; axis < 3; axis++ {
		v := p.Axis(axis)
		origin := idx.opts.Origin.Axis(axis)
		if low := c[axis] - r; low > 0 {
			// Outside points sit at or below face-1.
			gap := v - (origin + int64(low)*idx.opts.Side) + 1
			bound = min(bound, gap*gap)
		}
		if high := c[axis] + r; high < idx.opts.Cells-1 {
			gap := origin + int64(high+1)*idx.opts.Side - v
			bound = min(bound, gap*gap)
		}
	}

	return bound
}
