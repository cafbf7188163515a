package boxel

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/circuits/point"
)

// Index is the boxel grid over a fixed set of junction boxes.
// It is built once and never gains or loses boxes; only links change.
type Index struct {
	opts    Options
	boxes   []*JunctionBox
	buckets [][]uint32             // boxel → box IDs in input order
	byPoint map[point.Point]uint32 // first box at each position
	links   int
	offsets [][3]int // neighbour boxel offsets within SearchRadius, self excluded
}

// Build indexes points under opts. Box IDs follow input order.
//
// Steps:
//  1. Validate: len(points) > 0, opts positive.
//  2. Bucket every point by its boxel; reject points outside the domain.
//  3. Precompute neighbour offsets for opts.SearchRadius.
//
// Returns ErrEmpty, ErrBadOptions or ErrOutOfDomain (wrapped with the point).
// Complexity: O(N + Cells³) time and memory.
func Build(points []point.Point, opts Options) (*Index, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	idx := &Index{
		opts:    opts,
		boxes:   make([]*JunctionBox, len(points)),
		buckets: make([][]uint32, opts.Cells*opts.Cells*opts.Cells),
		byPoint: make(map[point.Point]uint32, len(points)),
	}
	for i, p := range points {
		b, ok := idx.BoxelOf(p)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrOutOfDomain, p)
		}
		id := uint32(i)
		idx.boxes[i] = &JunctionBox{id: id, pos: p, linked: roaring.New()}
		idx.buckets[b] = append(idx.buckets[b], id)
		if _, dup := idx.byPoint[p]; !dup {
			idx.byPoint[p] = id
		}
	}
	idx.offsets = neighbourOffsets(opts.SearchRadius)

	return idx, nil
}

// neighbourOffsets lists every (dx,dy,dz) with max(|d|) ≤ r except (0,0,0).
func neighbourOffsets(r int) [][3]int {
	side := 2*r + 1
	out := make([][3]int, 0, side*side*side-1)
	for dz := -r; dz <= r; dz++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out = append(out, [3]int{dx, dy, dz})
			}
		}
	}

	return out
}

// Options returns the grid configuration.
func (idx *Index) Options() Options { return idx.opts }

// Len returns the number of junction boxes.
func (idx *Index) Len() int { return len(idx.boxes) }

// NumLinks returns the number of links recorded so far.
func (idx *Index) NumLinks() int { return idx.links }

// NumBoxels returns Cells³.
func (idx *Index) NumBoxels() int { return len(idx.buckets) }

// Box returns the box with the given ID, or nil if id is out of range.
func (idx *Index) Box(id uint32) *JunctionBox {
	if int(id) >= len(idx.boxes) {
		return nil
	}

	return idx.boxes[id]
}

// Boxes returns every box in ID order. The slice must not be modified.
func (idx *Index) Boxes() []*JunctionBox { return idx.boxes }

// Lookup returns the first box (lowest ID) positioned at p.
func (idx *Index) Lookup(p point.Point) (*JunctionBox, bool) {
	id, ok := idx.byPoint[p]
	if !ok {
		return nil, false
	}

	return idx.boxes[id], true
}

// Members returns the IDs of boxes in boxel b, in ID order.
// The slice must not be modified.
func (idx *Index) Members(b int) []uint32 {
	if b < 0 || b >= len(idx.buckets) {
		return nil
	}

	return idx.buckets[b]
}

// InBounds reports whether boxel coordinates (cx,cy,cz) lie inside the grid.
// Complexity: O(1).
func (idx *Index) InBounds(cx, cy, cz int) bool {
	n := idx.opts.Cells

	return cx >= 0 && cx < n && cy >= 0 && cy < n && cz >= 0 && cz < n
}

// cellOf maps p to its boxel coordinates; ok is false outside the domain.
func (idx *Index) cellOf(p point.Point) (c [3]int, ok bool) {
	for axis := 0; axis < 3; axis++ {
		off := p.Axis(axis) - idx.opts.Origin.Axis(axis)
		if off < 0 {
			return c, false
		}
		q := off / idx.opts.Side
		if q >= int64(idx.opts.Cells) {
			return c, false
		}
		c[axis] = int(q)
	}

	return c, true
}

// BoxelOf returns the boxel index containing p.
func (idx *Index) BoxelOf(p point.Point) (int, bool) {
	c, ok := idx.cellOf(p)
	if !ok {
		return 0, false
	}

	return idx.index(c[0], c[1], c[2]), true
}

// index maps boxel coordinates to x-fastest linear order: x + y·n + z·n².
func (idx *Index) index(cx, cy, cz int) int {
	n := idx.opts.Cells

	return cx + cy*n + cz*n*n
}

// Coordinate converts a boxel index back to its (cx,cy,cz) coordinates.
func (idx *Index) Coordinate(b int) (cx, cy, cz int) {
	n := idx.opts.Cells

	return b % n, (b / n) % n, b / (n * n)
}

// Link records a link between boxes a and b on both adjacency lists.
//
// Preconditions (violations return ErrInvariant): both IDs exist, a != b,
// and the two are not already linked.
// Not safe for concurrent use with any other Index method.
func (idx *Index) Link(a, b uint32) error {
	ja, jb := idx.Box(a), idx.Box(b)
	switch {
	case ja == nil || jb == nil:
		return fmt.Errorf("%w: unknown box %d-%d", ErrInvariant, a, b)
	case a == b:
		return fmt.Errorf("%w: self link on box %d", ErrInvariant, a)
	case ja.linked.Contains(b):
		return fmt.Errorf("%w: boxes %d and %d already linked", ErrInvariant, a, b)
	}

	ja.links = append(ja.links, jb.pos)
	ja.linked.Add(b)
	jb.links = append(jb.links, ja.pos)
	jb.linked.Add(a)
	idx.links++

	return nil
}

// LinkPoints links the boxes positioned at p and q (first box at each position).
func (idx *Index) LinkPoints(p, q point.Point) error {
	jp, ok := idx.Lookup(p)
	if !ok {
		return fmt.Errorf("%w: no box at %s", ErrInvariant, p)
	}
	jq, ok := idx.Lookup(q)
	if !ok {
		return fmt.Errorf("%w: no box at %s", ErrInvariant, q)
	}

	return idx.Link(jp.id, jq.id)
}

// Edges returns every recorded link once, as (lower ID, higher ID) pairs,
// ordered by (A, B).
func (idx *Index) Edges() []Edge {
	out := make([]Edge, 0, idx.links)
	for _, jb := range idx.boxes {
		it := jb.linked.Iterator()
		for it.HasNext() {
			other := it.Next()
			if other > jb.id {
				out = append(out, Edge{A: jb.id, B: other})
			}
		}
	}

	return out
}
