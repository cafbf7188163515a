package boxel

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/circuits/point"
)

const (
	// DefaultSide is the default boxel edge length.
	DefaultSide int64 = 10_000
	// DefaultCells is the default number of boxels along each axis.
	DefaultCells = 10
	// DefaultSearchRadius searches the 3×3×3 neighbourhood before falling back.
	DefaultSearchRadius = 1
	// NoDistance is the Candidate distance reported when nothing is eligible.
	NoDistance int64 = math.MaxInt64
)

// Options configures the grid. The covered domain is the half-open cube
// [Origin, Origin + Side·Cells) on every axis.
type Options struct {
	// Origin is the minimum corner of the grid.
	Origin point.Point
	// Side is the boxel edge length.
	Side int64
	// Cells is the number of boxels per axis.
	Cells int
	// SearchRadius is how many boxel rings Nearest visits before it either
	// proves its candidate or falls back to an exhaustive scan.
	SearchRadius int
}

// Option configures Options.
type Option func(*Options)

// WithOrigin sets the minimum corner of the grid.
func WithOrigin(p point.Point) Option {
	return func(o *Options) {
		o.Origin = p
	}
}

// WithSide sets the boxel edge length.
func WithSide(side int64) Option {
	return func(o *Options) {
		o.Side = side
	}
}

// WithCells sets the number of boxels per axis.
func WithCells(n int) Option {
	return func(o *Options) {
		o.Cells = n
	}
}

// WithSearchRadius sets how many neighbour rings Nearest visits.
func WithSearchRadius(r int) Option {
	return func(o *Options) {
		o.SearchRadius = r
	}
}

// DefaultOptions returns the stock grid:
//
//	– Origin       = (0,0,0)
//	– Side         = 10 000
//	– Cells        = 10 (domain [0, 100 000)³)
//	– SearchRadius = 1 (3×3×3 neighbourhood).
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Side:         DefaultSide,
		Cells:        DefaultCells,
		SearchRadius: DefaultSearchRadius,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func (o Options) validate() error {
	if o.Side <= 0 || o.Cells <= 0 || o.SearchRadius <= 0 {
		return ErrBadOptions
	}

	return nil
}

// JunctionBox is a point plus the points it has been linked to.
// It is owned by its Index, which is its only mutator.
type JunctionBox struct {
	id     uint32
	pos    point.Point
	links  []point.Point
	linked *roaring.Bitmap // IDs of linked boxes
}

// ID returns the box identity: its position in the input slice.
func (jb *JunctionBox) ID() uint32 { return jb.id }

// Point returns the box position.
func (jb *JunctionBox) Point() point.Point { return jb.pos }

// Links returns a copy of the adjacency list in link order.
func (jb *JunctionBox) Links() []point.Point {
	out := make([]point.Point, len(jb.links))
	copy(out, jb.links)

	return out
}

// Degree returns the number of links recorded on the box.
func (jb *JunctionBox) Degree() int { return len(jb.links) }

// Linked reports whether the box with the given ID is already linked to jb.
func (jb *JunctionBox) Linked(id uint32) bool {
	return jb.linked.Contains(id)
}

// Candidate is the result of a nearest-unlinked-point search.
type Candidate struct {
	// From is the box the search was run for.
	From uint32
	// To is the nearest eligible box; meaningless when Found() is false.
	To uint32
	// Dist is the squared distance, NoDistance when nothing is eligible.
	Dist int64
	// Exhaustive is true when the search fell back to scanning every box.
	Exhaustive bool
}

// Found reports whether the search produced an eligible box.
func (c Candidate) Found() bool { return c.Dist != NoDistance }

// Less orders candidates by distance, then by the lower and higher box ID
// of the pair. The order is total over distinct pairs.
func (c Candidate) Less(o Candidate) bool {
	if c.Dist != o.Dist {
		return c.Dist < o.Dist
	}
	clo, chi := pair(c.From, c.To)
	olo, ohi := pair(o.From, o.To)
	if clo != olo {
		return clo < olo
	}

	return chi < ohi
}

// Edge is one link between two boxes, with A < B.
type Edge struct {
	A, B uint32
}

func pair(a, b uint32) (uint32, uint32) {
	if a < b {
		return a, b
	}

	return b, a
}
