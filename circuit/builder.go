package circuit

import (
	"context"
	"fmt"

	"github.com/katalvlaran/circuits/boxel"
	"github.com/katalvlaran/circuits/unionfind"
	"golang.org/x/sync/errgroup"
)

// Builder drives closest-pair-first linking over one index.
// It owns the index and its union-find for the lifetime of the build and is
// not safe for concurrent use; parallelism happens inside Step.
type Builder struct {
	idx     *boxel.Index
	uf      *unionfind.UnionFind
	opts    Options
	links   []Link
	merges  int
	largest int
}

// NewBuilder returns a Builder over idx. The index should carry no links yet;
// existing links are honoured by the search but not reflected in the
// union-find.
func NewBuilder(idx *boxel.Index, opts ...Option) (*Builder, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}

	return &Builder{
		idx:     idx,
		uf:      unionfind.New(idx.Len()),
		opts:    DefaultOptions(opts...),
		largest: min(1, idx.Len()),
	}, nil
}

// Index returns the underlying index.
func (b *Builder) Index() *boxel.Index { return b.idx }

// Links returns the links made so far, in round order.
func (b *Builder) Links() []Link {
	out := make([]Link, len(b.links))
	copy(out, b.links)

	return out
}

// Rounds returns the number of completed rounds.
func (b *Builder) Rounds() int { return len(b.links) }

// Largest returns the size of the biggest circuit so far.
func (b *Builder) Largest() int { return b.largest }

// Circuits returns the number of circuits so far.
func (b *Builder) Circuits() int { return b.uf.Count() }

// Step runs one round: parallel search, reduce, then link and union.
//
// Returns ErrNoCandidate if no pair is left to link and ErrInvariant (joined
// with the index error) if the index rejects the winning pair.
func (b *Builder) Step() (Link, error) {
	c, err := b.search()
	if err != nil {
		return Link{}, err
	}

	lo, hi := c.From, c.To
	if hi < lo {
		lo, hi = hi, lo
	}
	if err := b.idx.Link(lo, hi); err != nil {
		return Link{}, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	root, merged := b.uf.Union(int(lo), int(hi))
	if merged {
		b.merges++
		b.largest = max(b.largest, b.uf.Size(root))
	}

	link := Link{
		Round:  len(b.links) + 1,
		A:      lo,
		B:      hi,
		From:   b.idx.Box(lo).Point(),
		To:     b.idx.Box(hi).Point(),
		Dist:   c.Dist,
		Merged: merged,
	}
	b.links = append(b.links, link)
	b.opts.Logger.LogRound(context.Background(), link, b.largest)

	return link, nil
}

// search fans Nearest out over contiguous ID ranges and reduces the per-range
// winners to the global minimum. The index is only read here.
func (b *Builder) search() (boxel.Candidate, error) {
	n := b.idx.Len()
	workers := max(1, min(b.opts.Workers, n))
	chunk := (n + workers - 1) / workers
	winners := make([]boxel.Candidate, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		g.Go(func() error {
			local := boxel.Candidate{Dist: boxel.NoDistance}
			for id := lo; id < hi; id++ {
				c := b.idx.Nearest(uint32(id))
				if c.Found() && c.Less(local) {
					local = c
				}
			}
			winners[w] = local

			return nil
		})
	}
	// Workers cannot fail; Wait is the barrier before any mutation.
	_ = g.Wait()

	best := boxel.Candidate{Dist: boxel.NoDistance}
	for _, c := range winners {
		if c.Found() && c.Less(best) {
			best = c
		}
	}
	if !best.Found() {
		return best, ErrNoCandidate
	}

	return best, nil
}

// ComponentSizes recomputes circuit sizes from scratch with a fresh union-find
// over every link recorded in the index, largest first. The sizes sum to the
// number of boxes.
func (b *Builder) ComponentSizes() []int {
	uf := unionfind.New(b.idx.Len())
	for _, e := range b.idx.Edges() {
		uf.Union(int(e.A), int(e.B))
	}

	return uf.Sizes()
}
