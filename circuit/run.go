package circuit

import (
	"fmt"
	"time"

	"github.com/katalvlaran/circuits/boxel"
)

// RunBounded runs exactly rounds rounds (RoundsFor(N) when rounds <= 0), then
// recomputes circuits over every recorded link and returns the product of
// the three largest circuit sizes. With fewer than three circuits the
// product covers those that exist.
//
// Progress reports rounds completed. Any round error aborts the build.
func (b *Builder) RunBounded(rounds int) (int64, error) {
	if rounds <= 0 {
		rounds = RoundsFor(b.idx.Len())
	}
	log := b.opts.Logger.ForMode(ModeBounded)
	log.Info("build start", "boxes", b.idx.Len(), "rounds", rounds, "workers", b.opts.Workers)
	start := time.Now()

	b.opts.Progress.Start(rounds)
	defer b.opts.Progress.Finish()
	for i := 0; i < rounds; i++ {
		if _, err := b.Step(); err != nil {
			return 0, fmt.Errorf("round %d: %w", b.Rounds()+1, err)
		}
		b.opts.Progress.Report(i + 1)
	}

	sizes := b.ComponentSizes()
	value := topProduct(sizes, 3)
	log.Info("build done", "rounds", rounds, "circuits", len(sizes), "value", value, "elapsed", time.Since(start))

	return value, nil
}

// RunFull runs rounds until one circuit spans every box and returns the
// product of the X coordinates of the two boxes joined by that final link.
//
// Progress reports the largest circuit size. Returns ErrNoCandidate when the
// boxes are already a single circuit (including a single box), and
// ErrInvariant if more merges happen than N-1 or every pair gets linked
// without convergence; neither can occur for a finite point set.
func (b *Builder) RunFull() (int64, error) {
	n := b.idx.Len()
	if b.uf.Count() == 1 {
		return 0, fmt.Errorf("%w: %d box(es) already form one circuit", ErrNoCandidate, n)
	}
	log := b.opts.Logger.ForMode(ModeFull)
	log.Info("build start", "boxes", n, "workers", b.opts.Workers)
	start := time.Now()

	b.opts.Progress.Start(n)
	defer b.opts.Progress.Finish()
	remaining := n*(n-1)/2 - b.idx.NumLinks()
	for i := 0; i < remaining; i++ {
		link, err := b.Step()
		if err != nil {
			return 0, fmt.Errorf("round %d: %w", b.Rounds()+1, err)
		}
		b.opts.Progress.Report(b.largest)
		if b.merges > n-1 {
			return 0, fmt.Errorf("%w: %d merges over %d boxes", ErrInvariant, b.merges, n)
		}
		if link.Merged && b.uf.Size(int(link.A)) == n {
			value := link.From.X * link.To.X
			log.Info("build done", "rounds", b.Rounds(), "last", link.From.String()+"-"+link.To.String(),
				"value", value, "elapsed", time.Since(start))

			return value, nil
		}
	}

	return 0, fmt.Errorf("%w: no single circuit after %d rounds", ErrInvariant, b.Rounds())
}

// Compute builds over idx with opts and dispatches on opts.Mode:
//
//	– ModeBounded: RunBounded(opts.Rounds).
//	– ModeFull:    RunFull().
//	– otherwise:   ErrUnknownMode.
func Compute(idx *boxel.Index, opts ...Option) (Result, error) {
	o := DefaultOptions(opts...)
	if o.Mode != ModeBounded && o.Mode != ModeFull {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMode, o.Mode)
	}
	b, err := NewBuilder(idx, opts...)
	if err != nil {
		return Result{}, err
	}

	var value int64
	if o.Mode == ModeBounded {
		value, err = b.RunBounded(o.Rounds)
	} else {
		value, err = b.RunFull()
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Mode:   o.Mode,
		Value:  value,
		Rounds: b.Rounds(),
		Sizes:  b.ComponentSizes(),
	}
	if len(b.links) > 0 {
		res.Last = b.links[len(b.links)-1]
	}

	return res, nil
}

// topProduct multiplies the first k entries of sizes (sorted descending).
func topProduct(sizes []int, k int) int64 {
	p := int64(1)
	for i := 0; i < k && i < len(sizes); i++ {
		p *= int64(sizes[i])
	}

	return p
}
