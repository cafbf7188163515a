package circuit

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/circuits/point"
	"github.com/katalvlaran/circuits/progress"
)

var (
	// ErrNilIndex indicates NewBuilder was called without an index.
	ErrNilIndex = errors.New("circuit: nil index")
	// ErrNoCandidate indicates a round found no pair left to link.
	ErrNoCandidate = errors.New("circuit: no connection possible")
	// ErrInvariant indicates a logic fault: a rejected link or a full build
	// that did not converge within the possible number of merges.
	ErrInvariant = errors.New("circuit: invariant violated")
	// ErrUnknownMode indicates an unsupported Mode.
	ErrUnknownMode = errors.New("circuit: unknown mode")
)

// Mode selects the stopping policy.
type Mode string

const (
	// ModeBounded runs a fixed number of rounds.
	ModeBounded Mode = "bounded"
	// ModeFull runs until a single circuit spans every box.
	ModeFull Mode = "full"
)

const (
	// FixtureSize is the point count of the small reference fixture.
	FixtureSize = 20
	// FixtureRounds is the bounded round budget for the fixture.
	FixtureRounds = 10
	// DefaultRounds is the bounded round budget for full-size input.
	DefaultRounds = 1000
)

// RoundsFor returns the bounded round budget for a point set of size n:
// FixtureRounds for the 20-point fixture, DefaultRounds otherwise.
func RoundsFor(n int) int {
	if n == FixtureSize {
		return FixtureRounds
	}

	return DefaultRounds
}

// Options configures a Builder.
type Options struct {
	// Mode is the stopping policy used by Compute.
	Mode Mode
	// Rounds is the bounded round budget; 0 means RoundsFor(N).
	Rounds int
	// Workers bounds the parallel search fan-out; values < 1 mean GOMAXPROCS.
	Workers int
	// Progress observes each round. Never nil after DefaultOptions.
	Progress progress.Reporter
	// Logger receives build and round records. Never nil after DefaultOptions.
	Logger *Logger
}

// Option configures Options.
type Option func(*Options)

// WithMode sets the stopping policy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithRounds sets the bounded round budget.
func WithRounds(n int) Option {
	return func(o *Options) {
		o.Rounds = n
	}
}

// WithWorkers sets the parallel search fan-out.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithProgress sets the progress reporter; nil restores progress.Nop.
func WithProgress(r progress.Reporter) Option {
	return func(o *Options) {
		o.Progress = r
	}
}

// WithLogger sets the logger; nil restores NoopLogger.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with opts applied over:
//
//	– Mode     = ModeFull
//	– Rounds   = 0 (RoundsFor(N))
//	– Workers  = runtime.GOMAXPROCS(0)
//	– Progress = progress.Nop{}
//	– Logger   = NoopLogger().
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Mode:     ModeFull,
		Workers:  runtime.GOMAXPROCS(0),
		Progress: progress.Nop{},
		Logger:   NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Progress == nil {
		o.Progress = progress.Nop{}
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}

	return o
}

// Link is one round's outcome.
type Link struct {
	// Round is 1-based.
	Round int
	// A and B are the linked box IDs, A < B.
	A, B uint32
	// From and To are the positions of A and B.
	From, To point.Point
	// Dist is the squared distance between From and To.
	Dist int64
	// Merged is false when A and B were already in one circuit.
	Merged bool
}

// Result is the outcome of Compute.
type Result struct {
	Mode Mode
	// Value is the mode's answer: the top-three size product (ModeBounded)
	// or the X product of the final link (ModeFull).
	Value int64
	// Rounds is the number of rounds run.
	Rounds int
	// Last is the final link made.
	Last Link
	// Sizes are the circuit sizes at the end, largest first.
	Sizes []int
}
