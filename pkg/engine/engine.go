// Package engine turns a site-link graph into suggested sites.
//
// It provides two independent counting engines over a read-only core.Graph:
// a bounded-level breadth expansion that counts dequeues, and a random walk
// that counts landings. Both produce a Frequency that Rank turns into an
// ordered list of suggestions.
//
// Basic usage:
//
//	g, err := core.Build(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng := engine.New(g, engine.DefaultOptions())
//	for _, s := range eng.Suggest(engine.Query{Mode: engine.ModeBFS, Start: "cnn.com", Budget: 5}) {
//	    fmt.Println(s.Site)
//	}
package engine

import (
	"log/slog"
	"math/rand/v2"

	"github.com/sanonone/honeybee/pkg/core"
)

// DefaultLimit is the number of suggestions printed per mode.
const DefaultLimit = 5

// Rand is the source of uniform picks used by the random walk.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// Options configures an Engine.
type Options struct {
	// Seed makes every walk reproducible when non-zero.
	// Zero draws a fresh seed for each walk.
	Seed uint64

	// Rand overrides the random source entirely. Mainly for tests.
	Rand Rand

	// Logger defaults to slog.Default() tagged with component=engine.
	Logger *slog.Logger
}

// DefaultOptions returns options that draw fresh entropy for every walk.
func DefaultOptions() Options {
	return Options{}
}

// Engine runs suggestion queries against a single graph.
// The graph is never modified, and each query builds its own Frequency.
type Engine struct {
	graph *core.Graph
	opts  Options
	log   *slog.Logger
}

// New creates an Engine over g.
func New(g *core.Graph, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "engine")
	}
	return &Engine{
		graph: g,
		opts:  opts,
		log:   logger,
	}
}

// source returns the random source for one walk.
func (e *Engine) source() Rand {
	if e.opts.Rand != nil {
		return e.opts.Rand
	}
	if e.opts.Seed != 0 {
		return rand.New(rand.NewPCG(e.opts.Seed, e.opts.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Suggest runs the engine selected by q and ranks its result,
// excluding q.Start from the output.
func (e *Engine) Suggest(q Query) []Suggestion {
	var freq Frequency
	switch q.Mode {
	case ModeBFS:
		freq = e.Traverse(q.Start, q.Budget)
	case ModeWalk:
		freq = e.Walk(q.Start, q.Budget)
	default:
		e.log.Warn("Unknown suggestion mode", "mode", q.Mode)
		return []Suggestion{}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Rank(freq, q.Start, limit)
}
