// Package app wires the honeybee pipeline: build the graph once, run the
// requested engines one after the other, rank, and print.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sanonone/honeybee/internal/config"
	"github.com/sanonone/honeybee/internal/logging"
	"github.com/sanonone/honeybee/pkg/core"
	"github.com/sanonone/honeybee/pkg/engine"
	"github.com/sanonone/honeybee/pkg/metrics"
)

// App runs a single configured honeybee pass.
type App struct {
	cfg    config.Config
	out    io.Writer
	logger *slog.Logger
}

// New returns an App that prints suggestion blocks to out.
// It logs through the slog default configured by logging.Init.
func New(cfg config.Config, out io.Writer) *App {
	return &App{
		cfg:    cfg,
		out:    out,
		logger: logging.New("app"),
	}
}

// Run reads link pairs from the configured input (stdin when none is set),
// then prints one block per requested mode: traversal first, walk second.
func (a *App) Run(stdin io.Reader) error {
	g, err := a.loadGraph(stdin)
	if err != nil {
		return err
	}

	eng := engine.New(g, engine.Options{Seed: a.cfg.Seed, Logger: logging.New("engine")})

	if a.cfg.BFSEnabled() {
		suggestions := eng.Suggest(engine.Query{
			Mode:   engine.ModeBFS,
			Start:  a.cfg.BFSStart,
			Budget: a.cfg.Levels,
			Limit:  a.cfg.Limit,
		})
		if err := WriteSuggestions(a.out, suggestions); err != nil {
			return err
		}
	}

	if a.cfg.WalkEnabled() {
		a.logger.Debug("Random walk seed", "seed", a.cfg.Seed, "fresh", a.cfg.Seed == 0)
		suggestions := eng.Suggest(engine.Query{
			Mode:   engine.ModeWalk,
			Start:  a.cfg.WalkStart,
			Budget: a.cfg.Steps,
			Limit:  a.cfg.Limit,
		})
		if err := WriteSuggestions(a.out, suggestions); err != nil {
			return err
		}
	}

	if a.cfg.MetricsPath != "" {
		if err := metrics.WriteTextfile(a.cfg.MetricsPath); err != nil {
			return err
		}
		a.logger.Debug("Metrics written", "path", a.cfg.MetricsPath)
	}

	return nil
}

// loadGraph builds the graph from stdin or from the configured file.
func (a *App) loadGraph(stdin io.Reader) (*core.Graph, error) {
	began := time.Now()

	r := stdin
	source := "stdin"
	if !a.cfg.ReadsStdin() {
		f, err := os.Open(a.cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
		source = a.cfg.Input
	}

	g, err := core.Build(r)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph from %s: %w", source, err)
	}

	metrics.GraphNodes.Set(float64(g.Len()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))
	a.logger.Debug("Graph loaded",
		"source", source,
		"sites", g.Len(),
		"links", g.EdgeCount(),
		"duration", time.Since(began))

	return g, nil
}
