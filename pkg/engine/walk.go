package engine

import (
	"time"

	"github.com/sanonone/honeybee/pkg/metrics"
)

// Walk takes steps random moves from start along out-edges and counts how
// often each site is landed on.
//
// Each move picks uniformly among the current site's out-edges. A site
// without out-edges keeps the walk in place and records nothing. A move that
// resolves to the current site itself (a self-link) is not counted; the
// comparison is by graph position, not by name.
//
// An unknown start, or steps <= 0, yields an empty Frequency.
func (e *Engine) Walk(start string, steps int) Frequency {
	began := time.Now()
	freq := Frequency{}

	curr, found := e.graph.Lookup(start)
	if !found {
		e.log.Info("Start site not in graph", "mode", ModeWalk, "site", start)
		metrics.EngineRunsTotal.WithLabelValues(string(ModeWalk), "unknown_start").Inc()
		return freq
	}

	rng := e.source()
	stalled := 0
	for range max(steps, 0) {
		out := e.graph.Out(curr)
		if len(out) == 0 {
			stalled++
			continue
		}

		next := out[rng.IntN(len(out))]
		if next != curr {
			freq[e.graph.Name(next)]++
		}
		curr = next
	}

	total := freq.Total()
	metrics.VisitsTotal.WithLabelValues(string(ModeWalk)).Add(float64(total))
	metrics.EngineRunsTotal.WithLabelValues(string(ModeWalk), "ok").Inc()
	metrics.EngineDuration.WithLabelValues(string(ModeWalk)).Observe(time.Since(began).Seconds())
	e.log.Debug("Random walk finished",
		"site", start,
		"steps", steps,
		"landings", total,
		"stalled", stalled,
		"distinct", len(freq),
		"duration", time.Since(began))

	return freq
}
