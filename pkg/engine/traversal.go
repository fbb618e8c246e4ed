package engine

import (
	"time"

	"github.com/sanonone/honeybee/pkg/core"
	"github.com/sanonone/honeybee/pkg/metrics"
)

// Traverse expands breadth-first from start for the given number of levels
// and counts how often each site is dequeued.
//
// There is no visited set: a site reachable along several paths is queued,
// and counted, once per path. Level 0 is the start site alone, so levels = 0
// counts only start and levels = 1 adds its direct targets. The run stops as
// soon as the level budget goes negative, even in the middle of a level.
//
// An unknown start yields an empty Frequency.
func (e *Engine) Traverse(start string, levels int) Frequency {
	began := time.Now()
	freq := Frequency{}

	root, found := e.graph.Lookup(start)
	if !found {
		e.log.Info("Start site not in graph", "mode", ModeBFS, "site", start)
		metrics.EngineRunsTotal.WithLabelValues(string(ModeBFS), "unknown_start").Inc()
		return freq
	}

	queue := []core.NodeID{root}
	remaining := 1 // entries left in the level being drained
	nextLevel := 0 // entries queued for the following level
	// Clamped so decrementing MinInt cannot wrap.
	levelsLeft := max(levels, -1)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		freq[e.graph.Name(curr)]++

		out := e.graph.Out(curr)
		nextLevel += len(out)
		queue = append(queue, out...)

		remaining--
		if remaining == 0 {
			remaining = nextLevel
			nextLevel = 0
			levelsLeft--
		}
		if levelsLeft < 0 {
			break
		}
	}

	total := freq.Total()
	metrics.VisitsTotal.WithLabelValues(string(ModeBFS)).Add(float64(total))
	metrics.EngineRunsTotal.WithLabelValues(string(ModeBFS), "ok").Inc()
	metrics.EngineDuration.WithLabelValues(string(ModeBFS)).Observe(time.Since(began).Seconds())
	e.log.Debug("Traversal finished",
		"site", start,
		"levels", levels,
		"dequeues", total,
		"distinct", len(freq),
		"duration", time.Since(began))

	return freq
}
