package engine

import (
	"gonum.org/v1/gonum/floats"
)

// Rank orders the sites of freq by descending count, drops origin, and
// returns at most limit entries.
//
// The order of sites with equal counts is unspecified.
func Rank(freq Frequency, origin string, limit int) []Suggestion {
	sites := make([]string, 0, len(freq))
	counts := make([]float64, 0, len(freq))
	for site, n := range freq {
		if site == origin {
			continue
		}
		sites = append(sites, site)
		counts = append(counts, float64(n))
	}

	// Argsort is ascending; walk it backwards.
	inds := make([]int, len(counts))
	floats.Argsort(counts, inds)

	n := min(limit, len(inds))
	if n < 0 {
		n = 0
	}
	ranked := make([]Suggestion, 0, n)
	for i := len(inds) - 1; i >= 0 && len(ranked) < n; i-- {
		ranked = append(ranked, Suggestion{
			Site:  sites[inds[i]],
			Count: int(counts[i]),
		})
	}
	return ranked
}
