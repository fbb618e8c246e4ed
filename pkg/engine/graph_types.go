package engine

// Frequency counts visit events per site for a single engine run.
// Only the counts matter; iteration order carries no meaning.
type Frequency map[string]int

// Total returns the number of recorded visit events.
func (f Frequency) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Suggestion is a ranked site with the count that placed it.
type Suggestion struct {
	Site  string
	Count int
}
