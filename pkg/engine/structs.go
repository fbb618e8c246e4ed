package engine

// Mode selects which counting engine answers a Query.
type Mode string

const (
	// ModeBFS counts dequeues of a bounded-level breadth expansion.
	ModeBFS Mode = "bfs"
	// ModeWalk counts landings of a fixed-length random walk.
	ModeWalk Mode = "walk"
)

// Query describes one suggestion request.
type Query struct {
	Mode  Mode
	Start string

	// Budget is the level count for ModeBFS and the step count for ModeWalk.
	// A negative level budget behaves like 0.
	Budget int

	// Limit caps the number of suggestions. 0 means DefaultLimit.
	Limit int
}
