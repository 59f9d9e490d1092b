package search

// Rules bundles the caller-supplied functions the engine searches over. The
// engine treats boards and moves as opaque values: everything it knows about
// the game comes from these callbacks, which must all be pure.
type Rules[B, M, T any] struct {
	// Moves enumerates the legal moves of a position in a deterministic
	// order. An empty result marks a terminal position.
	Moves func(board B) []M
	// Apply plays a move and returns the resulting position. It must not
	// mutate its input.
	Apply func(board B, move M) B
	// Score evaluates the position reached via move. The perspective (whose
	// advantage a positive score means) must be the root player's at every
	// call site.
	Score func(after B, move M) T
	// Domain orders and negates scores.
	Domain Domain[T]
}

// Role marks whose objective a node serves. It is carried explicitly per
// frame rather than derived from depth parity.
type Role uint8

const (
	Maximizing Role = iota
	Minimizing
)

func (r Role) Opponent() Role {
	if r == Maximizing {
		return Minimizing
	}
	return Maximizing
}

func (r Role) String() string {
	if r == Maximizing {
		return "maximizing"
	}
	return "minimizing"
}
