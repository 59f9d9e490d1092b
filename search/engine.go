package search

import "slices"

// Engine runs best-move queries over one game's rules at a fixed depth
// budget. It holds no per-query state: queries do not share anything, so an
// Engine is safe for concurrent use as long as the rules are pure.
type Engine[B, M, T any] struct {
	rules    Rules[B, M, T]
	maxDepth int
	rootRole Role
	metrics  Collector
}

type settings struct {
	rootRole Role
	metrics  Collector
}

type Option func(*settings)

// WithMetrics attaches a collector observing every query the engine runs.
func WithMetrics(c Collector) Option {
	return func(s *settings) {
		if c != nil {
			s.metrics = c
		}
	}
}

// WithRootRole sets whose objective the root serves. The default Maximizing
// suits a heuristic written from the searching player's perspective.
func WithRootRole(role Role) Option {
	return func(s *settings) {
		s.rootRole = role
	}
}

// New builds an engine searching maxDepth plies deep.
func New[B, M, T any](rules Rules[B, M, T], maxDepth int, options ...Option) *Engine[B, M, T] {
	if rules.Moves == nil || rules.Apply == nil || rules.Score == nil {
		panic("search: rules must supply Moves, Apply and Score")
	}
	if rules.Domain.Cmp == nil {
		panic("search: rules must supply a score comparator")
	}
	if maxDepth < 1 {
		panic("search: depth must be at least 1")
	}

	s := settings{rootRole: Maximizing, metrics: NewNoCollector()}
	for _, option := range options {
		option(&s)
	}

	return &Engine[B, M, T]{
		rules:    rules,
		maxDepth: maxDepth,
		rootRole: s.rootRole,
		metrics:  s.metrics,
	}
}

// ply is one candidate move of a node: the move itself, the position it
// reaches, and that position's one-ply heuristic value.
type ply[B, M, T any] struct {
	move  M
	after B
	heur  Value[T]
}

// generate lists a position's plies, not yet scored.
func (e *Engine[B, M, T]) generate(board B) []ply[B, M, T] {
	moves := e.rules.Moves(board)
	plies := make([]ply[B, M, T], len(moves))
	for i, m := range moves {
		plies[i].move = m
	}
	return plies
}

// attach computes each ply's resulting position and heuristic value.
func (e *Engine[B, M, T]) attach(board B, plies []ply[B, M, T]) {
	for i := range plies {
		plies[i].after = e.rules.Apply(board, plies[i].move)
		plies[i].heur = Finite(e.rules.Score(plies[i].after, plies[i].move))
	}
}

// order stable-sorts plies best-first for role; ties keep generation order.
// Every evaluator orders candidates this way, so tie-breaks agree across the
// oracle, the pruned search and the steppable search.
func (e *Engine[B, M, T]) order(plies []ply[B, M, T], role Role) {
	d := e.rules.Domain
	slices.SortStableFunc(plies, func(a, b ply[B, M, T]) int {
		c := d.Compare(a.heur, b.heur)
		if role == Maximizing {
			return -c
		}
		return c
	})
}

// expand returns the scored children of a node, best first.
func (e *Engine[B, M, T]) expand(board B, role Role) []ply[B, M, T] {
	plies := e.generate(board)
	e.attach(board, plies)
	e.order(plies, role)
	return plies
}

// ScoredMove pairs a root move with its deep search value.
type ScoredMove[M, T any] struct {
	Move  M
	Value Value[T]
}

// FindMove returns the best move by alpha-beta search. The second result is
// false only on a terminal position: "no legal move" is not an error.
func (e *Engine[B, M, T]) FindMove(board B) (M, bool) {
	return e.first(e.Rank(board))
}

// FindMoveMinimax is the unpruned oracle: same contract and same result as
// FindMove, visiting every node. It exists so the pruned searches can be
// checked against it.
func (e *Engine[B, M, T]) FindMoveMinimax(board B) (M, bool) {
	e.metrics.Start()
	return e.first(e.rank(board, func(p ply[B, M, T]) Value[T] {
		return e.minimaxValue(p.after, p.heur, e.maxDepth-1, e.rootRole.Opponent())
	}))
}

// Rank scores every legal root move by alpha-beta search and returns the
// (move, value) pairs sorted best-first for the root role. The sort is
// stable, so equal values keep the candidate ordering.
func (e *Engine[B, M, T]) Rank(board B) []ScoredMove[M, T] {
	e.metrics.Start()
	return e.rank(board, func(p ply[B, M, T]) Value[T] {
		return e.alphabetaValue(p.after, p.heur, e.maxDepth-1, NegInf[T](), PosInf[T](), e.rootRole.Opponent())
	})
}

// rank is the shared root driver. Each root child is evaluated with a full
// window so its deep value is exact and ties resolve identically whichever
// evaluator produced it.
func (e *Engine[B, M, T]) rank(board B, deep func(ply[B, M, T]) Value[T]) []ScoredMove[M, T] {
	plies := e.expand(board, e.rootRole)
	if len(plies) == 0 {
		return nil
	}
	e.metrics.AddNode()

	ranked := make([]ScoredMove[M, T], len(plies))
	for i, p := range plies {
		ranked[i] = ScoredMove[M, T]{Move: p.move, Value: deep(p)}
	}

	d := e.rules.Domain
	slices.SortStableFunc(ranked, func(a, b ScoredMove[M, T]) int {
		c := d.Compare(a.Value, b.Value)
		if e.rootRole == Maximizing {
			return -c
		}
		return c
	})
	return ranked
}

func (e *Engine[B, M, T]) first(ranked []ScoredMove[M, T]) (M, bool) {
	if len(ranked) == 0 {
		var zero M
		return zero, false
	}
	return ranked[0].Move, true
}
