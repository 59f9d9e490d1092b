package search

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Phase is the state of a steppable search.
type Phase uint8

const (
	PhaseGenerating Phase = iota
	PhaseComputing
	PhaseSorting
	PhaseDeciding
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhaseComputing:
		return "computing"
	case PhaseSorting:
		return "sorting"
	case PhaseDeciding:
		return "deciding"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// ErrEmptyStack reports a violated internal invariant: a phase needed the top
// call frame but the stack was empty. It is never a normal outcome.
var ErrEmptyStack = errors.New("search: empty call stack")

// frame is one explicit level of the recursion: the node's position, whose
// objective it serves, the descent budget below it, its running bounds, and
// its candidate plies ordered best-first.
type frame[B, M, T any] struct {
	board B
	role  Role
	depth int
	alpha Value[T]
	beta  Value[T]

	plies  []ply[B, M, T]
	next   int      // cursor into plies
	value  Value[T] // folded so far; starts at the role's losing infinity
	best   int      // ply index holding value
	folded bool     // whether any ply has resolved into value
}

// Search is one externally steppable best-move query: alpha-beta reformulated
// over a first-class frame stack (top = last element) instead of native
// recursion, so a driver can advance it one bounded transition at a time and
// interleave it with other work. A Search owns all of its state; dropping the
// value cancels the query.
type Search[B, M, T any] struct {
	eng   *Engine[B, M, T]
	phase Phase
	stack []*frame[B, M, T]

	move  M
	found bool
	err   error
}

// NewSearch starts a steppable query on board, with the same result contract
// as FindMove. Drive it with Step until the phase reaches PhaseEnded, or call
// Run to finish in one loop.
func (e *Engine[B, M, T]) NewSearch(board B) *Search[B, M, T] {
	e.metrics.Start()
	s := &Search[B, M, T]{eng: e, phase: PhaseGenerating}
	s.push(board, e.rootRole, e.maxDepth, NegInf[T](), PosInf[T]())
	return s
}

// Step performs one transition on the top frame and reports whether the
// search is still running. Each transition does bounded work: it never
// descends more than one level.
func (s *Search[B, M, T]) Step() bool {
	switch s.phase {
	case PhaseGenerating:
		s.generating()
	case PhaseComputing:
		s.computing()
	case PhaseSorting:
		s.sorting()
	case PhaseDeciding:
		s.deciding()
	default:
		return false
	}
	return true
}

// Run drives the search to completion.
func (s *Search[B, M, T]) Run() (M, bool) {
	for s.Step() {
	}
	return s.Best()
}

// Best returns the chosen move once the search has ended. A false result on a
// terminal root position is a normal outcome, not an error.
func (s *Search[B, M, T]) Best() (M, bool) {
	return s.move, s.found
}

func (s *Search[B, M, T]) Phase() Phase {
	return s.phase
}

// Err reports an internal-invariant violation, if any ended the search.
func (s *Search[B, M, T]) Err() error {
	return s.err
}

func (s *Search[B, M, T]) push(board B, role Role, depth int, alpha, beta Value[T]) {
	value := NegInf[T]()
	if role == Minimizing {
		value = PosInf[T]()
	}
	s.stack = append(s.stack, &frame[B, M, T]{
		board: board,
		role:  role,
		depth: depth,
		alpha: alpha,
		beta:  beta,
		value: value,
	})
}

func (s *Search[B, M, T]) top() (*frame[B, M, T], bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	return s.stack[len(s.stack)-1], true
}

// fail ends the search with a fatal diagnostic bundling the offending phase.
func (s *Search[B, M, T]) fail(phase Phase) {
	s.err = fmt.Errorf("%w in %s phase", ErrEmptyStack, phase)
	log.Error().Stringer("phase", phase).Msg("steppable search state corrupted")
	s.phase = PhaseEnded
}

// generating lists the top frame's legal moves. An empty list is a valid
// terminal node, resolved later in deciding.
func (s *Search[B, M, T]) generating() {
	f, ok := s.top()
	if !ok {
		s.fail(PhaseGenerating)
		return
	}
	f.plies = s.eng.generate(f.board)
	s.phase = PhaseComputing
}

// computing attaches each generated move's resulting position and heuristic.
func (s *Search[B, M, T]) computing() {
	f, ok := s.top()
	if !ok {
		s.fail(PhaseComputing)
		return
	}
	s.eng.attach(f.board, f.plies)
	s.phase = PhaseSorting
}

// sorting orders the plies best-first for the frame's role, so downstream
// cutoffs fire as early as possible.
func (s *Search[B, M, T]) sorting() {
	f, ok := s.top()
	if !ok {
		s.fail(PhaseSorting)
		return
	}
	s.eng.order(f.plies, f.role)
	if len(f.plies) > 0 {
		s.eng.metrics.AddNode()
	}
	s.phase = PhaseDeciding
}

// deciding inspects the top frame's candidate list: it folds leaf candidates
// directly, descends into deeper ones, applies cutoffs, and pops exhausted
// frames, folding their value into the parent. The machine stays in this
// phase across ascents; only a descent re-enters generating.
func (s *Search[B, M, T]) deciding() {
	f, ok := s.top()
	if !ok {
		s.fail(PhaseDeciding)
		return
	}
	d := s.eng.rules.Domain

	if f.next >= len(f.plies) { // all candidates resolved: ascend
		s.pop(f)
		return
	}
	if d.Compare(f.alpha, f.beta) >= 0 { // cutoff: drop remaining siblings
		s.eng.metrics.AddCutoff()
		s.pop(f)
		return
	}

	p := &f.plies[f.next]
	if f.depth <= 1 {
		// The descent budget below this frame is spent: the candidate's
		// one-ply heuristic is its final value.
		s.eng.metrics.AddLeaf()
		s.fold(f, p.heur)
		f.next++
		return
	}

	// Descend: a fresh frame for the chosen child, with the opposite role, a
	// decremented budget and the current bounds.
	s.push(p.after, f.role.Opponent(), f.depth-1, f.alpha, f.beta)
	s.phase = PhaseGenerating
}

// fold resolves the frame's current candidate to v and updates the frame's
// running value and bound.
func (s *Search[B, M, T]) fold(f *frame[B, M, T], v Value[T]) {
	d := s.eng.rules.Domain
	if f.role == Maximizing {
		if d.Compare(v, f.value) > 0 {
			f.value, f.best = v, f.next
		}
		f.alpha = d.Max(f.alpha, f.value)
	} else {
		if d.Compare(v, f.value) < 0 {
			f.value, f.best = v, f.next
		}
		f.beta = d.Min(f.beta, f.value)
	}
	f.folded = true
}

// pop ascends out of frame f. At the root the query is complete; otherwise
// f's value resolves the parent's current candidate. A frame that never
// folded anything is a terminal node, whose value is the heuristic the parent
// already attached to it.
func (s *Search[B, M, T]) pop(f *frame[B, M, T]) {
	s.stack = s.stack[:len(s.stack)-1]

	if len(s.stack) == 0 { // f was the root
		if len(f.plies) > 0 {
			s.move, s.found = f.plies[f.best].move, true
		}
		s.phase = PhaseEnded
		return
	}

	parent := s.stack[len(s.stack)-1]
	v := f.value
	if !f.folded {
		s.eng.metrics.AddLeaf()
		v = parent.plies[parent.next].heur
	}
	s.fold(parent, v)
	parent.next++
}
