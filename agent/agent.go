package agent

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gametree/search"
	"gametree/tictactoe"
)

// Searcher picks moves by recursive alpha-beta search.
type Searcher struct {
	name   string
	engine *search.Engine[tictactoe.Board, tictactoe.Move, int]
}

func NewSearcher(mark tictactoe.Mark, depth int) *Searcher {
	return &Searcher{
		name:   fmt.Sprintf("alphabeta-%s-d%d", mark, depth),
		engine: search.New(tictactoe.Rules(mark), depth),
	}
}

func (s *Searcher) Name() string {
	return s.name
}

func (s *Searcher) ChooseMove(b tictactoe.Board) (tictactoe.Move, bool) {
	return s.engine.FindMove(b)
}

// Oracle picks moves by unpruned minimax. Slower than Searcher with the same
// decisions; useful as a strength baseline.
type Oracle struct {
	name   string
	engine *search.Engine[tictactoe.Board, tictactoe.Move, int]
}

func NewOracle(mark tictactoe.Mark, depth int) *Oracle {
	return &Oracle{
		name:   fmt.Sprintf("minimax-%s-d%d", mark, depth),
		engine: search.New(tictactoe.Rules(mark), depth),
	}
}

func (o *Oracle) Name() string {
	return o.name
}

func (o *Oracle) ChooseMove(b tictactoe.Board) (tictactoe.Move, bool) {
	return o.engine.FindMoveMinimax(b)
}

// Stepwise picks moves by driving a steppable search a bounded number of
// transitions at a time, handing control to yield between chunks. This is
// how a host event loop interleaves search with its other work.
type Stepwise struct {
	name         string
	engine       *search.Engine[tictactoe.Board, tictactoe.Move, int]
	stepsPerTick int
	yield        func()
}

func NewStepwise(mark tictactoe.Mark, depth, stepsPerTick int, yield func()) *Stepwise {
	if stepsPerTick <= 0 {
		stepsPerTick = 64
	}
	if yield == nil {
		yield = func() {}
	}
	return &Stepwise{
		name:         fmt.Sprintf("stepwise-%s-d%d", mark, depth),
		engine:       search.New(tictactoe.Rules(mark), depth),
		stepsPerTick: stepsPerTick,
		yield:        yield,
	}
}

func (s *Stepwise) Name() string {
	return s.name
}

func (s *Stepwise) ChooseMove(b tictactoe.Board) (tictactoe.Move, bool) {
	q := s.engine.NewSearch(b)
	for {
		for i := 0; i < s.stepsPerTick; i++ {
			if !q.Step() {
				if err := q.Err(); err != nil {
					log.Error().Err(err).Msg("stepwise search failed")
				}
				return q.Best()
			}
		}
		s.yield()
	}
}

// Random plays uniformly random legal moves: the baseline opponent.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{
		name: fmt.Sprintf("random-%d", seed),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Name() string {
	return r.name
}

func (r *Random) ChooseMove(b tictactoe.Board) (tictactoe.Move, bool) {
	moves := tictactoe.Moves(b)
	if len(moves) == 0 {
		return 0, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
