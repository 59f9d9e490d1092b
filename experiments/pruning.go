package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"gametree/search"
	"gametree/tictactoe"
)

// Record is one evaluator run at one depth.
type Record struct {
	Depth     int
	Algorithm string
	Nodes     int64
	Leaves    int64
	Cutoffs   int64
	Duration  time.Duration
	Move      tictactoe.Move
}

// RunPruning measures how much alpha-beta prunes relative to the minimax
// oracle on the opening position, depth by depth. Both evaluators must pick
// the same move at every depth; the leaf counts show the saving.
func RunPruning(maxDepth int) []Record {
	board := tictactoe.New()
	records := make([]Record, 0, 2*maxDepth)

	for depth := 1; depth <= maxDepth; depth++ {
		rules := tictactoe.Rules(tictactoe.X)

		for _, algorithm := range []string{"minimax", "alphabeta"} {
			c := search.NewCollector()
			engine := search.New(rules, depth, search.WithMetrics(c))

			var move tictactoe.Move
			var ok bool
			if algorithm == "minimax" {
				move, ok = engine.FindMoveMinimax(board)
			} else {
				move, ok = engine.FindMove(board)
			}
			if !ok {
				log.Warn().Int("depth", depth).Msg("no move on the opening position")
				continue
			}

			m := c.Complete()
			records = append(records, Record{
				Depth:     depth,
				Algorithm: algorithm,
				Nodes:     m.Nodes,
				Leaves:    m.Leaves,
				Cutoffs:   m.Cutoffs,
				Duration:  m.Duration,
				Move:      move,
			})
			log.Info().
				Str("algorithm", algorithm).
				Int("depth", depth).
				Int64("nodes", m.Nodes).
				Int64("leaves", m.Leaves).
				Int64("cutoffs", m.Cutoffs).
				Dur("took", m.Duration).
				Msg("pruning run complete")
		}
	}
	return records
}
