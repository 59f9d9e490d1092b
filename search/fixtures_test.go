package search_test

import (
	"golang.org/x/exp/rand"

	"gametree/search"
	"gametree/tictactoe"
)

// tree is a hand-built game: boards and moves are node names, and every node
// carries the heuristic score the engine sees for it.
type tree map[string]treeNode

type treeNode struct {
	children []string
	score    int
}

func (t tree) rules() search.Rules[string, string, int] {
	return search.Rules[string, string, int]{
		Moves: func(b string) []string {
			return t[b].children
		},
		Apply: func(_ string, m string) string {
			return m
		},
		Score: func(after string, _ string) int {
			return t[after].score
		},
		Domain: search.Ordered[int](),
	}
}

// randomPosition plays n random legal moves from the opening position.
func randomPosition(rng *rand.Rand, n int) tictactoe.Board {
	b := tictactoe.New()
	for i := 0; i < n; i++ {
		moves := tictactoe.Moves(b)
		if len(moves) == 0 {
			return b
		}
		b = tictactoe.Apply(b, moves[rng.Intn(len(moves))])
	}
	return b
}
