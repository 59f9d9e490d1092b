package tictactoe

import "gametree/search"

// Line weights by own-mark count. A completed line dwarfs any sum of partial
// lines: 8 lines × 10 < 1000, so only a win reaches ±1000.
var weights = [4]int{0, 1, 10, 1000}

// ScoreFor builds the heuristic from player's perspective: lines still open
// for player score by mark count, lines open for the opponent score the same
// amounts negative. Blocked lines contribute nothing.
func ScoreFor(player Mark) func(Board, Move) int {
	opponent := player.Opponent()
	return func(b Board, _ Move) int {
		score := 0
		for _, ln := range lines {
			var mine, theirs int
			for _, i := range ln {
				switch b.cells[i] {
				case player:
					mine++
				case opponent:
					theirs++
				}
			}
			if theirs == 0 {
				score += weights[mine]
			}
			if mine == 0 {
				score -= weights[theirs]
			}
		}
		return score
	}
}

// Rules bundles the engine callbacks for a search on player's behalf.
func Rules(player Mark) search.Rules[Board, Move, int] {
	return search.Rules[Board, Move, int]{
		Moves:  Moves,
		Apply:  Apply,
		Score:  ScoreFor(player),
		Domain: search.Ordered[int](),
	}
}
