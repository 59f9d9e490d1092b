package arena

import (
	"github.com/rs/zerolog/log"

	"gametree/tictactoe"
)

// Player chooses one move per turn. A false result means the player sees no
// legal move, which ends the game.
type Player interface {
	Name() string
	ChooseMove(board tictactoe.Board) (tictactoe.Move, bool)
}

// Result of one finished game.
type Result struct {
	Winner tictactoe.Mark // Empty on a draw
	Moves  int
	Final  tictactoe.Board
}

// Run plays x against o from the opening position until the game ends, and
// returns the outcome.
func Run(x, o Player) Result {
	players := map[tictactoe.Mark]Player{tictactoe.X: x, tictactoe.O: o}
	board := tictactoe.New()
	moves := 0

	for {
		current := players[board.Turn()]
		move, ok := current.ChooseMove(board)
		if !ok { // terminal: won or drawn
			break
		}
		board = tictactoe.Apply(board, move)
		moves++
		log.Debug().
			Str("player", current.Name()).
			Int("cell", int(move)).
			Str("board", board.String()).
			Msg("move played")
	}

	winner, _ := tictactoe.Winner(board)
	log.Info().
		Str("x", x.Name()).
		Str("o", o.Name()).
		Stringer("winner", winner).
		Int("moves", moves).
		Msg("game over")
	return Result{Winner: winner, Moves: moves, Final: board}
}
