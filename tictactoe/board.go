package tictactoe

import (
	"fmt"
	"strings"
)

// Mark is a cell owner, or Empty for an open cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// Move is a cell index, 0 through 8, row-major.
type Move uint8

// Board is a 3×3 position plus the side to move. It is a value type: Apply
// returns a copy, so boards are safe to share and never mutated in place.
type Board struct {
	cells [9]Mark
	turn  Mark
}

// New is the opening position, X to move.
func New() Board {
	return Board{turn: X}
}

func (b Board) Turn() Mark {
	return b.turn
}

func (b Board) Cell(i int) Mark {
	return b.cells[i]
}

func (b Board) String() string {
	var sb strings.Builder
	for _, c := range b.cells {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Parse reads a 9-cell position of 'X', 'O' and '.'. The side to move is
// implied by the mark counts.
func Parse(s string) (Board, error) {
	if len(s) != 9 {
		return Board{}, fmt.Errorf("tictactoe: position must be 9 cells, got %d", len(s))
	}
	var b Board
	var xs, os int
	for i, r := range s {
		switch r {
		case 'X':
			b.cells[i] = X
			xs++
		case 'O':
			b.cells[i] = O
			os++
		case '.':
		default:
			return Board{}, fmt.Errorf("tictactoe: bad cell %q at index %d", r, i)
		}
	}
	if xs < os || xs > os+1 {
		return Board{}, fmt.Errorf("tictactoe: impossible mark counts, %d X vs %d O", xs, os)
	}
	b.turn = X
	if xs > os {
		b.turn = O
	}
	return b, nil
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Winner returns the mark owning a completed line, and whether the game is
// over. A full board with no completed line is over with an Empty winner.
func Winner(b Board) (Mark, bool) {
	for _, ln := range lines {
		m := b.cells[ln[0]]
		if m != Empty && m == b.cells[ln[1]] && m == b.cells[ln[2]] {
			return m, true
		}
	}
	for _, c := range b.cells {
		if c == Empty {
			return Empty, false
		}
	}
	return Empty, true
}

// Moves lists the open cells in index order. Empty once the game is over.
func Moves(b Board) []Move {
	if _, over := Winner(b); over {
		return nil
	}
	moves := make([]Move, 0, 9)
	for i, c := range b.cells {
		if c == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// Apply plays move for the side to move and returns the new position.
func Apply(b Board, move Move) Board {
	b.cells[move] = b.turn
	b.turn = b.turn.Opponent()
	return b
}
