package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"gametree/search"
	"gametree/tictactoe"
)

// A three-level tree with a known optimal line: the maximizer's best root
// move is "a" (its minimizing child concedes 3; "b" and "c" concede only 2).
var threeLevel = tree{
	"r":  {children: []string{"a", "b", "c"}},
	"a":  {children: []string{"a1", "a2", "a3"}},
	"b":  {children: []string{"b1", "b2", "b3"}},
	"c":  {children: []string{"c1", "c2", "c3"}},
	"a1": {score: 3}, "a2": {score: 12}, "a3": {score: 8},
	"b1": {score: 2}, "b2": {score: 4}, "b3": {score: 6},
	"c1": {score: 14}, "c2": {score: 5}, "c3": {score: 2},
}

func TestFindMovePicksTheMinimaxOptimalMove(t *testing.T) {
	e := search.New(threeLevel.rules(), 2)

	move, ok := e.FindMove("r")
	require.True(t, ok)
	require.Equal(t, "a", move)

	oracle, ok := e.FindMoveMinimax("r")
	require.True(t, ok)
	require.Equal(t, move, oracle)
}

func TestRankOrdersMovesBestFirstWithStableTies(t *testing.T) {
	e := search.New(threeLevel.rules(), 2)

	ranked := e.Rank("r")
	require.Len(t, ranked, 3)
	require.Equal(t, "a", ranked[0].Move)
	require.Equal(t, search.Finite(3), ranked[0].Value)
	// b and c both concede 2; the earlier-generated move stays first.
	require.Equal(t, "b", ranked[1].Move)
	require.Equal(t, "c", ranked[2].Move)
}

func TestEqualMovesTieBreakByGenerationOrder(t *testing.T) {
	twins := tree{
		"r":  {children: []string{"t1", "t2"}},
		"t1": {score: 5},
		"t2": {score: 5},
	}

	for _, depth := range []int{1, 3} {
		e := search.New(twins.rules(), depth)

		move, ok := e.FindMove("r")
		require.True(t, ok)
		require.Equal(t, "t1", move, "depth %d should keep the first generated move on ties", depth)

		move, ok = e.FindMoveMinimax("r")
		require.True(t, ok)
		require.Equal(t, "t1", move)

		move, ok = e.NewSearch("r").Run()
		require.True(t, ok)
		require.Equal(t, "t1", move)
	}
}

func TestTerminalPositionYieldsNoMove(t *testing.T) {
	leafOnly := tree{"r": {score: 9}}
	e := search.New(leafOnly.rules(), 4)

	_, ok := e.FindMove("r")
	require.False(t, ok)
	_, ok = e.FindMoveMinimax("r")
	require.False(t, ok)
	require.Empty(t, e.Rank("r"))
}

func TestSingleLegalMoveIsChosenAtAnyDepth(t *testing.T) {
	board, err := tictactoe.Parse("XXOOOXXO.")
	require.NoError(t, err)
	require.Len(t, tictactoe.Moves(board), 1)

	for _, depth := range []int{1, 3, 5, 9} {
		e := search.New(tictactoe.Rules(board.Turn()), depth)

		move, ok := e.FindMove(board)
		require.True(t, ok)
		require.Equal(t, tictactoe.Move(8), move)

		move, ok = e.FindMoveMinimax(board)
		require.True(t, ok)
		require.Equal(t, tictactoe.Move(8), move)

		move, ok = e.NewSearch(board).Run()
		require.True(t, ok)
		require.Equal(t, tictactoe.Move(8), move)
	}
}

func TestWinInOneIsFoundFromDepthOne(t *testing.T) {
	// X owns cells 0 and 1; cell 2 completes the line.
	board, err := tictactoe.Parse("XX.OO....")
	require.NoError(t, err)
	require.Equal(t, tictactoe.X, board.Turn())

	for _, depth := range []int{1, 2, 4} {
		e := search.New(tictactoe.Rules(tictactoe.X), depth)

		move, ok := e.FindMove(board)
		require.True(t, ok)
		require.Equal(t, tictactoe.Move(2), move, "depth %d", depth)
	}
}

func TestFullDepthOpeningSearchAlwaysFindsAMove(t *testing.T) {
	e := search.New(tictactoe.Rules(tictactoe.X), 9)

	_, ok := e.FindMove(tictactoe.New())
	require.True(t, ok)

	_, ok = e.NewSearch(tictactoe.New()).Run()
	require.True(t, ok)
}

func TestAlphaBetaAgreesWithTheMinimaxOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for sample := 0; sample < 20; sample++ {
		board := randomPosition(rng, sample%6)
		for _, depth := range []int{1, 2, 3, 4} {
			e := search.New(tictactoe.Rules(board.Turn()), depth)

			pruned, prunedOK := e.FindMove(board)
			oracle, oracleOK := e.FindMoveMinimax(board)
			require.Equal(t, oracleOK, prunedOK, "board %s depth %d", board, depth)
			require.Equal(t, oracle, pruned, "board %s depth %d", board, depth)
		}
	}
}

func TestAlphaBetaVisitsNoMoreLeavesThanMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for sample := 0; sample < 10; sample++ {
		board := randomPosition(rng, sample%4)
		rules := tictactoe.Rules(board.Turn())

		prunedStats := search.NewCollector()
		oracleStats := search.NewCollector()
		pruned := search.New(rules, 5, search.WithMetrics(prunedStats))
		oracle := search.New(rules, 5, search.WithMetrics(oracleStats))

		prunedMove, prunedOK := pruned.FindMove(board)
		oracleMove, oracleOK := oracle.FindMoveMinimax(board)

		require.Equal(t, oracleOK, prunedOK)
		require.Equal(t, oracleMove, prunedMove, "pruning must never change the decision")
		require.LessOrEqual(t, prunedStats.Complete().Leaves, oracleStats.Complete().Leaves)
	}
}

func TestPruningActuallyPrunes(t *testing.T) {
	prunedStats := search.NewCollector()
	oracleStats := search.NewCollector()
	pruned := search.New(tictactoe.Rules(tictactoe.X), 5, search.WithMetrics(prunedStats))
	oracle := search.New(tictactoe.Rules(tictactoe.X), 5, search.WithMetrics(oracleStats))

	pruned.FindMove(tictactoe.New())
	oracle.FindMoveMinimax(tictactoe.New())

	require.Less(t, prunedStats.Complete().Leaves, oracleStats.Complete().Leaves)
	require.Positive(t, prunedStats.Complete().Cutoffs)
	require.Zero(t, oracleStats.Complete().Cutoffs)
}

func TestMinimizingRootPrefersTheLowestValue(t *testing.T) {
	e := search.New(threeLevel.rules(), 2, search.WithRootRole(search.Minimizing))

	// With the root minimizing, the children maximize: a yields 12, b yields
	// 6 and c yields 14, so the root leads with b.
	ranked := e.Rank("r")
	require.Len(t, ranked, 3)
	require.Equal(t, "b", ranked[0].Move)
	require.Equal(t, search.Finite(6), ranked[0].Value)
	require.Equal(t, "a", ranked[1].Move)
	require.Equal(t, "c", ranked[2].Move)
}

func TestNewPanicsOnInvalidConfiguration(t *testing.T) {
	require.Panics(t, func() {
		search.New(threeLevel.rules(), 0)
	})
	require.Panics(t, func() {
		search.New(search.Rules[string, string, int]{}, 3)
	})
}
