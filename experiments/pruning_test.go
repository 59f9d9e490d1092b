package experiments

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPruningKeepsDecisionsAndShrinksLeafCounts(t *testing.T) {
	records := RunPruning(4)
	require.Len(t, records, 8, "two algorithms at four depths")

	byDepth := map[int]map[string]Record{}
	for _, r := range records {
		if byDepth[r.Depth] == nil {
			byDepth[r.Depth] = map[string]Record{}
		}
		byDepth[r.Depth][r.Algorithm] = r
	}

	for depth, pair := range byDepth {
		minimax, alphabeta := pair["minimax"], pair["alphabeta"]
		require.Equal(t, minimax.Move, alphabeta.Move, "depth %d: pruning changed the decision", depth)
		require.LessOrEqual(t, alphabeta.Leaves, minimax.Leaves, "depth %d", depth)
	}
}

func TestWriteCSVProducesOneRowPerRecord(t *testing.T) {
	records := RunPruning(2)

	path, err := WriteCSV(t.TempDir(), records)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1, "header plus one row per record")
	require.Equal(t, []string{"depth", "algorithm", "nodes", "leaves", "cutoffs", "duration_ns", "move"}, rows[0])
}
