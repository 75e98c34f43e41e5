package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3)
	c.AddNode()
	c.AddNode()
	c.AddLeaf()
	c.AddCutoff()
	c.SetExhausted(true)

	metric := c.Complete()
	require.Equal(t, 3, metric.Depth)
	require.Equal(t, 2, metric.Nodes)
	require.Equal(t, 1, metric.Leaves)
	require.Equal(t, 1, metric.Cutoffs)
	require.True(t, metric.Exhausted)

	c.Start(1)
	require.Zero(t, c.Complete().Nodes, "Start should reset the counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(3)
	c.AddNode()
	require.Equal(t, SearchMetric{}, c.Complete())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: SearchAgent, Depth: 3}}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "kind", "depth", "seed", "url"}, {"1", "search", "3", "0", ""}}, rows)

	now := time.Now()
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 0, Agent2: 1, GameMetric: GameMetric{
		StartingAgent: 0, WinnerAgent: 1, StartTime: now, EndTime: now, TotalMoves: 7, FinalRed: 0, FinalBlue: 3,
	}}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "winner_agent", rows[0][4])
	require.Equal(t, "1", rows[1][4])
	require.Equal(t, "7", rows[1][10])

	require.NoError(t, w.WriteMoveRecords(nil))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 1, "Only the header")

	require.NoError(t, w.WritePruningRecords([]PruningRecord{{Depth: 2, Score: -15, PrunedNodes: 10, FullNodes: 21, Cutoffs: 2}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "pruning.csv"))
	require.Equal(t, []string{"2", "-15", "10", "21", "2"}, rows[1])
}
