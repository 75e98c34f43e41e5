package experiments

import (
	"redblue/experiments/metrics"
	"redblue/game"
	"redblue/searcher"

	"github.com/rs/zerolog/log"
)

// PruningReport searches state at every depth up to maxDepth with and
// without pruning and records the work each needed.
func PruningReport(state game.State, variant game.Variant, maxDepth int) []metrics.PruningRecord {
	records := make([]metrics.PruningRecord, 0, maxDepth+1)
	for depth := 0; depth <= maxDepth; depth++ {
		ab := searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())
		score, pruned := ab.Score(state, true, variant)
		fullScore, full := ab.FullScore(state, true, variant)
		if score != fullScore {
			log.Error().Msgf("pruned score %v differs from full score %v at depth %d", score, fullScore, depth)
		}
		records = append(records, metrics.PruningRecord{
			Depth:       depth,
			Score:       score,
			PrunedNodes: pruned.Nodes,
			FullNodes:   full.Nodes,
			Cutoffs:     pruned.Cutoffs,
		})
		log.Info().Msgf("depth %d: score %v, %d nodes pruned search, %d nodes full search", depth, score, pruned.Nodes, full.Nodes)
	}
	return records
}

// RunPruningExperiment stores PruningReport under outDir.
func RunPruningExperiment(outDir string, state game.State, variant game.Variant, maxDepth int) error {
	records := PruningReport(state, variant, maxDepth)
	writer, err := metrics.NewWriter(outDir, "pruning")
	if err != nil {
		return err
	}
	return writer.WritePruningRecords(records)
}
