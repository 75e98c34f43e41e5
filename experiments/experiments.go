package experiments

import (
	"context"
	"fmt"
	"redblue/engine"
	"redblue/experiments/metrics"
	"redblue/game"
	"redblue/searcher"
	"redblue/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Baseline is the random agent every depth is measured against.
var Baseline = metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.SearchAgent, Depth: 1},
	{ID: 2, Kind: metrics.SearchAgent, Depth: 2},
	{ID: 3, Kind: metrics.SearchAgent, Depth: 3},
	{ID: 4, Kind: metrics.SearchAgent, Depth: 4},
	{ID: 5, Kind: metrics.SearchAgent, Depth: 5},
}

// Tournament plays match ups between agent configs from one position.
type Tournament struct {
	Variant     game.Variant
	Initial     game.State
	Games       int // Per match up
	Concurrency int
}

type job struct {
	id      int
	agents  [2]metrics.AgentConfig
	swapped bool // agents[1] takes the first seat
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every match up Games times, alternating which agent starts.
// Records are returned in game ID order.
func (t Tournament) Run(ctx context.Context, matchUps [][2]metrics.AgentConfig) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	total := len(matchUps) * t.Games
	outcomes := make([]outcome, total)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job)

	g.Go(func() error {
		defer close(jobs)
		id := 0
		for _, matchUp := range matchUps {
			for i := 0; i < t.Games; i++ {
				id++
				select {
				case <-ctx.Done():
					return ctx.Err()
				case jobs <- job{id: id, agents: matchUp, swapped: i%2 == 1}:
				}
			}
		}
		return nil
	})

	workers := max(t.Concurrency, 1)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				outcomes[j.id-1] = t.play(j)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	games := make([]metrics.GameRecord, 0, total)
	var moves []metrics.MoveRecord
	for _, o := range outcomes {
		games = append(games, o.game)
		moves = append(moves, o.moves...)
	}
	return games, moves, nil
}

// play runs a single game and records it.
func (t Tournament) play(j job) outcome {
	seats := j.agents
	if j.swapped {
		seats[0], seats[1] = seats[1], seats[0]
	}

	start := time.Now()
	e := engine.NewLocalEngine(t.Variant, t.Initial, newAgent(t.Variant, seats[0]), newAgent(t.Variant, seats[1]))
	result := e.Run()
	end := time.Now()

	winner := -1
	if result.Winner != engine.NoWinner {
		winner = seats[result.Winner].ID
	}
	record := metrics.GameRecord{
		ID:     j.id,
		Agent1: j.agents[0].ID,
		Agent2: j.agents[1].ID,
		GameMetric: metrics.GameMetric{
			StartingAgent: seats[0].ID,
			WinnerAgent:   winner,
			Draw:          result.Draw,
			Stalled:       result.Stalled,
			StartTime:     start,
			EndTime:       end,
			Duration:      end.Sub(start),
			TotalMoves:    len(result.Turns),
			FinalRed:      result.Final.Red,
			FinalBlue:     result.Final.Blue,
		},
	}

	moves := make([]metrics.MoveRecord, 0, len(result.Turns))
	for i, turn := range result.Turns {
		moves = append(moves, metrics.MoveRecord{
			Game: j.id,
			MoveMetric: metrics.MoveMetric{
				Step:         i + 1,
				Player:       turn.Player,
				Agent:        seats[turn.Player].ID,
				SearchMetric: turn.SearchMetric,
			},
		})
	}
	return outcome{game: record, moves: moves}
}

func newAgent(variant game.Variant, config metrics.AgentConfig) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(variant, config.Seed)
	case metrics.RemoteAgent:
		return agent.NewRemoteAgent(config.URL, variant, config.Depth)
	}
	return agent.NewSearchAgent(variant, searcher.NewAlphaBeta(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
}

// RemoteConfig describes an agent served at url, numbered after the local
// depth agents.
func RemoteConfig(url string, depth int) metrics.AgentConfig {
	return metrics.AgentConfig{ID: len(depthConfigs) + 1, Kind: metrics.RemoteAgent, Depth: depth, URL: url}
}

// RunDepthExperiment pits every search depth, plus any extra agents, against
// the random baseline and stores the records under outDir.
func RunDepthExperiment(ctx context.Context, outDir string, t Tournament, extra ...metrics.AgentConfig) error {
	contestants := append(slices.Clone(depthConfigs), extra...)
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range contestants {
		matchUps = append(matchUps, [2]metrics.AgentConfig{Baseline, config})
	}
	return runExperiment(ctx, "depth", outDir, t, append([]metrics.AgentConfig{Baseline}, contestants...), matchUps)
}

func runExperiment(ctx context.Context, name, outDir string, t Tournament, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	log.Info().Msgf("starting %s experiment: %d match ups, %d games each, %s from %v", name, len(matchUps), t.Games, t.Variant, t.Initial)

	gameRecords, moveRecords, err := t.Run(ctx, matchUps)
	if err != nil {
		return fmt.Errorf("%s experiment: %w", name, err)
	}
	logWins(gameRecords, configs)

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored %s experiment records in %s", name, writer.Dir())
	return nil
}

func logWins(records []metrics.GameRecord, configs []metrics.AgentConfig) {
	wins := map[int]int{}
	draws := 0
	for _, record := range records {
		if record.Draw {
			draws++
		} else if record.WinnerAgent >= 0 {
			wins[record.WinnerAgent]++
		}
	}
	for _, config := range configs {
		log.Info().Msgf("agent %d (%s, depth %d): %d wins", config.ID, config.Kind, config.Depth, wins[config.ID])
	}
	log.Info().Msgf("%d draws out of %d games", draws, len(records))
}
