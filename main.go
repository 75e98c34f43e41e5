package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"redblue/experiments"
	"redblue/experiments/metrics"
	"redblue/game"
	"redblue/meta"
	"redblue/searcher/agent"
	"redblue/shell"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode        string
	variant     string
	depth       int
	red         int
	blue        int
	games       int
	concurrency int
	out         string
	addr        string
	remote      string
	logLevel    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play, selfplay, bench or serve")
	flag.StringVar(&cfg.variant, "variant", "", "standard or misere (asked interactively when empty in play mode, standard otherwise)")
	flag.IntVar(&cfg.depth, "depth", meta.Depth, "search depth of the automated player")
	flag.IntVar(&cfg.red, "red", meta.InitialRed, "initial red marbles")
	flag.IntVar(&cfg.blue, "blue", meta.InitialBlue, "initial blue marbles")
	flag.IntVar(&cfg.games, "games", 10, "games per match up in selfplay mode")
	flag.IntVar(&cfg.concurrency, "concurrency", 4, "games played in parallel in selfplay mode")
	flag.StringVar(&cfg.out, "out", "experiments", "output directory of selfplay and bench records")
	flag.StringVar(&cfg.addr, "addr", meta.DefaultAddr, "listen address in serve mode")
	flag.StringVar(&cfg.remote, "remote", "", "agent server URL to play against in play mode, or to add to selfplay")
	flag.StringVar(&cfg.logLevel, "log-level", "", "zerolog level (default warn in play mode, info otherwise)")
	flag.Parse()

	setupLogger(cfg)

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msgf("%s failed", cfg.mode)
		os.Exit(1)
	}
}

func setupLogger(cfg config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	level := zerolog.InfoLevel
	if cfg.mode == "play" {
		level = zerolog.WarnLevel
	}
	if cfg.logLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.logLevel)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring -log-level")
		} else {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
}

func run(cfg config) error {
	if err := validate(cfg); err != nil {
		return err
	}
	initial := game.NewGame(cfg.red, cfg.blue)

	switch cfg.mode {
	case "play":
		console := shell.NewConsole(os.Stdin, os.Stdout)
		variant, err := resolveVariant(cfg.variant, console)
		if err != nil {
			return err
		}
		if cfg.remote != "" {
			console.PlayAgainst(variant, initial, agent.NewRemoteAgent(cfg.remote, variant, cfg.depth))
			return nil
		}
		console.Play(variant, cfg.depth, initial)
		return nil

	case "selfplay":
		variant, err := game.ParseVariant(variantName(cfg))
		if err != nil {
			return err
		}
		var extra []metrics.AgentConfig
		if cfg.remote != "" {
			extra = append(extra, experiments.RemoteConfig(cfg.remote, cfg.depth))
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return experiments.RunDepthExperiment(ctx, cfg.out, experiments.Tournament{
			Variant:     variant,
			Initial:     initial,
			Games:       cfg.games,
			Concurrency: cfg.concurrency,
		}, extra...)

	case "bench":
		variant, err := game.ParseVariant(variantName(cfg))
		if err != nil {
			return err
		}
		return experiments.RunPruningExperiment(cfg.out, initial, variant, cfg.depth)

	case "serve":
		return agent.StartAgentServer(cfg.addr, cfg.depth)

	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

// validate rejects depths the chosen mode cannot run. Play and serve search
// from the root, where depth 0 would search to the end of the game; a remote
// agent is bound by the server's range.
func validate(cfg config) error {
	switch {
	case cfg.mode == "play", cfg.mode == "serve", cfg.remote != "":
		if err := agent.CheckDepth(cfg.depth); err != nil {
			return fmt.Errorf("-depth: %w", err)
		}
	case cfg.depth < 0:
		return fmt.Errorf("-depth must not be negative, got %d", cfg.depth)
	}
	return nil
}

// variantName is the -variant flag, defaulting to standard outside play mode.
func variantName(cfg config) string {
	if cfg.variant == "" && cfg.mode != "play" {
		return game.Standard.String()
	}
	return cfg.variant
}

func resolveVariant(name string, console *shell.Console) (game.Variant, error) {
	if name == "" {
		return console.ReadVariant()
	}
	return game.ParseVariant(name)
}
