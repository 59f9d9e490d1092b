package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gametree/agent"
	"gametree/arena"
	"gametree/config"
	"gametree/experiments"
	"gametree/tictactoe"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	runPruningExperiment(cfg)
	runDemoMatch(cfg)
	runBaselineSeries(cfg)
}

// runPruningExperiment compares minimax and alpha-beta node counts depth by
// depth on the opening position.
func runPruningExperiment(cfg *config.Config) {
	records := experiments.RunPruning(cfg.Depth)
	path, err := experiments.WriteCSV(cfg.ResultsDir, records)
	if err != nil {
		log.Error().Err(err).Msg("could not write pruning records")
		return
	}
	log.Info().Str("path", path).Int("records", len(records)).Msg("pruning experiment written")
}

// runDemoMatch plays the configured player as X against a stepwise O, so the
// recursive and steppable searches face each other.
func runDemoMatch(cfg *config.Config) {
	x := newPlayer(cfg, tictactoe.X)
	o := agent.NewStepwise(tictactoe.O, cfg.Depth, cfg.StepsPerTick, nil)
	result := arena.Run(x, o)
	log.Info().Stringer("winner", result.Winner).Int("moves", result.Moves).Msg("demo match finished")
}

// runBaselineSeries plays the configured player against random baselines.
func runBaselineSeries(cfg *config.Config) {
	wins, draws := 0, 0
	for i := 0; i < cfg.Games; i++ {
		result := arena.Run(newPlayer(cfg, tictactoe.X), agent.NewRandom(uint64(i+1)))
		switch result.Winner {
		case tictactoe.X:
			wins++
		case tictactoe.Empty:
			draws++
		}
	}
	log.Info().Int("games", cfg.Games).Int("wins", wins).Int("draws", draws).Msg("baseline series finished")
}

func newPlayer(cfg *config.Config, mark tictactoe.Mark) arena.Player {
	switch cfg.Algorithm {
	case "minimax":
		return agent.NewOracle(mark, cfg.Depth)
	case "stepwise":
		return agent.NewStepwise(mark, cfg.Depth, cfg.StepsPerTick, nil)
	default:
		return agent.NewSearcher(mark, cfg.Depth)
	}
}
