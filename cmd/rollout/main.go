package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tinygym/tinygym/internal/config"
	"github.com/tinygym/tinygym/internal/dino"
	"github.com/tinygym/tinygym/internal/env"
	"github.com/tinygym/tinygym/internal/flappy"
	"github.com/tinygym/tinygym/internal/rollout"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	envName := flag.String("env", "", "Environment to roll out (empty to use config default)")
	episodes := flag.Int("episodes", -1, "Number of episodes (-1 to use config default)")
	workers := flag.Int("workers", -1, "Parallel workers (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Base seed (-1 to use config default)")
	outDir := flag.String("out", "", "Output directory (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *envName == "" {
		*envName = cfg.Rollout.Env
	}
	if *episodes == -1 {
		*episodes = cfg.Rollout.Episodes
	}
	if *workers == -1 {
		*workers = cfg.Rollout.Workers
	}
	if *seed == -1 {
		*seed = cfg.Rollout.Seed
	}
	if *outDir == "" {
		*outDir = cfg.Rollout.OutDir
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	factory, err := envFactory(*envName, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure environment")
	}

	runner := rollout.NewRunner(*envName, factory, *episodes, *workers, *seed, log.Logger)
	records, err := runner.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Rollout failed")
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}
	csvPath := filepath.Join(*outDir, fmt.Sprintf("episodes-%s.csv", runner.RunID()))
	if err := rollout.WriteCSV(csvPath, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to write episode CSV")
	}

	s := rollout.Summarize(records)
	log.Info().
		Str("env", *envName).
		Int("episodes", s.Episodes).
		Float64("mean_return", s.MeanReturn).
		Float64("std_return", s.StdReturn).
		Float64("min_return", s.MinReturn).
		Float64("max_return", s.MaxReturn).
		Float64("mean_score", s.MeanScore).
		Float64("mean_steps", s.MeanSteps).
		Str("csv", csvPath).
		Msg("Rollout complete")
}

func envFactory(name string, cfg *config.Config) (rollout.Factory, error) {
	switch name {
	case "dino":
		dc := dino.DefaultConfig()
		dc.ScreenWidth = cfg.Dino.ScreenWidth
		dc.ScreenHeight = cfg.Dino.ScreenHeight
		dc.MaxSteps = cfg.Dino.MaxSteps
		dc.BaseSpeed = cfg.Dino.BaseSpeed
		dc.SpeedIncrease = cfg.Dino.SpeedIncrease
		return func() (env.Env, error) {
			return dino.New(dc, log.Logger)
		}, nil
	case "flappy":
		fc := flappy.DefaultConfig()
		fc.PipeSpeed = cfg.Flappy.PipeSpeed
		fc.GapHalf = cfg.Flappy.GapHalf
		fc.MaxVy = cfg.Flappy.MaxVy
		return func() (env.Env, error) {
			return flappy.New(fc, log.Logger)
		}, nil
	default:
		return nil, fmt.Errorf("unknown environment %q", name)
	}
}

func setupLogging(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
