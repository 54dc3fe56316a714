package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tinygym/tinygym/internal/config"
	"github.com/tinygym/tinygym/internal/dino"
	"github.com/tinygym/tinygym/internal/env"
	"github.com/tinygym/tinygym/internal/flappy"
	"github.com/tinygym/tinygym/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	envName := flag.String("env", "dino", "Environment to play (dino, flappy)")
	logLevel := flag.String("log-level", "", "Log level (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	var (
		e     env.Env
		scene ui.Scene
	)
	switch *envName {
	case "dino":
		de, err := dino.New(dinoConfig(cfg), log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build dino env")
		}
		e = de
		scene = ui.NewDinoScene(de, cfg.UI.Scale)
	case "flappy":
		fe, err := flappy.New(flappyConfig(cfg), log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build flappy env")
		}
		e = fe
		scene = ui.NewFlappyScene(fe, 80*cfg.UI.Scale)
	default:
		log.Fatal().Str("env", *envName).Msg("Unknown environment")
	}

	game := ui.NewGame(e, scene, cfg.UI.TickInterval, log.Logger)

	// Pick up pace changes without restarting the viewer.
	config.WatchConfig(func() {
		game.SetTickInterval(config.Get().UI.TickInterval)
	})

	w, h := scene.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.UI.Title + " - " + *envName)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("Viewer exited with error")
	}
}

func dinoConfig(cfg *config.Config) dino.Config {
	dc := dino.DefaultConfig()
	dc.ScreenWidth = cfg.Dino.ScreenWidth
	dc.ScreenHeight = cfg.Dino.ScreenHeight
	dc.MaxSteps = cfg.Dino.MaxSteps
	dc.BaseSpeed = cfg.Dino.BaseSpeed
	dc.SpeedIncrease = cfg.Dino.SpeedIncrease
	return dc
}

func flappyConfig(cfg *config.Config) flappy.Config {
	fc := flappy.DefaultConfig()
	fc.PipeSpeed = cfg.Flappy.PipeSpeed
	fc.GapHalf = cfg.Flappy.GapHalf
	fc.MaxVy = cfg.Flappy.MaxVy
	return fc
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
