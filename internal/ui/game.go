// Package ui adapts an environment to Ebitengine's fixed-tick loop for
// human play. The viewer only reads engine state; its single write path
// back into the engine is the restart key, routed through Reset.
package ui

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/tinygym/tinygym/internal/env"
)

// Scene draws one environment variant at its native window size.
type Scene interface {
	Draw(screen *ebiten.Image)
	Size() (w, h int)
}

// Game holds the environment instance and viewer-specific state.
type Game struct {
	e      env.Env
	scene  Scene
	logger zerolog.Logger

	// tickInterval is ebiten updates per engine tick. Atomic because
	// the config hot-reload callback may adjust it from another
	// goroutine.
	tickInterval atomic.Int32

	tickTimer      int
	pendingImpulse bool
	last           env.StepResult
	done           bool
}

// NewGame resets the environment and returns a runnable ebiten game.
func NewGame(e env.Env, scene Scene, tickInterval int, logger zerolog.Logger) *Game {
	g := &Game{
		e:      e,
		scene:  scene,
		logger: logger.With().Str("component", "ui").Logger(),
	}
	g.tickInterval.Store(int32(tickInterval))
	e.Reset(-1)
	return g
}

// SetTickInterval adjusts the simulation pace; safe to call from the
// config watcher.
func (g *Game) SetTickInterval(n int) {
	if n > 0 {
		g.tickInterval.Store(int32(n))
	}
}

// Update proceeds the environment by one tick every tickInterval
// frames, latching jump presses that land between engine ticks.
func (g *Game) Update() error {
	if g.done {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.e.Reset(-1)
			g.last = env.StepResult{}
			g.done = false
			g.logger.Info().Msg("episode restarted")
		}
		return nil
	}

	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.pendingImpulse = true
	}

	g.tickTimer++
	if g.tickTimer < int(g.tickInterval.Load()) {
		return nil
	}
	g.tickTimer = 0

	action := env.ActNoop
	if g.pendingImpulse {
		action = env.ActImpulse
	}
	g.pendingImpulse = false

	g.last = g.e.Step(action)
	if g.last.Terminated || g.last.Truncated {
		g.done = true
		g.logger.Info().
			Int("score", g.last.Info.Score).
			Bool("terminated", g.last.Terminated).
			Msg("episode over")
	}
	return nil
}

// Draw renders the scene plus a small HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	hud := fmt.Sprintf("score: %d", g.last.Info.Score)
	if g.last.Info.Steps > 0 {
		hud = fmt.Sprintf("score: %d  steps: %d  speed: %.2f",
			g.last.Info.Score, g.last.Info.Steps, g.last.Info.Speed)
	}
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)

	if g.done {
		text.Draw(screen, "episode over - press R to restart",
			basicfont.Face7x13, 8, 32, color.White)
	}
}

// Layout reports the scene's native size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Size()
}
