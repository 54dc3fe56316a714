package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tinygym/tinygym/internal/dino"
	"github.com/tinygym/tinygym/internal/flappy"
)

// DinoScene blits the runner's own frame observation, scaled up. What
// the player sees is exactly what a learner sees.
type DinoScene struct {
	env   *dino.Env
	scale int
	img   *ebiten.Image
	pix   []byte
}

func NewDinoScene(e *dino.Env, scale int) *DinoScene {
	cfg := e.Config()
	return &DinoScene{
		env:   e,
		scale: scale,
		img:   ebiten.NewImage(cfg.ScreenWidth, cfg.ScreenHeight),
		pix:   make([]byte, 4*cfg.ScreenWidth*cfg.ScreenHeight),
	}
}

func (s *DinoScene) Size() (int, int) {
	cfg := s.env.Config()
	return cfg.ScreenWidth * s.scale, cfg.ScreenHeight * s.scale
}

func (s *DinoScene) Draw(screen *ebiten.Image) {
	frame := s.env.Frame()
	for i, v := range frame {
		s.pix[4*i] = v
		s.pix[4*i+1] = v
		s.pix[4*i+2] = v
		s.pix[4*i+3] = 0xff
	}
	s.img.WritePixels(s.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.scale), float64(s.scale))
	screen.DrawImage(s.img, op)
}

var (
	flappyPipeColor = color.RGBA{50, 200, 50, 255}
	flappyBirdColor = color.RGBA{230, 200, 50, 255}
)

// FlappyScene draws the flyer from engine state, since the vector
// observation carries no pixels. The engine's y axis points up, so rows
// are flipped when mapping to screen coordinates.
type FlappyScene struct {
	env  *flappy.Env
	size int
}

func NewFlappyScene(e *flappy.Env, size int) *FlappyScene {
	return &FlappyScene{env: e, size: size}
}

func (s *FlappyScene) Size() (int, int) { return s.size, s.size }

func (s *FlappyScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})

	st := s.env.Snapshot()
	cfg := s.env.Config()
	w := float32(s.size)

	pipeX := float32(st.PipeX) * w
	pipeW := float32(cfg.ColumnWidth) * w
	gapTop := float32(1-(st.GapY+cfg.GapHalf)) * w
	gapBottom := float32(1-(st.GapY-cfg.GapHalf)) * w

	vector.DrawFilledRect(screen, pipeX, 0, pipeW, gapTop, flappyPipeColor, false)
	vector.DrawFilledRect(screen, pipeX, gapBottom, pipeW, w-gapBottom, flappyPipeColor, false)

	birdX := float32(cfg.AgentX) * w
	birdY := float32(1-st.Y) * w
	vector.DrawFilledCircle(screen, birdX, birdY, 8, flappyBirdColor, false)
}
