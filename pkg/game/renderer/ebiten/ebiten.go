// Package ebiten provides the graphical renderer. It draws the maze
// top-down with hardware acceleration and samples the keyboard every
// frame, so this backend plays in real time.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"cubemaze/pkg/game/gameplay"
)

const (
	tileSize  = 28.0
	hudHeight = 64
)

// EbitenRenderer runs the game in a window.
type EbitenRenderer struct{}

// New creates a graphical renderer.
func New() *EbitenRenderer {
	return &EbitenRenderer{}
}

// Name identifies the backend.
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Run opens the window and drives the controller at the display rate.
func (e *EbitenRenderer) Run(c *gameplay.Controller) error {
	w := c.G.Cfg.MazeWidth * int(tileSize)
	h := c.G.Cfg.MazeHeight*int(tileSize) + hudHeight

	ebiten.SetWindowTitle(gotext.Get("Cube Maze"))
	ebiten.SetWindowSize(w, h)

	return ebiten.RunGame(&game{c: c, width: w, height: h})
}

// game adapts the controller to the Ebiten game loop.
type game struct {
	c      *gameplay.Controller
	width  int
	height int
}

// Update advances the controller by one display frame.
func (g *game) Update() error {
	if g.c.Done() {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.c.Tick(pollSnapshot(), dt)
	return nil
}

// Layout reports the fixed logical resolution.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
