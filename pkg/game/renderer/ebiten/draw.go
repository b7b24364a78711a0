package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cubemaze/pkg/game/entities"
	"cubemaze/pkg/game/state"
)

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorWall       = color.RGBA{120, 120, 140, 255}
	colorGoal       = color.RGBA{40, 140, 60, 255}
	colorPlayer     = color.RGBA{80, 200, 120, 255}
	colorProjectile = color.RGBA{240, 80, 60, 255}

	monsterColors = map[entities.MonsterState]color.RGBA{
		entities.StatePatrol:   {70, 110, 220, 255},
		entities.StateChase:    {220, 60, 60, 255},
		entities.StateWindUp:   {250, 210, 60, 255},
		entities.StateCooldown: {170, 80, 200, 255},
	}
)

// Draw renders one frame (Ebiten interface).
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if g.c.G.Mode == state.ModePlaying || (g.c.G.InSession() && g.c.G.Mode == state.ModePaused) {
		g.drawWorld(screen)
		g.drawHUD(screen)
	}

	if g.c.G.Mode != state.ModePlaying {
		g.drawMenu(screen)
	}
}

func (g *game) drawWorld(screen *ebiten.Image) {
	gs := g.c.G
	grid := gs.Grid

	goal := grid.GoalCell()
	vector.DrawFilledRect(screen,
		float32(goal.Col)*tileSize, float32(goal.Row)*tileSize,
		tileSize, tileSize, colorGoal, false)

	// Each cell draws its north and west walls; the far edges close the
	// border so no shared wall is stroked twice.
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			cell := grid.Cell(row, col)
			x := float32(col) * tileSize
			y := float32(row) * tileSize

			if cell.NorthWall {
				vector.StrokeLine(screen, x, y, x+tileSize, y, 2, colorWall, false)
			}
			if cell.WestWall {
				vector.StrokeLine(screen, x, y, x, y+tileSize, 2, colorWall, false)
			}
			if col == grid.Width()-1 && cell.EastWall {
				vector.StrokeLine(screen, x+tileSize, y, x+tileSize, y+tileSize, 2, colorWall, false)
			}
			if row == grid.Height()-1 && cell.SouthWall {
				vector.StrokeLine(screen, x, y+tileSize, x+tileSize, y+tileSize, 2, colorWall, false)
			}
		}
	}

	// Monster: a filled square, tinted by state so the wind-up telegraph
	// reads at a glance.
	m := gs.Monster
	mr := float32(gs.Cfg.MonsterRadius) * tileSize
	vector.DrawFilledRect(screen,
		float32(m.Pos.X)*tileSize-mr, float32(m.Pos.Y)*tileSize-mr,
		mr*2, mr*2, monsterColors[m.State], false)

	gs.Projectiles.Each(func(pr *entities.Projectile) {
		vector.DrawFilledCircle(screen,
			float32(pr.Pos.X)*tileSize, float32(pr.Pos.Y)*tileSize,
			float32(pr.Radius)*tileSize, colorProjectile, false)
	})

	p := gs.Player
	vector.DrawFilledCircle(screen,
		float32(p.Pos.X)*tileSize, float32(p.Pos.Y)*tileSize,
		float32(gs.Cfg.PlayerRadius)*tileSize, colorPlayer, false)
}

func (g *game) drawHUD(screen *ebiten.Image) {
	gs := g.c.G
	y := gs.Cfg.MazeHeight * int(tileSize)

	hearts := strings.Repeat("<3 ", gs.Player.Health) +
		strings.Repeat("-- ", gs.Player.MaxHealth-gs.Player.Health)
	ebitenutil.DebugPrintAt(screen, hearts, 8, y+8)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("cube: %s   %.0fs", gs.Monster.State, gs.Elapsed), 8, y+24)
	if gs.Message != "" {
		ebitenutil.DebugPrintAt(screen, gs.Message, 8, y+40)
	}
}

func (g *game) drawMenu(screen *ebiten.Image) {
	menu := g.c.Menu
	x := g.width/2 - 60
	y := g.height / 3

	ebitenutil.DebugPrintAt(screen, menu.Title, x, y)

	for i, item := range menu.Items {
		prefix := "  "
		if i == menu.Selected() {
			prefix = "> "
		}
		ebitenutil.DebugPrintAt(screen, prefix+item.Label, x, y+24+i*16)
	}

	if g.c.G.Message != "" {
		ebitenutil.DebugPrintAt(screen, g.c.G.Message, x, y+40+len(menu.Items)*16)
	}
}
