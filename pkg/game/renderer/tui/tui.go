// Package tui renders the game as a top-down map in the terminal. Each
// keystroke advances the simulation by one fixed turn, so the maze plays
// like a turn-based game in this backend.
package tui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cubemaze/pkg/engine/input"
	"cubemaze/pkg/engine/world"
	"cubemaze/pkg/game/entities"
	"cubemaze/pkg/game/gameplay"
	"cubemaze/pkg/game/state"
)

// Icons for the map view.
const (
	PlayerIcon     = "@"
	MonsterIcon    = "M"
	ProjectileIcon = "*"
	GoalIcon       = "⌂"
)

// turnSeconds is the simulated time one keystroke advances.
const turnSeconds = 0.15

var (
	stylePlayer     = color.Style{color.FgGreen, color.OpBold}
	styleGoal       = color.Style{color.FgGreen}
	styleWall       = color.Style{color.FgDarkGray}
	styleProjectile = color.Style{color.FgRed, color.OpBold}
	styleTitle      = color.Style{color.FgCyan, color.OpBold}
	styleSelected   = color.Style{color.FgCyan}
	styleHearts     = color.Style{color.FgRed}
	styleSubtle     = color.Style{color.FgGray}

	monsterStyles = map[entities.MonsterState]color.Style{
		entities.StatePatrol:   {color.FgBlue, color.OpBold},
		entities.StateChase:    {color.FgRed, color.OpBold},
		entities.StateWindUp:   {color.FgYellow, color.OpBold},
		entities.StateCooldown: {color.FgMagenta, color.OpBold},
	}
)

// TUIRenderer draws the game with ANSI colors on stdout.
type TUIRenderer struct{}

// New creates a terminal renderer.
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Name identifies the backend.
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Run puts the terminal in raw mode and drives the controller one
// keystroke at a time.
func (t *TUIRenderer) Run(c *gameplay.Controller) error {
	keys, err := input.NewKeyReader()
	if err != nil {
		return fmt.Errorf("terminal raw mode: %w", err)
	}
	defer keys.Restore()

	for !c.Done() {
		t.renderFrame(c)
		snap := keys.Poll()
		c.Tick(snap, turnSeconds)
	}

	fmt.Print("\033[2J\033[H")
	return nil
}

func (t *TUIRenderer) renderFrame(c *gameplay.Controller) {
	var b strings.Builder
	b.WriteString("\033[2J\033[H")

	if c.G.Mode == state.ModePlaying {
		t.writeMap(&b, c.G)
		t.writeHUD(&b, c.G)
	} else {
		t.writeMenu(&b, c)
	}

	fmt.Print(b.String())
}

// writeMap draws the maze with walls, the goal and every actor. Raw mode
// needs explicit carriage returns, hence the \r\n endings.
func (t *TUIRenderer) writeMap(b *strings.Builder, g *state.Game) {
	grid := g.Grid

	projectileCells := map[world.Position]bool{}
	g.Projectiles.Each(func(pr *entities.Projectile) {
		if cell := grid.CellAt(pr.Pos); cell != nil {
			projectileCells[cell.Pos()] = true
		}
	})

	playerCell := grid.CellAt(g.Player.Pos)
	monsterCell := grid.CellAt(g.Monster.Pos)

	b.WriteString(styleWall.Sprint("+"+strings.Repeat("---+", grid.Width())) + "\r\n")

	for row := 0; row < grid.Height(); row++ {
		b.WriteString(styleWall.Sprint("|"))
		for col := 0; col < grid.Width(); col++ {
			cell := grid.Cell(row, col)

			mark := " "
			switch {
			case cell == playerCell:
				mark = stylePlayer.Sprint(PlayerIcon)
			case cell == monsterCell:
				mark = monsterStyles[g.Monster.State].Sprint(MonsterIcon)
			case projectileCells[cell.Pos()]:
				mark = styleProjectile.Sprint(ProjectileIcon)
			case cell.Goal:
				mark = styleGoal.Sprint(GoalIcon)
			}

			b.WriteString(" " + mark + " ")
			if cell.EastWall {
				b.WriteString(styleWall.Sprint("|"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\r\n")

		b.WriteString(styleWall.Sprint("+"))
		for col := 0; col < grid.Width(); col++ {
			if grid.Cell(row, col).SouthWall {
				b.WriteString(styleWall.Sprint("---+"))
			} else {
				b.WriteString(styleWall.Sprint("   +"))
			}
		}
		b.WriteString("\r\n")
	}
}

func (t *TUIRenderer) writeHUD(b *strings.Builder, g *state.Game) {
	hearts := strings.Repeat("♥", g.Player.Health) +
		strings.Repeat("♡", g.Player.MaxHealth-g.Player.Health)

	b.WriteString("\r\n")
	b.WriteString(styleHearts.Sprint(hearts))
	b.WriteString(fmt.Sprintf("  %s: %s  %.0fs\r\n",
		gotext.Get("Cube"), g.Monster.State, g.Elapsed))

	if g.Message != "" {
		b.WriteString(g.Message + "\r\n")
	}
	b.WriteString(styleSubtle.Sprint(gotext.Get("WASD/arrows move · Esc pause · Ctrl-C quit")) + "\r\n")
}

func (t *TUIRenderer) writeMenu(b *strings.Builder, c *gameplay.Controller) {
	b.WriteString("\r\n  " + styleTitle.Sprint(c.Menu.Title) + "\r\n\r\n")

	for i, item := range c.Menu.Items {
		if i == c.Menu.Selected() {
			b.WriteString("  " + styleSelected.Sprint("> "+item.Label) + "\r\n")
		} else {
			b.WriteString("    " + item.Label + "\r\n")
		}
	}

	if c.G.Message != "" {
		b.WriteString("\r\n  " + c.G.Message + "\r\n")
	}
	b.WriteString("\r\n  " + styleSubtle.Sprint(gotext.Get("↑/↓ select · Enter confirm · Esc back")) + "\r\n")
}
