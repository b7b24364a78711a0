package gameplay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubemaze/pkg/engine/input"
	"cubemaze/pkg/engine/vec"
	"cubemaze/pkg/engine/world"
	"cubemaze/pkg/game/config"
	"cubemaze/pkg/game/entities"
	"cubemaze/pkg/game/state"
)

// openArena builds a grid with every interior wall carved out, so
// movement and combat can be tested without depending on a generated
// layout.
func openArena(width, height int) *world.Grid {
	grid := world.NewGrid(width, height)
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		for _, m := range grid.Neighbors(world.Position{Row: row, Col: col}) {
			grid.OpenWall(m)
		}
	})
	grid.SetStartCellAt(0, 0)
	grid.SetGoalCellAt(height-1, width-1)
	return grid
}

// testGame wires a playing session around a hand-built grid. The monster
// is parked in the far corner with its vision disabled so it cannot
// interfere unless a test wants it to.
func testGame(grid *world.Grid) *state.Game {
	cfg := config.Default()
	cfg.VisionRange = 0.001
	cfg.PatrolAmplitude = 0

	g := state.NewGame(cfg)
	g.Mode = state.ModePlaying
	g.Grid = grid

	start := grid.StartCell()
	g.Player = entities.NewPlayer(grid.CenterOf(start.Row, start.Col), cfg)
	g.Monster = entities.NewMonster(grid.CenterOf(grid.Height()-1, 0))
	g.ClearProjectiles()
	return g
}

func TestStartRun(t *testing.T) {
	cfg := config.Default()
	cfg.MazeWidth = 8
	cfg.MazeHeight = 6

	g := state.NewGame(cfg)
	require.NoError(t, StartRun(g, 11))

	assert.Equal(t, state.ModePlaying, g.Mode)
	assert.Equal(t, 8, g.Grid.Width())
	assert.Equal(t, 6, g.Grid.Height())
	assert.NotEqual(t, "", g.SessionID.String())

	start := g.Grid.StartCell()
	assert.Equal(t, g.Grid.CenterOf(start.Row, start.Col), g.Player.Pos)
	assert.Equal(t, cfg.MaxHealth, g.Player.Health)
	assert.NotNil(t, g.Monster)
	assert.Equal(t, 0, g.Projectiles.Size())
}

func TestStartRunRejectsInvalidDimensions(t *testing.T) {
	cfg := config.Default()
	cfg.MazeWidth = 1

	g := state.NewGame(cfg)
	err := StartRun(g, 1)

	require.Error(t, err)
	assert.Equal(t, state.ModeMenu, g.Mode)
	assert.False(t, g.InSession())
	assert.NotEmpty(t, g.Message)
}

func TestRestartReplaysSameMaze(t *testing.T) {
	g := state.NewGame(config.Default())
	require.NoError(t, StartRun(g, 21))

	layout := g.Grid.String()
	g.Player.TakeDamage(2, 0)
	g.Player.Pos = vec.Vec2{X: 5, Y: 5}

	require.NoError(t, Restart(g))

	assert.Equal(t, layout, g.Grid.String(), "restart must replay the same layout")
	assert.Equal(t, g.Player.MaxHealth, g.Player.Health)
	assert.Equal(t, state.ModePlaying, g.Mode)
}

func TestStepOnlyRunsWhilePlaying(t *testing.T) {
	for _, mode := range []state.Mode{state.ModeMenu, state.ModePaused, state.ModeWin, state.ModeLose} {
		t.Run(mode.String(), func(t *testing.T) {
			g := testGame(openArena(4, 4))
			g.Mode = mode
			before := g.Player.Pos

			Step(g, input.Snapshot{MoveX: 1}, 0.1)

			assert.Equal(t, before, g.Player.Pos)
			assert.Zero(t, g.Elapsed)
		})
	}
}

func TestStepMovesPlayer(t *testing.T) {
	g := testGame(openArena(4, 4))

	Step(g, input.Snapshot{MoveX: 1}, 0.1)

	assert.InDelta(t, 0.5+g.Cfg.PlayerSpeed*0.1, g.Player.Pos.X, 1e-9)
	assert.InDelta(t, 0.5, g.Player.Pos.Y, 1e-9)
	assert.InDelta(t, 0.1, g.Elapsed, 1e-9)
}

func TestTurningWhileMovingKeepsLookInput(t *testing.T) {
	g := testGame(openArena(4, 4))

	// An explicit turn is not overwritten by the travel direction.
	before := g.Player.Heading
	Step(g, input.Snapshot{MoveX: 1, LookDelta: 0.3}, 0.01)
	assert.InDelta(t, before+0.3, g.Player.Heading, 1e-9)

	// Turning while standing still also holds.
	before = g.Player.Heading
	Step(g, input.Snapshot{LookDelta: -0.2}, 0.01)
	assert.InDelta(t, before-0.2, g.Player.Heading, 1e-9)

	// With no look input the player faces the direction of travel.
	Step(g, input.Snapshot{MoveY: 1}, 0.01)
	assert.InDelta(t, math.Pi/2, g.Player.Heading, 1e-9)
}

func TestStepStopsAtWalls(t *testing.T) {
	// Fully walled grid: the player cannot leave the start cell.
	grid := world.NewGrid(3, 3)
	grid.SetStartCellAt(1, 1)
	grid.SetGoalCellAt(2, 2)
	g := testGame(grid)

	for i := 0; i < 20; i++ {
		Step(g, input.Snapshot{MoveX: 1, MoveY: 1}, 0.1)
	}

	cell := grid.CellAt(g.Player.Pos)
	require.NotNil(t, cell)
	assert.Equal(t, 1, cell.Row)
	assert.Equal(t, 1, cell.Col)
}

func TestStepWinsOnGoalCell(t *testing.T) {
	grid := openArena(4, 4)
	g := testGame(grid)

	goal := grid.GoalCell()
	g.Player.Pos = grid.CenterOf(goal.Row, goal.Col)

	Step(g, input.Snapshot{}, 0.01)

	assert.Equal(t, state.ModeWin, g.Mode)
	assert.NotEmpty(t, g.Message)
}

func TestStepLosesWhenHealthGone(t *testing.T) {
	g := testGame(openArena(4, 4))
	g.Player.Health = 0

	Step(g, input.Snapshot{}, 0.01)

	assert.Equal(t, state.ModeLose, g.Mode)
}

func TestProjectileStoppedByWall(t *testing.T) {
	// All walls closed: a shot from the neighboring cell must die on the
	// shared wall without touching the player.
	grid := world.NewGrid(2, 1)
	grid.SetStartCellAt(0, 1)
	grid.SetGoalCellAt(0, 0)
	g := testGame(grid)

	g.Projectiles.Put(&entities.Projectile{
		Pos:    vec.Vec2{X: 0.5, Y: 0.5},
		Vel:    vec.Vec2{X: 5},
		TTL:    5,
		Radius: 0.25,
	})

	Step(g, input.Snapshot{}, 0.2)

	assert.Equal(t, 0, g.Projectiles.Size(), "projectile should be destroyed on the wall")
	assert.Equal(t, g.Player.MaxHealth, g.Player.Health)
}

func TestProjectileHitAndInvulnerability(t *testing.T) {
	g := testGame(openArena(4, 4))

	hit := func() {
		g.Projectiles.Put(&entities.Projectile{
			Pos:    g.Player.Pos,
			TTL:    5,
			Radius: 0.25,
		})
		Step(g, input.Snapshot{}, 0.01)
	}

	hit()
	assert.Equal(t, g.Player.MaxHealth-g.Cfg.Damage, g.Player.Health)
	assert.Equal(t, 0, g.Projectiles.Size())
	assert.True(t, g.Player.Invulnerable())

	// A second shot during the immunity window is consumed without
	// costing health.
	hit()
	assert.Equal(t, g.Player.MaxHealth-g.Cfg.Damage, g.Player.Health)
	assert.Equal(t, 0, g.Projectiles.Size())
}

func TestFastProjectileCannotTunnelThroughPlayer(t *testing.T) {
	// At a long tick a shot covers several cells, so both endpoints of
	// its travel can land outside the hit radius. The swept path still
	// has to connect.
	g := testGame(openArena(8, 1))
	g.Player.Pos = vec.Vec2{X: 2.0, Y: 0.5}

	g.Projectiles.Put(&entities.Projectile{
		Pos:    vec.Vec2{X: 3.5, Y: 0.5},
		Vel:    vec.Vec2{X: -15},
		TTL:    5,
		Radius: 0.25,
	})

	Step(g, input.Snapshot{}, 0.15)

	assert.Equal(t, g.Player.MaxHealth-g.Cfg.Damage, g.Player.Health,
		"shot crossing the player mid-tick must land")
	assert.Equal(t, 0, g.Projectiles.Size())
}

func TestThreeSpacedHitsLoseTheGame(t *testing.T) {
	g := testGame(openArena(4, 4))
	require.Equal(t, 3, g.Player.MaxHealth)

	for hit := 1; hit <= 3; hit++ {
		g.Projectiles.Put(&entities.Projectile{
			Pos:    g.Player.Pos,
			TTL:    5,
			Radius: 0.25,
		})
		Step(g, input.Snapshot{}, 0.01)
		assert.Equal(t, g.Player.MaxHealth-hit, g.Player.Health, "after hit %d", hit)

		// Wait out the invulnerability window between hits.
		Step(g, input.Snapshot{}, 0.6)
		Step(g, input.Snapshot{}, 0.6)
	}

	assert.Equal(t, state.ModeLose, g.Mode)
}

func TestProjectileExpires(t *testing.T) {
	g := testGame(openArena(8, 8))
	g.Player.Pos = vec.Vec2{X: 0.5, Y: 0.5}

	g.Projectiles.Put(&entities.Projectile{
		Pos:    vec.Vec2{X: 6, Y: 6},
		Vel:    vec.Vec2{X: 0.1},
		TTL:    0.05,
		Radius: 0.25,
	})

	Step(g, input.Snapshot{}, 0.1)

	assert.Equal(t, 0, g.Projectiles.Size())
	assert.Equal(t, g.Player.MaxHealth, g.Player.Health)
}
