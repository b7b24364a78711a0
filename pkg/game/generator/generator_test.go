package generator

import (
	"testing"
)

func TestGenerateRejectsTinyMazes(t *testing.T) {
	g := DefaultGenerator()

	for _, dims := range [][2]int{{1, 5}, {5, 1}, {0, 0}, {-3, 4}} {
		_, err := g.Generate(dims[0], dims[1], 1)
		if err != ErrInvalidDimensions {
			t.Errorf("Generate(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := DefaultGenerator()

	first, err := g.Generate(20, 20, 42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := g.Generate(20, 20, 42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if first.String() != second.String() {
		t.Error("Same seed produced different layouts")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	g := DefaultGenerator()

	first, _ := g.Generate(20, 20, 1)
	second, _ := g.Generate(20, 20, 2)

	if first.String() == second.String() {
		t.Error("Different seeds produced identical 20x20 layouts")
	}
}

func TestGenerateProducesSpanningTree(t *testing.T) {
	g := DefaultGenerator()

	grid, err := g.Generate(15, 11, 7)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if issue := grid.Validate(); issue != "" {
		t.Fatalf("Generated grid is invalid: %s", issue)
	}

	wantPassages := 15*11 - 1
	if got := grid.OpenWallPairs(); got != wantPassages {
		t.Errorf("OpenWallPairs() = %d, want %d", got, wantPassages)
	}

	dist := grid.Distances(grid.StartCell())
	if len(dist) != 15*11 {
		t.Errorf("Reachable cells = %d, want %d", len(dist), 15*11)
	}
}

func TestGenerateStartAndGoal(t *testing.T) {
	g := DefaultGenerator()

	grid, err := g.Generate(12, 12, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	start := grid.StartCell()
	if start == nil || start.Row != 0 || start.Col != 0 {
		t.Fatalf("StartCell = %v, want cell (0, 0)", start)
	}

	goal := grid.GoalCell()
	if goal == nil {
		t.Fatal("Grid has no goal cell")
	}
	if !goal.Goal {
		t.Error("Goal cell is not flagged")
	}

	// The goal must sit at the maximum passage distance from the start.
	dist := grid.Distances(start)
	for _, d := range dist {
		if d > dist[goal] {
			t.Errorf("Found cell at distance %d beyond goal distance %d", d, dist[goal])
			break
		}
	}
}

func TestMonsterSpawn(t *testing.T) {
	g := DefaultGenerator()

	grid, err := g.Generate(20, 20, 9)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	spawn := MonsterSpawn(grid, 9)
	if spawn == nil {
		t.Fatal("MonsterSpawn returned nil")
	}
	if !grid.InBounds(spawn.Row, spawn.Col) {
		t.Fatalf("Spawn cell (%d, %d) out of bounds", spawn.Row, spawn.Col)
	}

	again := MonsterSpawn(grid, 9)
	if again != spawn {
		t.Error("Same seed produced different spawn cells")
	}

	// Either the distance rule held, or the search fell back to center.
	minDist := (grid.Width() + grid.Height()) / 4
	center := grid.Cell(grid.Height()/2, grid.Width()/2)
	if spawn != center {
		if manhattan(spawn, grid.StartCell()) < minDist {
			t.Errorf("Spawn too close to start: %d < %d", manhattan(spawn, grid.StartCell()), minDist)
		}
		if manhattan(spawn, grid.GoalCell()) < minDist {
			t.Errorf("Spawn too close to goal: %d < %d", manhattan(spawn, grid.GoalCell()), minDist)
		}
	}
}

func TestBacktrackerName(t *testing.T) {
	var g GridGenerator = &Backtracker{}
	if g.Name() != "backtracker" {
		t.Errorf("Name() = %q", g.Name())
	}
}

func TestGenerateMinimumSize(t *testing.T) {
	g := DefaultGenerator()

	grid, err := g.Generate(2, 2, 1)
	if err != nil {
		t.Fatalf("Generate(2, 2) failed: %v", err)
	}

	if grid.OpenWallPairs() != 3 {
		t.Errorf("2x2 maze has %d passages, want 3", grid.OpenWallPairs())
	}
	if grid.StartCell() == grid.GoalCell() {
		t.Error("Start and goal share a cell")
	}
}
