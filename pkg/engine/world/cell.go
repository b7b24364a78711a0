// Package world provides the wall-grid world model: cells with boundary
// walls, the maze grid that owns them, line-of-sight queries and
// wall-aware movement. These are engine-level constructs usable by any
// maze-based game.
package world

// Cell represents a single cell in the maze grid. A cell starts with all
// four walls closed; walls are opened pairwise through Grid.OpenWall so
// that adjacent cells always agree about their shared face.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Boundary walls. A true value means the face is solid.
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool

	// Goal marks the cell the player must reach to win.
	Goal bool
}

// NewCell creates a fully walled cell at the given position.
func NewCell(row, col int) *Cell {
	return &Cell{
		Row:       row,
		Col:       col,
		NorthWall: true,
		SouthWall: true,
		EastWall:  true,
		WestWall:  true,
	}
}

// HasWall reports whether the face in the given direction is solid.
func (c *Cell) HasWall(dir Direction) bool {
	switch dir {
	case North:
		return c.NorthWall
	case East:
		return c.EastWall
	case South:
		return c.SouthWall
	case West:
		return c.WestWall
	default:
		return true
	}
}

// setWall sets the face in the given direction. Only the grid mutates
// walls, keeping the pairwise invariant in one place.
func (c *Cell) setWall(dir Direction, solid bool) {
	switch dir {
	case North:
		c.NorthWall = solid
	case East:
		c.EastWall = solid
	case South:
		c.SouthWall = solid
	case West:
		c.WestWall = solid
	}
}

// OpenSides returns the directions whose walls are open.
func (c *Cell) OpenSides() []Direction {
	var open []Direction
	for _, dir := range AllDirections() {
		if !c.HasWall(dir) {
			open = append(open, dir)
		}
	}
	return open
}

// Position identifies a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Pos returns the cell's position.
func (c *Cell) Pos() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// Move represents a step from one cell to an adjacent cell in a specific
// direction.
type Move struct {
	From Position
	To   Position
	Dir  Direction
}
