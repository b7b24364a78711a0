package world

import (
	"strings"

	"cubemaze/pkg/engine/vec"
)

// Grid represents the maze as a width×height matrix of cells. A freshly
// built grid has every wall closed; passages are carved by opening walls
// pairwise, so the wall flags of adjacent cells never disagree.
//
// The grid also maps cells onto the continuous world plane: cell
// (row, col) owns the unit square x ∈ [col, col+1), y ∈ [row, row+1).
type Grid struct {
	cells  [][]*Cell
	width  int
	height int

	startCell *Cell
	goalCell  *Cell
}

// NewGrid creates a new fully walled grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions.
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height

	g.cells = make([][]*Cell, height)
	for row := range g.cells {
		g.cells[row] = make([]*Cell, width)
		for col := range g.cells[row] {
			g.cells[row][col] = NewCell(row, col)
		}
	}
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// StartCell returns the starting cell.
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// GoalCell returns the goal cell.
func (g *Grid) GoalCell() *Cell {
	return g.goalCell
}

// InBounds checks if a row/col position is within grid bounds.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Cell returns the cell at the given position, or nil if out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// CellRelative returns the cell adjacent to the given cell in the
// specified direction, or nil at the grid edge.
func (g *Grid) CellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.Cell(c.Row+rowRel, c.Col+colRel)
}

// SetStartCellAt sets the starting cell by position. Returns false if out
// of bounds.
func (g *Grid) SetStartCellAt(row, col int) bool {
	cell := g.Cell(row, col)
	if cell == nil {
		return false
	}
	g.startCell = cell
	return true
}

// SetGoalCellAt sets the goal cell by position and marks it. Returns
// false if out of bounds.
func (g *Grid) SetGoalCellAt(row, col int) bool {
	cell := g.Cell(row, col)
	if cell == nil {
		return false
	}
	if g.goalCell != nil {
		g.goalCell.Goal = false
	}
	g.goalCell = cell
	cell.Goal = true
	return true
}

// Neighbors returns the valid moves from a position to its in-bounds
// 4-directional neighbors, regardless of walls.
func (g *Grid) Neighbors(pos Position) []Move {
	var moves []Move
	for _, dir := range AllDirections() {
		rowRel, colRel := dir.Delta()
		to := Position{Row: pos.Row + rowRel, Col: pos.Col + colRel}
		if g.InBounds(to.Row, to.Col) {
			moves = append(moves, Move{From: pos, To: to, Dir: dir})
		}
	}
	return moves
}

// OpenMoves returns the moves from a position through open walls.
func (g *Grid) OpenMoves(pos Position) []Move {
	var moves []Move
	cell := g.Cell(pos.Row, pos.Col)
	if cell == nil {
		return nil
	}
	for _, m := range g.Neighbors(pos) {
		if !cell.HasWall(m.Dir) {
			moves = append(moves, m)
		}
	}
	return moves
}

// OpenWall carves a passage along the given move, clearing the wall on
// both cells' shared face. Returns false if the move leaves the grid.
func (g *Grid) OpenWall(m Move) bool {
	from := g.Cell(m.From.Row, m.From.Col)
	to := g.Cell(m.To.Row, m.To.Col)
	if from == nil || to == nil {
		return false
	}
	from.setWall(m.Dir, false)
	to.setWall(m.Dir.Opposite(), false)
	return true
}

// OpenWallPairs counts carved passages. Each open shared face counts
// once. A spanning-tree maze has exactly width*height - 1 of them.
func (g *Grid) OpenWallPairs() int {
	count := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		// Count only south and east faces so each pair is seen once.
		if !cell.SouthWall && g.InBounds(row+1, col) {
			count++
		}
		if !cell.EastWall && g.InBounds(row, col+1) {
			count++
		}
	})
	return count
}

// ForEachCell iterates over all cells in the grid, calling the provided
// function for each.
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// CenterOf returns the world-plane center of the cell at (row, col).
func (g *Grid) CenterOf(row, col int) vec.Vec2 {
	return vec.Vec2{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}

// CellAt returns the cell owning the given world point, or nil if the
// point lies outside the maze.
func (g *Grid) CellAt(p vec.Vec2) *Cell {
	row := int(p.Y)
	col := int(p.X)
	if p.Y < 0 || p.X < 0 {
		return nil
	}
	return g.Cell(row, col)
}

// Validate checks the grid for common issues and returns an error
// description, or empty string if valid.
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	if g.startCell == nil {
		return "Grid has no start cell"
	}

	if g.goalCell == nil {
		return "Grid has no goal cell"
	}

	inconsistent := false
	g.ForEachCell(func(row, col int, cell *Cell) {
		for _, dir := range AllDirections() {
			adj := g.CellRelative(cell, dir)
			if adj != nil && cell.HasWall(dir) != adj.HasWall(dir.Opposite()) {
				inconsistent = true
			}
		}
	})
	if inconsistent {
		return "Grid has mismatched wall flags between adjacent cells"
	}

	return ""
}

// String renders the maze as ASCII art: walls as lines, the start cell
// as 'S' and the goal cell as 'G'. Useful for debug dumps and for
// comparing layouts in tests.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for row := 0; row < g.height; row++ {
		cellRow := "|"
		for col := 0; col < g.width; col++ {
			cell := g.cells[row][col]
			mark := "   "
			if cell == g.startCell {
				mark = " S "
			} else if cell.Goal {
				mark = " G "
			}
			if cell.EastWall {
				cellRow += mark + "|"
			} else {
				cellRow += mark + " "
			}
		}
		b.WriteString(cellRow + "\n")

		wallRow := "+"
		for col := 0; col < g.width; col++ {
			if g.cells[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}
