package world

import (
	"math"

	"cubemaze/pkg/engine/vec"
)

// LineOfSight returns true if the straight segment between two world
// points crosses no closed wall. The segment is walked cell by cell;
// every cell-boundary crossing is checked against the wall flag of the
// cell being exited. A crossing exactly through a cell corner is treated
// as clear only when at least one axis ordering passes through open
// walls.
func (g *Grid) LineOfSight(a, b vec.Vec2) bool {
	if g.CellAt(a) == nil || g.CellAt(b) == nil {
		return false
	}

	dx := b.X - a.X
	dy := b.Y - a.Y

	col, row := int(a.X), int(a.Y)
	endCol, endRow := int(b.X), int(b.Y)

	stepCol, dirX := 0, East
	if dx > 0 {
		stepCol, dirX = 1, East
	} else if dx < 0 {
		stepCol, dirX = -1, West
	}
	stepRow, dirY := 0, South
	if dy > 0 {
		stepRow, dirY = 1, South
	} else if dy < 0 {
		stepRow, dirY = -1, North
	}

	// Parametric distance to the next vertical/horizontal boundary and
	// per-cell increments (standard grid traversal).
	tMaxX, tDeltaX := math.Inf(1), math.Inf(1)
	if dx != 0 {
		tDeltaX = 1 / math.Abs(dx)
		if dx > 0 {
			tMaxX = (math.Floor(a.X) + 1 - a.X) / dx
		} else {
			tMaxX = (a.X - math.Floor(a.X)) / -dx
		}
	}
	tMaxY, tDeltaY := math.Inf(1), math.Inf(1)
	if dy != 0 {
		tDeltaY = 1 / math.Abs(dy)
		if dy > 0 {
			tMaxY = (math.Floor(a.Y) + 1 - a.Y) / dy
		} else {
			tMaxY = (a.Y - math.Floor(a.Y)) / -dy
		}
	}

	// Bound iterations to the worst-case cell count on the segment.
	for guard := g.width + g.height + 2; guard > 0; guard-- {
		if col == endCol && row == endRow {
			return true
		}

		cell := g.Cell(row, col)
		if cell == nil {
			return false
		}

		switch {
		case tMaxX < tMaxY:
			if cell.HasWall(dirX) {
				return false
			}
			col += stepCol
			tMaxX += tDeltaX
		case tMaxY < tMaxX:
			if cell.HasWall(dirY) {
				return false
			}
			row += stepRow
			tMaxY += tDeltaY
		default:
			// Exact corner crossing: passable if either step order
			// threads open walls around the corner.
			viaX := !cell.HasWall(dirX) && g.InBounds(row, col+stepCol) &&
				!g.Cell(row, col+stepCol).HasWall(dirY)
			viaY := !cell.HasWall(dirY) && g.InBounds(row+stepRow, col) &&
				!g.Cell(row+stepRow, col).HasWall(dirX)
			if !viaX && !viaY {
				return false
			}
			col += stepCol
			row += stepRow
			tMaxX += tDeltaX
			tMaxY += tDeltaY
		}
	}

	return false
}
