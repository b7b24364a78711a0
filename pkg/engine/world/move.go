package world

import "cubemaze/pkg/engine/vec"

// SlideMove advances a circular entity by delta, resolving each axis
// against closed walls independently so the entity slides along walls
// instead of sticking to them. The returned position never lets the
// entity's radius poke through a closed face or leave the grid.
func (g *Grid) SlideMove(pos vec.Vec2, delta vec.Vec2, radius float64) vec.Vec2 {
	out := pos
	out.X = g.resolveAxisX(out, delta.X, radius)
	out.Y = g.resolveAxisY(out, delta.Y, radius)
	return out
}

func (g *Grid) resolveAxisX(pos vec.Vec2, dx, radius float64) float64 {
	if dx == 0 {
		return pos.X
	}

	cell := g.CellAt(pos)
	if cell == nil {
		return pos.X
	}

	// Walk every cell boundary the move crosses, so a displacement larger
	// than one cell still stops at the first closed wall on the way.
	x := pos.X + dx
	if dx > 0 {
		for x > float64(cell.Col)+1-radius {
			if cell.EastWall {
				return float64(cell.Col) + 1 - radius
			}
			next := g.Cell(cell.Row, cell.Col+1)
			if next == nil {
				break
			}
			cell = next
		}
	} else {
		for x < float64(cell.Col)+radius {
			if cell.WestWall {
				return float64(cell.Col) + radius
			}
			next := g.Cell(cell.Row, cell.Col-1)
			if next == nil {
				break
			}
			cell = next
		}
	}

	// Keep inside the outer boundary even with every border wall open.
	if x < radius {
		x = radius
	}
	if max := float64(g.width) - radius; x > max {
		x = max
	}
	return x
}

func (g *Grid) resolveAxisY(pos vec.Vec2, dy, radius float64) float64 {
	if dy == 0 {
		return pos.Y
	}

	cell := g.CellAt(pos)
	if cell == nil {
		return pos.Y
	}

	y := pos.Y + dy
	if dy > 0 {
		for y > float64(cell.Row)+1-radius {
			if cell.SouthWall {
				return float64(cell.Row) + 1 - radius
			}
			next := g.Cell(cell.Row+1, cell.Col)
			if next == nil {
				break
			}
			cell = next
		}
	} else {
		for y < float64(cell.Row)+radius {
			if cell.NorthWall {
				return float64(cell.Row) + radius
			}
			next := g.Cell(cell.Row-1, cell.Col)
			if next == nil {
				break
			}
			cell = next
		}
	}

	if y < radius {
		y = radius
	}
	if max := float64(g.height) - radius; y > max {
		y = max
	}
	return y
}

// SegmentBlocked reports whether a point-sized mover travelling from a to
// b would cross a closed wall. Used for projectile-versus-wall tests.
func (g *Grid) SegmentBlocked(a, b vec.Vec2) bool {
	return !g.LineOfSight(a, b)
}
