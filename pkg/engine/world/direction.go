package world

// Direction is one of the four cardinal directions on the grid. North
// points toward row zero, East toward higher column indices, matching
// the X/Y layout of the vec package.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// Row and column shift of one step, indexed by direction.
var directionDeltas = [...][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// AllDirections lists the directions in clockwise order for iteration.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite pairs North with South and East with West. Invalid values
// come back unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta reports how one step in this direction shifts the row and
// column indices.
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}
