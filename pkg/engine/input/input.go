// Package input defines the engine-side input contract: a per-tick
// snapshot of movement axes and discrete just-pressed actions, and the
// Source interface renderers implement to supply it. The simulation only
// ever reads snapshots; it never touches devices directly.
package input

// Action is a discrete, just-pressed input event.
type Action int

// Discrete actions
const (
	ActionNone Action = iota
	ActionConfirm
	ActionBack
	ActionUp
	ActionDown
	ActionQuit
)

// String returns the string representation of an action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Snapshot captures the input state for one simulation tick. Axes are in
// [-1, 1]; LookDelta is the yaw change in radians accumulated since the
// previous tick.
type Snapshot struct {
	// MoveX is the strafe axis: negative west/left, positive east/right.
	MoveX float64
	// MoveY is the walk axis: negative north/forward, positive south/back.
	MoveY float64
	// LookDelta is the heading change requested this tick.
	LookDelta float64
	// Jump is held while the jump key is down.
	Jump bool
	// Action is the discrete event that fired this tick, if any.
	Action Action
}

// IsZero reports whether the snapshot carries no input at all.
func (s Snapshot) IsZero() bool {
	return s.MoveX == 0 && s.MoveY == 0 && s.LookDelta == 0 && !s.Jump && s.Action == ActionNone
}

// Source supplies one input snapshot per tick. Implementations live in
// the renderer backends; the simulation consumes snapshots only.
type Source interface {
	Poll() Snapshot
}
