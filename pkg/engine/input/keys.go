package input

import (
	"os"

	"golang.org/x/term"
)

// KeyReader reads single keystrokes from a terminal in raw mode and maps
// them onto input snapshots. It backs the TUI renderer; the Ebiten
// renderer samples the keyboard through the engine instead.
type KeyReader struct {
	oldState *term.State
}

// NewKeyReader puts the terminal into raw mode. Call Restore before the
// process exits.
func NewKeyReader() (*KeyReader, error) {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	return &KeyReader{oldState: state}, nil
}

// Restore returns the terminal to its previous mode.
func (r *KeyReader) Restore() {
	if r.oldState != nil {
		_ = term.Restore(int(os.Stdin.Fd()), r.oldState)
		r.oldState = nil
	}
}

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readEscapeSequence consumes the remainder of an ANSI escape sequence
// and returns the snapshot it maps to. Arrow keys steer the player in
// game terms and menu selection in menu terms.
func readEscapeSequence() Snapshot {
	b2, err := readByte()
	if err != nil {
		return Snapshot{Action: ActionBack}
	}

	// CSI (ESC [) and SS3 (ESC O) sequences carry the key in byte 3.
	if b2 != '[' && b2 != 'O' {
		// Bare escape followed by an ordinary byte: treat as escape.
		return Snapshot{Action: ActionBack}
	}

	b3, err := readByte()
	if err != nil {
		return Snapshot{Action: ActionBack}
	}

	switch b3 {
	case 'A':
		return Snapshot{MoveY: -1, Action: ActionUp}
	case 'B':
		return Snapshot{MoveY: 1, Action: ActionDown}
	case 'C':
		return Snapshot{MoveX: 1}
	case 'D':
		return Snapshot{MoveX: -1}
	}
	return Snapshot{}
}

// Poll blocks for one keystroke and returns its snapshot. WASD moves,
// Q/E turns, space jumps, enter confirms, escape backs out.
func (r *KeyReader) Poll() Snapshot {
	b, err := readByte()
	if err != nil {
		return Snapshot{Action: ActionQuit}
	}

	switch b {
	case 0x1b:
		return readEscapeSequence()
	case 'w', 'W':
		return Snapshot{MoveY: -1}
	case 's', 'S':
		return Snapshot{MoveY: 1}
	case 'a', 'A':
		return Snapshot{MoveX: -1}
	case 'd', 'D':
		return Snapshot{MoveX: 1}
	case 'q', 'Q':
		return Snapshot{LookDelta: -turnStep}
	case 'e', 'E':
		return Snapshot{LookDelta: turnStep}
	case ' ':
		return Snapshot{Jump: true}
	case '\r', '\n':
		return Snapshot{Action: ActionConfirm}
	case 'k', 'K':
		return Snapshot{MoveY: -1, Action: ActionUp}
	case 'j', 'J':
		return Snapshot{MoveY: 1, Action: ActionDown}
	case 0x03, 0x04: // Ctrl-C / Ctrl-D
		return Snapshot{Action: ActionQuit}
	}
	return Snapshot{}
}

// turnStep is the heading change per turn keypress, in radians.
const turnStep = 0.2
