// Package audio plays the game's sound cues. Tones are synthesized on
// the fly, so no sound assets ship with the binary. When no audio device
// is available the game falls back to silence.
package audio

// Player is the set of sound cues the game emits. Implementations must
// not block; cues fire from the simulation tick.
type Player interface {
	// WindUp plays the attack telegraph cue.
	WindUp()
	// Fire plays the monster's projectile launch cue.
	Fire()
	// Hit plays the player damage cue.
	Hit()
	// Win plays the escape jingle.
	Win()
	// Lose plays the defeat jingle.
	Lose()
	// Close releases the audio device.
	Close()
}

// Noop is a silent Player for headless runs and tests.
type Noop struct{}

// WindUp implements Player.
func (Noop) WindUp() {}

// Fire implements Player.
func (Noop) Fire() {}

// Hit implements Player.
func (Noop) Hit() {}

// Win implements Player.
func (Noop) Win() {}

// Lose implements Player.
func (Noop) Lose() {}

// Close implements Player.
func (Noop) Close() {}
