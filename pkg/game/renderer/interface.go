// Package renderer defines the contract rendering backends implement
// and holds the active backend. Backends own their frame loop: they poll
// input, feed the controller and draw the result until the player quits.
package renderer

import (
	"cubemaze/pkg/game/gameplay"
)

// Version information, set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Renderer is a rendering backend.
type Renderer interface {
	// Run drives the controller until it reports done or the backend
	// fails. Blocks for the lifetime of the session.
	Run(c *gameplay.Controller) error

	// Name identifies the backend, for logs and the version line.
	Name() string
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}

// Run drives the controller on the current renderer.
func Run(c *gameplay.Controller) error {
	if Current == nil {
		return nil
	}
	return Current.Run(c)
}
