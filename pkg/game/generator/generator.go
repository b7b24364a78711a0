// Package generator builds maze layouts. Generators are deterministic:
// the same dimensions and seed always produce the same grid, which makes
// layouts shareable and sessions reproducible.
package generator

import (
	"errors"

	"cubemaze/pkg/engine/world"
)

// ErrInvalidDimensions is returned when a requested maze is too small to
// contain both a start and a goal.
var ErrInvalidDimensions = errors.New("maze dimensions must be at least 2x2")

// GridGenerator produces a complete maze layout: carved passages, a start
// cell and a goal cell.
type GridGenerator interface {
	// Generate builds a width×height maze from the seed. The returned
	// grid is a perfect maze: every cell reachable, no cycles.
	Generate(width, height int, seed int64) (*world.Grid, error)

	// Name identifies the generator, for logs and debug output.
	Name() string
}

// DefaultGenerator returns the generator used for normal play.
func DefaultGenerator() GridGenerator {
	return &Backtracker{}
}
