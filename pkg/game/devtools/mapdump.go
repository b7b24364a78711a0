// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"

	"cubemaze/pkg/game/generator"
)

// DumpMaze writes a human-readable dump of a generated maze: metadata,
// the ASCII layout and the monster spawn. Driven by the -dump flag, it
// lets a layout be inspected or attached to a bug report without
// playing it.
func DumpMaze(w io.Writer, gen generator.GridGenerator, width, height int, seed int64) error {
	grid, err := gen.Generate(width, height, seed)
	if err != nil {
		return fmt.Errorf("generate %dx%d maze: %w", width, height, err)
	}

	spawn := generator.MonsterSpawn(grid, seed)
	_, goalDist := grid.FarthestFrom(grid.StartCell())

	fmt.Fprintf(w, "generator: %s\n", gen.Name())
	fmt.Fprintf(w, "size: %dx%d\n", grid.Width(), grid.Height())
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "passages: %d\n", grid.OpenWallPairs())
	fmt.Fprintf(w, "goal distance: %d\n", goalDist)
	fmt.Fprintf(w, "monster spawn: (%d, %d)\n", spawn.Row, spawn.Col)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "legend: S start, G goal")
	fmt.Fprintln(w)
	fmt.Fprint(w, grid.String())

	if issue := grid.Validate(); issue != "" {
		fmt.Fprintf(w, "\nWARNING: %s\n", issue)
	}
	return nil
}
