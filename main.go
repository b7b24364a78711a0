// Cube Maze: escape a procedurally generated maze before the cube that
// lives in it gets you.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"cubemaze/pkg/game/audio"
	"cubemaze/pkg/game/config"
	"cubemaze/pkg/game/devtools"
	"cubemaze/pkg/game/gameplay"
	"cubemaze/pkg/game/generator"
	"cubemaze/pkg/game/renderer"
	"cubemaze/pkg/game/renderer/ebiten"
	"cubemaze/pkg/game/renderer/tui"
)

func initGotext() {
	gotext.Configure("locales", os.Getenv("LANG"), "cubemaze")
}

func main() {
	seed := flag.Int64("seed", 0, "fixed maze seed (0 = random each run)")
	width := flag.Int("width", 0, "maze width in cells (0 = config default)")
	height := flag.Int("height", 0, "maze height in cells (0 = config default)")
	useTUI := flag.Bool("tui", false, "render in the terminal instead of a window")
	mute := flag.Bool("mute", false, "disable sound")
	dump := flag.Bool("dump", false, "print the generated maze and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cubemaze %s (%s)\n", renderer.Version, renderer.Commit)
		return
	}

	initGotext()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MAIN] bad configuration: %v", err)
	}
	if *width > 0 {
		cfg.MazeWidth = *width
	}
	if *height > 0 {
		cfg.MazeHeight = *height
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[MAIN] bad configuration: %v", err)
	}

	if *dump {
		dumpSeed := *seed
		if dumpSeed == 0 {
			dumpSeed = 1
		}
		if err := devtools.DumpMaze(os.Stdout, generator.DefaultGenerator(),
			cfg.MazeWidth, cfg.MazeHeight, dumpSeed); err != nil {
			log.Fatalf("[MAIN] %v", err)
		}
		return
	}

	var seedFn func() int64
	if *seed != 0 {
		fixed := *seed
		seedFn = func() int64 { return fixed }
	}

	c := gameplay.NewController(cfg, seedFn)

	if !*mute {
		if player, err := audio.NewBeepPlayer(); err != nil {
			log.Printf("[MAIN] audio unavailable, running silent: %v", err)
		} else {
			c.Audio = player
			defer player.Close()
		}
	}

	if *useTUI {
		renderer.SetRenderer(tui.New())
	} else {
		renderer.SetRenderer(ebiten.New())
	}
	log.Printf("[MAIN] cubemaze %s starting with %s renderer", renderer.Version, renderer.Current.Name())

	if err := renderer.Run(c); err != nil {
		log.Fatalf("[MAIN] renderer failed: %v", err)
	}
}
