package menu

import "github.com/leonelquinteros/gotext"

// Main builds the title screen menu.
func Main() *Model {
	return New(gotext.Get("CUBE MAZE"),
		Item{Label: gotext.Get("Start"), Action: ActStart},
		Item{Label: gotext.Get("Quit"), Action: ActQuit},
	)
}

// Pause builds the pause overlay menu.
func Pause() *Model {
	return New(gotext.Get("Paused"),
		Item{Label: gotext.Get("Resume"), Action: ActResume},
		Item{Label: gotext.Get("Restart maze"), Action: ActRetry},
		Item{Label: gotext.Get("Main menu"), Action: ActMainMenu},
	)
}

// Win builds the victory screen menu.
func Win() *Model {
	return New(gotext.Get("You escaped!"),
		Item{Label: gotext.Get("New maze"), Action: ActNewMaze},
		Item{Label: gotext.Get("Main menu"), Action: ActMainMenu},
	)
}

// Lose builds the defeat screen menu. Retry replays the same maze.
func Lose() *Model {
	return New(gotext.Get("You died."),
		Item{Label: gotext.Get("Retry"), Action: ActRetry},
		Item{Label: gotext.Get("New maze"), Action: ActNewMaze},
		Item{Label: gotext.Get("Main menu"), Action: ActMainMenu},
	)
}
