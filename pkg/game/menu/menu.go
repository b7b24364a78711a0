// Package menu provides the selection model behind the main, pause and
// end-of-run screens. The model only tracks items and the cursor;
// renderers draw it and the controller acts on the activated item.
package menu

// ItemAction identifies what activating a menu item asks the controller
// to do.
type ItemAction int

// Menu item actions.
const (
	ActNone ItemAction = iota
	ActStart
	ActResume
	ActRetry
	ActNewMaze
	ActMainMenu
	ActQuit
)

// Item is one row of a menu.
type Item struct {
	Label  string
	Action ItemAction
}

// Model is a vertical menu with a wrapping cursor.
type Model struct {
	Title    string
	Items    []Item
	selected int
}

// New creates a menu with the cursor on the first item.
func New(title string, items ...Item) *Model {
	return &Model{Title: title, Items: items}
}

// Selected returns the index of the item under the cursor.
func (m *Model) Selected() int {
	return m.selected
}

// Up moves the cursor up, wrapping past the top.
func (m *Model) Up() {
	if len(m.Items) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.Items)) % len(m.Items)
}

// Down moves the cursor down, wrapping past the bottom.
func (m *Model) Down() {
	if len(m.Items) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.Items)
}

// Activate returns the action of the item under the cursor.
func (m *Model) Activate() ItemAction {
	if m.selected < 0 || m.selected >= len(m.Items) {
		return ActNone
	}
	return m.Items[m.selected].Action
}
