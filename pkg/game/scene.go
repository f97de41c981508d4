package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one top-level view (difficulty selector, quiz session).
// Only one scene is active at a time.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closable is an optional interface for scenes that react to the window close
// button.
//
// CloseRequested returns true when the application should terminate, false
// when the scene handled the request itself (a session returning to the
// selector, for example).
type Closable interface {
	CloseRequested() bool
}

// Titled is an optional interface for scenes that set the window title while
// they are active.
type Titled interface {
	Title() string
}
