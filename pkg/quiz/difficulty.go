// Package quiz holds the game state of the car brand quiz: the asset catalog,
// the difficulty selector and the play-through session.
//
// The package knows nothing about windows or terminals. Frontends (the
// Ebitengine scenes in pkg/scenes and the terminal model in internal/tui)
// drive it and decide how to render the errors it returns.
package quiz

import (
	"fmt"
	"strings"
)

// Difficulty selects which subset of the catalog is played.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// Difficulties returns all tags in display order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

// Valid reports whether d is one of the known tags.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Normal, Hard:
		return true
	}
	return false
}

// Title returns the tag with its first letter upper-cased ("Easy").
func (d Difficulty) Title() string {
	s := string(d)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// WindowTitle is the title used for the session view of this difficulty.
func (d Difficulty) WindowTitle() string {
	return d.Title() + " Game Window"
}

// ParseDifficulty parses a tag case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}
