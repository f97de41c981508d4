// Package utils provides drawing and input helpers shared by the scenes.
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the pointer state of the current frame.
// Mouse and touch are handled the same way; touch wins when both are present.
type InputState struct {
	// JustPressed is true on the frame a click or touch started.
	JustPressed bool
	// X, Y is the pointer position in logical screen coordinates.
	X, Y int
	// IsTouching is true while a finger is down.
	IsTouching bool
}

// GetInputState reads the pointer state of the current frame.
func GetInputState() InputState {
	state := InputState{}

	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// IsKeyRepeating reports whether key fires this frame: on the first frame it
// is held, then every 3 frames after a 30-frame delay.
func IsKeyRepeating(key ebiten.Key) bool {
	return ShouldRepeat(inpututil.KeyPressDuration(key))
}

// ShouldRepeat implements the repeat schedule of IsKeyRepeating for a press
// duration in frames.
func ShouldRepeat(duration int) bool {
	return duration == 1 || (duration >= 30 && duration%3 == 0)
}
