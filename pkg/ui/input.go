// Package ui implements the small set of immediate widgets the quiz screens
// are built from: buttons, a radio group, a text input and a modal dialog.
//
// Widgets never poll Ebitengine themselves. The scene reads one Input
// snapshot per frame and hands it to every widget, which keeps the widgets
// testable without a running game loop.
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/carquiz/pkg/utils"
)

// Input is the keyboard and pointer state of one frame.
type Input struct {
	// X, Y is the pointer position.
	X, Y int
	// Pressed is true while the left button or a finger is down.
	Pressed bool
	// JustPressed is true on the frame the press started.
	JustPressed bool
	// JustReleased is true on the frame the press ended. Buttons fire here.
	JustReleased bool

	// Chars are the characters typed this frame.
	Chars []rune

	// Editing keys, already filtered through the key repeat schedule.
	Backspace, Delete, Left, Right bool
	Home, End                      bool

	Enter, Escape bool
	Up, Down      bool

	// Digit is the number key pressed this frame (1-9), or 0.
	Digit int
}

// Point returns the pointer position.
func (in Input) Point() image.Point {
	return image.Pt(in.X, in.Y)
}

// Click reports whether a click ended inside r this frame.
func (in Input) Click(r image.Rectangle) bool {
	return in.JustReleased && in.Point().In(r)
}

var digitKeys = [...][2]ebiten.Key{
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

// ReadInput captures the current frame's input from Ebitengine.
func ReadInput() Input {
	ps := utils.GetInputState()
	in := Input{
		X:           ps.X,
		Y:           ps.Y,
		JustPressed: ps.JustPressed,
		Pressed:     ps.IsTouching || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		in.JustReleased = true
		in.X, in.Y = inpututil.TouchPositionInPreviousTick(ids[0])
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.JustReleased = true
	}

	in.Chars = ebiten.AppendInputChars(nil)

	in.Backspace = utils.IsKeyRepeating(ebiten.KeyBackspace)
	in.Delete = utils.IsKeyRepeating(ebiten.KeyDelete)
	in.Left = utils.IsKeyRepeating(ebiten.KeyArrowLeft)
	in.Right = utils.IsKeyRepeating(ebiten.KeyArrowRight)
	in.Home = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	in.End = inpututil.IsKeyJustPressed(ebiten.KeyEnd)

	in.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	in.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Up = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	in.Down = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)

	for i, keys := range digitKeys {
		if inpututil.IsKeyJustPressed(keys[0]) || inpututil.IsKeyJustPressed(keys[1]) {
			in.Digit = i + 1
			break
		}
	}
	return in
}
