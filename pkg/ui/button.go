package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/carquiz/pkg/utils"
)

// ButtonState is the interaction state of a button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// Button is a push button. OnClick fires when a press that started inside
// the button is released inside it.
type Button struct {
	Label   string
	Rect    image.Rectangle
	Face    text.Face
	Enabled bool
	OnClick func()

	state ButtonState
	armed bool
}

// NewButton creates an enabled button.
func NewButton(label string, rect image.Rectangle, face text.Face, onClick func()) *Button {
	return &Button{
		Label:   label,
		Rect:    rect,
		Face:    face,
		Enabled: true,
		OnClick: onClick,
	}
}

// SetEnabled enables or disables the button. A disabled button ignores input
// and draws its label muted.
func (b *Button) SetEnabled(enabled bool) {
	b.Enabled = enabled
	b.armed = false
	if enabled {
		b.state = ButtonNormal
	} else {
		b.state = ButtonDisabled
	}
}

// State returns the state computed by the last Update.
func (b *Button) State() ButtonState {
	return b.state
}

// Update handles the pointer and reports whether the button was clicked.
func (b *Button) Update(in Input) bool {
	if !b.Enabled {
		b.state = ButtonDisabled
		b.armed = false
		return false
	}

	inside := in.Point().In(b.Rect)
	if in.JustPressed {
		b.armed = inside
	}

	clicked := false
	switch {
	case in.JustReleased:
		clicked = b.armed && inside
		b.armed = false
	case in.Pressed && b.armed && inside:
		b.state = ButtonPressed
		return false
	}

	if inside {
		b.state = ButtonHovered
	} else {
		b.state = ButtonNormal
	}
	if clicked && b.OnClick != nil {
		b.OnClick()
	}
	return clicked
}

// Draw renders the button.
func (b *Button) Draw(dst *ebiten.Image) {
	face := ColorFace
	border := ColorBorder
	label := ColorText
	switch b.state {
	case ButtonHovered:
		face, border = ColorHover, ColorAccent
	case ButtonPressed:
		face, border = ColorPressed, ColorAccent
	case ButtonDisabled:
		label = ColorMuted
	}
	FillRect(dst, b.Rect, face)
	StrokeRect(dst, b.Rect, border)
	utils.DrawTextCentered(dst, b.Label, b.Face, b.Rect, label)
}
