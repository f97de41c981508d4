package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/carquiz/pkg/utils"
)

const checkboxSize = 16

// Checkbox is an on/off toggle with a label. A click on the box or the label
// toggles it on release.
type Checkbox struct {
	Label    string
	Rect     image.Rectangle
	Face     text.Face
	Checked  bool
	OnToggle func(checked bool)

	hovered bool
}

// NewCheckbox creates a checkbox.
func NewCheckbox(label string, rect image.Rectangle, face text.Face, checked bool) *Checkbox {
	return &Checkbox{Label: label, Rect: rect, Face: face, Checked: checked}
}

// Update handles a click and reports whether the state changed.
func (c *Checkbox) Update(in Input) bool {
	c.hovered = in.Point().In(c.Rect)
	if !in.Click(c.Rect) {
		return false
	}
	c.Checked = !c.Checked
	if c.OnToggle != nil {
		c.OnToggle(c.Checked)
	}
	return true
}

// Draw renders the box and its label.
func (c *Checkbox) Draw(dst *ebiten.Image) {
	y := c.Rect.Min.Y + (c.Rect.Dy()-checkboxSize)/2
	box := image.Rect(c.Rect.Min.X, y, c.Rect.Min.X+checkboxSize, y+checkboxSize)
	border := ColorBorder
	if c.hovered {
		border = ColorAccent
	}
	FillRect(dst, box, ColorField)
	StrokeRect(dst, box, border)
	if c.Checked {
		x0, y0 := float32(box.Min.X), float32(box.Min.Y)
		vector.StrokeLine(dst, x0+3, y0+8, x0+7, y0+12, 2, ColorAccent, true)
		vector.StrokeLine(dst, x0+7, y0+12, x0+13, y0+4, 2, ColorAccent, true)
	}

	_, h := utils.MeasureText(c.Label, c.Face)
	utils.DrawText(dst, c.Label, c.Face, float64(box.Max.X+8), float64(c.Rect.Min.Y)+(float64(c.Rect.Dy())-h)/2, ColorText)
}
