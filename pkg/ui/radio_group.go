package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/carquiz/pkg/utils"
)

const (
	radioRowHeight = 32
	radioMarkSize  = 16
)

// RadioGroup is a vertical list of mutually exclusive options.
// Selected is -1 until the player picks one.
type RadioGroup struct {
	Options  []string
	Origin   image.Point
	Width    int
	Face     text.Face
	Selected int
	OnChange func(index int)

	hovered int
}

// NewRadioGroup creates a group with nothing selected.
func NewRadioGroup(options []string, origin image.Point, width int, face text.Face) *RadioGroup {
	return &RadioGroup{
		Options:  options,
		Origin:   origin,
		Width:    width,
		Face:     face,
		Selected: -1,
		hovered:  -1,
	}
}

// RowRect returns the clickable area of option i.
func (g *RadioGroup) RowRect(i int) image.Rectangle {
	y := g.Origin.Y + i*radioRowHeight
	return image.Rect(g.Origin.X, y, g.Origin.X+g.Width, y+radioRowHeight)
}

// Bounds returns the area covered by all options.
func (g *RadioGroup) Bounds() image.Rectangle {
	return image.Rect(g.Origin.X, g.Origin.Y, g.Origin.X+g.Width, g.Origin.Y+len(g.Options)*radioRowHeight)
}

// Select selects option i. Out of range values clear the selection.
func (g *RadioGroup) Select(i int) {
	if i < 0 || i >= len(g.Options) {
		i = -1
	}
	if i == g.Selected {
		return
	}
	g.Selected = i
	if g.OnChange != nil {
		g.OnChange(i)
	}
}

// Update handles clicks, number keys and the arrow keys.
func (g *RadioGroup) Update(in Input) {
	g.hovered = -1
	for i := range g.Options {
		r := g.RowRect(i)
		if in.Point().In(r) {
			g.hovered = i
		}
		if in.Click(r) {
			g.Select(i)
		}
	}

	if in.Digit > 0 && in.Digit <= len(g.Options) {
		g.Select(in.Digit - 1)
	}

	n := len(g.Options)
	if n == 0 {
		return
	}
	switch {
	case in.Down:
		g.Select((g.Selected + 1) % n)
	case in.Up:
		if g.Selected <= 0 {
			g.Select(n - 1)
		} else {
			g.Select(g.Selected - 1)
		}
	}
}

// Draw renders the options with a ring and a dot for the selected one.
func (g *RadioGroup) Draw(dst *ebiten.Image) {
	for i, label := range g.Options {
		r := g.RowRect(i)
		if i == g.hovered {
			FillRect(dst, r, ColorHover)
		}
		cx := float32(r.Min.X + radioMarkSize/2 + 4)
		cy := float32(r.Min.Y + r.Dy()/2)
		vector.DrawFilledCircle(dst, cx, cy, radioMarkSize/2, ColorField, true)
		vector.StrokeCircle(dst, cx, cy, radioMarkSize/2, 1, ColorBorder, true)
		if i == g.Selected {
			vector.DrawFilledCircle(dst, cx, cy, radioMarkSize/4, ColorAccent, true)
		}

		_, h := utils.MeasureText(label, g.Face)
		utils.DrawText(dst, label, g.Face, float64(r.Min.X+radioMarkSize+12), float64(r.Min.Y)+(float64(r.Dy())-h)/2, ColorText)
	}
}
