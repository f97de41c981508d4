package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Colors shared by the widgets and scenes.
var (
	ColorBackground = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	ColorText       = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	ColorMuted      = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	ColorBorder     = color.RGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	ColorFace       = color.RGBA{R: 0xe1, G: 0xe1, B: 0xe1, A: 0xff}
	ColorHover      = color.RGBA{R: 0xe5, G: 0xf1, B: 0xfb, A: 0xff}
	ColorPressed    = color.RGBA{R: 0xcc, G: 0xe4, B: 0xf7, A: 0xff}
	ColorAccent     = color.RGBA{R: 0x00, G: 0x78, B: 0xd7, A: 0xff}
	ColorField      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorCorrect    = color.RGBA{R: 0x1e, G: 0x8c, B: 0x3a, A: 0xff}
	ColorWrong      = color.RGBA{R: 0xc4, G: 0x2b, B: 0x1c, A: 0xff}
	ColorOverlay    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x80}
)

// FillRect fills r with clr.
func FillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// StrokeRect draws a 1px border inside r.
func StrokeRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X)+0.5, float32(r.Min.Y)+0.5, float32(r.Dx()-1), float32(r.Dy()-1), 1, clr, false)
}
