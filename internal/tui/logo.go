package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the top pixel as foreground and the bottom one as
// background, so one cell shows two square-ish pixels.
const halfBlock = "▀"

// RenderLogo draws img as truecolor half-block art no larger than
// maxCols x maxRows cells, keeping its aspect ratio.
func RenderLogo(img image.Image, maxCols, maxRows int) string {
	if img == nil || maxCols <= 0 || maxRows <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Empty() {
		return ""
	}

	cols, pixRows := fitCells(b.Dx(), b.Dy(), maxCols, maxRows*2)
	var sb strings.Builder
	for y := 0; y < pixRows; y += 2 {
		for x := 0; x < cols; x++ {
			top := sample(img, x, y, cols, pixRows)
			bottom := top
			if y+1 < pixRows {
				bottom = sample(img, x, y+1, cols, pixRows)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom))).
				Render(halfBlock))
		}
		if y+2 < pixRows {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// fitCells scales w x h into maxW x maxH preserving the aspect ratio.
// Both results are at least 1.
func fitCells(w, h, maxW, maxH int) (int, int) {
	sx := float64(maxW) / float64(w)
	sy := float64(maxH) / float64(h)
	s := min(sx, sy)
	return max(1, int(float64(w)*s)), max(1, int(float64(h)*s))
}

// sample returns the nearest source pixel for target pixel (x, y), blending
// transparent pixels over white.
func sample(img image.Image, x, y, w, h int) color.RGBA {
	b := img.Bounds()
	sx := b.Min.X + x*b.Dx()/w
	sy := b.Min.Y + y*b.Dy()/h
	r, g, bl, a := img.At(sx, sy).RGBA()

	// premultiplied 16-bit channels over a white background
	blend := func(c uint32) uint8 {
		return uint8((c + (0xffff - a)) >> 8)
	}
	return color.RGBA{R: blend(r), G: blend(g), B: blend(bl), A: 0xff}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
