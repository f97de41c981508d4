package utils

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LineHeight returns the distance between two baselines of face.
func LineHeight(face text.Face) float64 {
	if face == nil {
		return 0
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureText returns the size of a possibly multi-line string.
func MeasureText(s string, face text.Face) (float64, float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return text.Measure(s, face, LineHeight(face))
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if s == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight(face)
	text.Draw(dst, s, face, op)
}

// DrawTextCentered draws s centered inside rect, line by line.
func DrawTextCentered(dst *ebiten.Image, s string, face text.Face, rect image.Rectangle, clr color.Color) {
	if s == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(rect.Min.X+rect.Dx()/2), float64(rect.Min.Y+rect.Dy()/2))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight(face)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// WrapText breaks textStr into lines no wider than maxWidth pixels.
// Lines break at spaces when possible; a word longer than maxWidth is split.
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapLine(paragraph, face, maxWidth)...)
	}
	return lines
}

func wrapLine(line string, face text.Face, maxWidth float64) []string {
	if measureTextWidth(line, face) <= maxWidth {
		return []string{line}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(line) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, face) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		// the word alone is too wide: split it rune by rune
		for measureTextWidth(word, face) > maxWidth {
			cut := fitPrefix(word, face, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// fitPrefix returns the byte length of the longest prefix of s that fits in
// maxWidth, at least one rune.
func fitPrefix(s string, face text.Face, maxWidth float64) int {
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end > 0 && measureTextWidth(s[:end+size], face) > maxWidth {
			break
		}
		end += size
	}
	return end
}

func measureTextWidth(s string, face text.Face) float64 {
	if s == "" || face == nil {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return w
}
