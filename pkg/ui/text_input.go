package ui

import (
	"image"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/carquiz/pkg/utils"
)

const (
	cursorBlinkInterval = 0.5 // seconds
	textInputPadding    = 6
)

// TextInput is a single-line editable field with a cursor.
type TextInput struct {
	Rect        image.Rectangle
	Face        text.Face
	Placeholder string
	MaxLength   int // in runes, 0 = unlimited
	Focused     bool

	text   []rune
	cursor int

	cursorVisible bool
	blinkTimer    float64
	offsetX       float64
}

// NewTextInput creates a focused, empty input.
func NewTextInput(rect image.Rectangle, face text.Face) *TextInput {
	return &TextInput{
		Rect:          rect,
		Face:          face,
		Focused:       true,
		cursorVisible: true,
	}
}

// Text returns the current contents.
func (ti *TextInput) Text() string {
	return string(ti.text)
}

// Cursor returns the cursor position in runes.
func (ti *TextInput) Cursor() int {
	return ti.cursor
}

// SetText replaces the contents and moves the cursor to the end.
func (ti *TextInput) SetText(s string) {
	ti.text = []rune(s)
	if ti.MaxLength > 0 && len(ti.text) > ti.MaxLength {
		ti.text = ti.text[:ti.MaxLength]
	}
	ti.cursor = len(ti.text)
	ti.offsetX = 0
	ti.showCursor()
}

// Clear empties the field.
func (ti *TextInput) Clear() {
	ti.SetText("")
}

// Update applies typed characters and editing keys. Clicking inside the
// field focuses it; clicking elsewhere does not take focus away.
func (ti *TextInput) Update(in Input, dt float64) {
	if in.JustPressed && in.Point().In(ti.Rect) {
		ti.Focused = true
	}
	if !ti.Focused {
		ti.cursorVisible = false
		return
	}

	ti.blinkTimer += dt
	if ti.blinkTimer >= cursorBlinkInterval {
		ti.blinkTimer = 0
		ti.cursorVisible = !ti.cursorVisible
	}

	if len(in.Chars) > 0 {
		ti.insert(in.Chars)
	}
	if in.Backspace {
		ti.deleteBefore()
	}
	if in.Delete {
		ti.deleteAfter()
	}
	if in.Left && ti.cursor > 0 {
		ti.cursor--
		ti.showCursor()
	}
	if in.Right && ti.cursor < len(ti.text) {
		ti.cursor++
		ti.showCursor()
	}
	if in.Home {
		ti.cursor = 0
		ti.showCursor()
	}
	if in.End {
		ti.cursor = len(ti.text)
		ti.showCursor()
	}
}

func (ti *TextInput) insert(chars []rune) {
	var accepted []rune
	for _, r := range chars {
		if unicode.IsPrint(r) {
			accepted = append(accepted, r)
		}
	}
	if len(accepted) == 0 {
		return
	}
	if ti.MaxLength > 0 {
		room := ti.MaxLength - len(ti.text)
		if room <= 0 {
			return
		}
		if len(accepted) > room {
			accepted = accepted[:room]
		}
	}

	result := make([]rune, 0, len(ti.text)+len(accepted))
	result = append(result, ti.text[:ti.cursor]...)
	result = append(result, accepted...)
	result = append(result, ti.text[ti.cursor:]...)
	ti.text = result
	ti.cursor += len(accepted)
	ti.showCursor()
}

func (ti *TextInput) deleteBefore() {
	if ti.cursor == 0 {
		return
	}
	ti.text = append(ti.text[:ti.cursor-1], ti.text[ti.cursor:]...)
	ti.cursor--
	ti.showCursor()
}

func (ti *TextInput) deleteAfter() {
	if ti.cursor >= len(ti.text) {
		return
	}
	ti.text = append(ti.text[:ti.cursor], ti.text[ti.cursor+1:]...)
	ti.showCursor()
}

// showCursor restarts the blink so the cursor is visible right after an edit.
func (ti *TextInput) showCursor() {
	ti.blinkTimer = 0
	ti.cursorVisible = true
}

// Draw renders the field, scrolling the text so the cursor stays visible.
func (ti *TextInput) Draw(dst *ebiten.Image) {
	FillRect(dst, ti.Rect, ColorField)
	border := ColorBorder
	if ti.Focused {
		border = ColorAccent
	}
	StrokeRect(dst, ti.Rect, border)

	inner := ti.Rect.Inset(textInputPadding)
	lineH := utils.LineHeight(ti.Face)
	y := float64(inner.Min.Y) + (float64(inner.Dy())-lineH)/2

	if len(ti.text) == 0 && ti.Placeholder != "" && !ti.Focused {
		utils.DrawText(dst, ti.Placeholder, ti.Face, float64(inner.Min.X), y, ColorMuted)
		return
	}

	cursorX, _ := utils.MeasureText(string(ti.text[:ti.cursor]), ti.Face)
	visible := float64(inner.Dx())
	if cursorX-ti.offsetX > visible {
		ti.offsetX = cursorX - visible
	}
	if cursorX < ti.offsetX {
		ti.offsetX = cursorX
	}

	field := dst.SubImage(inner).(*ebiten.Image)
	utils.DrawText(field, string(ti.text), ti.Face, float64(inner.Min.X)-ti.offsetX, y, ColorText)

	if ti.Focused && ti.cursorVisible {
		x := float32(float64(inner.Min.X) + cursorX - ti.offsetX)
		vector.StrokeLine(dst, x, float32(y), x, float32(y+lineH), 1, ColorText, false)
	}
}
