package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/carquiz/pkg/utils"
)

const (
	dialogWidth      = 420
	dialogPadding    = 20
	dialogTitleGap   = 12
	dialogButtonW    = 96
	dialogButtonH    = 32
	dialogMinHeight  = 150
	dialogLineSpacer = 4
)

// Dialog is a modal message box with a single OK button.
// While visible it swallows all input. Enter, Escape or the OK button close
// it and then run the onClose callback given to Show.
type Dialog struct {
	Screen image.Rectangle
	Face   text.Face

	visible bool
	title   string
	lines   []string
	onClose func()
	ok      *Button
	rect    image.Rectangle
}

// NewDialog creates a hidden dialog centered on screen.
func NewDialog(screen image.Rectangle, face text.Face) *Dialog {
	d := &Dialog{Screen: screen, Face: face}
	d.ok = NewButton("OK", image.Rectangle{}, face, nil)
	return d
}

// Show opens the dialog. Calling Show on a visible dialog replaces it.
func (d *Dialog) Show(title, message string, onClose func()) {
	d.title = title
	d.lines = utils.WrapText(message, d.Face, dialogWidth-2*dialogPadding)
	d.onClose = onClose
	d.visible = true
	d.layout()
}

// Visible reports whether the dialog is open.
func (d *Dialog) Visible() bool {
	return d.visible
}

// Title returns the title of the open dialog.
func (d *Dialog) Title() string {
	return d.title
}

// Message returns the wrapped message lines of the open dialog.
func (d *Dialog) Message() []string {
	return d.lines
}

func (d *Dialog) layout() {
	lineH := int(utils.LineHeight(d.Face)) + dialogLineSpacer
	h := dialogPadding + lineH + dialogTitleGap + len(d.lines)*lineH + dialogPadding + dialogButtonH + dialogPadding
	h = max(h, dialogMinHeight)

	c := d.Screen.Min.Add(image.Pt(d.Screen.Dx()/2, d.Screen.Dy()/2))
	d.rect = image.Rect(c.X-dialogWidth/2, c.Y-h/2, c.X+dialogWidth/2, c.Y+h/2)

	bx := c.X - dialogButtonW/2
	by := d.rect.Max.Y - dialogPadding - dialogButtonH
	d.ok.Rect = image.Rect(bx, by, bx+dialogButtonW, by+dialogButtonH)
}

// Update handles input while the dialog is open. It returns true when the
// dialog consumed the frame, so the caller must skip its own input handling.
func (d *Dialog) Update(in Input) bool {
	if !d.visible {
		return false
	}
	if in.Enter || in.Escape || d.ok.Update(in) {
		d.Close()
	}
	return true
}

// Close hides the dialog and runs its callback once.
func (d *Dialog) Close() {
	if !d.visible {
		return
	}
	d.visible = false
	cb := d.onClose
	d.onClose = nil
	if cb != nil {
		cb()
	}
}

// Draw renders the overlay and the box when visible.
func (d *Dialog) Draw(dst *ebiten.Image) {
	if !d.visible {
		return
	}
	FillRect(dst, d.Screen, ColorOverlay)
	FillRect(dst, d.rect, ColorBackground)
	StrokeRect(dst, d.rect, ColorBorder)

	lineH := utils.LineHeight(d.Face) + dialogLineSpacer
	x := float64(d.rect.Min.X + dialogPadding)
	y := float64(d.rect.Min.Y + dialogPadding)
	utils.DrawText(dst, d.title, d.Face, x, y, ColorAccent)
	y += lineH + dialogTitleGap
	for _, line := range d.lines {
		utils.DrawText(dst, line, d.Face, x, y, ColorText)
		y += lineH
	}
	d.ok.Draw(dst)
}
