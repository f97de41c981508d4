package ui

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

func testFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func press(x, y int) Input   { return Input{X: x, Y: y, Pressed: true, JustPressed: true} }
func release(x, y int) Input { return Input{X: x, Y: y, JustReleased: true} }
func typed(s string) Input   { return Input{Chars: []rune(s)} }

func TestButtonClickOnRelease(t *testing.T) {
	clicks := 0
	b := NewButton("Start Game", image.Rect(10, 10, 110, 40), testFace(), func() { clicks++ })

	if b.Update(press(20, 20)) {
		t.Fatal("button fired on press")
	}
	if b.State() != ButtonPressed {
		t.Errorf("State() = %v, want ButtonPressed", b.State())
	}
	if !b.Update(release(20, 20)) {
		t.Fatal("button did not fire on release")
	}
	if clicks != 1 {
		t.Errorf("OnClick called %d times, want 1", clicks)
	}
}

func TestButtonIgnoresDragIn(t *testing.T) {
	b := NewButton("OK", image.Rect(10, 10, 110, 40), testFace(), nil)

	b.Update(press(200, 200))
	if b.Update(release(20, 20)) {
		t.Error("a press that started outside must not click")
	}
}

func TestButtonReleaseOutside(t *testing.T) {
	b := NewButton("OK", image.Rect(10, 10, 110, 40), testFace(), nil)

	b.Update(press(20, 20))
	if b.Update(release(200, 200)) {
		t.Error("releasing outside must not click")
	}
}

func TestButtonDisabled(t *testing.T) {
	b := NewButton("OK", image.Rect(10, 10, 110, 40), testFace(), nil)
	b.SetEnabled(false)
	if b.State() != ButtonDisabled {
		t.Errorf("State() after SetEnabled(false) = %v, want ButtonDisabled", b.State())
	}

	b.Update(press(20, 20))
	if b.Update(release(20, 20)) {
		t.Error("disabled button clicked")
	}
	if b.State() != ButtonDisabled {
		t.Errorf("State() = %v, want ButtonDisabled", b.State())
	}
}

func TestButtonReenabled(t *testing.T) {
	b := NewButton("OK", image.Rect(10, 10, 110, 40), testFace(), nil)
	b.SetEnabled(false)
	b.SetEnabled(true)

	b.Update(press(20, 20))
	if !b.Update(release(20, 20)) {
		t.Error("re-enabled button did not click")
	}
}

func TestRadioGroup(t *testing.T) {
	g := NewRadioGroup([]string{"Easy", "Normal", "Hard"}, image.Pt(100, 100), 200, testFace())
	var changes []int
	g.OnChange = func(i int) { changes = append(changes, i) }

	if g.Selected != -1 {
		t.Fatalf("Selected = %d, want -1 before any choice", g.Selected)
	}

	row := g.RowRect(1)
	g.Update(release(row.Min.X+5, row.Min.Y+5))
	if g.Selected != 1 {
		t.Errorf("click: Selected = %d, want 1", g.Selected)
	}

	g.Update(Input{Digit: 3})
	if g.Selected != 2 {
		t.Errorf("digit 3: Selected = %d, want 2", g.Selected)
	}

	g.Update(Input{Digit: 9})
	if g.Selected != 2 {
		t.Errorf("digit 9 out of range changed selection to %d", g.Selected)
	}

	g.Update(Input{Down: true})
	if g.Selected != 0 {
		t.Errorf("down wraps: Selected = %d, want 0", g.Selected)
	}
	g.Update(Input{Up: true})
	if g.Selected != 2 {
		t.Errorf("up wraps: Selected = %d, want 2", g.Selected)
	}

	want := []int{1, 2, 0, 2}
	if len(changes) != len(want) {
		t.Fatalf("OnChange calls = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("OnChange calls = %v, want %v", changes, want)
			break
		}
	}
}

func TestRadioGroupUpFromNothing(t *testing.T) {
	g := NewRadioGroup([]string{"Easy", "Normal", "Hard"}, image.Pt(0, 0), 100, testFace())
	g.Update(Input{Up: true})
	if g.Selected != 2 {
		t.Errorf("Selected = %d, want 2", g.Selected)
	}
	g.Select(7)
	if g.Selected != -1 {
		t.Errorf("Select(7): Selected = %d, want -1", g.Selected)
	}
}

func TestTextInputEditing(t *testing.T) {
	ti := NewTextInput(image.Rect(0, 0, 200, 30), testFace())

	ti.Update(typed("Audi"), 0)
	ti.Update(Input{Backspace: true}, 0)
	if got := ti.Text(); got != "Aud" {
		t.Fatalf("Text() = %q, want Aud", got)
	}

	ti.Update(Input{Home: true}, 0)
	ti.Update(typed(" "), 0)
	ti.Update(Input{Delete: true}, 0)
	if got := ti.Text(); got != " ud" {
		t.Errorf("Text() = %q, want \" ud\"", got)
	}
	if ti.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", ti.Cursor())
	}

	ti.Update(Input{End: true}, 0)
	ti.Update(Input{Left: true}, 0)
	ti.Update(typed("é"), 0)
	if got := ti.Text(); got != " uéd" {
		t.Errorf("Text() = %q, want \" uéd\"", got)
	}
}

func TestTextInputFiltersControlAndLimitsLength(t *testing.T) {
	ti := NewTextInput(image.Rect(0, 0, 200, 30), testFace())
	ti.MaxLength = 5

	ti.Update(typed("a\tb\x00c-1234"), 0)
	if got := ti.Text(); got != "abc-1" {
		t.Errorf("Text() = %q, want abc-1", got)
	}

	ti.Update(typed("z"), 0)
	if got := ti.Text(); got != "abc-1" {
		t.Errorf("Text() = %q after exceeding MaxLength", got)
	}

	ti.Clear()
	if ti.Text() != "" || ti.Cursor() != 0 {
		t.Errorf("Clear() left %q at %d", ti.Text(), ti.Cursor())
	}
}

func TestTextInputUnfocused(t *testing.T) {
	ti := NewTextInput(image.Rect(0, 0, 200, 30), testFace())
	ti.Focused = false

	ti.Update(typed("bmw"), 0)
	if ti.Text() != "" {
		t.Errorf("unfocused input accepted %q", ti.Text())
	}

	ti.Update(press(10, 10), 0)
	ti.Update(typed("bmw"), 0)
	if ti.Text() != "bmw" {
		t.Errorf("Text() = %q after focusing click", ti.Text())
	}
}

func TestDialogCloseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"enter", Input{Enter: true}},
		{"escape", Input{Escape: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDialog(image.Rect(0, 0, 900, 600), testFace())
			closed := 0
			d.Show("Error", "Please select a difficulty level.", func() { closed++ })

			if !d.Update(Input{}) {
				t.Error("visible dialog should consume input")
			}
			if !d.Visible() {
				t.Fatal("dialog closed without input")
			}
			d.Update(tt.in)
			if d.Visible() || closed != 1 {
				t.Errorf("Visible() = %v, closed = %d", d.Visible(), closed)
			}
			if d.Update(Input{Enter: true}) {
				t.Error("hidden dialog consumed input")
			}
			if closed != 1 {
				t.Errorf("onClose ran %d times", closed)
			}
		})
	}
}

func TestDialogOKButton(t *testing.T) {
	d := NewDialog(image.Rect(0, 0, 900, 600), testFace())
	closed := false
	d.Show("Game Over", "Results:\nCorrect Answers: 1\nAccuracy: 50.00%", func() { closed = true })

	if got := len(d.Message()); got != 3 {
		t.Errorf("Message() has %d lines, want 3", got)
	}

	ok := d.ok.Rect
	p := ok.Min.Add(image.Pt(ok.Dx()/2, ok.Dy()/2))
	d.Update(press(p.X, p.Y))
	d.Update(release(p.X, p.Y))
	if !closed {
		t.Error("OK click did not close the dialog")
	}
}

func TestCheckboxToggle(t *testing.T) {
	cb := NewCheckbox("Sound", image.Rect(0, 0, 100, 24), testFace(), true)
	var got []bool
	cb.OnToggle = func(checked bool) { got = append(got, checked) }

	if cb.Update(release(200, 200)) {
		t.Error("click outside toggled the checkbox")
	}
	cb.Update(release(50, 10))
	cb.Update(release(5, 5))

	if len(got) != 2 || got[0] != false || got[1] != true {
		t.Errorf("OnToggle calls = %v, want [false true]", got)
	}
	if !cb.Checked {
		t.Error("Checked = false after two toggles")
	}
}
