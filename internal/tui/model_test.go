package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/carquiz/pkg/quiz"
)

func solid(c color.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func testCatalog() *quiz.Catalog {
	return quiz.NewCatalog(map[quiz.Difficulty][]quiz.CarEntry{
		quiz.Easy: {
			{Image: solid(color.White, 8, 4), Name: "bmw"},
			{Image: solid(color.Black, 8, 4), Name: "audi"},
		},
	})
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestStartWithoutSelection(t *testing.T) {
	m := send(t, NewModel(testCatalog(), nil), enterKey)

	title, body, ok := m.DialogText()
	if !ok || title != "Error" || body != "Please select a difficulty level." {
		t.Errorf("DialogText() = %q, %q, %v", title, body, ok)
	}
	if m.Screen() != ScreenSelect {
		t.Error("selector must stay active")
	}

	m = send(t, m, enterKey)
	if _, _, ok := m.DialogText(); ok {
		t.Error("dialog should close on enter")
	}
}

func TestStartWithoutAssets(t *testing.T) {
	m := send(t, NewModel(testCatalog(), nil), keyRunes("3"), enterKey)

	_, body, ok := m.DialogText()
	if !ok || body != "No car images found for the selected difficulty level." {
		t.Errorf("DialogText() body = %q, %v", body, ok)
	}
	if m.Session() != nil {
		t.Error("no session should be created")
	}
}

func TestFullGame(t *testing.T) {
	m := send(t, NewModel(testCatalog(), nil), keyRunes("1"), enterKey)
	if m.Screen() != ScreenPlay {
		t.Fatalf("Screen() = %v, want ScreenPlay", m.Screen())
	}

	// letters that are also key bindings on the selector must reach the input
	m = send(t, m, keyRunes("BMW"), enterKey)
	if !strings.Contains(m.View(), "Correct Answer: bmw") {
		t.Error("answer reveal missing from view")
	}
	if m.Session().Correct() != 1 {
		t.Errorf("Correct() = %d, want 1", m.Session().Correct())
	}

	m = send(t, m, keyRunes("q"), enterKey)
	title, body, ok := m.DialogText()
	if !ok || title != "Game Over" {
		t.Fatalf("DialogText() = %q, %v", title, ok)
	}
	if body != "Results:\nCorrect Answers: 1\nAccuracy: 50.00%" {
		t.Errorf("summary = %q", body)
	}

	m = send(t, m, enterKey)
	if m.Screen() != ScreenSelect || m.Session() != nil {
		t.Error("expected a fresh selector after the summary")
	}
	if len(m.Results()) != 1 {
		t.Errorf("Results() = %d, want 1", len(m.Results()))
	}
	if !strings.Contains(m.View(), "Last game: Easy 1/2 (50.00%)") {
		t.Error("last game line missing from selector view")
	}
}

func TestAbandonGame(t *testing.T) {
	m := send(t, NewModel(testCatalog(), nil), keyRunes("1"), enterKey, keyRunes("bmw"), enterKey, escKey)

	if m.Screen() != ScreenSelect {
		t.Errorf("Screen() = %v, want ScreenSelect", m.Screen())
	}
	if _, _, ok := m.DialogText(); ok {
		t.Error("abandoning must not show a summary")
	}
	if len(m.Results()) != 0 {
		t.Error("abandoned game recorded a result")
	}
	if _, ok := m.selector.Selected(); ok {
		t.Error("fresh selector should have no selection")
	}
}

func TestSelectorNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want int
	}{
		{"down from nothing", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}}, 0},
		{"up from nothing wraps", []tea.Msg{tea.KeyMsg{Type: tea.KeyUp}}, 2},
		{"vim keys", []tea.Msg{keyRunes("j"), keyRunes("j"), keyRunes("k")}, 0},
		{"digit", []tea.Msg{keyRunes("2")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, NewModel(testCatalog(), nil), tt.keys...)
			if m.cursor != tt.want {
				t.Errorf("cursor = %d, want %d", m.cursor, tt.want)
			}
			d, ok := m.selector.Selected()
			if !ok || d != quiz.Difficulties()[tt.want] {
				t.Errorf("Selected() = %q, %v", d, ok)
			}
		})
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(testCatalog(), nil)
	if _, cmd := m.Update(keyRunes("q")); cmd == nil {
		t.Error("q on the selector should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestWindowSize(t *testing.T) {
	m := send(t, NewModel(testCatalog(), nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
}
