package quiz

import (
	"errors"
	"testing"
)

func TestSelectorStartWithoutSelection(t *testing.T) {
	sel := NewSelector()
	c := NewCatalog(map[Difficulty][]CarEntry{Easy: testEntries("bmw")})

	s, err := sel.Start(c)
	if s != nil {
		t.Error("Start() returned a session without a selection")
	}
	if !errors.Is(err, ErrNoDifficultySelected) {
		t.Errorf("Start() error = %v, want ErrNoDifficultySelected", err)
	}
	if got := UserMessage(err); got != "Please select a difficulty level." {
		t.Errorf("UserMessage() = %q", got)
	}

	// still usable after the error
	if err := sel.Select(Easy); err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if s, err := sel.Start(c); err != nil || s == nil {
		t.Errorf("Start() after selecting = %v, %v", s, err)
	}
}

func TestSelectorStartEmptyDifficulty(t *testing.T) {
	sel := NewSelector()
	c := NewCatalog(map[Difficulty][]CarEntry{Easy: testEntries("bmw")})
	sel.Select(Hard)

	s, err := sel.Start(c)
	if s != nil {
		t.Errorf("Start() returned session in state %v for empty difficulty", s.State())
	}
	if !errors.Is(err, ErrNoAssetsForDifficulty) {
		t.Errorf("Start() error = %v, want ErrNoAssetsForDifficulty", err)
	}
	if got := UserMessage(err); got != "No car images found for the selected difficulty level." {
		t.Errorf("UserMessage() = %q", got)
	}
	if d, ok := sel.Selected(); !ok || d != Hard {
		t.Errorf("Selected() = %v, %v; want hard kept", d, ok)
	}
}

func TestSelectorSelectIsExclusive(t *testing.T) {
	sel := NewSelector()
	sel.Select(Easy)
	sel.Select(Normal)
	if d, _ := sel.Selected(); d != Normal {
		t.Errorf("Selected() = %v, want normal", d)
	}
	if err := sel.Select("expert"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Select(expert) error = %v", err)
	}
	if d, _ := sel.Selected(); d != Normal {
		t.Errorf("Selected() after invalid select = %v, want normal", d)
	}
	sel.Clear()
	if _, ok := sel.Selected(); ok {
		t.Error("Selected() reports a choice after Clear()")
	}
}

func TestSelectorStartUsesCatalogEntries(t *testing.T) {
	c := NewCatalog(map[Difficulty][]CarEntry{Normal: testEntries("kia", "seat")})
	sel := NewSelector()
	sel.Select(Normal)

	s, err := sel.Start(c)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if s.Difficulty() != Normal || s.Total() != 2 || s.State() != StatePresenting || s.Index() != 0 {
		t.Errorf("session = %v/%d/%v/%d", s.Difficulty(), s.Total(), s.State(), s.Index())
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{" Normal ", Normal, false},
		{"HARD", Hard, false},
		{"", "", true},
		{"expert", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyWindowTitle(t *testing.T) {
	if got := Easy.WindowTitle(); got != "Easy Game Window" {
		t.Errorf("WindowTitle() = %q", got)
	}
	if got := Hard.Title(); got != "Hard" {
		t.Errorf("Title() = %q", got)
	}
}
