package quiz

// Selector holds the single choice among the three difficulties and starts
// sessions from a catalog.
type Selector struct {
	selected Difficulty
}

// NewSelector returns a selector with nothing chosen.
func NewSelector() *Selector {
	return &Selector{}
}

// Select chooses d, replacing any previous choice.
func (s *Selector) Select(d Difficulty) error {
	if !d.Valid() {
		return ErrUnknownDifficulty
	}
	s.selected = d
	return nil
}

// Clear removes the current choice.
func (s *Selector) Clear() { s.selected = "" }

// Selected returns the current choice.
func (s *Selector) Selected() (Difficulty, bool) {
	return s.selected, s.selected != ""
}

// Start builds a session for the chosen difficulty. It returns
// ErrNoDifficultySelected when nothing is chosen and an error wrapping
// ErrNoAssetsForDifficulty when the catalog has no entries for the choice.
// The selector stays usable after either error.
func (s *Selector) Start(c *Catalog) (*Session, error) {
	d, ok := s.Selected()
	if !ok {
		return nil, ErrNoDifficultySelected
	}
	return NewSession(d, c.Entries(d))
}
