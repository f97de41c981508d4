package quiz

import (
	"fmt"
	"strings"
)

// State is the position of a Session in its play-through.
type State int

const (
	// StatePresenting means an entry is on screen waiting for an answer.
	StatePresenting State = iota
	// StateFinished means every entry was answered.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Answer describes the outcome of one submission.
type Answer struct {
	Index    int
	Given    string // normalized input
	Expected string
	Correct  bool
}

// Session is one play-through over the entries of a difficulty.
// Submit is the only state transition.
type Session struct {
	difficulty Difficulty
	entries    []CarEntry
	index      int
	correct    int
}

// NewSession starts a play-through at the first entry. An empty entry list is
// refused with ErrNoAssetsForDifficulty.
func NewSession(d Difficulty, entries []CarEntry) (*Session, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAssetsForDifficulty, d)
	}
	return &Session{difficulty: d, entries: entries}, nil
}

// NormalizeAnswer trims surrounding whitespace and lower-cases s.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Submit scores text against the current entry and advances.
func (s *Session) Submit(text string) (Answer, error) {
	if s.Finished() {
		return Answer{}, ErrSessionFinished
	}

	expected := s.entries[s.index].Name
	given := NormalizeAnswer(text)
	a := Answer{
		Index:    s.index,
		Given:    given,
		Expected: expected,
		Correct:  given == expected,
	}
	if a.Correct {
		s.correct++
	}
	s.index++
	return a, nil
}

// Difficulty returns the level being played.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// State returns StatePresenting or StateFinished.
func (s *Session) State() State {
	if s.Finished() {
		return StateFinished
	}
	return StatePresenting
}

// Finished reports whether every entry was answered.
func (s *Session) Finished() bool { return s.index >= len(s.entries) }

// Index is the position of the entry currently presented, or Total once finished.
func (s *Session) Index() int { return s.index }

// Total is the number of entries in the play-through.
func (s *Session) Total() int { return len(s.entries) }

// Correct is the number of correct answers so far.
func (s *Session) Correct() int { return s.correct }

// Current returns the entry being presented.
func (s *Session) Current() (CarEntry, bool) {
	if s.Finished() {
		return CarEntry{}, false
	}
	return s.entries[s.index], true
}

// Result returns the final score. It fails until the session is finished.
func (s *Session) Result() (Result, error) {
	if !s.Finished() {
		return Result{}, ErrSessionNotFinished
	}
	return Result{
		Difficulty: s.difficulty,
		Correct:    s.correct,
		Total:      len(s.entries),
		Accuracy:   Accuracy(s.correct, len(s.entries)),
	}, nil
}

// Result is the summary of a finished session.
type Result struct {
	Difficulty Difficulty
	Correct    int
	Total      int
	Accuracy   float64
}

// AccuracyText formats Accuracy with two decimals, e.g. "66.67".
func (r Result) AccuracyText() string {
	return FormatAccuracy(r.Accuracy)
}

// Summary is the text shown in the end-of-game dialog.
func (r Result) Summary() string {
	return fmt.Sprintf("Results:\nCorrect Answers: %d\nAccuracy: %s%%", r.Correct, r.AccuracyText())
}

// Accuracy returns 100*correct/total, or 0 when total is 0.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}

// FormatAccuracy renders a percentage with two decimals.
func FormatAccuracy(accuracy float64) string {
	return fmt.Sprintf("%.2f", accuracy)
}
