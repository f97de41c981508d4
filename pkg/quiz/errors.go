package quiz

import "errors"

var (
	// ErrNoDifficultySelected is returned by Selector.Start when no level was chosen.
	ErrNoDifficultySelected = errors.New("no difficulty selected")
	// ErrNoAssetsForDifficulty is returned when the chosen level has no entries.
	ErrNoAssetsForDifficulty = errors.New("no assets for difficulty")
	// ErrUnknownDifficulty is returned for tags other than easy, normal and hard.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	// ErrSessionFinished is returned by Submit once every entry was answered.
	ErrSessionFinished = errors.New("session already finished")
	// ErrSessionNotFinished is returned by Result while entries remain.
	ErrSessionNotFinished = errors.New("session not finished")
	// ErrEmptyEntryName is recorded for image files whose name has nothing
	// left once the extension is stripped, such as ".png".
	ErrEmptyEntryName = errors.New("image file name has no brand name")
)

// UserMessage returns the dialog text for an error returned by Selector.Start
// or NewSession. Unrecognized errors fall back to err.Error().
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoDifficultySelected):
		return "Please select a difficulty level."
	case errors.Is(err, ErrNoAssetsForDifficulty):
		return "No car images found for the selected difficulty level."
	case errors.Is(err, ErrUnknownDifficulty):
		return "Unknown difficulty level."
	}
	return err.Error()
}
