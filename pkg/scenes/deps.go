package scenes

import (
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/decker502/carquiz/pkg/game"
	"github.com/decker502/carquiz/pkg/quiz"
)

// Deps are the long-lived collaborators every scene needs.
// Scenes never own them; the app builds them once at startup.
type Deps struct {
	Catalog   *quiz.Catalog
	Resources *game.ResourceManager
	Scenes    *game.SceneManager
	Settings  *game.SettingsManager // may be nil
	Scores    *game.ScoreBook       // may be nil
	Audio     *game.AudioManager    // may be nil
	Strings   *game.Strings         // may be nil, built-in texts are used then
	Log       *zap.Logger

	// Width and Height are the logical screen size.
	Width, Height int
	// Title is the window title of the selector.
	Title string
}

func (d Deps) screen() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

func (d Deps) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// text returns the UI text for key.
func (d Deps) text(key, fallback string) string {
	return d.Strings.Get(key, fallback)
}

func (d Deps) playSound(id game.SoundID) {
	if d.Audio != nil {
		d.Audio.PlaySound(id)
	}
}

// timeNow is replaced in tests.
var timeNow = time.Now
