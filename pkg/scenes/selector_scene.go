package scenes

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/carquiz/pkg/game"
	"github.com/decker502/carquiz/pkg/quiz"
	"github.com/decker502/carquiz/pkg/ui"
	"github.com/decker502/carquiz/pkg/utils"
)

// Built-in texts, overridden by the strings table.
const (
	selectorPrompt = "Select the game difficulty level:"
	selectorHint   = "1/2/3 or up/down to choose, left/right volume, Enter to start, F11 fullscreen"
	startLabel     = "Start Game"
	errorTitle     = "Error"
	soundLabel     = "Sound"
	bestScoreFmt   = "Best %s: %d/%d (%s%%)"
	noScoreFmt     = "No %s games played yet"
)

// volumeStep is the change per left/right key press.
const volumeStep = 0.1

// SelectorScene lets the player pick a difficulty and start a session.
// A fresh SelectorScene is built every time control returns here.
type SelectorScene struct {
	deps     Deps
	log      *zap.Logger
	selector *quiz.Selector

	radio  *ui.RadioGroup
	start  *ui.Button
	sound  *ui.Checkbox // nil without settings
	dialog *ui.Dialog

	difficulties []quiz.Difficulty
	promptPos    image.Point
	scorePos     image.Point
}

// NewSelectorScene creates the selector. The difficulty played last is
// pre-selected when settings are available.
func NewSelectorScene(deps Deps) *SelectorScene {
	body := deps.Resources.Font(game.FontBody)
	s := &SelectorScene{
		deps:         deps,
		log:          deps.logger().Named("selector"),
		selector:     quiz.NewSelector(),
		difficulties: quiz.Difficulties(),
		dialog:       ui.NewDialog(deps.screen(), body),
	}

	labels := make([]string, len(s.difficulties))
	for i, d := range s.difficulties {
		labels[i] = d.Title()
	}

	cx := deps.Width / 2
	top := deps.Height/2 - 120
	s.promptPos = image.Pt(cx-160, top)
	s.radio = ui.NewRadioGroup(labels, image.Pt(cx-160, top+40), 320, body)
	s.radio.OnChange = s.onRadioChange

	by := s.radio.Bounds().Max.Y + 24
	s.start = ui.NewButton(deps.text("START_GAME", startLabel), image.Rect(cx-80, by, cx+80, by+40), body, nil)
	s.scorePos = image.Pt(cx-160, by+64)

	if deps.Settings != nil {
		if d, ok := deps.Settings.LastDifficulty(); ok {
			s.radio.Select(s.indexOf(d))
		}
		s.sound = ui.NewCheckbox(s.soundText(), image.Rect(deps.Width-130, 16, deps.Width-16, 40),
			deps.Resources.Font(game.FontSmall), deps.Settings.GetSettings().SoundEnabled)
		s.sound.OnToggle = s.onSoundToggle
	}
	return s
}

func (s *SelectorScene) onSoundToggle(enabled bool) {
	s.deps.Settings.SetSoundEnabled(enabled)
	if err := s.deps.Settings.Save(); err != nil {
		s.log.Warn("failed to save settings", zap.Error(err))
	}
	s.deps.playSound(game.SoundClick)
}

// soundText is the checkbox label with the current volume, e.g. "Sound 50%".
func (s *SelectorScene) soundText() string {
	vol := s.deps.Settings.GetSettings().SoundVolume
	return fmt.Sprintf("%s %d%%", s.deps.text("SOUND", soundLabel), int(math.Round(vol*100)))
}

// changeVolume moves the tone volume by delta in volumeStep increments.
func (s *SelectorScene) changeVolume(delta float64) {
	vol := s.deps.Settings.GetSettings().SoundVolume + delta
	s.deps.Settings.SetSoundVolume(math.Round(vol/volumeStep) * volumeStep)
	if err := s.deps.Settings.Save(); err != nil {
		s.log.Warn("failed to save settings", zap.Error(err))
	}
	s.sound.Label = s.soundText()
	s.deps.playSound(game.SoundClick)
}

func (s *SelectorScene) indexOf(d quiz.Difficulty) int {
	for i, x := range s.difficulties {
		if x == d {
			return i
		}
	}
	return -1
}

func (s *SelectorScene) onRadioChange(i int) {
	if i < 0 {
		s.selector.Clear()
		return
	}
	if err := s.selector.Select(s.difficulties[i]); err != nil {
		s.log.Warn("invalid difficulty", zap.Error(err))
	}
}

// Title implements game.Titled.
func (s *SelectorScene) Title() string {
	return s.deps.Title
}

// CloseRequested implements game.Closable: closing the selector quits.
func (s *SelectorScene) CloseRequested() bool {
	return true
}

// Selected returns the current choice.
func (s *SelectorScene) Selected() (quiz.Difficulty, bool) {
	return s.selector.Selected()
}

// DialogVisible reports whether an error dialog is open.
func (s *SelectorScene) DialogVisible() bool {
	return s.dialog.Visible()
}

// Update implements game.Scene.
func (s *SelectorScene) Update(deltaTime float64) {
	s.handle(ui.ReadInput())
}

func (s *SelectorScene) handle(in ui.Input) {
	if s.dialog.Update(in) {
		return
	}
	s.radio.Update(in)
	if s.sound != nil {
		s.sound.Update(in)
		switch {
		case in.Left:
			s.changeVolume(-volumeStep)
		case in.Right:
			s.changeVolume(volumeStep)
		}
	}
	if s.start.Update(in) || in.Enter {
		s.deps.playSound(game.SoundClick)
		s.startGame()
	}
}

// startGame tries to start a session. Errors are shown in a dialog and the
// selector stays active.
func (s *SelectorScene) startGame() error {
	session, err := s.selector.Start(s.deps.Catalog)
	if err != nil {
		s.log.Info("cannot start game", zap.Error(err))
		s.dialog.Show(s.deps.text("ERROR_TITLE", errorTitle), quiz.UserMessage(err), nil)
		return err
	}

	d := session.Difficulty()
	if s.deps.Settings != nil {
		s.deps.Settings.SetLastDifficulty(d)
		if err := s.deps.Settings.Save(); err != nil {
			s.log.Warn("failed to save settings", zap.Error(err))
		}
	}
	s.deps.Resources.Preload(s.deps.Catalog.Entries(d))

	s.log.Info("game started", zap.String("difficulty", string(d)), zap.Int("images", session.Total()))
	s.deps.Scenes.SwitchTo(NewSessionScene(s.deps, session, s.sessionExit))
	return nil
}

// sessionExit runs when a session ends. res is nil for an abandoned session.
func (s *SelectorScene) sessionExit(res *quiz.Result) {
	if res != nil && s.deps.Scores != nil {
		s.deps.Scores.Record(*res, timeNow())
		if err := s.deps.Scores.Save(); err != nil {
			s.log.Warn("failed to save score history", zap.Error(err))
		}
	}
	s.deps.Scenes.ShowHome()
}

// bestScoreText describes the best recorded result of the selected difficulty.
func (s *SelectorScene) bestScoreText() string {
	d, ok := s.selector.Selected()
	if !ok || s.deps.Scores == nil {
		return ""
	}
	best, ok := s.deps.Scores.Best(d)
	if !ok {
		return fmt.Sprintf(s.deps.text("NO_SCORE", noScoreFmt), d.Title())
	}
	return fmt.Sprintf(s.deps.text("BEST_SCORE", bestScoreFmt), d.Title(), best.Correct, best.Total, best.AccuracyText())
}

// Draw implements game.Scene.
func (s *SelectorScene) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)

	body := s.deps.Resources.Font(game.FontBody)
	small := s.deps.Resources.Font(game.FontSmall)

	utils.DrawText(screen, s.deps.text("SELECT_PROMPT", selectorPrompt), body, float64(s.promptPos.X), float64(s.promptPos.Y), ui.ColorText)
	s.radio.Draw(screen)
	s.start.Draw(screen)
	if s.sound != nil {
		s.sound.Draw(screen)
	}

	if t := s.bestScoreText(); t != "" {
		utils.DrawText(screen, t, small, float64(s.scorePos.X), float64(s.scorePos.Y), ui.ColorMuted)
	}
	utils.DrawTextCentered(screen, s.deps.text("SELECT_HINT", selectorHint), small, image.Rect(0, s.deps.Height-40, s.deps.Width, s.deps.Height), ui.ColorMuted)

	s.dialog.Draw(screen)
}
