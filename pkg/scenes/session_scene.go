package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/carquiz/pkg/game"
	"github.com/decker502/carquiz/pkg/quiz"
	"github.com/decker502/carquiz/pkg/ui"
	"github.com/decker502/carquiz/pkg/utils"
)

const (
	imageBoxWidth  = 350
	imageBoxHeight = 200
	answerMaxRunes = 64
	revealFadeIn   = 0.4 // seconds
)

// Built-in texts, overridden by the strings table.
const (
	submitLabel   = "Submit Answer"
	gameOverTitle = "Game Over"
	revealFmt     = "Correct Answer: %s"
	progressFmt   = "Image %d of %d"
	sessionHint   = "Enter to submit, Esc to return to the menu"
)

// ExitFunc is called once when a session scene is done. res is nil when the
// player abandoned the session before the last image.
type ExitFunc func(res *quiz.Result)

// SessionScene shows one logo at a time and scores the typed answers.
type SessionScene struct {
	deps    Deps
	log     *zap.Logger
	session *quiz.Session
	onExit  ExitFunc
	exited  bool

	input  *ui.TextInput
	submit *ui.Button
	dialog *ui.Dialog

	imageBox  image.Rectangle
	reveal    string
	revealAge float64
	lastOK    bool
}

// NewSessionScene creates the view for session. onExit hands control back to
// whoever started the session.
func NewSessionScene(deps Deps, session *quiz.Session, onExit ExitFunc) *SessionScene {
	body := deps.Resources.Font(game.FontBody)
	s := &SessionScene{
		deps:    deps,
		log:     deps.logger().Named("session").With(zap.String("difficulty", string(session.Difficulty()))),
		session: session,
		onExit:  onExit,
		dialog:  ui.NewDialog(deps.screen(), body),
	}

	cx := deps.Width / 2
	top := 60
	s.imageBox = image.Rect(cx-imageBoxWidth/2, top, cx+imageBoxWidth/2, top+imageBoxHeight)

	iy := s.imageBox.Max.Y + 80
	s.input = ui.NewTextInput(image.Rect(cx-220, iy, cx+220, iy+44), body)
	s.input.MaxLength = answerMaxRunes

	by := iy + 64
	s.submit = ui.NewButton(deps.text("SUBMIT_ANSWER", submitLabel), image.Rect(cx-90, by, cx+90, by+40), body, nil)
	return s
}

// Title implements game.Titled.
func (s *SessionScene) Title() string {
	return s.session.Difficulty().WindowTitle()
}

// Session returns the session being played.
func (s *SessionScene) Session() *quiz.Session {
	return s.session
}

// SubmitEnabled reports whether the Submit button accepts clicks.
func (s *SessionScene) SubmitEnabled() bool {
	return s.submit.Enabled
}

// Reveal returns the answer label shown after the last submission.
func (s *SessionScene) Reveal() string {
	return s.reveal
}

// DialogVisible reports whether the summary dialog is open.
func (s *SessionScene) DialogVisible() bool {
	return s.dialog.Visible()
}

// CloseRequested implements game.Closable. Closing the window during a
// session abandons it and returns to the selector instead of quitting.
// With the summary open it counts as dismissing the summary.
func (s *SessionScene) CloseRequested() bool {
	if s.dialog.Visible() {
		s.dialog.Close()
		return false
	}
	s.abandon()
	return false
}

// Update implements game.Scene.
func (s *SessionScene) Update(deltaTime float64) {
	s.handle(ui.ReadInput(), deltaTime)
}

func (s *SessionScene) handle(in ui.Input, dt float64) {
	s.revealAge += dt
	if s.exited || s.dialog.Update(in) {
		return
	}
	if in.Escape {
		s.abandon()
		return
	}
	s.input.Update(in, dt)
	if s.submit.Update(in) || in.Enter {
		s.submitAnswer()
	}
}

// submitAnswer scores the typed text and advances. After the last image the
// summary dialog opens; dismissing it ends the scene.
func (s *SessionScene) submitAnswer() {
	ans, err := s.session.Submit(s.input.Text())
	if err != nil {
		s.log.Warn("submit rejected", zap.Error(err))
		return
	}

	s.reveal = fmt.Sprintf(s.deps.text("CORRECT_ANSWER", revealFmt), ans.Expected)
	s.revealAge = 0
	s.lastOK = ans.Correct
	if ans.Correct {
		s.deps.playSound(game.SoundCorrect)
	} else {
		s.deps.playSound(game.SoundWrong)
	}
	s.log.Debug("answer submitted",
		zap.Int("index", ans.Index),
		zap.String("given", ans.Given),
		zap.String("expected", ans.Expected),
		zap.Bool("correct", ans.Correct),
	)
	s.input.Clear()

	if !s.session.Finished() {
		return
	}
	res, err := s.session.Result()
	if err != nil {
		s.log.Error("finished session has no result", zap.Error(err))
		s.exit(nil)
		return
	}
	s.log.Info("game over", zap.Int("correct", res.Correct), zap.Int("total", res.Total), zap.String("accuracy", res.AccuracyText()))
	s.submit.SetEnabled(false)
	s.dialog.Show(s.deps.text("GAME_OVER", gameOverTitle), res.Summary(), func() { s.exit(&res) })
}

func (s *SessionScene) abandon() {
	if s.exited {
		return
	}
	s.log.Info("game abandoned", zap.Int("answered", s.session.Index()), zap.Int("total", s.session.Total()))
	s.exit(nil)
}

func (s *SessionScene) exit(res *quiz.Result) {
	if s.exited {
		return
	}
	s.exited = true
	if s.onExit != nil {
		s.onExit(res)
	}
}

// progressText is the "Image i of N" counter.
func (s *SessionScene) progressText() string {
	i := min(s.session.Index()+1, s.session.Total())
	return fmt.Sprintf(s.deps.text("IMAGE_PROGRESS", progressFmt), i, s.session.Total())
}

// Draw implements game.Scene.
func (s *SessionScene) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)

	body := s.deps.Resources.Font(game.FontBody)
	small := s.deps.Resources.Font(game.FontSmall)

	utils.DrawTextCentered(screen, s.progressText(), small, image.Rect(0, 20, s.deps.Width, 44), ui.ColorMuted)

	ui.FillRect(screen, s.imageBox, ui.ColorField)
	if entry, ok := s.session.Current(); ok {
		utils.DrawImageFitted(screen, s.deps.Resources.EntryImage(entry), s.imageBox)
	}
	ui.StrokeRect(screen, s.imageBox, ui.ColorBorder)

	if s.reveal != "" {
		var clr color.Color = ui.ColorWrong
		if s.lastOK {
			clr = ui.ColorCorrect
		}
		// fade in and slide up a few pixels
		p := utils.Progress(s.revealAge, revealFadeIn)
		clr = fadeColor(clr, utils.EaseOutCubic(p))
		dy := int(utils.Lerp(8, 0, utils.EaseOutQuad(p)))
		r := image.Rect(0, s.imageBox.Max.Y+24+dy, s.deps.Width, s.imageBox.Max.Y+56+dy)
		utils.DrawTextCentered(screen, s.reveal, body, r, clr)
	}

	s.input.Draw(screen)
	s.submit.Draw(screen)
	utils.DrawTextCentered(screen, s.deps.text("SESSION_HINT", sessionHint), small, image.Rect(0, s.deps.Height-40, s.deps.Width, s.deps.Height), ui.ColorMuted)

	s.dialog.Draw(screen)
}

// fadeColor scales clr's alpha by t.
func fadeColor(clr color.Color, t float64) color.Color {
	r, g, b, a := clr.RGBA()
	scale := func(c uint32) uint8 { return uint8(float64(c>>8) * t) }
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: scale(a)}
}
