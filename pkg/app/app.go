// Package app wires the quiz into an ebiten.Game.
//
// It builds the managers from the loaded configuration, installs the
// difficulty selector as the home scene and handles the window level
// concerns: the close button, the F11 fullscreen toggle and the logical
// screen size.
package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/decker502/carquiz/pkg/config"
	"github.com/decker502/carquiz/pkg/game"
	"github.com/decker502/carquiz/pkg/quiz"
	"github.com/decker502/carquiz/pkg/scenes"
)

// Options are the inputs NewApp needs.
type Options struct {
	Config  *config.Config
	Catalog *quiz.Catalog
	Strings *game.Strings // optional UI text table
	Log     *zap.Logger
}

// App is the game's ebiten.Game implementation.
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	log          *zap.Logger

	width, height int

	pendingWindowSizeReset   bool // window size is restored a few frames after leaving fullscreen
	windowSizeResetCountdown int
}

// NewApp builds the managers and shows the difficulty selector.
func NewApp(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("app: config is required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("app: catalog is required")
	}
	cfg := opts.Config
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var store *gdata.Manager
	if cfg.Persistence.Enabled {
		m, err := gdata.Open(gdata.Config{AppName: cfg.Persistence.AppName})
		if err != nil {
			return nil, fmt.Errorf("failed to open save data: %w", err)
		}
		store = m
		log.Info("persistence enabled", zap.String("app", cfg.Persistence.AppName))
	}

	settings := game.NewSettingsManager(store, log)
	scores := game.NewScoreBook(store, log)

	var audioContext *audio.Context
	if cfg.Audio.Enabled {
		audioContext = audio.NewContext(game.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settings, cfg.Audio.Enabled, log)

	sceneManager := game.NewSceneManager(log)
	deps := scenes.Deps{
		Catalog:   opts.Catalog,
		Resources: game.NewResourceManager(),
		Scenes:    sceneManager,
		Settings:  settings,
		Scores:    scores,
		Audio:     audioManager,
		Strings:   opts.Strings,
		Log:       log,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
	}
	sceneManager.SetHomeFactory(func() game.Scene {
		return scenes.NewSelectorScene(deps)
	})
	sceneManager.ShowHome()

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		log:          log.Named("app"),
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
	}, nil
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if err := a.handleClose(); err != nil {
			return err
		}
	}

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// handleClose asks the active scene whether the close button quits the game.
// A running session swallows the request and returns to the selector.
func (a *App) handleClose() error {
	if a.sceneManager.CloseRequested() {
		a.log.Info("window closed")
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		a.log.Warn("failed to save settings", zap.Error(err))
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen letterboxes the scaled screen on black when fullscreen.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical screen size from the configuration.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// SceneManager returns the scene manager.
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}
