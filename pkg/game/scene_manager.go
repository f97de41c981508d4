package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneFactory builds the scene shown at startup and whenever a session ends.
// Each call must return a freshly constructed scene.
type SceneFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	homeFactory  SceneFactory
	log          *zap.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or ShowHome to set the initial scene.
func NewSceneManager(log *zap.Logger) *SceneManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SceneManager{log: log.Named("scenes")}
}

// SetHomeFactory sets the factory used by ShowHome.
func (sm *SceneManager) SetHomeFactory(factory SceneFactory) {
	sm.homeFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is dropped and will not be updated or drawn again.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if t, ok := scene.(Titled); ok {
		ebiten.SetWindowTitle(t.Title())
	}
}

// ShowHome replaces the active scene with a new home scene.
func (sm *SceneManager) ShowHome() {
	if sm.homeFactory == nil {
		sm.log.Error("home scene factory not set")
		return
	}
	sm.log.Debug("switching to home scene")
	sm.SwitchTo(sm.homeFactory())
}

// GetCurrentScene returns the active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CloseRequested forwards a window close request to the active scene.
// Scenes that do not implement Closable let the application terminate.
func (sm *SceneManager) CloseRequested() bool {
	if c, ok := sm.currentScene.(Closable); ok {
		return c.CloseRequested()
	}
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
