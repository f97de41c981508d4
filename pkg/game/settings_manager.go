package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/decker502/carquiz/pkg/quiz"
)

// GameSettings are the player preferences kept between runs.
type GameSettings struct {
	SoundEnabled   bool    `yaml:"soundEnabled"`   // answer feedback tones
	SoundVolume    float64 `yaml:"soundVolume"`    // 0.0 ~ 1.0
	Fullscreen     bool    `yaml:"fullscreen"`     // start in fullscreen
	LastDifficulty string  `yaml:"lastDifficulty"` // pre-selected in the next selector
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundEnabled: true,
		SoundVolume:  0.5,
		Fullscreen:   false,
	}
}

// SettingsManager loads, holds and saves GameSettings.
type SettingsManager struct {
	gdataManager *gdata.Manager // nil keeps settings in memory only
	settings     *GameSettings
	log          *zap.Logger
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a settings manager and loads saved settings.
//
// gdataManager may be nil; settings then live in memory only and Save is a
// no-op. A failed load is logged and the defaults are used.
func NewSettingsManager(gdataManager *gdata.Manager, log *zap.Logger) *SettingsManager {
	if log == nil {
		log = zap.NewNop()
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		log:          log.Named("settings"),
	}

	if err := sm.Load(); err != nil {
		sm.log.Warn("failed to load settings, using defaults", zap.Error(err))
	}
	return sm
}

// Load reads settings from gdata. Missing data leaves the defaults in place.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	sm.log.Debug("settings loaded")
	return nil
}

// Save writes settings to gdata. Without a gdata manager it does nothing.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.log.Debug("settings saved")
	return nil
}

// GetSettings returns the current settings.
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// LastDifficulty returns the difficulty chosen in the previous game, if any.
func (sm *SettingsManager) LastDifficulty() (quiz.Difficulty, bool) {
	d, err := quiz.ParseDifficulty(sm.settings.LastDifficulty)
	if err != nil {
		return "", false
	}
	return d, true
}

// SetLastDifficulty remembers d for the next selector. Call Save to persist.
func (sm *SettingsManager) SetLastDifficulty(d quiz.Difficulty) {
	sm.settings.LastDifficulty = string(d)
}

// SetSoundEnabled toggles the feedback tones. Call Save to persist.
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetSoundVolume sets the tone volume, clamped to 0.0 ~ 1.0. Call Save to persist.
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetFullscreen records the fullscreen state. Call Save to persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
