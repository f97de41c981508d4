package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// SampleRate is the rate of the shared audio context.
const SampleRate = 48000

// SoundID identifies a generated feedback tone.
type SoundID int

const (
	SoundCorrect SoundID = iota
	SoundWrong
	SoundClick
)

// tone describes a generated square-ish beep.
type tone struct {
	freq     float64 // Hz
	duration float64 // seconds
}

var tones = map[SoundID]tone{
	SoundCorrect: {freq: 880, duration: 0.15},
	SoundWrong:   {freq: 220, duration: 0.25},
	SoundClick:   {freq: 1320, duration: 0.03},
}

// AudioManager plays the answer feedback tones.
//
// Tones are synthesized once into 16-bit stereo PCM and replayed from memory;
// the game ships no sound files. Volume and the on/off switch come from
// SettingsManager.
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[SoundID]*audio.Player
	enabled         bool
	log             *zap.Logger
}

// NewAudioManager creates an audio manager. A nil context or enabled=false
// turns every PlaySound into a no-op.
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, enabled bool, log *zap.Logger) *AudioManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
		enabled:         enabled && ctx != nil,
		log:             log.Named("audio"),
	}
}

// PlaySound plays id from the start. It reports whether anything was played.
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || !am.enabled {
		return false
	}
	volume := 1.0
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	player := am.getSoundPlayer(id)
	if player == nil {
		return false
	}
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		am.log.Warn("failed to rewind sound", zap.Int("sound", int(id)), zap.Error(err))
	}
	player.Play()
	return true
}

func (am *AudioManager) getSoundPlayer(id SoundID) *audio.Player {
	if p, ok := am.soundPlayers[id]; ok {
		return p
	}
	t, ok := tones[id]
	if !ok {
		am.log.Warn("unknown sound", zap.Int("sound", int(id)))
		return nil
	}
	p := am.audioContext.NewPlayerFromBytes(GenerateTone(t.freq, t.duration, SampleRate))
	am.soundPlayers[id] = p
	return p
}

// GenerateTone renders a tone as 16-bit little-endian stereo PCM. The wave is
// a sine with a short linear fade in and out to avoid clicks.
func GenerateTone(freq, duration float64, sampleRate int) []byte {
	n := int(duration * float64(sampleRate))
	if n <= 0 || freq <= 0 {
		return nil
	}
	fade := sampleRate / 200 // 5ms
	if fade*2 > n {
		fade = n / 2
	}

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1.0
		switch {
		case fade > 0 && i < fade:
			env = float64(i) / float64(fade)
		case fade > 0 && i >= n-fade:
			env = float64(n-1-i) / float64(fade)
		}
		v := int16(0.3 * env * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}
