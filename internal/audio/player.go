package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/switchyard/internal/config"
)

// Player plays tones without blocking the caller.
type Player interface {
	Play(t Tone)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// Open initializes the speaker. When audio is disabled or no output device is
// available it returns a silent player, so callers never need to check.
func Open(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return &Silent{}
	}

	sp, err := NewSpeaker(cfg)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return &Silent{}
	}
	return sp
}

// Speaker plays tones through the system audio device.
type Speaker struct {
	rate   beep.SampleRate
	volume float64
	muted  atomic.Bool
	once   sync.Once
}

// NewSpeaker initializes the beep speaker with a 100ms buffer.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(44100)
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{rate: rate, volume: cfg.Volume}, nil
}

// Play queues a tone on the speaker mixer.
func (s *Speaker) Play(t Tone) {
	if s.muted.Load() {
		return
	}
	speaker.Play(withVolume(NewToneStreamer(Spec(t), s.rate), s.volume))
}

// SetMuted enables or disables playback.
func (s *Speaker) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// Muted reports whether playback is disabled.
func (s *Speaker) Muted() bool {
	return s.muted.Load()
}

// Close releases the audio device.
func (s *Speaker) Close() {
	s.once.Do(func() {
		speaker.Clear()
		speaker.Close()
	})
}

// withVolume scales a streamer by a linear gain.
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol == 1 {
		return s
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Silent is a Player that drops every tone. It records what it was asked to
// play so tests can observe platform behavior.
type Silent struct {
	mu     sync.Mutex
	played []Tone
	muted  bool
}

// Play records the tone unless muted.
func (s *Silent) Play(t Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted {
		return
	}
	s.played = append(s.played, t)
}

// SetMuted enables or disables recording.
func (s *Silent) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

// Muted reports whether the player is muted.
func (s *Silent) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Played returns a copy of the tones requested so far.
func (s *Silent) Played() []Tone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Tone(nil), s.played...)
}

// Close does nothing.
func (s *Silent) Close() {}
