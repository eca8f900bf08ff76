// Package audio synthesizes the game's sound effects procedurally and plays
// them through the beep speaker. No audio files are used.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/switchyard/internal/core"
)

// Tone identifies one of the game's sound effects.
type Tone int

const (
	ToneSwitch    Tone = iota // Switch toggled or train redirected
	TonePass                  // Train left the screen
	ToneCollision             // Trains collided
)

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneSwitch:
		return "switch"
	case TonePass:
		return "pass"
	case ToneCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// ForEvent maps a simulation event to the tone it should play.
func ForEvent(kind core.EventKind) (Tone, bool) {
	switch kind {
	case core.EventSwitch:
		return ToneSwitch, true
	case core.EventPass:
		return TonePass, true
	case core.EventCollision:
		return ToneCollision, true
	default:
		return 0, false
	}
}

// Waveform defines oscillator wave shapes.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
)

// ToneSpec describes an oscillator with exponential frequency and gain ramps.
// After a ramp ends the value holds at its end point.
type ToneSpec struct {
	Wave      Waveform
	StartFreq float64
	EndFreq   float64
	FreqRamp  time.Duration
	StartGain float64
	EndGain   float64
	GainRamp  time.Duration
	Length    time.Duration // Oscillator stops here
}

// Spec returns the synthesis parameters for a tone.
func Spec(t Tone) ToneSpec {
	switch t {
	case TonePass:
		return ToneSpec{
			Wave:      WaveSawtooth,
			StartFreq: 440,
			EndFreq:   880,
			FreqRamp:  500 * time.Millisecond,
			StartGain: 0.05,
			EndGain:   0.00001,
			GainRamp:  500 * time.Millisecond,
			Length:    time.Second,
		}
	case ToneCollision:
		return ToneSpec{
			Wave:      WaveSquare,
			StartFreq: 150,
			EndFreq:   150,
			StartGain: 0.2,
			EndGain:   0.00001,
			GainRamp:  time.Second,
			Length:    time.Second,
		}
	default:
		return ToneSpec{
			Wave:      WaveSine,
			StartFreq: 100,
			EndFreq:   100,
			StartGain: 0.1,
			EndGain:   0.00001,
			GainRamp:  500 * time.Millisecond,
			Length:    time.Second,
		}
	}
}

// FreqAt returns the oscillator frequency at time t.
func (s ToneSpec) FreqAt(t time.Duration) float64 {
	return expRamp(s.StartFreq, s.EndFreq, t, s.FreqRamp)
}

// GainAt returns the envelope gain at time t.
func (s ToneSpec) GainAt(t time.Duration) float64 {
	return expRamp(s.StartGain, s.EndGain, t, s.GainRamp)
}

// expRamp interpolates exponentially from v0 to v1 over d.
// Values must be positive; a zero duration jumps straight to v1 for t > 0.
func expRamp(v0, v1 float64, t, d time.Duration) float64 {
	if v0 == v1 || t <= 0 {
		return v0
	}
	if t >= d {
		return v1
	}
	frac := float64(t) / float64(d)
	return v0 * math.Pow(v1/v0, frac)
}

// toneStreamer renders a ToneSpec sample by sample.
type toneStreamer struct {
	spec     ToneSpec
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewToneStreamer creates a finite streamer that plays spec at the given rate.
func NewToneStreamer(spec ToneSpec, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		spec:  spec,
		rate:  rate,
		total: rate.N(spec.Length),
	}
}

func (o *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		t := o.rate.D(o.position)
		var val float64
		switch o.spec.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSawtooth:
			val = 2.0*o.phase - 1.0
		}
		val *= o.spec.GainAt(t)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.spec.FreqAt(t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *toneStreamer) Err() error { return nil }
