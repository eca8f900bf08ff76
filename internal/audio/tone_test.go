package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/switchyard/internal/config"
	"github.com/vovakirdan/switchyard/internal/core"
)

func TestForEvent(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		tone Tone
		ok   bool
	}{
		{core.EventSwitch, ToneSwitch, true},
		{core.EventPass, TonePass, true},
		{core.EventCollision, ToneCollision, true},
		{core.EventHighScore, 0, false},
	}
	for _, tc := range tests {
		tone, ok := ForEvent(tc.kind)
		if ok != tc.ok || (ok && tone != tc.tone) {
			t.Errorf("ForEvent(%s) = %s, %v; expected %s, %v", tc.kind, tone, ok, tc.tone, tc.ok)
		}
	}
}

func TestToneSpecs(t *testing.T) {
	tests := []struct {
		tone Tone
		wave Waveform
		freq float64
		gain float64
		ramp time.Duration
	}{
		{ToneSwitch, WaveSine, 100, 0.1, 500 * time.Millisecond},
		{TonePass, WaveSawtooth, 440, 0.05, 500 * time.Millisecond},
		{ToneCollision, WaveSquare, 150, 0.2, time.Second},
	}
	for _, tc := range tests {
		s := Spec(tc.tone)
		if s.Wave != tc.wave || s.StartFreq != tc.freq || s.StartGain != tc.gain || s.GainRamp != tc.ramp {
			t.Errorf("Spec(%s) = %+v", tc.tone, s)
		}
		if s.Length != time.Second {
			t.Errorf("Spec(%s).Length = %v, expected 1s", tc.tone, s.Length)
		}
	}
}

func TestExponentialRamps(t *testing.T) {
	s := Spec(TonePass)

	if f := s.FreqAt(0); f != 440 {
		t.Errorf("FreqAt(0) = %f, expected 440", f)
	}
	// Halfway through an exponential ramp is the geometric mean
	if f := s.FreqAt(250 * time.Millisecond); math.Abs(f-440*math.Sqrt2) > 1e-6 {
		t.Errorf("FreqAt(250ms) = %f, expected %f", f, 440*math.Sqrt2)
	}
	if f := s.FreqAt(800 * time.Millisecond); f != 880 {
		t.Errorf("FreqAt(800ms) = %f, expected hold at 880", f)
	}
	if g := s.GainAt(time.Second); g != 0.00001 {
		t.Errorf("GainAt(1s) = %f, expected 0.00001", g)
	}

	sw := Spec(ToneSwitch)
	if f := sw.FreqAt(300 * time.Millisecond); f != 100 {
		t.Errorf("constant frequency should stay at 100, got %f", f)
	}
}

func TestToneStreamerLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)

	for _, tone := range []Tone{ToneSwitch, TonePass, ToneCollision} {
		spec := Spec(tone)
		st := NewToneStreamer(spec, rate)

		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := st.Stream(buf)
			for i := 0; i < n; i++ {
				if math.Abs(buf[i][0]) > spec.StartGain+1e-9 {
					t.Fatalf("%s: sample %d = %f exceeds start gain %f", tone, total+i, buf[i][0], spec.StartGain)
				}
				if buf[i][0] != buf[i][1] {
					t.Fatalf("%s: channels differ at sample %d", tone, total+i)
				}
			}
			total += n
			if !ok {
				break
			}
		}

		if total != rate.N(time.Second) {
			t.Errorf("%s: streamed %d samples, expected %d", tone, total, rate.N(time.Second))
		}
		if st.Err() != nil {
			t.Errorf("%s: unexpected error %v", tone, st.Err())
		}
	}
}

func TestToneStreamerDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	st := NewToneStreamer(Spec(ToneCollision), rate)

	buf := make([][2]float64, rate.N(time.Second))
	n, _ := st.Stream(buf)

	peak := func(from, to int) float64 {
		p := 0.0
		for i := from; i < to && i < n; i++ {
			p = math.Max(p, math.Abs(buf[i][0]))
		}
		return p
	}
	early := peak(0, 400)
	late := peak(n-400, n)
	if late >= early {
		t.Errorf("envelope should decay: early peak %f, late peak %f", early, late)
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	p := Open(config.AudioConfig{Enabled: false}, nil)
	if _, ok := p.(*Silent); !ok {
		t.Fatalf("Open with audio disabled should return *Silent, got %T", p)
	}
	p.Play(ToneSwitch)
	p.Close()
}

func TestSilentRecordsAndMutes(t *testing.T) {
	s := &Silent{}
	s.Play(ToneSwitch)
	s.SetMuted(true)
	s.Play(ToneCollision)
	s.SetMuted(false)
	s.Play(TonePass)

	got := s.Played()
	if len(got) != 2 || got[0] != ToneSwitch || got[1] != TonePass {
		t.Errorf("Played() = %v, expected [switch pass]", got)
	}
	if s.Muted() {
		t.Error("Muted() should be false")
	}
}
