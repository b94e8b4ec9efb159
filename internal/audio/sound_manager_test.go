package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

// drain counts the samples a streamer produces, failing past limit
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("streamer did not end within %d samples", limit)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if got, want := drain(t, osc, 10000), rate.N(100*time.Millisecond); got != want {
		t.Errorf("oscillator produced %d samples, want %d", got, want)
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		buf := make([][2]float64, 400)
		n, _ := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("wave %d sample %d = %f, outside [-1, 1]", wave, i, buf[i][0])
			}
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(440, 50*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 4)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 during attack", buf[0][0])
	}
}

func TestCueStreamerEveryCue(t *testing.T) {
	rate := beep.SampleRate(8000)
	cues := []engine.SoundCue{engine.CueSwap, engine.CueRevert, engine.CuePop, engine.CueCascade}

	for _, cue := range cues {
		s := CueStreamer(cue, rate, 0.5)
		if s == nil {
			t.Fatalf("CueStreamer(%s) = nil", cue)
		}
		if n := drain(t, s, rate.N(time.Second)); n == 0 {
			t.Errorf("cue %s produced no samples", cue)
		}
	}

	if CueStreamer(engine.SoundCue(99), rate, 0.5) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	sm := NewSoundManager(2)
	if sm.volume != 1 {
		t.Errorf("volume = %f, want clamp to 1", sm.volume)
	}

	sm.Play(engine.CuePop)
	sm.Close()
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", sm.mixer.Len())
	}
}
