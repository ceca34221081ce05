package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/thor-runner/internal/core"
)

// drain streams s to the end, or five seconds at most.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < SampleRate.N(5*time.Second) {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return total, peak
}

func TestOscillatorRangeAndLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)

		total, peak := drain(osc)
		if total != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", wave, total, rate.N(100*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}

	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[5][0] != 0.5 {
		t.Errorf("mid-attack = %f, want 0.5", buf[5][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", buf[50][0])
	}
	if buf[90][0] != 0.5 {
		t.Errorf("mid-release = %f, want 0.5", buf[90][0])
	}
}

func TestSynthesizeEveryEffect(t *testing.T) {
	effects := []Effect{EffectStart, EffectJump, EffectCoin, EffectStrike, EffectGameOver, EffectVictory}
	for _, e := range effects {
		t.Run(e.String(), func(t *testing.T) {
			s := Synthesize(e, SampleRate, 0.5)
			if s == nil {
				t.Fatal("nil streamer")
			}
			total, peak := drain(s)
			if total == 0 || peak == 0 {
				t.Errorf("effect is silent: %d samples, peak %f", total, peak)
			}
		})
	}

	if Synthesize(EffectNone, SampleRate, 1) != nil {
		t.Error("EffectNone should synthesize nothing")
	}
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		event core.Event
		want  Effect
	}{
		{core.GameStartedEvent{}, EffectStart},
		{core.JumpedEvent{}, EffectJump},
		{core.CoinCollectedEvent{}, EffectCoin},
		{core.EnemyDefeatedEvent{}, EffectStrike},
		{core.GameOverEvent{FinalScore: 3}, EffectGameOver},
		{core.GameWonEvent{FinalScore: 500}, EffectVictory},
		{core.ScoreChangedEvent{Score: 1}, EffectNone},
	}
	for _, tt := range tests {
		if got := EffectFor(tt.event); got != tt.want {
			t.Errorf("EffectFor(%T) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

type recordingSink struct {
	played int
}

func (r *recordingSink) Play(beep.Streamer) { r.played++ }

func TestManagerMute(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink, 0.5)

	m.Handle(core.JumpedEvent{}, core.ScoreChangedEvent{Score: 1}, core.CoinCollectedEvent{})
	if sink.played != 2 {
		t.Errorf("played %d effects, want 2", sink.played)
	}

	if !m.ToggleMute() || !m.Muted() {
		t.Fatal("ToggleMute should mute")
	}
	m.Handle(core.GameOverEvent{})
	if sink.played != 2 {
		t.Error("muted manager should stay silent")
	}

	m.SetMuted(false)
	m.Handle(core.GameWonEvent{})
	if sink.played != 3 {
		t.Errorf("played %d effects after unmute, want 3", sink.played)
	}
}

func TestManagerNilSink(t *testing.T) {
	m := NewManager(nil, 1)
	m.Handle(core.JumpedEvent{}) // Must not panic.
}
