// Package sound turns session events into short synthesized effects.
// Audio is optional: without a device the manager plays into a silent sink.
package sound

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/thor-runner/internal/core"
)

// SampleRate is the rate every effect is synthesized at.
const SampleRate = beep.SampleRate(44100)

// Sink receives finished streamers.
type Sink interface {
	Play(s beep.Streamer)
}

// NullSink discards everything. Used when no audio device is available.
type NullSink struct{}

// Play drops the streamer.
func (NullSink) Play(beep.Streamer) {}

var speakerOnce struct {
	sync.Once
	sink *SpeakerSink
	err  error
}

// SpeakerSink mixes effects onto the system audio device.
type SpeakerSink struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the audio device once per process.
func OpenSpeaker() (*SpeakerSink, error) {
	speakerOnce.Do(func() {
		if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
			speakerOnce.err = fmt.Errorf("sound: cannot open audio device: %w", err)
			return
		}
		sink := &SpeakerSink{mixer: &beep.Mixer{}}
		speaker.Play(sink.mixer)
		speakerOnce.sink = sink
	})
	return speakerOnce.sink, speakerOnce.err
}

// Play queues a streamer on the mixer.
func (s *SpeakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Clear stops everything that is still playing.
func (s *SpeakerSink) Clear() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// EffectFor maps a session event to its sound. Events with no sound map
// to EffectNone.
func EffectFor(e core.Event) Effect {
	switch e.(type) {
	case core.GameStartedEvent:
		return EffectStart
	case core.JumpedEvent:
		return EffectJump
	case core.CoinCollectedEvent:
		return EffectCoin
	case core.EnemyDefeatedEvent:
		return EffectStrike
	case core.GameOverEvent:
		return EffectGameOver
	case core.GameWonEvent:
		return EffectVictory
	default:
		return EffectNone
	}
}

// Manager reacts to session events with sound effects.
type Manager struct {
	sink   Sink
	volume float64
	muted  atomic.Bool
}

// NewManager creates a manager playing into sink at the given volume (0..1).
func NewManager(sink Sink, volume float64) *Manager {
	if sink == nil {
		sink = NullSink{}
	}
	return &Manager{sink: sink, volume: volume}
}

// Handle plays the effect for each event, in order.
func (m *Manager) Handle(events ...core.Event) {
	if m.muted.Load() {
		return
	}
	for _, e := range events {
		if s := Synthesize(EffectFor(e), SampleRate, m.volume); s != nil {
			m.sink.Play(s)
		}
	}
}

// SetMuted silences or re-enables effects.
func (m *Manager) SetMuted(muted bool) {
	m.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value.
func (m *Manager) ToggleMute() bool {
	for {
		old := m.muted.Load()
		if m.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether effects are silenced.
func (m *Manager) Muted() bool {
	return m.muted.Load()
}
