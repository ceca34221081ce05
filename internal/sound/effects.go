package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping its frequency.
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    (to - from) / duration.Seconds(),
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(from))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with the given attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped note.
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	release := d / 3
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, attack, release, rate)
}

// Effect names one of the synthesized sounds.
type Effect int

const (
	EffectNone Effect = iota
	EffectStart
	EffectJump
	EffectCoin
	EffectStrike
	EffectGameOver
	EffectVictory
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectStart:
		return "start"
	case EffectJump:
		return "jump"
	case EffectCoin:
		return "coin"
	case EffectStrike:
		return "strike"
	case EffectGameOver:
		return "gameover"
	case EffectVictory:
		return "victory"
	default:
		return "none"
	}
}

// Synthesize builds a fresh streamer for the effect at the given volume.
// EffectNone yields nil.
func Synthesize(e Effect, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectStart:
		s = beep.Seq(
			tone(523.25, 523.25, 80*time.Millisecond, WaveSquare, rate),
			tone(783.99, 783.99, 120*time.Millisecond, WaveSquare, rate),
		)
	case EffectJump:
		s = tone(300, 700, 120*time.Millisecond, WaveSquare, rate)
	case EffectCoin:
		s = beep.Seq(
			tone(987.77, 987.77, 60*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 1318.51, 140*time.Millisecond, WaveSquare, rate),
		)
	case EffectStrike:
		// Thunder: noise under a falling saw.
		s = beep.Mix(
			newVolume(tone(0, 0, 250*time.Millisecond, WaveNoise, rate), 0.6),
			newVolume(tone(180, 60, 250*time.Millisecond, WaveSaw, rate), 0.4),
		)
	case EffectGameOver:
		s = tone(440, 110, 600*time.Millisecond, WaveSaw, rate)
	case EffectVictory:
		s = beep.Seq(
			tone(523.25, 523.25, 120*time.Millisecond, WaveSine, rate),
			tone(659.25, 659.25, 120*time.Millisecond, WaveSine, rate),
			tone(783.99, 783.99, 120*time.Millisecond, WaveSine, rate),
			tone(1046.5, 1046.5, 400*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}
