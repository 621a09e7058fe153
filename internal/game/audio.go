package game

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(48000)

// Waveform types for the procedural tone generator.
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// toneBuffer is mono float64 samples at unity gain.
type toneBuffer []float64

// oscillator generates raw waveform samples.
func oscillator(waveType int, freq float64, samples int) toneBuffer {
	buf := make(toneBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(audioSampleRate)
	noiseState := uint32(0x1f123bb5)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			// xorshift keeps tone generation free of the combat rng.
			noiseState ^= noiseState << 13
			noiseState ^= noiseState >> 17
			noiseState ^= noiseState << 5
			buf[i] = float64(noiseState)/float64(math.MaxUint32)*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf toneBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(audioSampleRate))
	releaseSamples := int(releaseSec * float64(audioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixToneBuffers adds b into a (in place, extending a if needed).
func mixToneBuffers(a, b toneBuffer, bScale float64) toneBuffer {
	if len(b) > len(a) {
		extended := make(toneBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(audioSampleRate))
}

// tone builds a single enveloped oscillator burst.
func tone(waveType int, freq float64, dur time.Duration, attack, release float64) toneBuffer {
	buf := oscillator(waveType, freq, durationToSamples(dur))
	applyEnvelope(buf, attack, release)
	return buf
}

// generateEventTone synthesises the cue for one event kind. All cues are
// short so overlapping events stay legible.
func generateEventTone(kind EventKind) toneBuffer {
	switch kind {
	case EventDoorOpen:
		// Rising two-tone creak.
		buf := tone(waveSaw, 160, 90*time.Millisecond, 0.005, 0.03)
		return append(buf, tone(waveSaw, 220, 110*time.Millisecond, 0.005, 0.05)...)
	case EventDoorClose:
		buf := tone(waveSaw, 220, 90*time.Millisecond, 0.005, 0.03)
		return append(buf, tone(waveSaw, 150, 110*time.Millisecond, 0.005, 0.05)...)
	case EventEnemyAlert:
		return tone(waveSquare, 700, 140*time.Millisecond, 0.004, 0.06)
	case EventEnemyShoot, EventPlayerShoot:
		// Noise crack over a low thump.
		buf := tone(waveNoise, 0, 120*time.Millisecond, 0.001, 0.1)
		return mixToneBuffers(buf, tone(waveSine, 90, 120*time.Millisecond, 0.001, 0.1), 0.8)
	case EventEnemyHitPlayer:
		return tone(waveSquare, 200, 100*time.Millisecond, 0.002, 0.05)
	case EventEnemyDeath:
		buf := tone(waveSaw, 300, 120*time.Millisecond, 0.002, 0.04)
		return append(buf, tone(waveSaw, 140, 180*time.Millisecond, 0.002, 0.12)...)
	case EventPushwallActivate:
		// Long low rumble.
		buf := tone(waveNoise, 0, 400*time.Millisecond, 0.02, 0.25)
		return mixToneBuffers(buf, tone(waveSine, 55, 400*time.Millisecond, 0.02, 0.25), 1.2)
	case EventPushwallNoWay:
		return tone(waveSquare, 110, 160*time.Millisecond, 0.002, 0.08)
	default:
		return nil
	}
}

// pannedTone streams a mono buffer with fixed gain and stereo pan.
type pannedTone struct {
	buf  toneBuffer
	pos  int
	gain float64
	pan  float64 // -1 full left .. +1 full right
}

func (t *pannedTone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= len(t.buf) {
		return 0, false
	}
	n := 0
	left := t.gain * math.Min(1, 1-t.pan)
	right := t.gain * math.Min(1, 1+t.pan)
	for i := range samples {
		if t.pos >= len(t.buf) {
			break
		}
		v := t.buf[t.pos]
		samples[i][0] = v * left
		samples[i][1] = v * right
		t.pos++
		n++
	}
	return n, true
}

func (t *pannedTone) Err() error { return nil }

// AudioSink turns sim events into positional audio cues. Tones are
// synthesised once per event kind at startup and replayed through a shared
// beep mixer.
type AudioSink struct {
	mixer *beep.Mixer
	tones map[EventKind]toneBuffer
}

// NewAudioSink initialises the speaker and pre-generates all event tones.
// Fails (without panicking) when no audio device is available, so headless
// runs simply skip sound.
func NewAudioSink() (*AudioSink, error) {
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	sink := &AudioSink{
		mixer: &beep.Mixer{},
		tones: make(map[EventKind]toneBuffer),
	}
	for k := EventDoorOpen; k <= EventPushwallNoWay; k++ {
		if buf := generateEventTone(k); buf != nil {
			sink.tones[k] = buf
		}
	}
	speaker.Play(sink.mixer)
	return sink, nil
}

// Play queues the cue for ev, attenuated by distance from the listener and
// panned by the event's bearing relative to the listener's heading.
func (a *AudioSink) Play(ev Event, listenerX, listenerZ, heading float64) {
	buf, ok := a.tones[ev.Kind]
	if !ok {
		return
	}

	dx := ev.X - listenerX
	dz := ev.Z - listenerZ
	dist := math.Hypot(dx, dz)

	gain := 1.0 / (1.0 + dist*0.35)
	if gain < 0.02 {
		return
	}

	pan := 0.0
	if dist > 0.5 {
		// Positive pan is to the listener's right.
		bearing := math.Atan2(dz, dx) - heading
		pan = math.Sin(bearing) * 0.8
	}

	speaker.Lock()
	a.mixer.Add(&pannedTone{buf: buf, gain: gain * 0.5, pan: pan})
	speaker.Unlock()
}
