package assets

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

// Sweep is an oscillator whose frequency glides linearly from start to end
// over its duration, with optional vibrato.
type Sweep struct {
	start, end  float64
	vibratoHz   float64
	vibratoAmp  float64 // fraction of the current frequency
	phase       float64
	duration    int
	position    int
	wave        WaveType
	rate        beep.SampleRate
	noiseSource *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *Sweep {
	return &Sweep{
		start:       start,
		end:         end,
		duration:    rate.N(duration),
		wave:        wave,
		rate:        rate,
		noiseSource: rand.New(rand.NewSource(int64(start*1000 + end))),
	}
}

// WithVibrato adds a periodic frequency wobble
func (o *Sweep) WithVibrato(hz, amount float64) *Sweep {
	o.vibratoHz = hz
	o.vibratoAmp = amount
	return o
}

func (o *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
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
			val = o.noiseSource.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*progress
		if o.vibratoHz > 0 {
			t := float64(o.position) / float64(o.rate)
			freq *= 1 + o.vibratoAmp*math.Sin(2*math.Pi*o.vibratoHz*t)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *Sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(0, total-att-rel)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SynthHit renders the i-th fallback hit clip: a noise slap over a low thump.
func SynthHit(i int, sampleRate int) []byte {
	rate := beep.SampleRate(sampleRate)
	dur := time.Duration(140+20*i) * time.Millisecond

	slap := NewEnvelope(NewOscillator(0, dur, WaveNoise, rate), dur, 2*time.Millisecond, dur-10*time.Millisecond, rate)
	thump := NewEnvelope(NewSweep(140+30*float64(i), 60, dur, WaveSine, rate), dur, 2*time.Millisecond, dur/2, rate)

	return RenderPCM(beep.Take(rate.N(dur), beep.Mix(
		newVolume(slap, 0.55),
		newVolume(thump, 0.7),
	)))
}

// SynthScream renders the fallback scream for a speed tier. Higher tiers are
// longer and start higher.
func SynthScream(tier int, sampleRate int) []byte {
	rate := beep.SampleRate(sampleRate)
	dur := time.Duration(450+300*tier) * time.Millisecond
	startHz := 620 + 140*float64(tier)

	voice := NewSweep(startHz, startHz*0.55, dur, WaveSaw, rate).WithVibrato(7, 0.04)
	breath := NewOscillator(0, dur, WaveNoise, rate)

	return RenderPCM(NewEnvelope(beep.Mix(
		newVolume(voice, 0.35),
		newVolume(breath, 0.06),
	), dur, 20*time.Millisecond, dur/3, rate))
}

// musicNotes is the fallback loop melody in Hz, one note per beat
var musicNotes = []float64{262, 330, 392, 330, 294, 349, 440, 349}

// SynthMusic renders a square-wave melody suitable for looping.
func SynthMusic(sampleRate int) []byte {
	rate := beep.SampleRate(sampleRate)
	beat := 250 * time.Millisecond

	notes := make([]beep.Streamer, 0, len(musicNotes))
	for _, hz := range musicNotes {
		note := NewEnvelope(NewOscillator(hz, beat, WaveSquare, rate), beat, 5*time.Millisecond, 80*time.Millisecond, rate)
		notes = append(notes, newVolume(note, 0.15))
	}
	return RenderPCM(beep.Seq(notes...))
}
