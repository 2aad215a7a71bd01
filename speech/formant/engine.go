// Package formant implements the Klatt-style source-filter synthesis
// engine: glottal pulse and noise sources driving a cascade of
// second-order resonators, rendered sample-by-sample at 22050 Hz.
package formant

import (
	"math"

	"github.com/dgnsrekt/vocalize/speech/phoneme"
	"github.com/dgnsrekt/vocalize/speech/prosody"
)

// SampleRate is the output rate in Hz.
const SampleRate = prosody.SampleRate

const sampleRateF = float64(SampleRate)

// Timing constants, in samples.
const (
	transitionSamples = SampleRate * 20 / 1000 // formant transition half-window
	attackSamples     = SampleRate * 10 / 1000 // envelope attack/release
	shortEvent        = SampleRate * 40 / 1000 // below this, envelope takes 25% each side
	burstSamples      = SampleRate * 5 / 1000  // stop release burst
)

// Mix levels. The cascade has high gain at the formant peaks, so the
// branch gains keep nominal speech well inside the soft-clip knee.
const (
	sonorantGain    = 0.35
	nasalMix        = 0.6
	fricativeGain   = 0.06
	fricResMix      = 0.25
	voicedFricPulse = 0.12
	burstGain       = 0.4
	aspirationGain  = 0.12
	voiceBarGain    = 0.1
)

// Engine renders prosody events into float samples. It is stateful
// across events within one utterance (filter memory, source phase) and
// must not be shared between concurrent syntheses.
type Engine struct {
	cascade  [3]resonator
	nasal    resonator
	burst    resonator
	fricRes  resonator
	voiceBar resonator
	hp       highpass
	src      source
}

// NewEngine returns an engine with the default deterministic noise
// seed.
func NewEngine() *Engine {
	return NewEngineWithSeed(DefaultNoiseSeed)
}

// NewEngineWithSeed returns an engine whose noise generator starts
// from the given seed.
func NewEngineWithSeed(seed uint32) *Engine {
	e := &Engine{}
	e.src.noiseState = seed
	return e
}

// RenderAll renders every event in order and concatenates the output.
func (e *Engine) RenderAll(events []prosody.Event) []float64 {
	total := prosody.TotalSamples(events)
	out := make([]float64, 0, total)
	for i := range events {
		out = append(out, e.RenderEvent(events, i)...)
	}
	return out
}

// RenderEvent renders events[i], emitting exactly events[i].Duration
// samples. Neighboring events supply the formant transition targets.
func (e *Engine) RenderEvent(events []prosody.Event, i int) []float64 {
	ev := &events[i]
	n := ev.Duration
	if n <= 0 {
		return nil
	}

	switch ev.Phoneme.Class {
	case phoneme.Silence:
		return make([]float64, n)
	case phoneme.Vowel, phoneme.Diphthong, phoneme.Nasal, phoneme.Liquid, phoneme.Glide:
		return e.renderSonorant(ev, neighbor(events, i-1), neighbor(events, i+1))
	case phoneme.Stop:
		return e.renderStop(ev, n)
	case phoneme.Fricative:
		return e.renderFricative(ev, n, ev.F0Start, ev.F0End)
	case phoneme.Affricate:
		return e.renderAffricate(ev, n)
	default:
		return make([]float64, n)
	}
}

// Quantize soft-clips float samples and converts them to 16-bit PCM.
func Quantize(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = int16(math.Round(math.Tanh(s) * 32767))
	}
	return out
}

func neighbor(events []prosody.Event, i int) *prosody.Event {
	if i < 0 || i >= len(events) {
		return nil
	}
	return &events[i]
}

// envelope is the trapezoidal amplitude ramp: 10 ms attack and
// release, shortened to a quarter of the duration for brief events.
func envelope(i, n int) float64 {
	edge := attackSamples
	if n < shortEvent {
		edge = n / 4
	}
	if edge == 0 {
		return 1
	}
	switch {
	case i < edge:
		return float64(i) / float64(edge)
	case i >= n-edge:
		return float64(n-i) / float64(edge)
	default:
		return 1
	}
}

func lerpF0(ev *prosody.Event, i, n int) float64 {
	return ev.F0Start + (ev.F0End-ev.F0Start)*float64(i)/float64(n)
}

// startTarget is the formant set a phoneme begins at.
func startTarget(p *phoneme.Phoneme) *phoneme.Formants {
	return p.Formants
}

// endTarget is the formant set a phoneme finishes at; diphthongs end
// on their glide target.
func endTarget(p *phoneme.Phoneme) *phoneme.Formants {
	if p.Class == phoneme.Diphthong && p.Glide != nil {
		return p.Glide
	}
	return p.Formants
}

// formantsAt computes the formant targets for sample i of the event.
// Diphthongs ramp between their two targets over the whole event;
// other sonorants blend with sonorant neighbors across a 20 ms window
// on each side of the boundary, meeting halfway at the join.
func formantsAt(ev *prosody.Event, prev, next *prosody.Event, i, n int) phoneme.Formants {
	p := ev.Phoneme
	if p.Class == phoneme.Diphthong && p.Glide != nil {
		return phoneme.Lerp(*p.Formants, *p.Glide, float64(i)/float64(n))
	}

	cur := *p.Formants
	w := transitionSamples
	if w > n/2 {
		w = n / 2
	}
	if w > 0 && i < w && prev != nil && prev.Phoneme.Sonorant() {
		q := (float64(i) + float64(w)) / float64(2*w)
		return phoneme.Lerp(*endTarget(prev.Phoneme), cur, q)
	}
	if w > 0 && i >= n-w && next != nil && next.Phoneme.Sonorant() {
		q := float64(i-(n-w)) / float64(2*w)
		return phoneme.Lerp(cur, *startTarget(next.Phoneme), q)
	}
	return cur
}

func (e *Engine) renderSonorant(ev, prev, next *prosody.Event) []float64 {
	n := ev.Duration
	out := make([]float64, n)
	isNasal := ev.Phoneme.Class == phoneme.Nasal
	if isNasal {
		e.nasal.set(250, 100)
	}

	for i := 0; i < n; i++ {
		f := formantsAt(ev, prev, next, i, n)
		e.cascade[0].set(f.F1, f.B1)
		e.cascade[1].set(f.F2, f.B2)
		e.cascade[2].set(f.F3, f.B3)

		pulse := e.src.glottal(lerpF0(ev, i, n))
		y := e.cascade[2].process(e.cascade[1].process(e.cascade[0].process(pulse)))
		if isNasal {
			y = (1-nasalMix)*y + nasalMix*e.nasal.process(pulse)
		}
		out[i] = y * sonorantGain * envelope(i, n) * ev.Amplitude
	}
	return out
}

// renderStop emits closure, burst, and (voiceless only) aspiration.
// Voiced stops carry a low-frequency voice bar through the closure
// instead of aspirating.
func (e *Engine) renderStop(ev *prosody.Event, n int) []float64 {
	out := make([]float64, 0, n)
	closure := n * 5 / 8
	release := n - closure
	burstN := burstSamples
	if burstN > release {
		burstN = release
	}

	if ev.Phoneme.Voiced {
		e.voiceBar.set(180, 120)
		for i := 0; i < closure; i++ {
			pulse := e.src.glottal(lerpF0(ev, i, n))
			out = append(out, e.voiceBar.process(pulse)*voiceBarGain*ev.Amplitude)
		}
	} else {
		out = append(out, make([]float64, closure)...)
	}

	e.burst.set(ev.Phoneme.BurstHz, 500)
	for i := 0; i < burstN; i++ {
		decay := 1 - float64(i)/float64(burstN)
		out = append(out, e.burst.process(e.src.noise())*burstGain*decay*decay*ev.Amplitude)
	}

	rest := release - burstN
	if ev.Phoneme.Voiced {
		out = append(out, make([]float64, rest)...)
		return out
	}
	e.hp.set(1200)
	for i := 0; i < rest; i++ {
		decay := 1 - float64(i)/float64(rest)
		out = append(out, e.hp.process(e.src.noise())*aspirationGain*decay*ev.Amplitude)
	}
	return out
}

// renderFricative shapes the noise source with the phoneme's high-pass
// cutoff and optional resonance; voiced fricatives mix in an
// attenuated glottal pulse.
func (e *Engine) renderFricative(ev *prosody.Event, n int, f0a, f0b float64) []float64 {
	p := ev.Phoneme
	out := make([]float64, n)
	e.hp.set(p.CutoffHz)
	if p.ResonanceHz > 0 {
		e.fricRes.set(p.ResonanceHz, 400)
	}

	for i := 0; i < n; i++ {
		x := e.hp.process(e.src.noise())
		if p.ResonanceHz > 0 {
			x = (1-fricResMix)*x + fricResMix*e.fricRes.process(x)
		}
		s := x * fricativeGain
		if p.Voiced {
			f0 := f0a + (f0b-f0a)*float64(i)/float64(n)
			s += e.src.glottal(f0) * voicedFricPulse
		}
		out[i] = s * envelope(i, n) * ev.Amplitude
	}
	return out
}

// renderAffricate is a stop onset released into a fricative tail.
func (e *Engine) renderAffricate(ev *prosody.Event, n int) []float64 {
	stopN := n * 2 / 5
	out := make([]float64, 0, n)

	closure := stopN * 2 / 3
	burstN := burstSamples
	if burstN > stopN-closure {
		burstN = stopN - closure
	}
	out = append(out, make([]float64, closure)...)
	e.burst.set(ev.Phoneme.BurstHz, 500)
	for i := 0; i < burstN; i++ {
		decay := 1 - float64(i)/float64(burstN)
		out = append(out, e.burst.process(e.src.noise())*burstGain*decay*decay*ev.Amplitude)
	}
	out = append(out, make([]float64, stopN-closure-burstN)...)

	mid := f0At(ev, stopN, n)
	tail := e.renderFricative(ev, n-stopN, mid, ev.F0End)
	return append(out, tail...)
}

func f0At(ev *prosody.Event, i, n int) float64 {
	return ev.F0Start + (ev.F0End-ev.F0Start)*float64(i)/float64(n)
}
