// Package prosody turns phoneme tokens into timed synthesis events:
// sample-exact durations, a sentence-level pitch contour, and
// per-event amplitudes.
package prosody

import (
	"fmt"
	"math"

	"github.com/dgnsrekt/vocalize/speech/g2p"
	"github.com/dgnsrekt/vocalize/speech/phoneme"
)

// SampleRate is the planning and synthesis rate in Hz.
const SampleRate = 22050

// Stress scaling factors applied on top of rate scaling.
const (
	primaryStretch   = 1.2
	secondaryStretch = 1.1
	stressPitchRaise = 1.08
)

// Contour endpoints relative to the base pitch.
const (
	statementStart = 1.05
	statementEnd   = 0.90
	questionFlat   = 0.95
	questionPeak   = 1.15
	questionKnee   = 0.7 // rise occupies the last 30% of the sentence
)

// voicelessGain attenuates voiceless phonemes relative to voiced ones.
const voicelessGain = 0.6

// Annotated is a token plus the markup-derived modifiers that apply to
// it. All multipliers default to 1.
type Annotated struct {
	g2p.Token
	// Rate speeds up (>1) or slows down (<1) this token.
	Rate float64
	// Pitch multiplies the base pitch for this token.
	Pitch float64
	// Volume multiplies the amplitude for this token.
	Volume float64
	// DurScale stretches duration (emphasis).
	DurScale float64
	// AmpScale scales amplitude (emphasis).
	AmpScale float64
	// FixedBreak pins a silence to its exact length, exempt from rate
	// scaling (SSML break).
	FixedBreak bool
}

// Annotate wraps plain tokens with neutral modifiers.
func Annotate(tokens []g2p.Token) []Annotated {
	out := make([]Annotated, len(tokens))
	for i, t := range tokens {
		out[i] = Annotated{Token: t, Rate: 1, Pitch: 1, Volume: 1, DurScale: 1, AmpScale: 1}
	}
	return out
}

// Settings carries the resolved voice parameters for planning.
type Settings struct {
	// RateWPM is the speech rate in words per minute (50-500).
	RateWPM int
	// BaseF0 is the variant base pitch after the pitch offset.
	BaseF0 float64
	// Volume is the linear output gain (volume/100).
	Volume float64
	// Inventory resolves token keys.
	Inventory *phoneme.Inventory
}

// Event is one synthesis unit handed to the formant engine. Duration
// is in samples at SampleRate; the sum over a plan equals the exact
// output length.
type Event struct {
	Phoneme   *phoneme.Phoneme
	Duration  int
	F0Start   float64
	F0End     float64
	Amplitude float64
	Stress    g2p.Stress
}

// Silent reports whether the event is a pause.
func (e *Event) Silent() bool {
	return e.Phoneme.Class == phoneme.Silence
}

// TotalSamples sums event durations.
func TotalSamples(events []Event) int {
	total := 0
	for i := range events {
		total += events[i].Duration
	}
	return total
}

// Plan converts annotated tokens into events. It fails only on an
// inventory miss, which indicates a converter/inventory mismatch.
func Plan(tokens []Annotated, s Settings) ([]Event, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	rateScale := 175.0 / float64(s.RateWPM)
	events := make([]Event, 0, len(tokens))
	carry := 0.0

	for _, t := range tokens {
		p, ok := s.Inventory.Get(t.Key)
		if !ok {
			return nil, fmt.Errorf("phoneme %q not in %s inventory", t.Key, s.Inventory.Language())
		}

		var ms float64
		switch {
		case t.Silent() && t.FixedBreak:
			ms = float64(t.BreakMS)
		case t.Silent():
			ms = float64(t.BreakMS)
			if ms == 0 {
				ms = float64(p.DurationMS)
			}
			ms *= rateScale / t.Rate
		default:
			ms = float64(p.DurationMS) * rateScale / t.Rate * t.DurScale
			switch t.Stress {
			case g2p.StressPrimary:
				ms *= primaryStretch
			case g2p.StressSecondary:
				ms *= secondaryStretch
			}
		}

		// Round to whole samples, carrying the error forward so the
		// cumulative duration stays exact.
		exact := ms*SampleRate/1000.0 + carry
		n := int(math.Round(exact))
		if n < 0 {
			n = 0
		}
		carry = exact - float64(n)

		amp := 0.0
		if !t.Silent() {
			amp = s.Volume * t.Volume * t.AmpScale
			if !p.Voiced {
				amp *= voicelessGain
			}
		}

		events = append(events, Event{
			Phoneme:   p,
			Duration:  n,
			Amplitude: amp,
			Stress:    t.Stress,
		})
	}

	applyContour(events, tokens, s)
	return events, nil
}

// applyContour assigns F0Start/F0End per event from the sentence-level
// pitch contour: declaratives fall linearly, questions stay flat and
// rise over the final stretch.
func applyContour(events []Event, tokens []Annotated, s Settings) {
	start := 0
	for i := range events {
		if tokens[i].SentenceEnd() || i == len(events)-1 {
			contourSentence(events[start:i+1], tokens[start:i+1], s)
			start = i + 1
		}
	}
}

func contourSentence(events []Event, tokens []Annotated, s Settings) {
	total := TotalSamples(events)
	if total == 0 {
		return
	}
	question := tokens[len(tokens)-1].Punct == '?'

	at := func(pos float64) float64 {
		if question {
			if pos < questionKnee {
				return questionFlat
			}
			return questionFlat + (questionPeak-questionFlat)*(pos-questionKnee)/(1-questionKnee)
		}
		return statementStart + (statementEnd-statementStart)*pos
	}

	cum := 0
	for i := range events {
		e := &events[i]
		if e.Silent() {
			cum += e.Duration
			continue
		}
		base := s.BaseF0 * tokens[i].Pitch
		p0 := float64(cum) / float64(total)
		p1 := float64(cum+e.Duration) / float64(total)
		e.F0Start = base * at(p0)
		e.F0End = base * at(p1)
		if e.Stress != g2p.StressNone {
			e.F0Start *= stressPitchRaise
			e.F0End *= stressPitchRaise
		}
		cum += e.Duration
	}
}
