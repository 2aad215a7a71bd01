// Package phoneme defines the acoustic phoneme inventories used by the
// formant synthesizer.
package phoneme

// Class categorizes a phoneme by manner of articulation. Synthesis
// dispatches on the class to pick a source/filter strategy.
type Class int

const (
	// Vowel is a monophthong vowel.
	Vowel Class = iota
	// Diphthong is a vowel glide between two formant targets.
	Diphthong
	// Stop is a plosive consonant (closure plus release burst).
	Stop
	// Fricative is a noise-excited consonant.
	Fricative
	// Affricate is a stop released into a fricative tail.
	Affricate
	// Nasal is a nasal consonant.
	Nasal
	// Liquid covers laterals and rhotics.
	Liquid
	// Glide is a semivowel approximant.
	Glide
	// Silence is a pause.
	Silence
)

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Diphthong:
		return "diphthong"
	case Stop:
		return "stop"
	case Fricative:
		return "fricative"
	case Affricate:
		return "affricate"
	case Nasal:
		return "nasal"
	case Liquid:
		return "liquid"
	case Glide:
		return "glide"
	case Silence:
		return "silence"
	default:
		return "unknown"
	}
}

// Formants holds the first three formant center frequencies and their
// bandwidths, all in Hz.
type Formants struct {
	F1, F2, F3 float64
	B1, B2, B3 float64
}

// NewFormants returns formants with the default bandwidths 60/90/150 Hz.
func NewFormants(f1, f2, f3 float64) Formants {
	return Formants{F1: f1, F2: f2, F3: f3, B1: 60, B2: 90, B3: 150}
}

// Lerp linearly interpolates between two formant sets. t is clamped to
// [0, 1].
func Lerp(a, b Formants, t float64) Formants {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Formants{
		F1: a.F1 + (b.F1-a.F1)*t,
		F2: a.F2 + (b.F2-a.F2)*t,
		F3: a.F3 + (b.F3-a.F3)*t,
		B1: a.B1 + (b.B1-a.B1)*t,
		B2: a.B2 + (b.B2-a.B2)*t,
		B3: a.B3 + (b.B3-a.B3)*t,
	}
}

// Phoneme is a single acoustic unit. Only the fields relevant to the
// class are populated: Formants for sonorants, Glide for diphthongs,
// CutoffHz/ResonanceHz for fricatives, BurstHz for stops and
// affricates.
type Phoneme struct {
	// ASCII is the internal symbol (1-3 characters), unique per
	// language.
	ASCII string
	// IPA is the display spelling.
	IPA string
	// Class selects the synthesis strategy.
	Class Class
	// Voiced reports whether the glottal source runs.
	Voiced bool
	// DurationMS is the default duration before rate scaling.
	DurationMS int

	// Formants is the (first) formant target for sonorants.
	Formants *Formants
	// Glide is the second formant target for diphthongs.
	Glide *Formants

	// CutoffHz is the noise high-pass cutoff for fricatives.
	CutoffHz float64
	// ResonanceHz is an optional fricative resonance (0 = none).
	ResonanceHz float64
	// BurstHz centers the release burst of stops and affricates.
	BurstHz float64
}

// Sonorant reports whether the phoneme is rendered through the formant
// cascade with a periodic source, which makes it eligible for
// inter-phoneme formant transitions.
func (p *Phoneme) Sonorant() bool {
	switch p.Class {
	case Vowel, Diphthong, Nasal, Liquid, Glide:
		return p.Formants != nil
	default:
		return false
	}
}

// Inventory is an immutable set of phonemes for one language, keyed by
// ASCII symbol. Construct it once and share it read-only.
type Inventory struct {
	language string
	phonemes map[string]*Phoneme
}

// Language returns the inventory's language code ("en" or "es").
func (inv *Inventory) Language() string {
	return inv.language
}

// Get returns the phoneme for the given ASCII symbol.
func (inv *Inventory) Get(symbol string) (*Phoneme, bool) {
	p, ok := inv.phonemes[symbol]
	return p, ok
}

// Len returns the number of phonemes in the inventory.
func (inv *Inventory) Len() int {
	return len(inv.phonemes)
}

// All calls fn for every phoneme in the inventory.
func (inv *Inventory) All(fn func(*Phoneme)) {
	for _, p := range inv.phonemes {
		fn(p)
	}
}

func build(language string, phonemes []Phoneme) *Inventory {
	m := make(map[string]*Phoneme, len(phonemes))
	for i := range phonemes {
		p := phonemes[i]
		m[p.ASCII] = &p
	}
	return &Inventory{language: language, phonemes: m}
}

// Class default durations in milliseconds.
const (
	vowelMS     = 90
	diphthongMS = 150
	stopMS      = 80 // 50 ms closure + 30 ms release
	fricativeMS = 90
	affricateMS = 110
	nasalMS     = 70
	liquidMS    = 70
	glideMS     = 50
	silenceMS   = 60
)

// SilenceSymbol is the distinguished pause phoneme present in every
// inventory.
const SilenceSymbol = "_"
