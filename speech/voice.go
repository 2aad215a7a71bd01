// Package speech is the public surface of the vocalize formant speech
// synthesizer: voice configuration, the synthesizer itself, streaming,
// and the audio output types.
package speech

import (
	"fmt"
	"strings"
)

// Language identifies a supported synthesis language.
type Language int

const (
	// English is General American English.
	English Language = iota
	// Spanish is Castilian Spanish.
	Spanish
)

// Code returns the two-letter language code.
func (l Language) Code() string {
	if l == Spanish {
		return "es"
	}
	return "en"
}

// String returns the full language name.
func (l Language) String() string {
	if l == Spanish {
		return "Spanish"
	}
	return "English"
}

// LanguageFromCode resolves a language code or name, case-insensitive.
// Recognized aliases: en/eng/english/en-us/en-gb and
// es/spa/spanish/es-es/es-mx. No locale fallback is attempted.
func LanguageFromCode(code string) (Language, bool) {
	switch strings.ToLower(code) {
	case "en", "eng", "english", "en-us", "en-gb":
		return English, true
	case "es", "spa", "spanish", "es-es", "es-mx":
		return Spanish, true
	default:
		return English, false
	}
}

// Variant selects a voice timbre by base pitch.
type Variant int

const (
	// VariantDefault is the standard voice.
	VariantDefault Variant = iota
	// VariantMale1 through VariantFemale3 shift the base pitch.
	VariantMale1
	VariantMale2
	VariantMale3
	VariantFemale1
	VariantFemale2
	VariantFemale3
)

// BasePitchHz returns the variant's base fundamental frequency.
func (v Variant) BasePitchHz() float64 {
	switch v {
	case VariantMale1:
		return 100
	case VariantMale2:
		return 120
	case VariantMale3:
		return 140
	case VariantFemale1:
		return 180
	case VariantFemale2:
		return 200
	case VariantFemale3:
		return 220
	default:
		return 130
	}
}

// String returns the variant name as used in configuration.
func (v Variant) String() string {
	switch v {
	case VariantMale1:
		return "male1"
	case VariantMale2:
		return "male2"
	case VariantMale3:
		return "male3"
	case VariantFemale1:
		return "female1"
	case VariantFemale2:
		return "female2"
	case VariantFemale3:
		return "female3"
	default:
		return "default"
	}
}

// VariantFromName resolves a variant name, case-insensitive.
func VariantFromName(name string) (Variant, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return VariantDefault, true
	case "male1":
		return VariantMale1, true
	case "male2":
		return VariantMale2, true
	case "male3":
		return VariantMale3, true
	case "female1":
		return VariantFemale1, true
	case "female2":
		return VariantFemale2, true
	case "female3":
		return VariantFemale3, true
	default:
		return VariantDefault, false
	}
}

// Voice configuration limits and defaults.
const (
	MinRateWPM     = 50
	MaxRateWPM     = 500
	DefaultRateWPM = 175

	MinPitch = -100
	MaxPitch = 100

	MinVolume     = 0
	MaxVolume     = 200
	DefaultVolume = 100
)

// VoiceConfig describes a synthesis voice. The zero value is not
// useful; start from DefaultVoice or NewVoice.
type VoiceConfig struct {
	// Language selects the G2P rules and phoneme inventory.
	Language Language
	// Variant supplies the base pitch.
	Variant Variant
	// Rate is the speech rate in words per minute (50-500).
	Rate int
	// Pitch adjusts the base pitch, -100 to 100.
	Pitch int
	// Volume is the output level, 0-200 (100 = nominal).
	Volume int
}

// DefaultVoice returns the default English voice at 175 wpm.
func DefaultVoice() VoiceConfig {
	return NewVoice(English)
}

// NewVoice returns the default voice for a language.
func NewVoice(language Language) VoiceConfig {
	return VoiceConfig{
		Language: language,
		Variant:  VariantDefault,
		Rate:     DefaultRateWPM,
		Pitch:    0,
		Volume:   DefaultVolume,
	}
}

// WithVariant returns a copy with the variant set.
func (c VoiceConfig) WithVariant(v Variant) VoiceConfig {
	c.Variant = v
	return c
}

// WithRate returns a copy with the rate set, clamped to [50, 500].
func (c VoiceConfig) WithRate(wpm int) VoiceConfig {
	c.Rate = clampInt(wpm, MinRateWPM, MaxRateWPM)
	return c
}

// WithPitch returns a copy with the pitch offset set, clamped to
// [-100, 100].
func (c VoiceConfig) WithPitch(pitch int) VoiceConfig {
	c.Pitch = clampInt(pitch, MinPitch, MaxPitch)
	return c
}

// WithVolume returns a copy with the volume set, clamped to [0, 200].
func (c VoiceConfig) WithVolume(volume int) VoiceConfig {
	c.Volume = clampInt(volume, MinVolume, MaxVolume)
	return c
}

// EffectivePitchHz resolves the base fundamental frequency: the
// variant pitch scaled by up to ±50% from the pitch offset.
func (c VoiceConfig) EffectivePitchHz() float64 {
	return c.Variant.BasePitchHz() * (1 + float64(c.Pitch)/100*0.5)
}

// VolumeLevel returns the linear gain (volume 100 = 1.0).
func (c VoiceConfig) VolumeLevel() float64 {
	return float64(c.Volume) / 100
}

func (c VoiceConfig) String() string {
	return fmt.Sprintf("%s/%s %dwpm pitch=%d vol=%d",
		c.Language.Code(), c.Variant, c.Rate, c.Pitch, c.Volume)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
