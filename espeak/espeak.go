// Package espeak provides thin espeak-ng style adapters over the
// speech package for projects migrating from the espeak C API. All
// functions are stateless wrappers; there is no global engine.
package espeak

import "github.com/dgnsrekt/vocalize/speech"

// AudioOutputType mirrors the espeak-ng output type constants. Audio
// is always returned in a buffer; playback types are accepted for
// compatibility.
type AudioOutputType int

const (
	// Playback requests device playback (treated as Retrieval).
	Playback AudioOutputType = iota
	// Retrieval returns audio in a buffer.
	Retrieval
	// SynchronousPlayback is treated as Retrieval.
	SynchronousPlayback
)

// Initialize reports the sample rate. The buffer length, path, and
// options parameters exist for signature compatibility and are
// ignored.
func Initialize(_ AudioOutputType, _ int, _ string, _ int) int {
	return speech.SampleRate
}

// SetVoiceByName validates a language code.
func SetVoiceByName(name string) error {
	if _, ok := speech.LanguageFromCode(name); !ok {
		return speech.ErrUnsupportedLanguage
	}
	return nil
}

// Synth synthesizes text in the given language and returns the audio.
func Synth(text, language string) (speech.AudioOutput, error) {
	synth, err := newSynth(language)
	if err != nil {
		return speech.AudioOutput{}, err
	}
	return synth.Synthesize(text)
}

// TextToPhonemes converts text to a phoneme string, in IPA when ipa
// is true and in the internal ASCII notation otherwise.
func TextToPhonemes(text, language string, ipa bool) (string, error) {
	synth, err := newSynth(language)
	if err != nil {
		return "", err
	}
	format := speech.FormatASCII
	if ipa {
		format = speech.FormatIPA
	}
	result, err := synth.TextToPhonemes(text, format)
	if err != nil {
		return "", err
	}
	return result.Phonemes, nil
}

// Terminate is a no-op; there is no global state to release.
func Terminate() {}

func newSynth(language string) (*speech.Synthesizer, error) {
	lang, ok := speech.LanguageFromCode(language)
	if !ok {
		return nil, speech.ErrUnsupportedLanguage
	}
	return speech.NewWithConfig(speech.NewVoice(lang))
}
