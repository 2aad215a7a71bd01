package speech

import (
	"github.com/charmbracelet/log"

	"github.com/dgnsrekt/vocalize/speech/formant"
	"github.com/dgnsrekt/vocalize/speech/g2p"
	"github.com/dgnsrekt/vocalize/speech/phoneme"
	"github.com/dgnsrekt/vocalize/speech/prosody"
	"github.com/dgnsrekt/vocalize/speech/ssml"
)

// PhonemeFormat selects the rendering of phoneme output.
type PhonemeFormat int

const (
	// FormatIPA renders phonemes in the International Phonetic
	// Alphabet.
	FormatIPA PhonemeFormat = iota
	// FormatASCII renders phonemes in the internal ASCII notation.
	FormatASCII
)

// PhonemeResult is the output of TextToPhonemes.
type PhonemeResult struct {
	// Text is the original input.
	Text string
	// Phonemes is the rendered phoneme string.
	Phonemes string
	// Tokens is the underlying token sequence; identical for both
	// formats of the same input.
	Tokens []g2p.Token
	// Format is the rendering that produced Phonemes.
	Format PhonemeFormat
	// Language used for conversion.
	Language Language
}

// Synthesizer converts text to PCM speech audio. It holds only
// immutable inventories and the current voice configuration; every
// synthesis call runs on fresh state, so calls are independent and
// deterministic. A single Synthesizer must be called serially;
// separate instances may run in parallel.
type Synthesizer struct {
	config    VoiceConfig
	chunkSize int
	seed      uint32
	en        *g2p.Converter
	es        *g2p.Converter
}

// New creates a synthesizer with the default English voice.
func New() (*Synthesizer, error) {
	return NewWithConfig(DefaultVoice())
}

// NewWithConfig creates a synthesizer with the given voice. Out-of-
// range numeric fields are clamped.
func NewWithConfig(config VoiceConfig) (*Synthesizer, error) {
	config.Rate = clampInt(config.Rate, MinRateWPM, MaxRateWPM)
	config.Pitch = clampInt(config.Pitch, MinPitch, MaxPitch)
	config.Volume = clampInt(config.Volume, MinVolume, MaxVolume)
	return &Synthesizer{
		config:    config,
		chunkSize: DefaultChunkSize,
		seed:      formant.DefaultNoiseSeed,
		en:        g2p.English(),
		es:        g2p.Spanish(),
	}, nil
}

// Config returns the current voice configuration.
func (s *Synthesizer) Config() VoiceConfig {
	return s.config
}

// SetLanguage switches the synthesis language. Takes effect on the
// next call; an in-flight stream keeps its snapshot.
func (s *Synthesizer) SetLanguage(l Language) {
	s.config.Language = l
}

// SetVariant switches the voice variant.
func (s *Synthesizer) SetVariant(v Variant) {
	s.config.Variant = v
}

// SetRate sets the speech rate in words per minute, clamped to
// [50, 500].
func (s *Synthesizer) SetRate(wpm int) {
	s.config.Rate = clampInt(wpm, MinRateWPM, MaxRateWPM)
}

// SetPitch sets the pitch offset, clamped to [-100, 100].
func (s *Synthesizer) SetPitch(pitch int) {
	s.config.Pitch = clampInt(pitch, MinPitch, MaxPitch)
}

// SetVolume sets the volume, clamped to [0, 200].
func (s *Synthesizer) SetVolume(volume int) {
	s.config.Volume = clampInt(volume, MinVolume, MaxVolume)
}

// SetChunkSize sets the streaming chunk size in samples (minimum 64).
func (s *Synthesizer) SetChunkSize(size int) {
	if size < MinChunkSize {
		size = MinChunkSize
	}
	s.chunkSize = size
}

// SetNoiseSeed overrides the noise generator seed. The default seed
// makes output bit-identical across runs.
func (s *Synthesizer) SetNoiseSeed(seed uint32) {
	s.seed = seed
}

// SampleRate returns the output sample rate.
func (s *Synthesizer) SampleRate() int {
	return SampleRate
}

func (s *Synthesizer) converter() *g2p.Converter {
	if s.config.Language == Spanish {
		return s.es
	}
	return s.en
}

// Synthesize runs the full pipeline over plain text and returns the
// complete PCM buffer. Empty input yields an empty (non-error) output.
func (s *Synthesizer) Synthesize(text string) (AudioOutput, error) {
	return s.render([]ssml.Directive{{
		Text: text, Rate: 1, Pitch: 1, Volume: 1, DurScale: 1, AmpScale: 1,
	}})
}

// SynthesizeSSML parses SSML markup and synthesizes it. Plain text
// without markup synthesizes exactly as Synthesize would.
func (s *Synthesizer) SynthesizeSSML(doc string) (AudioOutput, error) {
	directives, err := ssml.Parse(doc)
	if err != nil {
		return AudioOutput{}, err
	}
	return s.render(directives)
}

// SynthesizeStream plans the utterance and returns a pull-based chunk
// iterator. The stream snapshots the current configuration; later
// setter calls do not affect it.
func (s *Synthesizer) SynthesizeStream(text string) (*Stream, error) {
	events, err := s.plan([]ssml.Directive{{
		Text: text, Rate: 1, Pitch: 1, Volume: 1, DurScale: 1, AmpScale: 1,
	}})
	if err != nil {
		return nil, err
	}
	return newStream(events, s.chunkSize, s.seed), nil
}

// TextToPhonemes runs G2P only and renders the result in the
// requested format.
func (s *Synthesizer) TextToPhonemes(text string, format PhonemeFormat) (PhonemeResult, error) {
	conv := s.converter()
	tokens := conv.Convert(text)
	var rendered string
	if format == FormatIPA {
		rendered = conv.RenderIPA(tokens)
	} else {
		rendered = conv.RenderASCII(tokens)
	}
	return PhonemeResult{
		Text:     text,
		Phonemes: rendered,
		Tokens:   tokens,
		Format:   format,
		Language: s.config.Language,
	}, nil
}

// plan converts directives into timed synthesis events.
func (s *Synthesizer) plan(directives []ssml.Directive) ([]prosody.Event, error) {
	conv := s.converter()
	var annotated []prosody.Annotated

	for _, d := range directives {
		if d.Text == "" {
			if d.BreakMS <= 0 {
				continue
			}
			punct := rune(0)
			if d.SentenceEnd {
				punct = '.'
			}
			annotated = append(annotated, prosody.Annotated{
				Token: g2p.Token{
					Key:     phoneme.SilenceSymbol,
					BreakMS: d.BreakMS,
					Punct:   punct,
				},
				Rate: 1, Pitch: 1, Volume: 1, DurScale: 1, AmpScale: 1,
				FixedBreak: d.Exact,
			})
			continue
		}

		for _, t := range conv.Convert(d.Text) {
			annotated = append(annotated, prosody.Annotated{
				Token:    t,
				Rate:     d.Rate,
				Pitch:    d.Pitch,
				Volume:   d.Volume,
				DurScale: d.DurScale,
				AmpScale: d.AmpScale,
			})
		}
	}

	events, err := prosody.Plan(annotated, prosody.Settings{
		RateWPM:   s.config.Rate,
		BaseF0:    s.config.EffectivePitchHz(),
		Volume:    s.config.VolumeLevel(),
		Inventory: conv.Inventory(),
	})
	if err != nil {
		return nil, synthErr(err)
	}
	return events, nil
}

// render plans and synthesizes directives into PCM.
func (s *Synthesizer) render(directives []ssml.Directive) (AudioOutput, error) {
	events, err := s.plan(directives)
	if err != nil {
		return AudioOutput{}, err
	}
	if len(events) == 0 {
		return newAudioOutput(nil), nil
	}

	engine := formant.NewEngineWithSeed(s.seed)
	samples := formant.Quantize(engine.RenderAll(events))
	log.Debug("synthesized utterance",
		"events", len(events), "samples", len(samples), "voice", s.config.String())
	return newAudioOutput(samples), nil
}
