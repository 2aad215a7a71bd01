package speech

import "fmt"

// Config is the file/environment-facing engine configuration. It maps
// onto a VoiceConfig plus streaming options; values outside their
// allowed ranges are rejected by Validate rather than clamped, so
// typos in config files surface instead of being silently absorbed.
type Config struct {
	// Language code ("en", "es" or any recognized alias).
	Language string `yaml:"language" env:"VOCALIZE_LANGUAGE" envDefault:"en"`
	// Variant name ("default", "male1".."male3", "female1".."female3").
	Variant string `yaml:"variant" env:"VOCALIZE_VARIANT" envDefault:"default"`
	// Rate in words per minute.
	Rate int `yaml:"rate" env:"VOCALIZE_RATE" envDefault:"175"`
	// Pitch offset, -100 to 100.
	Pitch int `yaml:"pitch" env:"VOCALIZE_PITCH" envDefault:"0"`
	// Volume, 0-200.
	Volume int `yaml:"volume" env:"VOCALIZE_VOLUME" envDefault:"100"`
	// ChunkSize is the streaming chunk size in samples (>= 64).
	ChunkSize int `yaml:"chunk_size" env:"VOCALIZE_CHUNK_SIZE" envDefault:"1024"`
}

// DefaultConfig returns the configuration matching DefaultVoice.
func DefaultConfig() Config {
	return Config{
		Language:  "en",
		Variant:   "default",
		Rate:      DefaultRateWPM,
		Pitch:     0,
		Volume:    DefaultVolume,
		ChunkSize: DefaultChunkSize,
	}
}

// Validate checks all fields, wrapping failures in ErrInvalidConfig
// (or ErrUnsupportedLanguage for the language code).
func (c Config) Validate() error {
	if _, ok := LanguageFromCode(c.Language); !ok {
		return unsupportedLanguage(c.Language)
	}
	if _, ok := VariantFromName(c.Variant); !ok {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	}
	if c.Rate < MinRateWPM || c.Rate > MaxRateWPM {
		return fmt.Errorf("%w: rate %d out of range [%d, %d]", ErrInvalidConfig, c.Rate, MinRateWPM, MaxRateWPM)
	}
	if c.Pitch < MinPitch || c.Pitch > MaxPitch {
		return fmt.Errorf("%w: pitch %d out of range [%d, %d]", ErrInvalidConfig, c.Pitch, MinPitch, MaxPitch)
	}
	if c.Volume < MinVolume || c.Volume > MaxVolume {
		return fmt.Errorf("%w: volume %d out of range [%d, %d]", ErrInvalidConfig, c.Volume, MinVolume, MaxVolume)
	}
	if c.ChunkSize < MinChunkSize {
		return fmt.Errorf("%w: chunk_size %d below minimum %d", ErrInvalidConfig, c.ChunkSize, MinChunkSize)
	}
	return nil
}

// Voice converts the validated config into a VoiceConfig.
func (c Config) Voice() (VoiceConfig, error) {
	if err := c.Validate(); err != nil {
		return VoiceConfig{}, err
	}
	lang, _ := LanguageFromCode(c.Language)
	variant, _ := VariantFromName(c.Variant)
	return VoiceConfig{
		Language: lang,
		Variant:  variant,
		Rate:     c.Rate,
		Pitch:    c.Pitch,
		Volume:   c.Volume,
	}, nil
}
