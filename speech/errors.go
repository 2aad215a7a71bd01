package speech

import (
	"errors"
	"fmt"

	"github.com/dgnsrekt/vocalize/speech/ssml"
)

// Common errors for the synthesizer.
var (
	// ErrUnsupportedLanguage is returned for unknown language codes.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrInvalidConfig is returned when configuration values are out
	// of range and cannot be clamped.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrStreamDone is returned when a finished stream is polled
	// again.
	ErrStreamDone = errors.New("stream is exhausted")
)

// ParseError is the SSML parse failure type, carrying the byte offset
// of the malformed markup.
type ParseError = ssml.ParseError

// SynthesisError wraps a synthesis-internal contract violation. It
// should be unreachable with well-formed inventories.
type SynthesisError struct {
	Cause error
}

// Error implements the error interface.
func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis failed: %v", e.Cause)
}

// Unwrap returns the underlying cause.
func (e *SynthesisError) Unwrap() error {
	return e.Cause
}

func synthErr(cause error) error {
	return &SynthesisError{Cause: cause}
}

func unsupportedLanguage(code string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}
