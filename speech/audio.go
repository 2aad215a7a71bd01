package speech

import (
	"encoding/binary"
	"time"

	"github.com/dgnsrekt/vocalize/speech/formant"
)

// SampleRate is the PCM output rate in Hz.
const SampleRate = formant.SampleRate

// Channels is the PCM channel count; output is always mono.
const Channels = 1

// AudioOutput holds a complete synthesized utterance as signed 16-bit
// PCM.
type AudioOutput struct {
	// Samples is the PCM data, one int16 per sample.
	Samples []int16
	// SampleRate is always 22050.
	SampleRate int
	// Channels is always 1.
	Channels int
}

func newAudioOutput(samples []int16) AudioOutput {
	return AudioOutput{Samples: samples, SampleRate: SampleRate, Channels: Channels}
}

// Duration returns the audio length.
func (a AudioOutput) Duration() time.Duration {
	if a.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(a.Samples)) * time.Second / time.Duration(a.SampleRate*a.Channels)
}

// Empty reports whether the output holds no samples.
func (a AudioOutput) Empty() bool {
	return len(a.Samples) == 0
}

// Bytes encodes the samples as little-endian 16-bit PCM with no
// header.
func (a AudioOutput) Bytes() []byte {
	return EncodePCM16(a.Samples)
}

// EncodePCM16 encodes samples as headerless little-endian 16-bit PCM.
func EncodePCM16(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}
