// Package player plays synthesized PCM through the system audio
// device. It is used by the CLI only; the core engine never opens
// audio devices.
package player

import (
	"bytes"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"

	"github.com/dgnsrekt/vocalize/speech"
)

// readyTimeout bounds how long we wait for the audio device.
const readyTimeout = 5 * time.Second

// Play blocks until the audio has been played to completion.
func Play(audio speech.AudioOutput) error {
	if audio.Empty() {
		return nil
	}

	options := &oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: audio.Channels,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(options)
	if err != nil {
		return fmt.Errorf("audio device unavailable: %w", err)
	}
	select {
	case <-ready:
	case <-time.After(readyTimeout):
		return fmt.Errorf("audio device not ready after %v", readyTimeout)
	}

	p := ctx.NewPlayer(bytes.NewReader(audio.Bytes()))
	defer func() {
		if err := p.Close(); err != nil {
			log.Debug("closing player", "error", err)
		}
	}()

	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}
