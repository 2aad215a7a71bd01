package espeak

import (
	"errors"
	"testing"

	"github.com/dgnsrekt/vocalize/speech"
)

func TestInitializeReturnsSampleRate(t *testing.T) {
	if got := Initialize(Retrieval, 500, "", 0); got != 22050 {
		t.Errorf("Initialize() = %d, want 22050", got)
	}
}

func TestSetVoiceByName(t *testing.T) {
	if err := SetVoiceByName("en"); err != nil {
		t.Errorf("SetVoiceByName(en) = %v", err)
	}
	if err := SetVoiceByName("es-mx"); err != nil {
		t.Errorf("SetVoiceByName(es-mx) = %v", err)
	}
	if err := SetVoiceByName("de"); !errors.Is(err, speech.ErrUnsupportedLanguage) {
		t.Errorf("SetVoiceByName(de) = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestSynth(t *testing.T) {
	audio, err := Synth("hello", "en")
	if err != nil {
		t.Fatal(err)
	}
	if audio.Empty() {
		t.Error("Synth produced no audio")
	}
	if audio.SampleRate != 22050 || audio.Channels != 1 {
		t.Errorf("format = %d Hz %d ch", audio.SampleRate, audio.Channels)
	}

	if _, err := Synth("hello", "xx"); !errors.Is(err, speech.ErrUnsupportedLanguage) {
		t.Errorf("Synth with bad language = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestTextToPhonemes(t *testing.T) {
	ascii, err := TextToPhonemes("hola", "es", false)
	if err != nil {
		t.Fatal(err)
	}
	if ascii != "o l a" {
		t.Errorf("ascii phonemes = %q, want o l a", ascii)
	}

	ipa, err := TextToPhonemes("hola", "es", true)
	if err != nil {
		t.Fatal(err)
	}
	if ipa == "" || ipa == ascii {
		t.Errorf("ipa phonemes = %q, want a distinct IPA rendering", ipa)
	}

	if _, err := TextToPhonemes("x", "fr", true); !errors.Is(err, speech.ErrUnsupportedLanguage) {
		t.Errorf("bad language = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestTerminateIsNoop(t *testing.T) {
	Terminate()
	Terminate()
}
