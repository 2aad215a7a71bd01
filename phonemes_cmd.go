package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgnsrekt/vocalize/speech"
)

var phonemeFormat string

var phonemesCmd = &cobra.Command{
	Use:     "phonemes [TEXT]",
	Short:   "Convert text to phonemes without synthesizing audio",
	Long:    paragraph(fmt.Sprintf("\nRun only the %s stage and print the phoneme transcription in IPA or the internal ASCII notation.", keyword("grapheme-to-phoneme"))),
	Example: paragraph("speak phonemes hello world\nspeak phonemes --format ascii --language es \"buenos días\""),
	Args:    cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadEngineConfig()
		if err != nil {
			return err
		}
		text, err := inputText(args)
		if err != nil {
			return err
		}

		format := speech.FormatIPA
		switch phonemeFormat {
		case "ipa":
		case "ascii":
			format = speech.FormatASCII
		default:
			return fmt.Errorf("unknown phoneme format %q: use ipa or ascii", phonemeFormat)
		}

		voice, err := cfg.Voice()
		if err != nil {
			return err
		}
		synth, err := speech.NewWithConfig(voice)
		if err != nil {
			return err
		}
		result, err := synth.TextToPhonemes(text, format)
		if err != nil {
			return err
		}
		fmt.Println(result.Phonemes)
		return nil
	},
}

func init() {
	phonemesCmd.Flags().StringVarP(&phonemeFormat, "format", "f", "ipa", "phoneme format: ipa or ascii")
}
