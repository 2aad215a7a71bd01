// Package main provides the entry point for the vocalize CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dgnsrekt/vocalize/internal/player"
	"github.com/dgnsrekt/vocalize/speech"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	outputPath string
	playAudio  bool
	ssmlInput  bool
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "speak [TEXT]",
		Short: "Synthesize speech on the CLI",
		Long: paragraph(fmt.Sprintf(
			"\nTurn text into %s from the command line with a self-contained formant synthesizer.",
			keyword("spoken audio"),
		)),
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.ArbitraryArgs,
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug || viper.GetBool("debug") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: execute,
	}
)

// loadEngineConfig layers the engine configuration: struct defaults and
// environment via env, then any key viper has set. Viper resolves a key
// from a changed flag first, then the environment, then the config
// file, so the effective order is defaults < file < env < flags.
func loadEngineConfig() (speech.Config, error) {
	cfg, err := env.ParseAs[speech.Config]()
	if err != nil {
		return cfg, fmt.Errorf("unable to parse environment: %w", err)
	}
	if viper.IsSet("language") {
		cfg.Language = viper.GetString("language")
	}
	if viper.IsSet("variant") {
		cfg.Variant = viper.GetString("variant")
	}
	if viper.IsSet("rate") {
		cfg.Rate = viper.GetInt("rate")
	}
	if viper.IsSet("pitch") {
		cfg.Pitch = viper.GetInt("pitch")
	}
	if viper.IsSet("volume") {
		cfg.Volume = viper.GetInt("volume")
	}
	if viper.IsSet("chunk_size") {
		cfg.ChunkSize = viper.GetInt("chunk_size")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to stat stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

// inputText gathers the text to speak from the arguments, or from
// stdin when piped.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if piped, err := stdinIsPipe(); err != nil {
		return "", err
	} else if piped {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("unable to read stdin: %w", err)
		}
		return string(b), nil
	}
	return "", errors.New("missing text: pass it as an argument or pipe it on stdin")
}

func execute(_ *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}
	text, err := inputText(args)
	if err != nil {
		return err
	}

	voice, err := cfg.Voice()
	if err != nil {
		return err
	}
	synth, err := speech.NewWithConfig(voice)
	if err != nil {
		return err
	}
	synth.SetChunkSize(cfg.ChunkSize)

	w, closeW, err := outputWriter()
	if err != nil {
		return err
	}

	if ssmlInput || w == nil {
		// SSML needs the parser; playback wants the whole utterance
		// up front.
		var audio speech.AudioOutput
		if ssmlInput {
			audio, err = synth.SynthesizeSSML(text)
		} else {
			audio, err = synth.Synthesize(text)
		}
		if err != nil {
			return err
		}
		return deliver(audio, w, closeW)
	}

	// Plain text going to a file or pipe streams chunk by chunk.
	stream, err := synth.SynthesizeStream(text)
	if err != nil {
		return err
	}
	for {
		chunk, err := stream.Next()
		if errors.Is(err, speech.ErrStreamDone) {
			break
		}
		if err != nil {
			return err
		}
		if _, err := w.Write(speech.EncodePCM16(chunk.Samples)); err != nil {
			return fmt.Errorf("unable to write audio: %w", err)
		}
		log.Debug("wrote chunk", "samples", len(chunk.Samples), "progress", chunk.Progress)
	}
	return closeW()
}

// outputWriter resolves where PCM goes: an explicit path, stdout when
// piped, or nil when the audio should be played instead.
func outputWriter() (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch {
	case outputPath == "-":
		return os.Stdout, noop, nil
	case outputPath != "":
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create output file: %w", err)
		}
		return f, f.Close, nil
	case playAudio:
		return nil, noop, nil
	case !term.IsTerminal(int(os.Stdout.Fd())):
		return os.Stdout, noop, nil
	default:
		return nil, nil, errors.New("refusing to write raw PCM to a terminal: use --output or --play")
	}
}

func deliver(audio speech.AudioOutput, w io.Writer, closeW func() error) error {
	if w == nil {
		if err := player.Play(audio); err != nil {
			return err
		}
		return closeW()
	}
	if _, err := w.Write(audio.Bytes()); err != nil {
		return fmt.Errorf("unable to write audio: %w", err)
	}
	return closeW()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("language", "L", "en", "synthesis language (en, es)")
	rootCmd.Flags().String("variant", "default", "voice variant (default, male1-3, female1-3)")
	rootCmd.Flags().IntP("rate", "r", speech.DefaultRateWPM, "speech rate in words per minute")
	rootCmd.Flags().IntP("pitch", "p", 0, "pitch offset (-100 to 100)")
	rootCmd.Flags().IntP("volume", "v", speech.DefaultVolume, "volume (0-200)")
	rootCmd.Flags().Int("chunk-size", speech.DefaultChunkSize, "streaming chunk size in samples")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write raw PCM to a file (- for stdout)")
	rootCmd.Flags().BoolVar(&playAudio, "play", false, "play the audio on the default device")
	rootCmd.Flags().BoolVar(&ssmlInput, "ssml", false, "treat the input as SSML markup")

	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
	_ = viper.BindPFlag("variant", rootCmd.Flags().Lookup("variant"))
	_ = viper.BindPFlag("rate", rootCmd.Flags().Lookup("rate"))
	_ = viper.BindPFlag("pitch", rootCmd.Flags().Lookup("pitch"))
	_ = viper.BindPFlag("volume", rootCmd.Flags().Lookup("volume"))
	_ = viper.BindPFlag("chunk_size", rootCmd.Flags().Lookup("chunk-size"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(phonemesCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "vocalize")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "vocalize")}, dirs...)
	}
	if c := os.Getenv("VOCALIZE_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("vocalize")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("vocalize")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn("could not read configuration", "error", err)
		}
	}
}
