package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// gapConfigDir returns the user-scoped configuration directory.
func gapConfigDir() (string, error) {
	scope := gap.NewScope(gap.User, "vocalize")
	dirs, err := scope.ConfigDirs()
	if err != nil || len(dirs) == 0 {
		return "", fmt.Errorf("could not find configuration directory: %w", err)
	}
	return dirs[0], nil
}

const defaultConfig = `# synthesis language: en or es (or any recognized alias)
language: "en"
# voice variant: default, male1-3, female1-3
variant: "default"
# speech rate in words per minute (50-500)
rate: 175
# pitch offset (-100 to 100)
pitch: 0
# volume (0-200, 100 = nominal)
volume: 100
# streaming chunk size in samples (minimum 64)
chunk_size: 1024
`

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Edit the vocalize config file",
	Long:    paragraph(fmt.Sprintf("\n%s the vocalize config file. We’ll use EDITOR to determine which editor to use. If the config file doesn't exist, it will be created.", keyword("Edit"))),
	Example: paragraph("speak config\nspeak config --config path/to/vocalize.yml"),
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := ensureConfigFile(); err != nil {
			return err
		}

		c, err := editor.Cmd("vocalize", configFile)
		if err != nil {
			return fmt.Errorf("unable to set config file: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run command: %w", err)
		}

		fmt.Println("Wrote config file to:", configFile)
		return nil
	},
}

func ensureConfigFile() error {
	if configFile == "" {
		configFile = viper.GetViper().ConfigFileUsed()
		if configFile == "" {
			dirs, err := gapConfigDir()
			if err != nil {
				return err
			}
			configFile = filepath.Join(dirs, "vocalize.yml")
		}
		if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
			return fmt.Errorf("could not write configuration file: %w", err)
		}
	}

	if ext := path.Ext(configFile); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("'%s' is not a supported configuration type: use '%s' or '%s'", ext, ".yaml", ".yml")
	}

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
			return fmt.Errorf("unable to create directory: %w", err)
		}
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("unable to create config file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if _, err := f.WriteString(defaultConfig); err != nil {
			return fmt.Errorf("unable to write config file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("unable to stat config file: %w", err)
	}
	return nil
}
