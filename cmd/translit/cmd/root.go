// Package cmd implements the translit command line.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/npillmayer/translit"
	"github.com/npillmayer/translit/bahnar"
	"github.com/npillmayer/translit/internal/config"
	"github.com/npillmayer/translit/keymap"
)

var (
	cfgFile    string
	keymapFile string
)

// traceKeys are the trace keys of all packages of this module.
var traceKeys = []string{"translit", "translit.keymap", "translit.server", "translit.tui"}

var rootCmd = &cobra.Command{
	Use:   "translit",
	Short: "Live transliteration for Bahnar text input",
	Long: `translit turns ASCII key sequences into Bahnar letters while typing.

Two characters in front of the cursor are replaced by one letter
(aw → ă, o7 → ơ, u8 → ŭ). Repeating the last key cancels the
replacement (aww → aw).

Commands:
  convert  - transliterate text key by key
  tables   - list or export the active tables
  tui      - interactive terminal input line
  serve    - websocket host for browser text boxes`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&keymapFile, "keymap", "", "keymap file (YAML or TOML), default: built-in Bahnar tables")
}

// loadConfig reads the config file and applies the trace level.
// TRANSLIT_* variables may be kept in a .env file in the working directory.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if keymapFile != "" {
		cfg.Keymap.Path = keymapFile
	}
	if err := cfg.ApplyTraceLevel(traceKeys...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEngine compiles the configured keymap, or the built-in tables if
// no keymap is configured.
func loadEngine(cfg *config.Config) (*translit.Engine, error) {
	if cfg.Keymap.Path == "" {
		return bahnar.Engine()
	}
	eng, err := keymap.LoadEngine(cfg.Keymap.Path)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", cfg.Keymap.Path, err)
	}
	return eng, nil
}

func setup() (*config.Config, *translit.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	eng, err := loadEngine(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, eng, nil
}
