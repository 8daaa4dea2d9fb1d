// Package config loads editor settings from a TOML file with
// environment variable overrides, and watches the file for live
// reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textforge/internal/engine"
	"github.com/dshills/textforge/internal/style"
)

// EnvPrefix is the prefix of every recognized environment override.
const EnvPrefix = "TEXTFORGE_"

// Config holds every tunable the engine exposes.
type Config struct {
	TabSize    int    `toml:"tab_size"`
	WordWrap   bool   `toml:"word_wrap"`
	WrapColumn int    `toml:"wrap_column"`
	AutoIndent bool   `toml:"auto_indent"`
	Language   string `toml:"language"`
	Palette    string `toml:"palette"`
	MaxUndo    int    `toml:"max_undo"`
	ReadOnly   bool   `toml:"read_only"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabSize:    engine.DefaultTabSize,
		WrapColumn: engine.DefaultWrapColumn,
		AutoIndent: true,
		Palette:    "dark",
		MaxUndo:    engine.DefaultMaxUndoEntries,
	}
}

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a TOML config file, applies environment overrides, and
// validates the result. A missing file is not an error; defaults plus
// environment overrides apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return cfg, err
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, &ParseError{Path: path, Err: err}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from TEXTFORGE_* environment variables.
// Unparseable values are ignored; the file or default value stands.
func (c *Config) applyEnv() {
	if v, ok := envInt("TAB_SIZE"); ok {
		c.TabSize = v
	}
	if v, ok := envBool("WORD_WRAP"); ok {
		c.WordWrap = v
	}
	if v, ok := envInt("WRAP_COLUMN"); ok {
		c.WrapColumn = v
	}
	if v, ok := envBool("AUTO_INDENT"); ok {
		c.AutoIndent = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LANGUAGE"); ok {
		c.Language = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PALETTE"); ok {
		c.Palette = v
	}
	if v, ok := envInt("MAX_UNDO"); ok {
		c.MaxUndo = v
	}
	if v, ok := envBool("READ_ONLY"); ok {
		c.ReadOnly = v
	}
}

func envInt(name string) (int, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(name string) (bool, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}

// Validate checks ranges and names. Out-of-range numerics are an
// error rather than silently clamped so a typo in the file surfaces.
func (c *Config) Validate() error {
	if c.TabSize < 1 || c.TabSize > 64 {
		return fmt.Errorf("config: tab_size %d out of range 1..64", c.TabSize)
	}
	if c.WrapColumn < 1 {
		return fmt.Errorf("config: wrap_column %d must be positive", c.WrapColumn)
	}
	if c.MaxUndo < 1 {
		return fmt.Errorf("config: max_undo %d must be positive", c.MaxUndo)
	}
	if c.Palette != "" {
		if _, ok := style.IDByName(c.Palette); !ok {
			return fmt.Errorf("config: unknown palette %q", c.Palette)
		}
	}
	return nil
}

// Options converts the settings into engine creation options. The
// language is applied separately so unknown names can be reported.
func (c Config) Options() []engine.Option {
	opts := []engine.Option{
		engine.WithTabSize(c.TabSize),
		engine.WithMaxUndoEntries(c.MaxUndo),
		engine.WithAutoIndent(c.AutoIndent),
	}
	if c.WordWrap {
		opts = append(opts, engine.WithWordWrap(c.WrapColumn))
	}
	if c.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}
	if c.Palette != "" {
		if id, ok := style.IDByName(c.Palette); ok {
			opts = append(opts, engine.WithPalette(id))
		}
	}
	if c.Language != "" {
		opts = append(opts, engine.WithLanguage(c.Language))
	}
	return opts
}
