// Package config holds the settings of the psxgpu command.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BACKEND_EBITEN = "ebiten" // Show the frames in a window
	BACKEND_PNG    = "png"    // Render headless and save the last frame
)

type Display struct {
	// GP1(0x08) display mode word applied before replaying, 0 keeps the
	// power-on 320x240 mode
	Mode   uint32 `yaml:"mode"`
	Width  int    `yaml:"width"`  // Device space width
	Height int    `yaml:"height"` // Device space height
	Scale  int    `yaml:"scale"`  // Window or snapshot magnification
}

type Config struct {
	Dump       string  `yaml:"dump"`        // Path to the GP0 command dump
	Backend    string  `yaml:"backend"`     // BACKEND_EBITEN or BACKEND_PNG
	Snapshot   string  `yaml:"snapshot"`    // PNG written by the png backend
	Display    Display `yaml:"display"`     // Output settings
	ChunkWords int     `yaml:"chunk_words"` // Words handed to the interpreter per call
	FrameWords int     `yaml:"frame_words"` // Words per frame, 0 draws the whole dump at once
	Trace      []int   `yaml:"trace"`       // Opcodes to break on
	LogLevel   string  `yaml:"log_level"`   // debug, info, warn or error
}

// Returns the default configuration
func Default() *Config {
	return &Config{
		Dump:     "gp0.bin",
		Backend:  BACKEND_EBITEN,
		Snapshot: "frame.png",
		Display: Display{
			Width:  320,
			Height: 240,
			Scale:  2,
		},
		ChunkWords: 256,
		LogLevel:   "warn",
	}
}

// Reads a YAML configuration from `r`, missing keys keep their default
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "Failed to unmarshal yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Loads the YAML configuration file at `path`
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open config %q", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load config %q", path)
	}
	return cfg, nil
}

// Writes the configuration as YAML to `w`
func (cfg *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "Failed to marshal yaml")
	}
	return errors.Wrap(enc.Close(), "Failed to close yaml encoder")
}

// Checks the values that can't be used as they are
func (cfg *Config) Validate() error {
	switch cfg.Backend {
	case BACKEND_EBITEN, BACKEND_PNG:
	default:
		return errors.Errorf("unknown backend %q", cfg.Backend)
	}
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		return errors.Errorf("invalid output size %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.Scale <= 0 {
		return errors.Errorf("invalid scale %d", cfg.Display.Scale)
	}
	if cfg.ChunkWords <= 0 {
		return errors.Errorf("invalid chunk size %d", cfg.ChunkWords)
	}
	for _, opcode := range cfg.Trace {
		if opcode < 0 || opcode > 0xff {
			return errors.Errorf("invalid trace opcode %d", opcode)
		}
	}
	if cfg.FrameWords < 0 {
		return errors.Errorf("invalid frame size %d", cfg.FrameWords)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Returns the slog level named by LogLevel
func (cfg *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	return level, nil
}
