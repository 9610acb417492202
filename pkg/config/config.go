// Package config loads the host configuration from a YAML file.
//
// An example file:
//
//	fps: 30
//	mouse: true
//	title: demo
//	journal: ~/.local/state/retk/journal.db
//	menu-socket: /tmp/retk.sock
//	log: /tmp/retk.log
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxFPS is the highest frame rate accepted.
const MaxFPS = 240

// Config is the configuration of a host.
type Config struct {
	// Frames per second.
	FPS int `yaml:"fps"`
	// Whether to report mouse events.
	Mouse bool `yaml:"mouse"`
	// Window title used until the view sets one.
	Title string `yaml:"title"`
	// Path of the event journal to record to; empty to not record.
	Journal string `yaml:"journal"`
	// Path of the UNIX socket to serve the menu bridge on; empty to not
	// serve.
	MenuSocket string `yaml:"menu-socket"`
	// Path of the debug log; empty to not log.
	Log string `yaml:"log"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{FPS: 60, Mouse: true, Title: "retk"}
}

// Load reads the configuration file at path. A missing file is not an error;
// the default configuration is returned.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a configuration from r. Fields missing in r keep their default
// values; unknown fields are an error.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Journal = expandHome(cfg.Journal)
	cfg.MenuSocket = expandHome(cfg.MenuSocket)
	cfg.Log = expandHome(cfg.Log)
	return cfg, nil
}

// Validate checks that the values are usable.
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	return nil
}

// FrameInterval returns the duration of a frame.
func (c Config) FrameInterval() time.Duration { return time.Second / time.Duration(c.FPS) }

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
