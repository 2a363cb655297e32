// Package config loads cssvalue.toml, the per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up from the working directory upwards.
const FileName = "cssvalue.toml"

type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Trace  TraceConfig  `toml:"trace"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type InputConfig struct {
	// Extensions selects files when a directory is given.
	Extensions []string `toml:"extensions"`
	// SplitLines treats each non-blank line of a file as its own value.
	SplitLines bool `toml:"split_lines"`
	// Normalize is "none" or "nfc".
	Normalize string `toml:"normalize"`
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty | tree | json | msgpack
	Color  string `toml:"color"`  // auto | on | off
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type TraceConfig struct {
	Level  string `toml:"level"`  // off | error | phase | detail | debug
	Output string `toml:"output"` // "-", a path, "journal", or a comma list
	Format string `toml:"format"` // auto | text | ndjson
}

var (
	normalizeModes = []string{"none", "nfc"}
	outputFormats  = []string{"pretty", "tree", "json", "msgpack"}
	colorModes     = []string{"auto", "on", "off"}
	traceLevels    = []string{"off", "error", "phase", "detail", "debug"}
	traceFormats   = []string{"auto", "text", "ndjson"}
)

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Input: InputConfig{
			Extensions: []string{".cssv"},
			SplitLines: true,
			Normalize:  "none",
		},
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Trace:  TraceConfig{Level: "off", Output: "-", Format: "auto"},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path over the defaults. Keys missing from the file keep their
// default; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("input", "extensions") && len(cfg.Input.Extensions) == 0 {
		return Config{}, fmt.Errorf("%s: [input].extensions must not be empty", path)
	}
	cfg.Path = path
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the file found from startDir, or the defaults when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) normalize() {
	c.Input.Normalize = strings.ToLower(strings.TrimSpace(c.Input.Normalize))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	c.Trace.Level = strings.ToLower(strings.TrimSpace(c.Trace.Level))
	c.Trace.Format = strings.ToLower(strings.TrimSpace(c.Trace.Format))
	for i, ext := range c.Input.Extensions {
		ext = strings.TrimSpace(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Input.Extensions[i] = ext
	}
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	checks := []struct {
		key   string
		value string
		allow []string
	}{
		{"[input].normalize", c.Input.Normalize, normalizeModes},
		{"[output].format", c.Output.Format, outputFormats},
		{"[output].color", c.Output.Color, colorModes},
		{"[trace].level", c.Trace.Level, traceLevels},
		{"[trace].format", c.Trace.Format, traceFormats},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allow, ch.value) {
			return fmt.Errorf("%s: invalid value %q (expected: %s)", ch.key, ch.value, strings.Join(ch.allow, "|"))
		}
	}
	if slices.Contains(c.Input.Extensions, "") {
		return fmt.Errorf("[input].extensions: empty extension")
	}
	return nil
}

// CacheDir returns the cache directory: [cache].dir, or cssvalue under the
// user cache directory.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "cssvalue"), nil
}
