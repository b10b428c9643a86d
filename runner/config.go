// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when AOC_CONFIG
// is unset.
const DefaultConfigFile = "aoc.yaml"

// Config holds the runner settings shared by all day programs.
type Config struct {
	LogLevel   string `yaml:"log_level"`
	Profile    string `yaml:"profile"`
	ProfileDir string `yaml:"profile_dir"`
	DrawDir    string `yaml:"draw_dir"`
	Draw       bool   `yaml:"draw"`
	Stopwatch  bool   `yaml:"stopwatch"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "warn",
		ProfileDir: ".",
		DrawDir:    ".",
	}
}

// LoadConfig reads a YAML config from path on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("runner: open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("runner: decode config %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("runner: config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv resolves the config file (AOC_CONFIG, else aoc.yaml if it
// exists, else defaults) and applies the AOC_LOG_LEVEL and AOC_PROFILE
// overrides.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	path := os.Getenv("AOC_CONFIG")
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("runner: stat %s: %w", DefaultConfigFile, err)
		}
	}
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if v, ok := os.LookupEnv("AOC_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("AOC_PROFILE"); ok {
		cfg.Profile = v
	}
	cfg.normalize()
	return cfg, cfg.Validate()
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Profile = strings.ToLower(strings.TrimSpace(c.Profile))
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.ProfileDir == "" {
		c.ProfileDir = "."
	}
	if c.DrawDir == "" {
		c.DrawDir = "."
	}
}

// Validate checks the log level and profile mode.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrBadConfig, c.LogLevel)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("%w: profile %q (want cpu or mem)", ErrBadConfig, c.Profile)
	}
	return nil
}

// DrawPath joins name onto DrawDir, for use as a drawer output root.
func (c Config) DrawPath(name string) string {
	return filepath.Join(c.DrawDir, name)
}

// Apply sets the logrus level.
func (c Config) Apply() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: log_level %q", ErrBadConfig, c.LogLevel)
	}
	logrus.SetLevel(lvl)
	return nil
}

// StartProfile starts profiling if configured. The returned stop function
// must be called when the profiled work is done; it is never nil.
func (c Config) StartProfile() (stop func(), err error) {
	var mode func(*profile.Profile)
	switch c.Profile {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return func() {}, fmt.Errorf("%w: profile %q", ErrBadConfig, c.Profile)
	}
	p := profile.Start(mode, profile.ProfilePath(c.ProfileDir), profile.Quiet, profile.NoShutdownHook)
	log.WithFields(logrus.Fields{
		"mode": c.Profile,
		"dir":  c.ProfileDir,
	}).Info("profiling started")
	return p.Stop, nil
}
