package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ConfigFileName is looked up in the working directory; the home directory
// copy is a dotfile.
const ConfigFileName = "clist.toml"

const (
	EnvDataDir  = "CLIST_DATA_DIR"
	EnvLogLevel = "CLIST_LOG_LEVEL"
)

func GetEnvOr(getenv func(string) string, key string, fallback string) string {
	value := getenv(key)
	if value == "" {
		value = fallback
	}
	return value
}

// Flags are the command line options that feed into Config
type Flags struct {
	ConfigPath string
	Scenario   string
	Verbose    bool
}

type tomlConfig struct {
	DataDir         string `toml:"data_dir"`
	LogLevel        string `toml:"log_level"`
	MaxNodes        int    `toml:"max_nodes"`
	DefaultScenario string `toml:"default_scenario"`
}

type Config struct {
	toml  tomlConfig
	flags Flags

	path     string
	dataDir  string
	logLevel zerolog.Level
}

func NewConfig(fs ClistFS, flags Flags, getenv func(string) string) (*Config, error) {
	c := &Config{flags: flags}

	path, err := findConfigFile(fs, flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		raw, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, err
		}
		dec := toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields()
		if err := dec.Decode(&c.toml); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		c.path = path
	}

	if c.toml.MaxNodes < 0 {
		return nil, fmt.Errorf("%w: max_nodes cannot be negative", ErrValidation)
	}

	dataDir := GetEnvOr(getenv, EnvDataDir, c.toml.DataDir)
	if dataDir == "" {
		dataDir = "."
	}
	if strings.HasPrefix(dataDir, "~") {
		home, err := fs.HomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, strings.TrimPrefix(dataDir, "~"))
	}
	if c.dataDir, err = fs.Abs(dataDir); err != nil {
		return nil, err
	}

	level := GetEnvOr(getenv, EnvLogLevel, c.toml.LogLevel)
	if flags.Verbose {
		level = zerolog.LevelDebugValue
	}
	if level == "" {
		level = zerolog.LevelInfoValue
	}
	if c.logLevel, err = zerolog.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("%w: log level %q: %s", ErrValidation, level, err)
	}

	return c, nil
}

// findConfigFile returns the explicit path if one was given, otherwise the
// first existing candidate. An empty result means no config file.
func findConfigFile(fs ClistFS, explicit string) (string, error) {
	if explicit != "" {
		path, err := fs.Abs(explicit)
		if err != nil {
			return "", err
		}
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", fmt.Errorf("config file %q %w", path, ErrNotExist)
		}
		return path, nil
	}

	var candidates []string
	if local, err := fs.Abs(ConfigFileName); err == nil {
		candidates = append(candidates, local)
	}
	if home, err := fs.HomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+ConfigFileName))
	}

	for _, candidate := range candidates {
		exists, err := afero.Exists(fs, candidate)
		if err != nil && !errors.Is(err, afero.ErrFileNotFound) {
			return "", err
		}
		if exists {
			return candidate, nil
		}
	}

	return "", nil
}

// Path is the config file that was loaded, or "" if none was found
func (c *Config) Path() string {
	return c.path
}

func (c *Config) DataDir() string {
	return c.dataDir
}

func (c *Config) LogLevel() zerolog.Level {
	return c.logLevel
}

// MaxNodes is the default node cap for scenarios that don't set their own.
// Zero means unbounded.
func (c *Config) MaxNodes() int {
	return c.toml.MaxNodes
}

// Scenario is the scenario to run: the -scenario flag, then the config
// file's default_scenario, then the built in demo.
func (c *Config) Scenario() string {
	if c.flags.Scenario != "" {
		return c.flags.Scenario
	}
	if c.toml.DefaultScenario != "" {
		return c.toml.DefaultScenario
	}
	return DemoScenarioName
}
