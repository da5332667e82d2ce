package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

var (
	ErrNotExist   = errors.New("doesn't exist")
	ErrExists     = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)

// ScenariosDir is the subdirectory under the data dir where the scenarios go
const ScenariosDir = "scenarios"

const ScenarioExt = ".toml"

var badNameRegex = regexp.MustCompile(`[<>:"/\\|?\*. ]`)

func ValidateScenarioName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: scenario name cannot be blank", ErrValidation)
	}

	m := badNameRegex.FindAllString(name, -1)

	if len(m) > 0 {
		return fmt.Errorf("%w: scenario name contains disallowed characters %q", ErrValidation, strings.Join(m, ""))
	}

	return nil
}

type Storage struct {
	config *Config
	fs     afero.Fs
}

func NewStorage(fs ClistFS, config *Config) *Storage {
	subFS := afero.NewBasePathFs(fs, config.DataDir())

	return &Storage{
		config: config,
		fs:     subFS,
	}
}

func scenarioPath(name string) string {
	return filepath.Join(ScenariosDir, name+ScenarioExt)
}

// ListScenarios returns the names of the stored scenarios, sorted
func (s *Storage) ListScenarios() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, ScenariosDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ScenarioExt {
			names = append(names, strings.TrimSuffix(entry.Name(), ScenarioExt))
		}
	}
	sort.Strings(names)

	return names, nil
}

// ScenarioExists returns an error if the named scenario does not exist
func (s *Storage) ScenarioExists(name string) error {
	if err := ValidateScenarioName(name); err != nil {
		return err
	}

	info, err := s.fs.Stat(scenarioPath(name))
	if err != nil {
		if errors.Is(err, afero.ErrFileNotFound) {
			return fmt.Errorf("scenario %q %w", name, ErrNotExist)
		}

		return err
	}
	if info.IsDir() {
		return fmt.Errorf("scenario %q is a directory", name)
	}

	return nil
}

// ScenarioNotExists returns an error if the named scenario already exists
func (s *Storage) ScenarioNotExists(name string) error {
	if err := ValidateScenarioName(name); err != nil {
		return err
	}

	if _, err := s.fs.Stat(scenarioPath(name)); !errors.Is(err, afero.ErrFileNotFound) {
		if err == nil {
			return fmt.Errorf("%w: scenario %q", ErrExists, name)
		}
		return err
	}

	return nil
}

func (s *Storage) ReadScenario(name string) (Scenario, error) {
	if err := s.ScenarioExists(name); err != nil {
		return Scenario{}, err
	}

	raw, err := afero.ReadFile(s.fs, scenarioPath(name))
	if err != nil {
		return Scenario{}, err
	}

	var sc Scenario
	dec := toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: scenario %q: %s", ErrValidation, name, err)
	}
	if sc.Name == "" {
		sc.Name = name
	}

	return sc, sc.Validate()
}

// WriteScenario stores a new scenario under its name. Existing scenarios are
// never overwritten.
func (s *Storage) WriteScenario(sc Scenario) error {
	if err := s.ScenarioNotExists(sc.Name); err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(ScenariosDir, 0755); err != nil {
		return err
	}

	f, err := s.fs.Create(scenarioPath(sc.Name))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(sc); err != nil {
		return err
	}

	return f.Sync()
}
