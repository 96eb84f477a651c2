package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/fs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	UIConsole = "console"
	UITUI     = "tui"
)

// Settings are the user defaults applied by the kls commands.
type Settings struct {
	// ResultsDir is where "form fill --save" writes relative file names.
	ResultsDir string `yaml:"results_dir" json:"results_dir"`
	// UI is "console" (line prompts) or "tui" (huh widgets).
	UI               string `yaml:"ui" json:"ui"`
	Compact          bool   `yaml:"compact" json:"compact"`
	ConfirmForms     bool   `yaml:"confirm_forms" json:"confirm_forms"`
	DecimalSeparator string `yaml:"decimal_separator" json:"decimal_separator"`
}

func (s *Settings) Validate() error {
	switch s.UI {
	case UIConsole, UITUI:
	default:
		return errors.Errorf("unexpected ui %q, allowed: console | tui", s.UI)
	}
	switch s.DecimalSeparator {
	case ".", ",":
	default:
		return errors.Errorf("unexpected decimal separator %q, allowed: '.' | ','", s.DecimalSeparator)
	}
	return nil
}

// Service handles the settings file
type Service struct {
	fs fs.FileSystem
}

func New(fileSystem fs.FileSystem) *Service {
	return &Service{fs: fileSystem}
}

func (s *Service) dir() (string, error) {
	configDir, err := s.fs.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return s.fs.Join(configDir, "kls"), nil
}

// Defaults returns the settings used when no file exists.
func (s *Service) Defaults() (*Settings, error) {
	homeDir, err := s.fs.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user home directory")
	}
	return &Settings{
		ResultsDir:       s.fs.Join(homeDir, "kls-results"),
		UI:               UIConsole,
		Compact:          true,
		ConfirmForms:     true,
		DecimalSeparator: ".",
	}, nil
}

// Path returns the settings file in use: config.yaml, else config.json,
// else the config.yaml location.
func (s *Service) Path() (string, error) {
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{"config.yaml", "config.json"} {
		if p := s.fs.Join(dir, name); s.fs.Exists(p) {
			return p, nil
		}
	}
	return s.fs.Join(dir, "config.yaml"), nil
}

// Load reads the settings file. Keys missing from the file keep their defaults.
func (s *Service) Load() (*Settings, error) {
	settings, err := s.Defaults()
	if err != nil {
		return nil, err
	}

	configPath, err := s.Path()
	if err != nil {
		return nil, err
	}
	if !s.fs.Exists(configPath) {
		return settings, nil
	}

	data, err := s.fs.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if isJSON(configPath) {
		err = json.Unmarshal(data, settings)
	} else {
		err = yaml.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", configPath)
	}
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", configPath)
	}

	return settings, nil
}

// Save writes the settings back to Path.
func (s *Service) Save(settings *Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	configPath, err := s.Path()
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	var data []byte
	if isJSON(configPath) {
		data, err = json.MarshalIndent(settings, "", "  ")
	} else {
		data, err = yaml.Marshal(settings)
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := s.fs.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
