// Package store persists definitions and filled-in results as JSON or YAML,
// choosing the encoding from the file extension.
package store

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/fs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type Format int

const (
	FormatJSON Format = iota + 1
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Extensions lists the file extensions the store understands.
func Extensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedFormat, "%s (expected one of %s)", path, strings.Join(Extensions(), ", "))
	}
}

func Marshal(v interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal json")
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal yaml")
		}
		return data, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", format)
	}
}

func Unmarshal(data []byte, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		return errors.Wrap(json.Unmarshal(data, v), "failed to parse json")
	case FormatYAML:
		return errors.Wrap(yaml.Unmarshal(data, v), "failed to parse yaml")
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%s", format)
	}
}

// Service reads and writes documents through a FileSystem
type Service struct {
	fs fs.FileSystem
}

func New(fileSystem fs.FileSystem) *Service {
	return &Service{fs: fileSystem}
}

// Save encodes v according to the extension of path, creating parent
// directories as needed.
func (s *Service) Save(path string, v interface{}) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func (s *Service) Load(path string, v interface{}) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	return errors.Wrapf(Unmarshal(data, format, v), "%s", path)
}

// ReadFile returns the raw content of a definition file after checking its
// extension.
func (s *Service) ReadFile(path string) ([]byte, error) {
	if _, err := FormatFor(path); err != nil {
		return nil, err
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

// List returns the JSON/YAML files in dir.
func (s *Service) List(dir string) ([]string, error) {
	names, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}
	var ret []string
	for _, name := range names {
		if _, err := FormatFor(name); err == nil {
			ret = append(ret, s.fs.Join(dir, name))
		}
	}
	return ret, nil
}
