package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileSystem abstracts the file operations used for definitions, settings
// and saved results
type FileSystem interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(filename string, data []byte, perm os.FileMode) error
	ReadFile(filename string) ([]byte, error)
	ReadDir(dirname string) ([]string, error)
	UserConfigDir() (string, error)
	UserHomeDir() (string, error)
	Exists(path string) bool
	Join(elem ...string) string
}

// OSFileSystem is the production implementation using the real filesystem
type OSFileSystem struct{}

func NewOSFileSystem() FileSystem {
	return &OSFileSystem{}
}

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

func (OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// ReadDir returns the sorted names of the regular files in dirname.
func (OSFileSystem) ReadDir(dirname string) ([]string, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (OSFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// MemFileSystem keeps files in memory. Directories are implicit.
type MemFileSystem struct {
	mu        sync.Mutex
	files     map[string][]byte
	configDir string
	homeDir   string
}

func NewMemFileSystem(homeDir string) *MemFileSystem {
	return &MemFileSystem{
		files:     map[string][]byte{},
		configDir: filepath.Join(homeDir, ".config"),
		homeDir:   homeDir,
	}
}

func (m *MemFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return nil
}

func (m *MemFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(filename)] = append([]byte(nil), data...)
	return nil
}

func (m *MemFileSystem) ReadFile(filename string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(filename)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filename, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MemFileSystem) ReadDir(dirname string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := filepath.Clean(dirname) + string(filepath.Separator)
	var names []string
	for path := range m.files {
		if rest := strings.TrimPrefix(path, prefix); rest != path && !strings.Contains(rest, string(filepath.Separator)) {
			names = append(names, rest)
		}
	}
	if len(names) == 0 {
		return nil, &fs.PathError{Op: "open", Path: dirname, Err: fs.ErrNotExist}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemFileSystem) UserConfigDir() (string, error) {
	return m.configDir, nil
}

func (m *MemFileSystem) UserHomeDir() (string, error) {
	return m.homeDir, nil
}

func (m *MemFileSystem) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *MemFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}
