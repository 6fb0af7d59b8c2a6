package tunnels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const configSuffix = ".conf"

// Store persists tunnel configurations as <name>.conf files under a single
// directory. The directory is injected so tests can point it at a temp dir.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// ValidateName rejects base names that could escape the configuration
// directory. Checked before any I/O.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// Path returns the on-disk location for a tunnel name. The name must already
// have passed ValidateName.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name+configSuffix)
}

// Write persists content under name atomically: the file appears fully
// written or not at all. An existing file with the same name is replaced;
// concurrent writers to one name race with last-writer-wins semantics.
func (s *Store) Write(name string, content string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+name+configSuffix+".*")

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	tmpPath := tmp.Name()

	cleanup := func(cause error) (string, error) {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, cause)
	}

	if _, err := tmp.WriteString(content); err != nil {
		return cleanup(err)
	}

	// Configurations embed private keys.
	if err := tmp.Chmod(0600); err != nil {
		return cleanup(err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	finalPath := s.Path(name)

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return finalPath, nil
}

// List enumerates persisted tunnel names, sorted lexicographically. A missing
// configuration directory reads as an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)

	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), configSuffix) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), configSuffix)

		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}
