package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	errs "animalscraper/pkg/errors"
)

// Manager handles image files in a single output directory
type Manager struct {
	outputDir string
	extension string
	saved     int
	mu        sync.Mutex
}

// NewManager creates a storage manager. The directory is created lazily on
// the first Save.
func NewManager(outputDir, extension string) *Manager {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return &Manager{
		outputDir: outputDir,
		extension: extension,
	}
}

// FileName maps an animal name to a safe file name. Path separators, colons
// and control characters become underscores.
func (m *Manager) FileName(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r == '/', r == '\\', r == ':':
			return '_'
		case r < 0x20, r == 0x7f:
			return '_'
		}
		return r
	}, name)
	if safe == "" || safe == "." || safe == ".." {
		safe = strings.Repeat("_", len(safe)+1)
	}
	return safe + m.extension
}

// Path returns where the image of name is stored
func (m *Manager) Path(name string) string {
	return filepath.Join(m.outputDir, m.FileName(name))
}

// Exists reports whether the image of name is already on disk
func (m *Manager) Exists(name string) bool {
	info, err := os.Stat(m.Path(name))
	return err == nil && !info.IsDir()
}

// Save writes the image of name from r, overwriting any previous file, and
// returns the final path.
func (m *Manager) Save(r io.Reader, name string) (string, error) {
	// MkdirAll tolerates concurrent callers creating the same directory
	if err := os.MkdirAll(m.outputDir, 0755); err != nil {
		return "", errs.NewFilesystem("failed to create output directory", err)
	}

	filename := m.Path(name)

	out, err := os.CreateTemp(m.outputDir, "."+m.FileName(name)+".*.tmp")
	if err != nil {
		return "", errs.NewFilesystem("failed to create temporary file", err)
	}
	tempFile := out.Name()

	_, err = io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return "", errs.NewFilesystem("failed to write image data", err)
	}

	if closeErr != nil {
		os.Remove(tempFile)
		return "", errs.NewFilesystem("failed to close file", closeErr)
	}

	if err := os.Chmod(tempFile, 0644); err != nil {
		os.Remove(tempFile)
		return "", errs.NewFilesystem("failed to set file mode", err)
	}

	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return "", errs.NewFilesystem(fmt.Sprintf("failed to move image into %s", filename), err)
	}

	m.mu.Lock()
	m.saved++
	m.mu.Unlock()

	return filename, nil
}

// OutputDir returns the output directory path
func (m *Manager) OutputDir() string {
	return m.outputDir
}

// SavedCount returns the number of images written by this manager
func (m *Manager) SavedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}
