package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	errs "animalscraper/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "tmp", "images")
	manager := NewManager(tempDir, ".jpg")

	assert.Equal(t, 0, manager.SavedCount())
	assert.False(t, manager.Exists("Cheetah"))

	_, err := os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "directory is created on first save")

	testData := []byte("test image data")
	path, err := manager.Save(bytes.NewReader(testData), "Cheetah")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "Cheetah.jpg"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testData, content)

	assert.True(t, manager.Exists("Cheetah"))
	assert.Equal(t, 1, manager.SavedCount())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestManagerOverwrites(t *testing.T) {
	manager := NewManager(t.TempDir(), "jpg")

	_, err := manager.Save(bytes.NewReader([]byte("old")), "Dog")
	require.NoError(t, err)
	path, err := manager.Save(bytes.NewReader([]byte("new")), "Dog")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
	assert.Equal(t, "Dog.jpg", filepath.Base(path))
}

func TestManagerDetectsExistingFiles(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "Goose.jpg"), []byte("manual"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "Fox.jpg"), 0755))

	manager := NewManager(tempDir, ".jpg")
	assert.True(t, manager.Exists("Goose"))
	assert.False(t, manager.Exists("Fox"), "directories are not images")
	assert.Equal(t, 0, manager.SavedCount())
}

func TestFileName(t *testing.T) {
	manager := NewManager("out", ".jpg")

	tests := []struct {
		name string
		want string
	}{
		{"Cheetah", "Cheetah.jpg"},
		{"Red fox", "Red fox.jpg"},
		{"Cat/Dog", "Cat_Dog.jpg"},
		{`a\b:c`, "a_b_c.jpg"},
		{"tab\there", "tab_here.jpg"},
		{"", "_.jpg"},
		{"..", "___.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, manager.FileName(tt.name))
		})
	}
}

func TestSaveUnsafeNameStaysInDirectory(t *testing.T) {
	tempDir := t.TempDir()
	manager := NewManager(tempDir, ".jpg")

	path, err := manager.Save(bytes.NewReader([]byte("x")), "../escape")
	require.NoError(t, err)
	assert.Equal(t, tempDir, filepath.Dir(path))
}

func TestSaveFailsWhenDirectoryIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "images")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0644))

	manager := NewManager(blocker, ".jpg")
	_, err := manager.Save(bytes.NewReader([]byte("x")), "Cheetah")
	require.Error(t, err)

	var scraperErr *errs.Error
	require.True(t, errors.As(err, &scraperErr))
	assert.Equal(t, errs.ErrorTypeFilesystem, scraperErr.Type)
}

func TestConcurrentSaves(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "nested")
	manager := NewManager(tempDir, ".jpg")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := manager.Save(bytes.NewReader([]byte("data")), fmt.Sprintf("animal-%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 16)
	assert.Equal(t, 16, manager.SavedCount())
}
