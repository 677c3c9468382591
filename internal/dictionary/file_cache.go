package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores raw definition payloads on disk, one JSON file per
// expression, so repeated lookups skip the network entirely.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(expression string) string {
	// Phrases contain spaces; keep file names flat and predictable.
	name := strings.ReplaceAll(strings.ToLower(expression), " ", "_")
	return filepath.Join(cache.rootDir, name+".json")
}

// Cache returns the stored payload for expression, calling f to fetch and
// store it on a miss. Fetch errors are never cached.
func (cache *FileCache) Cache(expression string, f func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(expression)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(expression)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cache.rootDir, 0o755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return contents, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(expression string) ([]byte, error) {
	file, err := os.Open(cache.filePath(expression))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
