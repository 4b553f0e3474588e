package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout is the prefix format of stored file names. The expiry
// job derives file age from this prefix, so it must stay stable.
const timestampLayout = "20060102-150405"

// FileStore persists queued uploads on the local filesystem
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	log.Printf("File store initialized at %s", dir)
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes into
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes contents under a timestamp-prefixed name and returns the path
func (s *FileStore) Save(filename string, contents []byte, now time.Time) (string, error) {
	name := fmt.Sprintf("%s_%s", now.Format(timestampLayout), filepath.Base(filename))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *FileStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// StoredAt parses the storage timestamp from a path produced by Save
func (s *FileStore) StoredAt(path string) (time.Time, error) {
	base := filepath.Base(path)
	prefix, _, found := strings.Cut(base, "_")
	if !found {
		return time.Time{}, fmt.Errorf("no timestamp prefix in %s", base)
	}
	ts, err := time.ParseInLocation(timestampLayout, prefix, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp prefix in %s: %w", base, err)
	}
	return ts, nil
}
