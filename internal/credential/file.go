package credential

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultKeyFile - файл ключа по умолчанию
const DefaultKeyFile = "apikey.txt"

// FileStore хранит ключ открытым текстом в файле
type FileStore struct {
	path string
}

// NewFileStore создает новый FileStore
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultKeyFile
	}
	return &FileStore{path: path}
}

// Load читает ключ из файла. Отсутствие файла означает отсутствие ключа.
func (s *FileStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("credential file: failed to read %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save записывает ключ в файл
func (s *FileStore) Save(_ context.Context, key string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("credential file: failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(key), 0o600); err != nil {
		return fmt.Errorf("credential file: failed to write %s: %w", s.path, err)
	}
	return nil
}
