// Package session keeps the sign-in token of the current operator on disk
// for the lifetime of the login session.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/liverdesk/internal/constants"
)

const tokenFileName = "session"

type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a user-only file.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, tokenFileName)}
}

// DefaultDir is the per-user runtime directory, which the OS empties on
// restart. Falls back to the temp directory.
func DefaultDir() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, constants.AppName)
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d", constants.AppName, os.Getuid()))
}

func (f *FileStore) Path() string {
	return f.path
}

// Load returns "" when no token has been saved.
func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryStore is a TokenStore that lives only as long as the process.
type MemoryStore struct {
	token string
}

func (m *MemoryStore) Load() (string, error) { return m.token, nil }

func (m *MemoryStore) Save(token string) error {
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	m.token = ""
	return nil
}
