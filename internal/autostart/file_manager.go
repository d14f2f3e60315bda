package autostart

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// fileManager registers a login item by writing a single file that the
// session manager reads at login.
type fileManager struct {
	path    string
	content []byte
}

func (m *fileManager) Location() string {
	return m.path
}

func (m *fileManager) IsEnabled() (bool, error) {
	_, err := os.Stat(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", m.path, err)
	}
	return true, nil
}

func (m *fileManager) Enable() error {
	if existing, err := os.ReadFile(m.path); err == nil && bytes.Equal(existing, m.content) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("ensure autostart directory: %w", err)
	}

	tempFile := m.path + ".tmp"
	if err := os.WriteFile(tempFile, m.content, 0o644); err != nil {
		return fmt.Errorf("write autostart entry: %w", err)
	}
	return os.Rename(tempFile, m.path)
}

func (m *fileManager) Disable() error {
	err := os.Remove(m.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove autostart entry: %w", err)
	}
	return nil
}
