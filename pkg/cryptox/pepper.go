package cryptox

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreatePepper reads the pepper stored at path. When the file does not
// exist a new random pepper is generated and written with 0600 permissions.
// An empty path disables peppering and returns "".
func LoadOrCreatePepper(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	path = filepath.Clean(path)
	raw, err := os.ReadFile(path)
	if err == nil {
		return strings.TrimSpace(string(raw)), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	pepper, err := RandomSecret(keyLength)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(pepper), 0600); err != nil {
		return "", err
	}
	return pepper, nil
}
