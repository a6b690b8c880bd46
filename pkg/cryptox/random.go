package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// RandomSecret returns size random bytes, base64url-encoded without padding.
func RandomSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Fingerprint returns a short, stable SHA-256 digest of s. It lets logs
// correlate a credential across requests without recording the credential.
func Fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base64.RawURLEncoding.EncodeToString(sum[:8])
}
