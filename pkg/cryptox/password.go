package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrUnsupportedHash  = errors.New("unsupported password hash format")
)

// PasswordHasher hashes new passwords with Argon2id and verifies both
// Argon2id PHC strings and bcrypt hashes. The bcrypt path exists for admin
// records imported from the previous Node deployment, which never used a
// pepper.
type PasswordHasher struct {
	pepper string

	dummyOnce sync.Once
	dummy     string
}

// NewPasswordHasher returns a hasher that appends pepper to every password
// before Argon2id hashing. An empty pepper is allowed.
func NewPasswordHasher(pepper string) *PasswordHasher {
	return &PasswordHasher{pepper: pepper}
}

// Hash generates a PHC-format Argon2id hash string including salt and parameters.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password+h.pepper), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify compares a plaintext password against an encoded hash. It returns
// ErrPasswordMismatch on a wrong password and a format error when the hash
// cannot be parsed.
func (h *PasswordHasher) Verify(password, encodedHash string) error {
	switch {
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		return h.verifyArgon2(password, encodedHash)
	case isBcrypt(encodedHash):
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	default:
		return ErrUnsupportedHash
	}
}

// VerifyDummy burns roughly the same time as a real verification. Callers use
// it when the account does not exist so response timing does not reveal
// which usernames are registered.
func (h *PasswordHasher) VerifyDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = h.Hash("dummy-password-for-timing")
	})
	_ = h.Verify(password, h.dummy)
}

func (h *PasswordHasher) verifyArgon2(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}

	computed := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - bounded by the decoded hash
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

func isBcrypt(encoded string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(encoded, prefix) {
			return true
		}
	}
	return false
}
