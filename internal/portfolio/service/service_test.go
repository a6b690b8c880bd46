package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/memory"
	"github.com/aussiebroadwan/portfolio/pkg/cryptox"
	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "portfolio-test"
	testUsername = "admin"
	testPassword = "correct horse battery staple"
)

var testSecret = []byte("test-secret-that-is-at-least-32-bytes!")

// clock is a settable time source shared by the services and the verifier.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newClock() *clock {
	return &clock{t: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)}
}

func newCodec(t *testing.T, c *clock) *jwtx.HS256 {
	t.Helper()
	codec, err := jwtx.NewHS256(testSecret, testIssuer, jwtx.WithClock(c.Now))
	require.NoError(t, err)
	return codec
}

func seededStore(t *testing.T, hasher *cryptox.PasswordHasher) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	hash, err := hasher.Hash(testPassword)
	require.NoError(t, err)
	_, err = s.Admins().CreateAdmin(context.Background(), adminWithHash(hash))
	require.NoError(t, err)
	return s
}
