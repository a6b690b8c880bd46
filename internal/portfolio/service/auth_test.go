package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/pkg/cryptox"
	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminWithHash(hash string) domain.Admin {
	return domain.Admin{Username: testUsername, PasswordHash: hash}
}

func newAuthService(t *testing.T) (*service.AuthService, *clock) {
	t.Helper()
	c := newClock()
	hasher := cryptox.NewPasswordHasher("")
	return &service.AuthService{
		Store:  seededStore(t, hasher),
		Hasher: hasher,
		Tokens: newCodec(t, c),
		Issuer: testIssuer,
		Now:    c.Now,
	}, c
}

func TestIssueToken(t *testing.T) {
	svc, c := newAuthService(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		sess, err := svc.IssueToken(ctx, testUsername, testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)
		require.Equal(t, testUsername, sess.Username)
		require.Equal(t, c.Now().Add(24*time.Hour), sess.ExpiresAt.UTC())

		id, err := svc.VerifyToken(sess.Token)
		require.NoError(t, err)
		require.Equal(t, testUsername, id.Username)
		require.NotEmpty(t, id.SubjectID)
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"missing username", "", testPassword, service.ErrMissingFields},
		{"missing password", testUsername, "", service.ErrMissingFields},
		{"wrong password", testUsername, "nope", service.ErrInvalidCredentials},
		{"unknown user", "ghost", testPassword, service.ErrInvalidCredentials},
		{"username is case sensitive", "Admin", testPassword, service.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.IssueToken(ctx, tt.username, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIssueTokenRejectsOneCharacterMutations(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	mutations := func(s string) []string {
		var out []string
		for i := range len(s) {
			b := []byte(s)
			b[i] ^= 0x01
			out = append(out, string(b))
		}
		return append(out, s[1:], s+"x")
	}

	for _, u := range mutations(testUsername) {
		_, err := svc.IssueToken(ctx, u, testPassword)
		require.ErrorIs(t, err, service.ErrInvalidCredentials, "username %q", u)
	}
	for _, p := range mutations(testPassword) {
		_, err := svc.IssueToken(ctx, testUsername, p)
		require.ErrorIs(t, err, service.ErrInvalidCredentials, "password %q", p)
	}
}

func TestIssueTokenLegacyBcryptHash(t *testing.T) {
	c := newClock()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := &service.AuthService{
		Store:  seededStoreWithHash(t, string(hash)),
		Hasher: cryptox.NewPasswordHasher(""),
		Tokens: newCodec(t, c),
		Issuer: testIssuer,
		Now:    c.Now,
	}

	_, err = svc.IssueToken(context.Background(), testUsername, "admin123")
	require.NoError(t, err)

	_, err = svc.IssueToken(context.Background(), testUsername, "admin124")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestVerifyTokenExpiry(t *testing.T) {
	svc, c := newAuthService(t)
	issuedAt := c.Now()

	sess, err := svc.IssueToken(context.Background(), testUsername, testPassword)
	require.NoError(t, err)

	c.t = issuedAt.Add(24*time.Hour - time.Second)
	_, err = svc.VerifyToken(sess.Token)
	require.NoError(t, err)

	c.t = issuedAt.Add(24 * time.Hour)
	_, err = svc.VerifyToken(sess.Token)
	require.ErrorIs(t, err, service.ErrInvalidToken)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyTokenFailures(t *testing.T) {
	svc, c := newAuthService(t)

	t.Run("missing", func(t *testing.T) {
		_, err := svc.VerifyToken("")
		require.ErrorIs(t, err, service.ErrMissingToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.VerifyToken("not-a-token")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("another-secret-that-is-32-bytes-long"), testIssuer)
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewSessionClaims("id", testUsername, testIssuer, time.Hour, c.Now()))
		require.NoError(t, err)

		_, err = svc.VerifyToken(tok)
		require.ErrorIs(t, err, service.ErrInvalidToken)
		require.False(t, errors.Is(err, service.ErrMissingToken))
	})
}
