package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "portfolio-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), exampleIssuer)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256SignAndVerify(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	h, err := jwtx.NewHS256(testSecret, exampleIssuer, jwtx.WithClock(fixedClock(issued.Add(time.Minute))))
	require.NoError(t, err)
	require.Equal(t, "HS256", h.Alg())

	claims := jwtx.NewSessionClaims("admin-1", "admin", exampleIssuer, jwtx.DefaultSessionTTL, issued)
	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(token, ".")+1)

	parsed, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "admin-1", parsed.Subject)
	require.Equal(t, "admin", parsed.Username)
	require.Equal(t, exampleIssuer, parsed.Issuer)
	require.Equal(t, issued.Add(24*time.Hour), parsed.ExpiresAt.Time.UTC())
	require.NotEmpty(t, parsed.ID)
}

func TestHS256ExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	claims := jwtx.NewSessionClaims("admin-1", "admin", exampleIssuer, jwtx.DefaultSessionTTL, issued)

	signer, err := jwtx.NewHS256(testSecret, exampleIssuer)
	require.NoError(t, err)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"at issuance", issued, nil},
		{"one second before expiry", issued.Add(24*time.Hour - time.Second), nil},
		{"exactly at expiry", issued.Add(24 * time.Hour), jwtx.ErrExpired},
		{"long after expiry", issued.Add(48 * time.Hour), jwtx.ErrExpired},
		{"before issuance", issued.Add(-time.Minute), jwtx.ErrNotYetValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := jwtx.NewHS256(testSecret, exampleIssuer, jwtx.WithClock(fixedClock(tt.at)))
			require.NoError(t, err)

			_, err = v.Verify(token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHS256VerifyFailures(t *testing.T) {
	now := time.Now().UTC()
	signer, err := jwtx.NewHS256(testSecret, exampleIssuer)
	require.NoError(t, err)

	valid, err := signer.Sign(jwtx.NewSessionClaims("admin-1", "admin", exampleIssuer, time.Hour, now))
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("ffffffffffffffffffffffffffffffff"), exampleIssuer)
		require.NoError(t, err)
		_, err = other.Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(valid, ".")
		forged, err := signer.Sign(jwtx.NewSessionClaims("admin-2", "root", exampleIssuer, time.Hour, now))
		require.NoError(t, err)
		parts[1] = strings.Split(forged, ".")[1]
		_, err = signer.Verify(strings.Join(parts, "."))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		v, err := jwtx.NewHS256(testSecret, "someone-else")
		require.NoError(t, err)
		_, err = v.Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := signer.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)

		_, err = signer.Verify("")
		require.Error(t, err)
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("admin-1", "admin", exampleIssuer, time.Hour, now)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
		require.NoError(t, err)
		_, err = signer.Verify(tok)
		require.Error(t, err)
	})

	t.Run("missing exp", func(t *testing.T) {
		claims := jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "admin-1", Issuer: exampleIssuer},
			Username:         "admin",
		}
		tok, err := signer.Sign(claims)
		require.NoError(t, err)
		_, err = signer.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewSessionClaims("", "admin", exampleIssuer, time.Hour, now))
		require.NoError(t, err)
		_, err = signer.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}
