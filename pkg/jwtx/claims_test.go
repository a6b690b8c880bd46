package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "portfolio-api"}}

	require.NoError(t, c.ValidateIssuer("portfolio-api"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("auth-service"), jwtx.ErrIssuer)
}

func TestValidateExpiryAt(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("valid token", func(t *testing.T) {
		c := jwtx.NewSessionClaims("s", "u", "", time.Minute, now)
		require.NoError(t, c.ValidateExpiryAt(now))
	})

	t.Run("expired at the boundary", func(t *testing.T) {
		c := jwtx.NewSessionClaims("s", "u", "", time.Minute, now)
		require.ErrorIs(t, c.ValidateExpiryAt(now.Add(time.Minute)), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := jwtx.NewSessionClaims("s", "u", "", time.Minute, now)
		require.ErrorIs(t, c.ValidateExpiryAt(now.Add(-time.Second)), jwtx.ErrNotYetValid)
	})

	t.Run("no exp or nbf", func(t *testing.T) {
		c := &jwtx.Claims{}
		require.NoError(t, c.ValidateExpiryAt(now))
	})
}

func TestNewJTIUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		id := jwtx.NewJTI()
		require.NotContains(t, seen, id)
		seen[id] = struct{}{}
	}
}
