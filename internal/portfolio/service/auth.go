package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/cryptox"
	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("access token required")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	jwtx.Signer
	jwtx.Verifier
}

type AuthService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Tokens TokenCodec
	Issuer string
	TTL    time.Duration // defaults to jwtx.DefaultSessionTTL

	// Now defaults to time.Now.
	Now func() time.Time
}

// IssueToken checks the admin credentials and returns a signed session token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) IssueToken(ctx context.Context, username, password string) (domain.Session, error) {
	l := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return domain.Session{}, ErrMissingFields
	}

	admin, err := s.Store.Admins().GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.VerifyDummy(password)
			l.Info("login rejected", slog.String("reason", "unknown_user"))
			return domain.Session{}, ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("lookup admin: %w", err)
	}

	if err := s.Hasher.Verify(password, admin.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login rejected", slog.String("reason", "bad_password"))
			return domain.Session{}, ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("verify password: %w", err)
	}

	now := s.now()
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(admin.ID, admin.Username, s.Issuer, ttl, now)
	token, err := s.Tokens.Sign(claims)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign token: %w", err)
	}

	l.Info("admin logged in", slog.String("admin_id", admin.ID))
	return domain.Session{
		Token:     token,
		Username:  admin.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// VerifyToken validates a bearer token. An empty token is ErrMissingToken;
// every other failure is ErrInvalidToken. It never touches the store.
func (s *AuthService) VerifyToken(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, ErrMissingToken
	}

	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return domain.Identity{SubjectID: claims.Subject, Username: claims.Username}, nil
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
