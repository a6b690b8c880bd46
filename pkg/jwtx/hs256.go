package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HS256 secret accepted, matching the hash size.
const MinSecretLength = 32

// HS256 signs and verifies session tokens with a shared HMAC-SHA256 secret.
// It satisfies both Signer and Verifier.
type HS256 struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// HS256Option tweaks an HS256 instance.
type HS256Option func(*HS256)

// WithClock overrides the time source used during verification.
func WithClock(now func() time.Time) HS256Option {
	return func(h *HS256) { h.now = now }
}

// WithLeeway allows small clock skew when validating exp/nbf.
func WithLeeway(d time.Duration) HS256Option {
	return func(h *HS256) { h.leeway = d }
}

// NewHS256 returns an HS256 signer/verifier. issuer is enforced on verify
// when non-empty.
func NewHS256(secret []byte, issuer string, opts ...HS256Option) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(secret))
	}

	h := &HS256{
		secret: append([]byte(nil), secret...),
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign produces a compact JWS for claims.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify checks signature, algorithm, issuer and the exp/nbf window, and
// returns the parsed claims.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
		jwt.WithLeeway(h.leeway),
	}
	if h.issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.issuer))
	}
	parser := jwt.NewParser(opts...)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidClaim)
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrAlgMismatch, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %w", ErrNotYetValid, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %w", ErrIssuer, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	}
}
