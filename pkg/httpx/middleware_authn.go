package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

// AuthnFunc validates a bearer token and returns the context the request
// continues with. token is "" when the request carried no bearer credential.
type AuthnFunc func(ctx context.Context, token string) (context.Context, error)

// AuthnFailureFunc renders an authentication failure returned by an AuthnFunc.
type AuthnFailureFunc func(w http.ResponseWriter, r *http.Request, err error)

// AuthnMiddleware extracts the bearer token, hands it to authn and only
// calls next when authn succeeds.
func AuthnMiddleware(authn AuthnFunc, fail AuthnFailureFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := authn(r.Context(), BearerToken(r))
			if err != nil {
				slogx.FromContext(r.Context()).Debug("authentication failed", "error", err)
				fail(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken returns the credential from an "Authorization: Bearer <token>"
// header, or "" when the header is absent, uses another scheme or is blank.
func BearerToken(r *http.Request) string {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// WriteBearerChallenge sets an RFC 6750 WWW-Authenticate header.
func WriteBearerChallenge(w http.ResponseWriter, desc string) {
	if desc == "" {
		w.Header().Set("WWW-Authenticate", `Bearer`)
		return
	}
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
}
