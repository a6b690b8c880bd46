package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/pkg/cryptox"
	"github.com/aussiebroadwan/portfolio/pkg/httpx"
	"github.com/aussiebroadwan/portfolio/pkg/portfoliosdk"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

// requireAdmin only lets requests with a valid session token through.
// A missing token is 401, any other failure 403.
func requireAdmin(auth *service.AuthService) httpx.Middleware {
	authn := func(ctx context.Context, token string) (context.Context, error) {
		id, err := auth.VerifyToken(token)
		if err != nil {
			return nil, err
		}
		return httpx.WithSubject(ctx, id.SubjectID, id.Username), nil
	}
	return httpx.AuthnMiddleware(authn, writeAuthnFailure)
}

func writeAuthnFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrMissingToken) {
		httpx.WriteBearerChallenge(w, "")
		httpx.WriteError(w, http.StatusUnauthorized, portfoliosdk.ErrMsgAccessTokenRequired)
		return
	}
	slogx.FromContext(r.Context()).Info("admin token rejected",
		slog.String("token_fp", cryptox.Fingerprint(httpx.BearerToken(r))),
		slog.String("reason", err.Error()),
	)
	httpx.WriteBearerChallenge(w, "token verification failed")
	httpx.WriteError(w, http.StatusForbidden, portfoliosdk.ErrMsgInvalidToken)
}

// identityFromRequest returns the admin identity attached by requireAdmin.
func identityFromRequest(r *http.Request) (domain.Identity, bool) {
	sub, username, ok := httpx.SubjectFromContext(r.Context())
	if !ok {
		return domain.Identity{}, false
	}
	return domain.Identity{SubjectID: sub, Username: username}, true
}
