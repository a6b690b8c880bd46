package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/pkg/httpx"
	"github.com/aussiebroadwan/portfolio/pkg/portfoliosdk"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

// LoginHandler serves POST /api/admin/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Admin login
//	@Description	Exchanges the admin username and password for a session token valid for 24 hours.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			body	body		portfoliosdk.LoginRequest	true	"Admin credentials"
//	@Success		200		{object}	portfoliosdk.LoginResponse
//	@Failure		400		{object}	portfoliosdk.ErrorResponse	"missing fields or malformed body"
//	@Failure		401		{object}	portfoliosdk.ErrorResponse	"invalid credentials"
//	@Failure		500		{object}	portfoliosdk.ErrorResponse
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/api/admin/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req portfoliosdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, portfoliosdk.ErrMsgInvalidBody)
		return
	}

	sess, err := h.AuthService.IssueToken(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, portfoliosdk.ErrMsgLoginFieldsRequired)
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, portfoliosdk.ErrMsgInvalidCredentials)
		default:
			l.Error("login failed", slog.Any("error", err))
			httpx.WriteError(w, http.StatusInternalServerError, portfoliosdk.ErrMsgLoginFailed)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portfoliosdk.LoginResponse{
		Message:  portfoliosdk.MsgLoginSuccessful,
		Token:    sess.Token,
		Username: sess.Username,
	})
}
