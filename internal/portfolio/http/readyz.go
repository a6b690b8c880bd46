package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/httpx"
	"github.com/aussiebroadwan/portfolio/pkg/portfoliosdk"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe that pings the store.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portfoliosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	portfoliosdk.HealthResponse	"store unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &portfoliosdk.HealthChecks{Store: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("store ping failed", slog.Any("error", err))
			checks.Store = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, portfoliosdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
