package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/pkg/portfoliosdk"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0600))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""

	_, err := New(t.Context(), cfg)
	require.ErrorContains(t, err, "invalid configuration")
}

func TestNewRequiresSeedPasswordOnEmptyStore(t *testing.T) {
	cfg := validConfig()
	cfg.AdminPassword = ""

	_, err := New(t.Context(), cfg)
	require.ErrorIs(t, err, service.ErrSeedPasswordRequired)
}

func TestNewServesSeededAdmin(t *testing.T) {
	cfg := validConfig()
	cfg.PepperFile = filepath.Join(t.TempDir(), "pepper")

	app, err := New(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	pepper, err := os.ReadFile(cfg.PepperFile)
	require.NoError(t, err)
	require.NotEmpty(t, pepper)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"Admin123!"}`))
	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp portfoliosdk.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
}

func TestNewSQLiteReopensWithoutReseeding(t *testing.T) {
	cfg := validConfig()
	cfg.StoreDriver = DriverSQLite
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "portfolio.db")

	first, err := New(t.Context(), cfg)
	require.NoError(t, err)
	require.NoError(t, first.db.Close())

	// Seeded already, so the password is no longer needed.
	cfg.AdminPassword = ""
	second, err := New(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.db.Close() })

	empty, err := second.db.Admins().IsEmpty(t.Context())
	require.NoError(t, err)
	require.False(t, empty)
}
