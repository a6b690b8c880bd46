package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	porthttp "github.com/aussiebroadwan/portfolio/internal/portfolio/http"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/memory"
	"github.com/aussiebroadwan/portfolio/pkg/cryptox"
	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	adminUsername = "admin"
	adminPassword = "Admin123!"
	testIssuer    = "portfolio-test"
)

var testSecret = []byte("http-test-secret-0123456789abcdef")

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

type testEnv struct {
	router *porthttp.Router
	store  *memory.Store
	clock  *clock
}

// newTestEnv wires a router against a seeded memory store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	c := &clock{t: time.Now().UTC().Truncate(time.Second)}
	st := memory.NewStore()
	hasher := cryptox.NewPasswordHasher("")

	seeded, err := (&service.BootstrapService{
		Store:    st,
		Hasher:   hasher,
		Username: adminUsername,
		Password: adminPassword,
	}).SeedDefaultAdmin(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)

	codec, err := jwtx.NewHS256(testSecret, testIssuer, jwtx.WithClock(c.Now))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := porthttp.NewRouter("test", st, logger, []string{"*"})
	r.AuthService = &service.AuthService{
		Store:  st,
		Hasher: hasher,
		Tokens: codec,
		Issuer: testIssuer,
		Now:    c.Now,
	}
	r.ContactService = &service.ContactService{Store: st, Now: c.Now}
	r.ApplyRoutes()

	return &testEnv{router: r, store: st, clock: c}
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func requireJSONError(t *testing.T, w *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()
	require.Equal(t, code, w.Code, w.Body.String())
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error":"`+msg+`"}`, w.Body.String())
}

var _ http.Handler = (*porthttp.Router)(nil)
