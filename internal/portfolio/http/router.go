package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/httpx"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"

	_ "github.com/aussiebroadwan/portfolio/api/portfolio" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	ContactService *service.ContactService
}

// NewRouter builds a router whose global chain logs every request and
// applies CORS for allowedOrigins.
func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	allowedOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAdmin()
	r.registerContacts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Portfolio Contact API
//	@version		0.1.0
//	@description	Accepts public contact-form submissions and lets the site admin review and delete them.
//	@description
//	@description				Admin endpoints require an HS256 session token obtained from the login endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/portfolio
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAdmin() {
	h := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/admin/login", h)
}

func (r *Router) registerContacts() {
	h := &ContactsHandler{ContactService: r.ContactService}

	r.Mux.Handle("POST /api/contact", http.HandlerFunc(h.HandleSubmit))

	r.Mux.Handle("GET /api/contacts",
		httpx.Chain(http.HandlerFunc(h.HandleList), requireAdmin(r.AuthService)))
	r.Mux.Handle("DELETE /api/contacts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), requireAdmin(r.AuthService)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
