package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/portfolio/internal/portfolio/http"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/memory"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/mongo"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/postgres"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/aussiebroadwan/portfolio/pkg/cryptox"
	"github.com/aussiebroadwan/portfolio/pkg/jwtx"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application owns the store, the services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	hasher *cryptox.PasswordHasher
	tokens *jwtx.HS256

	authService      *service.AuthService
	contactService   *service.ContactService
	bootstrapService *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg, opens the store, seeds the admin if needed and builds
// the HTTP server. Nothing is listening until Run.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portfolio-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(ctx); err != nil {
		return nil, err
	}

	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("portfolio api starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portfolio api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("portfolio api stopped")
	return nil
}

// initStore opens the configured driver and applies its migrations.
func (app *Application) initStore(ctx context.Context) error {
	db, err := openStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", app.cfg.StoreDriver, err)
	}

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply %s migrations: %w", app.cfg.StoreDriver, err)
	}
	app.logger.Info("store migrations applied", "driver", app.cfg.StoreDriver)

	app.db = store.WithTimeout(db, app.cfg.StoreTimeout)
	return nil
}

func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		return sqlite.NewStore(dsn)
	case DriverPostgres:
		return postgres.NewStore(cfg.DatabaseURL)
	case DriverMongo:
		return mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	case DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// initServices builds the hasher, the token codec and the services, then
// seeds the admin account.
func (app *Application) initServices(ctx context.Context) error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load password pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	tokens, err := jwtx.NewHS256([]byte(app.cfg.JWTSecret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.tokens = tokens

	app.authService = &service.AuthService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: app.tokens,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.TokenTTL,
	}
	app.contactService = &service.ContactService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store:    app.db,
		Hasher:   app.hasher,
		Username: app.cfg.AdminUsername,
		Password: app.cfg.AdminPassword,
	}

	seeded, err := app.bootstrapService.SeedDefaultAdmin(slogx.WithContext(ctx, app.logger))
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if seeded {
		app.logger.Info("default admin created", "username", app.cfg.AdminUsername)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.AllowedOrigins,
	)

	router.AuthService = app.authService
	router.ContactService = app.contactService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
