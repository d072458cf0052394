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

	httpapi "github.com/bychefiza/edge/internal/auth/http"
	"github.com/bychefiza/edge/internal/auth/service"
	"github.com/bychefiza/edge/internal/auth/store"
	"github.com/bychefiza/edge/internal/auth/store/drivers/memory"
	"github.com/bychefiza/edge/pkg/cryptox"
	"github.com/bychefiza/edge/pkg/httpx"
	"github.com/bychefiza/edge/pkg/jwtx"
	"github.com/bychefiza/edge/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	tokenService *service.TokenService
	userService  *service.UserService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// A default secret in prod would let anyone mint valid tokens.
	if cfg.Env == "prod" && cfg.JWTSecret == "dev-secret-key" {
		return nil, errors.New("JWT_SECRET must be set in prod")
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	app.db = memory.NewStore()

	if err := app.initServices(); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
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

	app.logger.Info("auth service stopped")
	return nil
}

// initServices initializes the signing key and business logic services
func (app *Application) initServices() error {
	secret := []byte(app.cfg.JWTSecret)

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer:          signer,
		AccessVerifier:  jwtx.NewVerifierHS256(secret, app.cfg.Issuer, jwtx.KindAccess),
		RefreshVerifier: jwtx.NewVerifierHS256(secret, app.cfg.Issuer, jwtx.KindRefresh),
		Store:           app.db,
		Issuer:          app.cfg.Issuer,
		AccessTTL:       app.cfg.AccessTTL,
		RefreshTTL:      app.cfg.RefreshTTL,
	}

	app.userService = &service.UserService{Store: app.db}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.logger)

	// Wire services to router
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.CredentialLimit = httpx.RateLimitConfig{
		RequestsPerWindow: app.cfg.RateLimitMax,
		Window:            app.cfg.RateLimitWindow,
		Burst:             app.cfg.RateLimitMax,
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
