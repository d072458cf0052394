package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/bychefiza/edge/internal/gateway/http"
	"github.com/bychefiza/edge/internal/gateway/route"
	"github.com/bychefiza/edge/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the gateway with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	table *route.Table

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "api-gateway",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initRouteTable(); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("gateway starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down gateway...")

	// Give in-flight forwards a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.logger.Info("gateway stopped")
	return nil
}

// initRouteTable builds the prefix table from the configured service URLs
func (app *Application) initRouteTable() error {
	services := []struct {
		name   string
		prefix string
		rawURL string
	}{
		{"auth", "/api/auth", app.cfg.AuthServiceURL},
		{"users", "/api/users", app.cfg.UserServiceURL},
		{"products", "/api/products", app.cfg.ProductServiceURL},
		{"orders", "/api/orders", app.cfg.OrderServiceURL},
		{"payments", "/api/payments", app.cfg.PaymentServiceURL},
	}

	bindings := make([]route.Binding, 0, len(services))
	for _, svc := range services {
		upstream, err := url.Parse(svc.rawURL)
		if err != nil {
			return fmt.Errorf("invalid %s service URL %q: %w", svc.name, svc.rawURL, err)
		}
		bindings = append(bindings, route.Binding{
			Name:     svc.name,
			Prefix:   svc.prefix,
			Upstream: upstream,
		})
	}

	table, err := route.NewTable(bindings)
	if err != nil {
		return fmt.Errorf("failed to build route table: %w", err)
	}
	app.table = table

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.logger)

	router.Table = app.table
	router.Client = &http.Client{Timeout: app.cfg.ProxyTimeout}
	router.DevMode = app.cfg.Env == "dev"
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
