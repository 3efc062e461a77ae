package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/session"
	"catalog-manager/internal/middleware"
	"catalog-manager/pkg/log"
	"catalog-manager/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Cross-cutting
	mw             middleware.Middleware
	metricsHandler http.Handler
	httpMetrics    *metrics.HTTP

	// Catalog domain
	catalogUC catalog.UseCase
	sessions  session.Registry
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware     middleware.Middleware
	MetricsHandler http.Handler
	HTTPMetrics    *metrics.HTTP // optional

	// Catalog domain
	CatalogUC catalog.UseCase
	Sessions  session.Registry
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		metricsHandler:  cfg.MetricsHandler,
		httpMetrics:     cfg.HTTPMetrics,
		catalogUC:       cfg.CatalogUC,
		sessions:        cfg.Sessions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalogUC == nil {
		return errors.New("catalog usecase is required")
	}
	if srv.sessions == nil {
		return errors.New("session registry is required")
	}
	return nil
}
