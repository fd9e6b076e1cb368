package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardtoken/internal/metrics"
)

// listener owns one *http.Server. Server and MetricsServer embed it.
type listener struct {
	name   string
	server *http.Server
	logger *slog.Logger
}

func newListener(name, host string, port int, readTimeout, writeTimeout time.Duration, logger *slog.Logger) listener {
	return listener{
		name: name,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func (l *listener) serve() error {
	l.logger.Info("starting "+l.name, slog.String("addr", l.server.Addr))

	if err := l.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s: %w", l.name, err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (l *listener) Shutdown(ctx context.Context) error {
	l.logger.Info("shutting down " + l.name)
	return l.server.Shutdown(ctx)
}

// MetricsServer exposes GET /metrics on a port separate from the API.
type MetricsServer struct {
	listener
}

// NewMetricsServer returns a MetricsServer scraping provider.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	provider *metrics.Provider,
) (*MetricsServer, error) {
	if provider == nil {
		return nil, errors.New("metrics provider is required")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(provider.Handler()))

	s := &MetricsServer{
		listener: newListener("metrics server", host, port, 5*time.Second, 10*time.Second, logger),
	}
	s.server.Handler = router
	return s, nil
}

// GetHandler returns the router, for tests.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *MetricsServer) Start(ctx context.Context) error {
	return s.serve()
}
