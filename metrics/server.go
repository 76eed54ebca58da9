// Package metrics serves the viewer's prometheus metrics over HTTP.
package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/logging"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds how long Run waits for in-flight scrapes after its context is cancelled.
const ShutdownTimeout = 5 * time.Second

// Server exposes a prometheus registry on GET /metrics.
type Server struct {
	addr   string
	router *mux.Router
}

// NewServer creates a Server for the metrics gathered by g.
//
// Parameters:
//   - addr: the address to listen on, e.g. "localhost:9090"
//   - g: the registry to expose
//
// Returns:
//   - *Server: the server, not yet listening
func NewServer(addr string, g prometheus.Gatherer) *Server {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{})).Methods("GET")
	return &Server{addr: addr, router: r}
}

// Handler returns the server's routes wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return withRequestLogging(s.router)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
//
// Parameters:
//   - ctx: the server's lifetime; its logger is used for request logs
//
// Returns:
//   - error: error if the listener fails for a reason other than shutdown
func (s *Server) Run(ctx context.Context) error {
	logger, ctx := logging.SubFrom(ctx, "metrics")
	server := http.Server{
		Addr:        s.addr,
		Handler:     s.Handler(),
		BaseContext: func(l net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting metrics server...", zap.String("bindAddr", s.addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Metrics server failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Failed to shutdown metrics server", zap.Error(err))
		return err
	}
	logger.Info("Metrics server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// withRequestLogging tags each request with an ID and logs it at debug level when it completes.
func withRequestLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)

		start := time.Now()
		rec := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(&rec, r)

		logging.From(r.Context()).Debug("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
			zap.String("request", rid),
			zap.Int("status", rec.status))
	})
}
