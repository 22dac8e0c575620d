// Package web serves the browser UI for formatting Rekordbox playlist exports.
//
// # Routes
//
//	GET  /               → drop zone, instructions or preview of the session's tracklist
//	POST /upload         → multipart "file" upload, parsed into the session
//	POST /numbers        → toggle track numbering
//	POST /reset          → clear the session
//	GET  /tracklist.txt  → formatted tracklist as a plain text download
//	GET  /static/        → embedded stylesheet-free script for drag and drop and copy
//	GET  /healthz        → liveness probe
//	GET  /metrics        → Prometheus metrics
//
// # Sessions
//
// Each browser gets a uuid cookie that keys a [session.Session] held in memory by a
// [session.Store]. A janitor goroutine prunes sessions idle for longer than the
// configured TTL along with idle rate limiter buckets. Nothing is persisted.
//
// # Middleware
//
// Requests pass through chi's RequestID, RealIP and Recoverer, then the request logger,
// security headers and metrics from the server package. Uploads are additionally rate
// limited per client IP when enabled in the config.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/desertthunder/tracklist/internal/metrics"
	"github.com/desertthunder/tracklist/internal/server"
	"github.com/desertthunder/tracklist/internal/session"
	"github.com/desertthunder/tracklist/internal/shared"
)

const (
	cookieName      = "tracklist_session"
	janitorInterval = time.Minute
	limiterIdle     = 10 * time.Minute
	shutdownTimeout = 5 * time.Second

	multipartOverhead = 64 << 10
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server is the browser UI's HTTP server.
type Server struct {
	cfg     *shared.Config
	logger  *log.Logger
	store   *session.Store
	limiter *server.RateLimiter
	router  *server.BasicRouter
	pages   *template.Template
}

// NewServer builds a [Server] and registers its routes.
func NewServer(cfg *shared.Config, logger *log.Logger) (*Server, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		logger: shared.WithLogger(logger, "component", "web"),
		store:  session.NewStore(cfg.SessionTTL(), cfg.Format.Numbered),
		router: server.NewBasicRouter(),
		pages:  pages,
	}

	if rl := cfg.Server.RateLimit; rl.Enabled {
		s.limiter = server.NewRateLimiter(rl.RequestsPerSecond, rl.Burst)
	}

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() error {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to load static assets: %w", err)
	}

	s.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		server.RequestLogger(s.logger),
		middleware.Recoverer,
		server.SecurityHeaders,
		server.Metrics("/metrics", "/healthz"),
	)

	var uploadLimits []server.Middleware
	if s.limiter != nil {
		uploadLimits = append(uploadLimits, s.limiter.Middleware)
	}

	s.router.Handle(http.MethodGet, "/{$}", http.HandlerFunc(s.handleIndex))
	s.router.HandleWith(http.MethodPost, "/upload", http.HandlerFunc(s.handleUpload), uploadLimits...)
	s.router.Handle(http.MethodPost, "/numbers", http.HandlerFunc(s.handleNumbers))
	s.router.Handle(http.MethodPost, "/reset", http.HandlerFunc(s.handleReset))
	s.router.Handle(http.MethodGet, "/tracklist.txt", http.HandlerFunc(s.handleDownload))
	s.router.Handle(http.MethodGet, "/static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	s.router.Handle(http.MethodGet, "/healthz", http.HandlerFunc(s.handleHealth))
	s.router.Handle(http.MethodGet, "/metrics", promhttp.Handler())
	return nil
}

// Handler returns the root handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen opens the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.cfg.Address(), err)
	}
	return ln, nil
}

// Serve serves HTTP on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          s.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
	}

	go s.janitor(ctx)

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("serving tracklist UI", "addr", ln.Addr().String())
		errs <- srv.Serve(ln)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) janitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Server) sweep() {
	if n := s.store.Prune(); n > 0 {
		s.logger.Debug("pruned sessions", "count", n)
	}
	if s.limiter != nil {
		s.limiter.Prune(limiterIdle)
	}
	metrics.SessionsActive.Set(float64(s.store.Len()))
}
