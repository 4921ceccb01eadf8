package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"confdesk/config"
	"confdesk/core/planning"
	"confdesk/core/rbac"
	"confdesk/core/utils"

	"github.com/go-chi/chi/v5"
)

type ServerDeps struct {
	DB      *sql.DB
	Service *planning.Service
	Gate    *rbac.Gate
	Version string
}

type Server struct {
	cfg     *config.AppConfig
	db      *sql.DB
	svc     *planning.Service
	gate    *rbac.Gate
	version string
	logger  *utils.Logger
	router  chi.Router
	httpSrv *http.Server
}

func NewServer(cfg *config.AppConfig, deps ServerDeps, logger *utils.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		db:      deps.DB,
		svc:     deps.Service,
		gate:    deps.Gate,
		version: deps.Version,
		logger:  logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.recoverMiddleware)
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.securityHeadersMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.jsonMiddleware)

	h := s.newRouteHandlers()
	r.MethodFunc("GET", "/healthz", h.health.Healthz)
	s.registerPlanningRoutes(r, h)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"code": "route.not_found", "message": "not found"}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": map[string]string{"code": "route.method_not_allowed", "message": "method not allowed"}})
	})
	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP listening on %s", s.cfg.ListenAddr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.logger.Printf("HTTP shutting down")
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
