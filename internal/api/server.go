// Package api exposes the projection engine over HTTP.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rpgo/projector/internal/calculation"
	"github.com/rpgo/projector/internal/config"
	"github.com/sirupsen/logrus"
)

// Server routes calculator requests to a shared engine.
type Server struct {
	cfg        *config.ServerConfig
	engine     *calculation.ProjectionEngine
	parser     *config.InputParser
	logger     *logrus.Logger
	router     *mux.Router
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer wires routes and middleware.
func NewServer(cfg *config.ServerConfig, engine *calculation.ProjectionEngine, logger *logrus.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		engine:    engine,
		parser:    config.NewInputParser(),
		logger:    logger,
		router:    mux.NewRouter(),
		startedAt: time.Now(),
	}

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/simulate", s.handleProjection(config.KindCompound)).Methods(http.MethodPost)
	s.router.HandleFunc("/suggestions", s.handleProjection(config.KindSuggest)).Methods(http.MethodPost)
	s.router.HandleFunc("/drawdown", s.handleProjection(config.KindDrawdown)).Methods(http.MethodPost)
	s.router.HandleFunc("/fire", s.handleProjection(config.KindFire)).Methods(http.MethodPost)
	s.router.HandleFunc("/mortgage", s.handleProjection(config.KindMortgage)).Methods(http.MethodPost)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}
	return s
}

// Handler is the full middleware chain. CORS and request IDs wrap the
// router so preflight and unmatched requests are covered too.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = recoverMiddleware(s.logger)(h)
	h = corsMiddleware(s.cfg.AllowedOrigins)(h)
	h = loggingMiddleware(s.logger)(h)
	return requestIDMiddleware(h)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.logger.Infof("Starting server on %s", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
