// Package server provides the HTTP server for the document rule-compliance
// evaluation API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mercator-hq/themis/pkg/config"
)

// Server is the HTTP server hosting the evaluation API.
type Server struct {
	cfg        config.ServerConfig
	handler    http.Handler
	httpServer *http.Server
	log        *slog.Logger
}

// New creates a new server over the given router.
func New(cfg config.ServerConfig, handler http.Handler, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		cfg:     cfg,
		handler: handler,
		log:     log,
	}
}

// Start starts the HTTP server and blocks until the context is cancelled, a
// shutdown signal arrives, or the listener fails. Shutdown is graceful
// within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.ListenAddress,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("starting server", "address", s.cfg.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.log.Info("context cancelled, initiating shutdown")
		return s.shutdown()
	case sig := <-sigChan:
		s.log.Info("received shutdown signal", "signal", sig.String())
		return s.shutdown()
	case err := <-errChan:
		return err
	}
}

// shutdown drains in-flight requests within the shutdown timeout.
func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
