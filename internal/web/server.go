package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/noticedesk/noticedesk.uk/internal/platform/timeouts"
)

// Server hosts the marketing site's HTTP server.
type Server struct {
	httpAddr   string
	handler    *Handler
	httpServer *http.Server
}

// NewServer builds a configured web server. The caller owns the store in
// cfg and closes it after ListenAndServe returns.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		handler:    handler,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends, then drains
// in-flight requests within the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	s.handler.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
