// Package server wraps the HTTP listener in an explicit lifecycle object so
// "already running" and "nothing to stop" are results, not panics.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"
)

var (
	ErrAlreadyStarted = errors.New("server already started")
	ErrNotStarted     = errors.New("server not started")
)

type Server struct {
	mu      sync.Mutex
	addr    string
	handler http.Handler
	srv     *http.Server
	ln      net.Listener
}

func New(addr string, handler http.Handler) *Server {
	return &Server{addr: addr, handler: handler}
}

// Start binds the listener and begins serving in a background goroutine.
// The returned channel delivers the terminal serve error, if any.
func (s *Server) Start() (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil, ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, err
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh, nil
}

// Stop shuts the server down gracefully. Stopping a server that never started
// (or was already stopped) is an error, not a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if srv == nil {
		return ErrNotStarted
	}
	return srv.Shutdown(ctx)
}

// Addr reports the bound address, useful when starting on ":0".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}
