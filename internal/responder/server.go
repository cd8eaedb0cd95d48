package responder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"hellodock/internal/config"
	"hellodock/internal/logging"

	"github.com/sirupsen/logrus"
)

// Server binds the router to the configured port.
type Server struct {
	config  *config.Config
	log     logrus.FieldLogger
	handler http.Handler
	addr    string
}

// NewServer creates a Server. It fails when PORT is not a valid port.
func NewServer(cfg *config.Config, log logrus.FieldLogger, opts ...Option) (*Server, error) {
	addr, err := cfg.ListenAddr()
	if err != nil {
		return nil, err
	}
	return &Server{
		config:  cfg,
		log:     log,
		handler: NewRouter(cfg, log, opts...),
		addr:    addr,
	}, nil
}

// Addr returns the listen address, e.g. ":3000".
func (s *Server) Addr() string {
	return s.addr
}

// Run listens on the configured address and serves until the listener fails
// or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until it fails or ctx is cancelled. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.WithFields(logrus.Fields{
		logging.FieldPort:        s.config.PortValue(),
		logging.FieldEnvironment: s.config.EnvironmentName(),
		"addr":                   ln.Addr().String(),
	}).Info("server listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		if err := srv.Close(); err != nil {
			s.log.WithError(err).Warn("closing server")
		}
		<-errCh
		return nil
	}
}
