package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/logging"
)

// HTTPServer runs an http.Handler until its context is cancelled and then
// shuts down gracefully.
type HTTPServer struct {
	address         string
	server          *http.Server
	shutdownTimeout time.Duration
	logger          logging.Logger
	ready           chan net.Addr
}

func NewHTTPServer(address string, handler http.Handler, shutdownTimeout time.Duration, l logging.Logger) *HTTPServer {
	return &HTTPServer{
		address: address,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "http_server"),
		ready:           make(chan net.Addr, 1),
	}
}

// Ready yields the bound address once the listener is up.
func (s *HTTPServer) Ready() <-chan net.Addr {
	return s.ready
}

// Run blocks until ctx is cancelled or the server fails.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	s.ready <- listen.Addr()

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := s.server.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
