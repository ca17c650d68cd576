package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/JegankarthiMCA/i/internal/config"
	"github.com/JegankarthiMCA/i/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server around the given router.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandlerProvided
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddressProvided
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.run()
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msgf("Launching HTTP server on %s", s.httpServer.server.Addr)
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
