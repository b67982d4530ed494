package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/config"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New creates a new server instance around an already configured router
func New(cfg *config.Config, router *gin.Engine, logger *zap.Logger) *Server {
	return &Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:         net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.http.Addr
}

// Start serves HTTP until Shutdown is called. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
