package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aicopilotvisual/aicopilot-visual/engine/analysis"
	"github.com/aicopilotvisual/aicopilot-visual/engine/chat"
	"github.com/aicopilotvisual/aicopilot-visual/engine/infra/server/middleware/ratelimit"
	"github.com/aicopilotvisual/aicopilot-visual/engine/newsletter"
	"github.com/aicopilotvisual/aicopilot-visual/engine/transcribe"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Deps bundles the services the HTTP layer exposes.
type Deps struct {
	Config     *config.Config
	Log        logger.Logger
	Analysis   *analysis.Service
	Transcribe *transcribe.Service
	Newsletter *newsletter.Service
	Chat       *chat.Registry
}

// Server is the HTTP front of the copilot service.
type Server struct {
	deps   Deps
	router *gin.Engine
}

// NewServer builds the gin router and wires all routes.
func NewServer(deps Deps) (*Server, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("server config is required")
	}
	if deps.Log == nil {
		deps.Log = logger.NewLogger(logger.DefaultConfig())
	}
	s := &Server{deps: deps}
	if err := s.buildRouter(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) buildRouter() error {
	if s.deps.Config.Runtime.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(s.deps.Log))
	if s.deps.Config.Server.CORSEnabled {
		r.Use(CORSMiddleware(s.deps.Config.Server.CORS))
	}
	r.Use(SessionMiddleware())
	r.Use(BodySizeLimiter(s.deps.Config.Server.MaxBodySize))
	limit, err := ratelimit.NewMiddleware(s.deps.Config.RateLimit)
	if err != nil {
		return err
	}
	r.Use(limit)
	s.registerRoutes(r)
	s.router = r
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until the context is canceled or a shutdown signal
// arrives, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	addr := s.deps.Config.Server.FullAddress()
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.deps.Config.Server.Timeout,
		WriteTimeout: s.deps.Config.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.deps.Log.Info("Starting HTTP server", "address", fmt.Sprintf("http://%s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		s.deps.Log.Info("Shutting down server", "signal", sig.String())
	case <-ctx.Done():
		s.deps.Log.Info("Shutting down server", "reason", "context canceled")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.deps.Log.Info("Server stopped")
	return nil
}
