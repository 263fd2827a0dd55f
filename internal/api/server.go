package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/advanced-computing/bouncing-penguin/infrastructure/renderer/gochart"
	"github.com/advanced-computing/bouncing-penguin/internal/api/handler"
	"github.com/advanced-computing/bouncing-penguin/internal/api/handler/router"
	"github.com/advanced-computing/bouncing-penguin/internal/api/views"
	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding"
	"github.com/advanced-computing/bouncing-penguin/pkg/apiErrors"
	"github.com/advanced-computing/bouncing-penguin/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares
func NewHandler(
	cfg *config.Config,
	dashboard dashboarding.Dashboard,
	renderer gochart.Renderer,
	tableCache handler.TableCache,
	warmer handler.CacheWarmer,
) (http.Handler, error) {
	pages, err := views.New()
	if err != nil {
		return nil, err
	}

	rt := router.New(
		router.WithInstrumentation(middleware.Instrument),
		router.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "route not found", nil)
		})),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Pages(dashboard, pages)...),
		router.WithRoutes(handler.Charts(dashboard, renderer)...),
		router.WithRoutes(handler.Dashboard(dashboard)...),
		router.WithRoutes(handler.Cache(tableCache, warmer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt), nil
}

func New(
	cfg *config.Config,
	dashboard dashboarding.Dashboard,
	renderer gochart.Renderer,
	tableCache handler.TableCache,
	warmer handler.CacheWarmer,
) (*Server, error) {
	h, err := NewHandler(cfg, dashboard, renderer, tableCache, warmer)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("server: listening")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: stopped with error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: graceful shutdown started")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: shutdown complete")
	return nil
}
