// Package server assembles the HTTP API and the background runners.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/tasknest/tasknest/internal/profile"
	"github.com/tasknest/tasknest/plugin/telegram"
	apiv1 "github.com/tasknest/tasknest/server/router/api/v1"
	"github.com/tasknest/tasknest/server/runner/weeklyreport"
	"github.com/tasknest/tasknest/server/service/habits"
	"github.com/tasknest/tasknest/store"
)

type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer   *echo.Echo
	habitsSvc    habits.Service
	weeklyRunner *weeklyreport.Runner
}

func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	generator := habits.NewGenerationClient(habits.GenerationConfigFromProfile(profile))
	habitsSvc := habits.NewService(store, generator)

	s := &Server{
		Profile:    profile,
		Store:      store,
		echoServer: e,
		habitsSvc:  habitsSvc,
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})

	apiv1.NewAPIV1Service(profile, store, habitsSvc).Register(e)

	if profile.TelegramBotToken != "" {
		sender := telegram.NewClient(profile.TelegramBotToken, profile.TelegramAPIURL)
		s.weeklyRunner = weeklyreport.NewRunner(store, habitsSvc, sender, profile)
	} else {
		slog.Info("telegram bot token not set, weekly report delivery disabled")
	}

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	if s.weeklyRunner != nil {
		go s.weeklyRunner.Run(ctx)
	}

	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server started", "address", address, "version", s.Profile.Version)
	if err := s.echoServer.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to start echo server")
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
	slog.Info("server shutdown")
}

// requestLogger emits one structured line per request.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("http request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds())
			return nil
		},
	})
}
