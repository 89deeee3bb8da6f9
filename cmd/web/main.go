// Web server for campwild: campground listings and reviews.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campwild/campwild/internal/config"
	"github.com/campwild/campwild/internal/handler"
	"github.com/campwild/campwild/internal/logger"
	"github.com/campwild/campwild/internal/middleware"
	"github.com/campwild/campwild/internal/repository"
	"github.com/campwild/campwild/internal/router"
	"github.com/campwild/campwild/internal/server"
	"github.com/campwild/campwild/internal/service"
	"github.com/campwild/campwild/internal/view"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		os.Exit(1)
	}

	log := logger.New(cfg.Observability, loggerService)

	s, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	e := router.New(handlers, middlewares, renderer)
	s.SetupHTTPServer(e)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("shutdown complete")
}
