// Command api runs the orderkit HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orderkit/orderkit/internal/config"
	"github.com/orderkit/orderkit/internal/handler"
	"github.com/orderkit/orderkit/internal/logger"
	"github.com/orderkit/orderkit/internal/middleware"
	"github.com/orderkit/orderkit/internal/router"
	"github.com/orderkit/orderkit/internal/server"
	"github.com/orderkit/orderkit/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	// Bootstrap logger for anything that fails before the real logger
	// exists.
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to initialize observability")
	}

	log := logger.New(cfg, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services, err := service.NewServices(srv)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	loggerService.Shutdown(5 * time.Second)
}
