// Package main is the entry point for the Fast Flight reservation service.
//
//	@title						Fast Flight Reservation API
//	@version					1.0.0
//	@description				A premium flight search and booking service. Flight options and concierge replies come from an AI gateway; reservations, price alerts, and the traveler profile persist in an embedded store.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/fastflight/fastflight-reservation-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/fastflight/fastflight-reservation-system/docs"

	"github.com/fastflight/fastflight-reservation-system/internal/adapter/gemini"
	resthttp "github.com/fastflight/fastflight-reservation-system/internal/adapter/http"
	"github.com/fastflight/fastflight-reservation-system/internal/adapter/http/middleware"
	"github.com/fastflight/fastflight-reservation-system/internal/config"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/logger"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/timeutil"
	"github.com/fastflight/fastflight-reservation-system/internal/repository"
	"github.com/fastflight/fastflight-reservation-system/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "fastflight",
	})
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("model", cfg.Gemini.Model).
		Msg("Configuration loaded")

	// Reservation store
	store, err := repository.NewBoltStore(cfg.Store.Path, cfg.Store.Key)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open reservation store")
	}
	defer store.Close()

	repo := repository.Instance(store)

	// AI gateways
	aiClient, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AI client")
	}
	defer aiClient.Close()

	// Use cases and handler
	clock := timeutil.NewRealClock()
	handler := resthttp.NewHandler(
		usecase.NewFlightSearchUseCase(aiClient.NewSearchGateway(cfg.Gemini.Model), repo),
		usecase.NewBookingUseCase(repo, clock),
		usecase.NewAlertUseCase(repo, clock),
		usecase.NewChatUseCase(aiClient.NewConcierge(cfg.Gemini.Model)),
		usecase.NewProfileUseCase(repo),
	)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.WithComponent("http").Logger)

	resthttp.RegisterRoutes(e, handler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
