package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/zila-weather/config"
	"ulascansenturk/zila-weather/internal/api/v1/handlers"
	"ulascansenturk/zila-weather/internal/app"

	"github.com/rs/zerolog/log"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Logger = app.NewLogger(conf, os.Stdout)

	ctx, mainCtxStop := context.WithCancel(context.Background())

	application, err := app.New(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer application.Close()

	handler := handlers.NewViewHandler(
		application.Orchestrator,
		application.Navigator,
		application.Searcher,
		application.Permission,
		application.History,
		conf.HTTPTimeoutDuration(),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	if application.Permission.Granted() {
		application.Orchestrator.FetchByCurrentLocation()
	}

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
