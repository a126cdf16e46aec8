package cmd

import (
	"context"
	"errors"
	"favourites/internal/app"
	"favourites/internal/config"
	"favourites/internal/http/server"
	"favourites/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("favourites", zapcore.InfoLevel)

	config, err := config.NewApp(".env")
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger("favourites", config.LogLevel)

	application, err := app.New(config, logger)
	if err != nil {
		logger.Errorw("failed to build application", "error", err)
		return err
	}
	defer closeApp(logger, application)

	if err := application.Connect(context.Background()); err != nil {
		logger.Errorw("unable to start the server", "error", err)
		return err
	}

	srv := server.NewHTTP(logger, application.Handler(), config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}

func closeApp(logger *zap.SugaredLogger, application *app.App) {
	if err := application.Close(); err != nil {
		logger.Errorw("failed to close storage", "error", err)
	}
}
