package api

import (
	"favourites/internal/app"
	"favourites/internal/config"
	"favourites/pkg/log"
	"net/http"
	"sync"

	"go.uber.org/zap/zapcore"
)

var (
	setupOnce sync.Once
	handler   http.Handler
)

// Handler is the serverless entry point. The application is built on the
// first invocation and reused by later ones that land on the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(setup)
	handler.ServeHTTP(w, r)
}

func setup() {
	logger := log.NewZapLogger("favourites", zapcore.InfoLevel)

	cfg, err := config.NewApp(".env")
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		handler = unavailable()
		return
	}

	application, err := app.New(cfg, log.NewZapLogger("favourites", cfg.LogLevel))
	if err != nil {
		logger.Errorw("failed to build application", "error", err)
		handler = unavailable()
		return
	}

	handler = application.LazyHandler()
}

func unavailable() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
	})
}
