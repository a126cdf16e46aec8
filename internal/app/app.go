package app

import (
	"context"
	"favourites/internal/config"
	"favourites/internal/core"
	"favourites/internal/db"
	"favourites/internal/http/handler"
	"favourites/internal/http/handler/middleware"
	"favourites/internal/http/payload"
	"favourites/internal/http/router"
	"favourites/internal/repository"
	"favourites/internal/repository/memrepo"
	"favourites/pkg/jwt"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Connector . Connector
type Connector interface {
	Connect(ctx context.Context) error
}

// Storage is a store the application can both connect and query.
type Storage interface {
	Connector
	repository.Storage
}

// App holds the request router shared by the persistent server and the
// serverless entry point, together with the store behind it.
type App struct {
	logs    *zap.SugaredLogger
	storage Storage
	router  http.Handler
}

// New builds the application for cfg. The store is not connected yet.
func New(cfg config.App, logger *zap.SugaredLogger) (*App, error) {
	var storage Storage
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		storage = db.NewPostgresDB(cfg.DBConnectionURL, cfg.DBTimeout, repository.Models()...)
	case config.BackendMemory:
		storage = memrepo.New()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return NewWithStorage(logger, []byte(cfg.JWTSecret), storage), nil
}

func NewWithStorage(logger *zap.SugaredLogger, jwtSecret []byte, storage Storage) *App {
	jwtService := jwt.NewJWTService(jwtSecret)

	repo := repository.NewUserRepository(storage)
	accounts := core.NewAccountStore(logger, repo, jwtService)
	accountHandler := handler.NewAccountHandler(logger, payload.DecodeValidator{}, accounts)
	auth := middleware.NewAuth(logger, jwtService)

	return &App{
		logs:    logger,
		storage: storage,
		router:  router.New(logger, accountHandler, auth),
	}
}

// Handler serves requests assuming the store is already connected.
func (a *App) Handler() http.Handler {
	return a.router
}

// LazyHandler ensures the store is connected before every request.
func (a *App) LazyHandler() http.Handler {
	return LazyConnect(a.logs, a.storage, a.router)
}

func (a *App) Connect(ctx context.Context) error {
	if err := a.storage.Connect(ctx); err != nil {
		return fmt.Errorf("connect storage: %w", err)
	}
	a.logs.Infow("DB connected")
	return nil
}

func (a *App) Close() error {
	closer, ok := a.storage.(io.Closer)
	if !ok {
		return nil
	}
	return closer.Close()
}

// LazyConnect connects conn on each request before handing over to next. A
// request that cannot get a connection is answered with 500 and the next
// request tries again.
func LazyConnect(logger *zap.SugaredLogger, conn Connector, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := conn.Connect(r.Context()); err != nil {
			logger.Errorw("handler error", "error", err, "path", r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
			return
		}
		next.ServeHTTP(w, r)
	})
}
