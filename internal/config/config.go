package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidValue error = errors.New("invalid configuration value")

const (
	portEnvKey           = "PORT"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	storageBackendEnvKey = "STORAGE_BACKEND"
	dbTimeoutEnvKey      = "DB_TIMEOUT"
	logLevelEnvKey       = "LOG_LEVEL"
	vercelEnvKey         = "VERCEL"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	StorageBackend  string
	DBTimeout       time.Duration
	LogLevel        zapcore.Level
	Serverless      bool
}

// NewApp reads the configuration from the environment. When envFile is not
// empty and exists, its values fill in whatever the environment leaves unset.
func NewApp(envFile string) (App, error) {
	v := viper.New()
	v.SetDefault(portEnvKey, "8080")
	v.SetDefault(storageBackendEnvKey, BackendPostgres)
	v.SetDefault(dbTimeoutEnvKey, "10s")
	v.SetDefault(logLevelEnvKey, "info")
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return App{}, fmt.Errorf("read env file %s: %w", envFile, err)
			}
		}
	}

	jwtSecret := v.GetString(jwtSecretEnvKey)
	if jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	backend := v.GetString(storageBackendEnvKey)
	if backend != BackendPostgres && backend != BackendMemory {
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, storageBackendEnvKey, backend)
	}

	dbConn := v.GetString(dbConnEnvKey)
	if backend == BackendPostgres && dbConn == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	timeout, err := time.ParseDuration(v.GetString(dbTimeoutEnvKey))
	if err != nil || timeout <= 0 {
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, dbTimeoutEnvKey, v.GetString(dbTimeoutEnvKey))
	}

	level, err := zapcore.ParseLevel(v.GetString(logLevelEnvKey))
	if err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidValue, logLevelEnvKey, err)
	}

	return App{
		Port:            v.GetString(portEnvKey),
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		StorageBackend:  backend,
		DBTimeout:       timeout,
		LogLevel:        level,
		Serverless:      v.GetString(vercelEnvKey) != "",
	}, nil
}
