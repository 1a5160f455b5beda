package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey        = "API_PORT"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	dbDriverEnvKey       = "DB_DRIVER"
	dbLogLevelEnvKey     = "DB_LOG_LEVEL"
	jwtSecretEnvKey      = "JWT_SECRET"
	tokenTTLEnvKey       = "TOKEN_TTL_HOURS"
	maxUploadBytesEnvKey = "MAX_UPLOAD_BYTES"
	logLevelEnvKey       = "LOG_LEVEL"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultTokenTTLHours  = 24
	defaultMaxUploadBytes = 16 << 20
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	DBLogLevel      string
	JWTSecret       string
	TokenTTLHours   int
	MaxUploadBytes  int64
	LogLevel        string
}

// NewApp reads the application configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set win over it.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	driver := lookupOr(dbDriverEnvKey, DriverPostgres)
	if driver != DriverPostgres && driver != DriverSQLite {
		return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, dbDriverEnvKey, driver)
	}

	ttl, err := strconv.Atoi(lookupOr(tokenTTLEnvKey, strconv.Itoa(defaultTokenTTLHours)))
	if err != nil || ttl <= 0 {
		return App{}, fmt.Errorf("%w: %s", errEnvVarInvalid, tokenTTLEnvKey)
	}

	maxUpload, err := strconv.ParseInt(lookupOr(maxUploadBytesEnvKey, strconv.Itoa(defaultMaxUploadBytes)), 10, 64)
	if err != nil || maxUpload <= 0 {
		return App{}, fmt.Errorf("%w: %s", errEnvVarInvalid, maxUploadBytesEnvKey)
	}

	return App{
		Port:            port,
		DBDriver:        driver,
		DBConnectionURL: dbConn,
		DBLogLevel:      lookupOr(dbLogLevelEnvKey, "warn"),
		JWTSecret:       jwtSecret,
		TokenTTLHours:   ttl,
		MaxUploadBytes:  maxUpload,
		LogLevel:        lookupOr(logLevelEnvKey, "info"),
	}, nil
}

func lookupOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
