package cmd

import (
	"errors"
	"fmt"
	"moodiary/internal/config"
	"moodiary/internal/core"
	"moodiary/internal/db"
	"moodiary/internal/http/handler"
	"moodiary/internal/http/handler/middleware"
	"moodiary/internal/http/payload"
	"moodiary/internal/http/server"
	"moodiary/internal/repository"
	"moodiary/internal/sentiment"
	"moodiary/pkg/jwt"
	"moodiary/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("moodiary", log.ParseLevel("")).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("moodiary", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := openDB(config)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}

	// repository
	repo := repository.NewDiaryRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// mood classifier
	classifier := sentiment.NewClassifier(sentiment.NewVaderScorer())

	// diary
	diary := core.NewDiary(
		logger,
		repo,
		jwtService,
		classifier,
		time.Duration(config.TokenTTLHours))

	// handler
	diaryHlr := handler.NewDiaryHandler(
		logger,
		payload.Decoder{},
		diary,
		config.MaxUploadBytes)

	auth := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.SignUp, diaryHlr.HandleSignUp)
	mux.HandleFunc(handler.Login, diaryHlr.HandleLogin)
	mux.Handle(handler.ListEntries, auth.Authenticate(http.HandlerFunc(diaryHlr.HandleListEntries)))
	mux.Handle(handler.CreateEntry, auth.Authenticate(http.HandlerFunc(diaryHlr.HandleCreateEntry)))
	mux.Handle(handler.DeleteEntry, auth.Authenticate(http.HandlerFunc(diaryHlr.HandleDeleteEntry)))
	mux.Handle(handler.FetchImage, auth.Authenticate(http.HandlerFunc(diaryHlr.HandleFetchImage)))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func openDB(cfg config.App) (db.Store, error) {
	logLevel := db.ParseLogLevel(cfg.DBLogLevel)

	switch cfg.DBDriver {
	case config.DriverSQLite:
		return db.NewSQLiteDB(cfg.DBConnectionURL, logLevel)
	case config.DriverPostgres:
		return db.NewPostgresDB(cfg.DBConnectionURL, logLevel)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
