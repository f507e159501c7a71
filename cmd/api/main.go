package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veterinaria-backend/internal/adapters/storage/postgres"
	"veterinaria-backend/internal/config"
	"veterinaria-backend/internal/platform/logger"
	"veterinaria-backend/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo abrir la base de datos")
		}
		defer db.Close()

		if err := postgres.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migraciones fallidas")
		}
		log.Info().Msg("storage: postgres")
	} else {
		log.Info().Msg("storage: in-memory (DB_DSN vacío)")
	}

	h := router.NewRouter(router.Options{DB: db, Logger: log})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("servidor escuchando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown forzado")
	}
	log.Info().Msg("servidor detenido")
}
