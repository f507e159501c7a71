package main

import (
	"os"

	"veterinaria-backend/internal/adapters/storage/postgres"
	"veterinaria-backend/internal/config"
	"veterinaria-backend/internal/platform/logger"
)

// Aplica las migraciones embebidas contra DB_DSN y termina. Útil para
// pipelines donde el deploy no quiere migrar en el arranque del api.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName + "-migrate",
	})

	if cfg.DBDSN == "" {
		log.Fatal().Msg("DB_DSN es obligatorio para migrar")
	}

	db, err := postgres.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo abrir la base de datos")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migraciones fallidas")
	}
	log.Info().Msg("migraciones aplicadas")
}
