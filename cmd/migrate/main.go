// migrate aplica las migraciones SQL embebidas en internal/infrastructure/postgres/migrations.
//
// Uso: go run ./cmd/migrate
// Lee la conexión de DATABASE_URL o DB_HOST, DB_PORT, etc.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/Caja-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Caja-api/pkg/config"
	"github.com/jhoicas/Caja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-migrate"})

	if cfg.DB.Driver == config.DriverMemory {
		log.Info().Msg("DB_DRIVER=memory: no hay nada que migrar")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool, log.Component("migrate"))
	if err != nil {
		log.Error().Err(err).Strs("applied", applied).Msg("migraciones")
		os.Exit(1)
	}
	log.Info().Int("count", len(applied)).Strs("applied", applied).Msg("migraciones al día")
}
