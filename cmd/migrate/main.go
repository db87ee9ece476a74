// migrate ejecuta las migraciones goose embebidas contra la base configurada.
//
// Uso: go run ./cmd/migrate [up|down|status|version|redo|reset]
package main

import (
	"context"
	"os"

	"github.com/jhoicas/sales-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/sales-analytics/pkg/config"
	"github.com/jhoicas/sales-analytics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	command := "up"
	var args []string
	if len(os.Args) > 1 {
		command, args = os.Args[1], os.Args[2:]
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, command, args...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migración")
	}
	log.Info().Str("command", command).Msg("migración completada")
}
