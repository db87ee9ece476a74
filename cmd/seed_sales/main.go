// seed_sales genera el corpus sintético de ventas y lo guarda en PostgreSQL.
//
// Uso: go run ./cmd/seed_sales [-count 150] [-seed 42] [-years 2] [-dry-run]
// Con -dry-run imprime el corpus como JSON en stdout sin tocar la base de datos.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/domain/analytics"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/synthetic"
	"github.com/jhoicas/sales-analytics/pkg/config"
	"github.com/jhoicas/sales-analytics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	count := flag.Int("count", cfg.Seed.SalesCount, "cantidad de ventas a generar")
	seed := flag.Int64("seed", cfg.Seed.RandomSeed, "semilla del generador (0 = reloj)")
	years := flag.Int("years", cfg.Seed.Years, "años hacia atrás cubiertos por el corpus")
	dryRun := flag.Bool("dry-run", false, "imprimir JSON en lugar de escribir en PostgreSQL")
	flag.Parse()

	sales := synthetic.NewGenerator(*count, *years, *seed).Generate(time.Now())
	if err := validateCorpus(sales); err != nil {
		fmt.Fprintf(os.Stderr, "Corpus inválido: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		out := make([]dto.SaleDTO, 0, len(sales))
		for _, s := range sales {
			out = append(out, dto.SaleFromEntity(s))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, "up"); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	if err := postgres.NewSaleRepository(pool).SaveAll(ctx, sales); err != nil {
		log.Fatal().Err(err).Msg("guardar corpus")
	}
	log.Info().Int("sales", len(sales)).Msg("corpus de ventas sembrado")
}

// validateCorpus acumula todos los errores de las ventas y de consistencia de dimensiones.
func validateCorpus(sales []entity.Sale) error {
	var errs error
	for _, s := range sales {
		errs = multierr.Append(errs, s.Validate())
	}
	return multierr.Append(errs, analytics.CheckDimensions(sales))
}
