package main

import (
	"context"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/sales-analytics/internal/application/usecase"
	"github.com/jhoicas/sales-analytics/internal/domain/analytics"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/export"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/memory"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/sales-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/sales-analytics/internal/infrastructure/redis"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/synthetic"
	httpRouter "github.com/jhoicas/sales-analytics/internal/interfaces/http"
	"github.com/jhoicas/sales-analytics/pkg/config"
	"github.com/jhoicas/sales-analytics/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("sales_store", cfg.Storage.Sales).
		Str("history_store", cfg.Storage.History).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.Storage.NeedsPostgres() {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, "up"); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
	}

	// Corpus de ventas
	var sales repository.SaleRepository
	switch cfg.Storage.Sales {
	case config.StorePostgres:
		sales = postgres.NewSaleRepository(pool)
		if n, err := sales.Count(ctx); err != nil {
			log.Fatal().Err(err).Msg("contar corpus de ventas")
		} else if n == 0 {
			log.Warn().Msg("corpus de ventas vacío; ejecute cmd/seed_sales")
		}
	default:
		gen := synthetic.NewGenerator(cfg.Seed.SalesCount, cfg.Seed.Years, cfg.Seed.RandomSeed)
		corpus := gen.Generate(time.Now())
		sales = memory.NewSaleStore(corpus...)
		log.Info().Int("sales", len(corpus)).Msg("corpus sintético generado en memoria")
	}

	// Historial de reportes
	var reports repository.ReportRepository
	switch cfg.Storage.History {
	case config.StorePostgres:
		reports = postgres.NewReportRepository(pool)
	case config.StoreRedis:
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		reports = infraredis.NewReportRepository(rdb, cfg.Redis.HistoryKey)
	default:
		reports = memory.NewReportStore()
	}

	var (
		reportMetrics  *metrics.ReportMetrics
		metricsHandler nethttp.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		reportMetrics = metrics.NewReportMetrics(reg)
		metricsHandler = reportMetrics.Handler()
	}

	reportUC := usecase.NewReportUseCase(usecase.ReportDeps{
		Sales:      sales,
		Reports:    reports,
		Aggregator: analytics.NewAggregator(analytics.WithTopN(cfg.Report.TopN)),
		Exporters:  []usecase.ReportExporter{export.NewCSVExporter(), infrapdf.NewMarotoReportGenerator()},
		Metrics:    reportMetrics,
		Logger:     log,
		WindowDays: cfg.Report.DefaultWindowDays,
	})
	salesUC := usecase.NewSalesUseCase(sales, cfg.Report.DefaultWindowDays)

	if cfg.Report.HistoryBootstrap {
		if _, err := reportUC.Bootstrap(ctx); err != nil {
			log.Error().Err(err).Msg("inicializar historial de reportes")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Sales Analytics API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		ReportUC:    reportUC,
		SalesUC:     salesUC,
		Metrics:     metricsHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
