package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/jhoicas/sales-analytics/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	ReportUC    *usecase.ReportUseCase
	SalesUC     *usecase.SalesUseCase
	Metrics     nethttp.Handler // nil deshabilita /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	if deps.Metrics != nil {
		handler := fasthttpadaptor.NewFastHTTPHandler(deps.Metrics)
		app.Get("/metrics", func(c *fiber.Ctx) error {
			handler(c.Context())
			return nil
		})
	}

	api := app.Group("/api")

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/generate", reportHandler.Generate)
	reports.Post("/", reportHandler.Create)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Get("/:id/export", reportHandler.Export)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	sales.Get("/", saleHandler.List)
}
