package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/application/usecase"
)

// ReportHandler maneja los endpoints de reportes de ventas.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Genera un reporte de ventas sin guardarlo
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD). Default: end_date - 30 días."
// @Param        end_date    query  string  false  "Fin (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/generate [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	if err := validateStruct(&req); err != nil {
		return respondError(c, err)
	}
	report, err := h.uc.Generate(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Create genera un reporte y lo agrega al historial.
// POST /api/reports  {"start_date": "...", "end_date": "..."}
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := validateStruct(&req); err != nil {
		return respondError(c, err)
	}
	report, err := h.uc.Save(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// List devuelve el historial, más reciente primero.
// GET /api/reports?limit=&offset=
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	page.DefaultPage()
	if err := validateStruct(&page); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.History(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un reporte del historial.
// GET /api/reports/:id
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	report, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Export descarga un reporte guardado.
// GET /api/reports/:id/export?format=csv|pdf
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	file, err := h.uc.Export(c.Context(), c.Params("id"), req.Format)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}
