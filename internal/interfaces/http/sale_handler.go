package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/application/usecase"
)

// SaleHandler expone el corpus de ventas.
type SaleHandler struct {
	uc *usecase.SalesUseCase
}

func NewSaleHandler(uc *usecase.SalesUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List GET /api/sales?start_date=&end_date=&limit=&offset=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var req dto.SaleListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	req.DefaultPage()
	if err := validateStruct(&req); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListSales(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
