package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-mro/internal/application/dto"
	"github.com/tu-usuario/warehouse-mro/internal/application/reporting"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
)

// DashboardHandler maneja las consultas de solo lectura del dashboard.
type DashboardHandler struct {
	uc *reporting.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reporting.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del almacén
// @Description  Unidades y valor totales, totales históricos de entradas/salidas y top 10 por valor.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Aggregates godoc
// @Summary      Agregados del log de movimientos
// @Description  Sumas de cantidad por día o por repuesto para una dirección, en un rango opcional.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        flag   query  string  true   "IMPORT | EXPORT"
// @Param        group  query  string  true   "day | part"
// @Param        from   query  string  false  "desde (RFC3339)"
// @Param        to     query  string  false  "hasta (RFC3339)"
// @Success      200   {object}  dto.MovementAggregatesDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/aggregate [get]
func (h *DashboardHandler) Aggregates(c *fiber.Ctx) error {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
		}
		to = &t
	}

	out, err := h.uc.GetAggregates(c.Context(), c.Query("flag"), c.Query("group"), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "flag debe ser IMPORT|EXPORT y group day|part"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
