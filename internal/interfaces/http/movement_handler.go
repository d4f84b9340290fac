package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-mro/internal/application/dto"
	"github.com/tu-usuario/warehouse-mro/internal/application/movement"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP del log de movimientos.
type MovementHandler struct {
	uc *movement.RecordMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.RecordMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar movimiento de almacén
// @Description  Entrada (IMPORT) o salida (EXPORT) de un repuesto. Transaccional: si el stock es insuficiente no se escribe nada.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "part_id, quantity, flag, employee_id, machine_pos_id (salidas), reason, is_foc"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RecordMovement(c.Context(), movement.RecordMovementInput{
		PartID:       in.PartID,
		Quantity:     in.Quantity,
		Flag:         in.Flag,
		EmployeeID:   in.EmployeeID,
		MachinePosID: in.MachinePosID,
		Reason:       in.Reason,
		IsFOC:        in.IsFOC,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
		case errors.Is(err, domain.ErrInvalidReference):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: "empleado o posición de máquina inexistente"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementToResponse(mov))
}

// List godoc
// @Summary      Listar movimientos
// @Description  Entradas del log, más recientes primero. Filtros: part_id, employee_id, flag, from, to (RFC3339).
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        part_id      query  string  false  "material_no del repuesto"
// @Param        employee_id  query  string  false  "amann_id del empleado"
// @Param        flag         query  string  false  "IMPORT | EXPORT"
// @Param        from         query  string  false  "desde (RFC3339)"
// @Param        to           query  string  false  "hasta (RFC3339)"
// @Param        limit        query  int     false  "límite"
// @Param        offset       query  int     false  "offset"
// @Success      200   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		PartID:     c.Query("part_id"),
		EmployeeID: c.Query("employee_id"),
		Flag:       c.Query("flag"),
		Limit:      c.QueryInt("limit"),
		Offset:     c.QueryInt("offset"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
		}
		filter.To = &t
	}

	movements, err := h.uc.ListMovements(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementToResponse(m))
	}
	return c.JSON(out)
}
