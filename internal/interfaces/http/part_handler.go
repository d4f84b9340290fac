package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-mro/internal/application/dto"
	"github.com/tu-usuario/warehouse-mro/internal/application/ledger"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// PartHandler maneja las peticiones HTTP del catálogo de repuestos.
type PartHandler struct {
	uc *ledger.PartLedgerUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *ledger.PartLedgerUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un repuesto
// @Description  Crea el repuesto; si initial_stock > 0 registra una entrada sintética en el log.
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "repuesto"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	part, err := h.uc.CreatePart(c.Context(), ledger.CreatePartInput{
		MaterialNo:       in.MaterialNo,
		Description:      in.Description,
		PartNo:           in.PartNo,
		Bin:              in.Bin,
		CostCenter:       in.CostCenter,
		MachineTypeID:    in.MachineTypeID,
		Price:            in.Price,
		InitialStock:     in.InitialStock,
		SafetyStock:      in.SafetyStock,
		SafetyStockCheck: in.SafetyStockCheck,
		EmployeeID:       in.EmployeeID,
	})
	if err != nil {
		return partError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PartToResponse(part, time.Now()))
}

// Update godoc
// @Summary      Editar un repuesto (administrativo)
// @Description  Sobrescribe todos los campos, incluido el stock, sin registrar movimiento.
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        material_no  path  string               true  "material_no"
// @Param        body         body  dto.EditPartRequest  true  "campos"
// @Success      200   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/parts/{material_no} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.EditPartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	part, err := h.uc.EditPart(c.Context(), c.Params("material_no"), ledger.EditPartInput{
		Description:      in.Description,
		PartNo:           in.PartNo,
		Bin:              in.Bin,
		CostCenter:       in.CostCenter,
		MachineTypeID:    in.MachineTypeID,
		Price:            in.Price,
		Stock:            in.Stock,
		SafetyStock:      in.SafetyStock,
		SafetyStockCheck: in.SafetyStockCheck,
	})
	if err != nil {
		return partError(c, err)
	}
	return c.JSON(dto.PartToResponse(part, time.Now()))
}

// GetByMaterialNo godoc
// @Summary      Consultar un repuesto
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        material_no  path  string  true  "material_no"
// @Success      200   {object}  dto.PartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{material_no} [get]
func (h *PartHandler) GetByMaterialNo(c *fiber.Ctx) error {
	part, err := h.uc.Get(c.Context(), c.Params("material_no"))
	if err != nil {
		return partError(c, err)
	}
	return c.JSON(dto.PartToResponse(part, time.Now()))
}

// List godoc
// @Summary      Listar repuestos
// @Description  Filtros combinados con AND: keyword, min_stock, max_stock, machine_type_id.
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        keyword          query  string  false  "match parcial sobre material_no, description, bin, cost_center"
// @Param        min_stock        query  int     false  "stock mínimo"
// @Param        max_stock        query  int     false  "stock máximo"
// @Param        machine_type_id  query  int     false  "tipo de máquina"
// @Param        limit            query  int     false  "límite"
// @Param        offset           query  int     false  "offset"
// @Success      200   {array}   dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	filter := repository.PartFilter{
		Keyword: c.Query("keyword"),
		Limit:   c.QueryInt("limit"),
		Offset:  c.QueryInt("offset"),
	}
	if v := c.Query("min_stock"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_stock inválido"})
		}
		filter.MinStock = &n
	}
	if v := c.Query("max_stock"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_stock inválido"})
		}
		filter.MaxStock = &n
	}
	if v := c.Query("machine_type_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "machine_type_id inválido"})
		}
		filter.MachineTypeID = &n
	}

	parts, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return partError(c, err)
	}
	now := time.Now()
	out := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, dto.PartToResponse(p, now))
	}
	return c.JSON(out)
}

// ListBelowSafetyStock godoc
// @Summary      Repuestos bajo stock de seguridad
// @Description  Repuestos con verificación activada cuyo stock está bajo el mínimo.
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PartResponse
// @Router       /api/parts/alerts [get]
func (h *PartHandler) ListBelowSafetyStock(c *fiber.Ctx) error {
	parts, err := h.uc.ListBelowSafetyStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	now := time.Now()
	out := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, dto.PartToResponse(p, now))
	}
	return c.JSON(out)
}

// partError mapea errores de dominio a códigos HTTP.
func partError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "material_no ya existe"})
	case errors.Is(err, domain.ErrInvalidReference):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: "referencia inexistente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
