package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-mro/internal/application/dto"
	"github.com/tu-usuario/warehouse-mro/internal/application/usecase"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// MachineHandler maneja las peticiones HTTP de máquinas y catálogo (solo admin para escrituras).
type MachineHandler struct {
	uc *usecase.MachineUseCase
}

// NewMachineHandler construye el handler.
func NewMachineHandler(uc *usecase.MachineUseCase) *MachineHandler {
	return &MachineHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta una máquina con su primera posición
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMachineRequest  true  "name, group_id, dept_id, position"
// @Success      201   {object}  dto.MachineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/machines [post]
func (h *MachineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	machine, err := h.uc.CreateWithPosition(c.Context(), in.Name, in.GroupID, in.DeptID, in.Position)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrInvalidReference):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: "grupo de máquina inexistente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MachineToResponse(machine))
}

// List godoc
// @Summary      Listar máquinas
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        group_id  query  int     false  "grupo de máquina"
// @Param        name      query  string  false  "match parcial"
// @Param        limit     query  int     false  "límite"
// @Param        offset    query  int     false  "offset"
// @Success      200  {array}  dto.MachineResponse
// @Router       /api/machines [get]
func (h *MachineHandler) List(c *fiber.Ctx) error {
	filter := repository.MachineFilter{
		Name:   c.Query("name"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if v := c.Query("group_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "group_id inválido"})
		}
		filter.GroupID = &n
	}

	machines, err := h.uc.ListMachines(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, dto.MachineToResponse(m))
	}
	return c.JSON(out)
}

// ListTypes godoc
// @Summary      Listar tipos de máquina
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MachineTypeResponse
// @Router       /api/machines/types [get]
func (h *MachineHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.uc.ListTypes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MachineTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.MachineTypeResponse{ID: t.ID, Machine: t.Machine})
	}
	return c.JSON(out)
}

// ListGroups godoc
// @Summary      Listar grupos de máquina
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/machines/groups [get]
func (h *MachineHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.uc.ListGroups(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]fiber.Map, 0, len(groups))
	for _, g := range groups {
		out = append(out, fiber.Map{"id": g.ID, "name": g.Name})
	}
	return c.JSON(out)
}

// ListPositions godoc
// @Summary      Listar posiciones de una máquina
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id de la máquina"
// @Success      200   {array}   dto.MachinePositionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/positions [get]
func (h *MachineHandler) ListPositions(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	positions, err := h.uc.ListPositions(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MachinePositionResponse, 0, len(positions))
	for _, p := range positions {
		out = append(out, dto.MachinePositionResponse{ID: p.ID, MachineID: p.MachineID, Position: p.Position})
	}
	return c.JSON(out)
}
