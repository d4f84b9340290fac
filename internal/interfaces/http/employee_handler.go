package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-mro/internal/application/dto"
	"github.com/tu-usuario/warehouse-mro/internal/application/usecase"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// EmployeeHandler maneja las peticiones HTTP de empleados (solo admin).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	empl := &entity.Employee{
		AmannID:     in.AmannID,
		Name:        in.Name,
		Title:       in.Title,
		Level:       in.Level,
		Active:      in.Active,
		Birthday:    in.Birthday,
		StartDate:   in.StartDate,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Gender:      in.Gender,
	}
	if err := h.uc.Create(c.Context(), empl); err != nil {
		return employeeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeToResponse(empl))
}

// GetByID godoc
// @Summary      Consultar un empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        amann_id  path  string  true  "amann_id"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{amann_id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	empl, err := h.uc.Get(c.Context(), c.Params("amann_id"))
	if err != nil {
		return employeeError(c, err)
	}
	return c.JSON(dto.EmployeeToResponse(empl))
}

// Update godoc
// @Summary      Editar un empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        amann_id  path  string                     true  "amann_id"
// @Param        body      body  dto.UpdateEmployeeRequest  true  "campos"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{amann_id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	empl, err := h.uc.Update(c.Context(), c.Params("amann_id"), in.Name, in.Title, in.Level, in.Active)
	if err != nil {
		return employeeError(c, err)
	}
	return c.JSON(dto.EmployeeToResponse(empl))
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        keyword  query  string  false  "match parcial sobre amann_id y name"
// @Param        active   query  bool    false  "solo activos/inactivos"
// @Param        title    query  string  false  "cargo exacto"
// @Param        limit    query  int     false  "límite"
// @Param        offset   query  int     false  "offset"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	filter := repository.EmployeeFilter{
		Keyword: c.Query("keyword"),
		Title:   c.Query("title"),
		Limit:   c.QueryInt("limit"),
		Offset:  c.QueryInt("offset"),
	}
	if v := c.Query("active"); v != "" {
		active := v == "true" || v == "1"
		filter.Active = &active
	}

	employees, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.EmployeeToResponse(e))
	}
	return c.JSON(out)
}

func employeeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "amann_id ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
