package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-mro/internal/application/auth"
	"github.com/tu-usuario/warehouse-mro/internal/application/dto"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
)

// AuthHandler maneja el login por PIN.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login godoc
// @Summary      Login por PIN
// @Description  Valida el PIN de bodega o administración y emite un JWT con el rol.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "pin"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, role, err := h.uc.Login(in.PIN)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "PIN incorrecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(loginResponse{Token: token, Role: role})
}
