package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/panel-admin-api/internal/application/auth"
	"github.com/jhoicas/panel-admin-api/internal/application/dto"
)

// AuthHandler maneja el sign-in con credenciales.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión con credenciales
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, msg, err := h.uc.Authenticate(c.Context(), in)
	if err != nil {
		// Error ajeno al proveedor de identidad: se propaga sin tocar al
		// error handler de Fiber.
		return err
	}
	if msg != "" {
		status := fiber.StatusInternalServerError
		if msg == auth.MsgInvalidCredentials {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "SIGNIN_FAILED", Message: msg})
	}
	return c.JSON(out)
}
