package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/panel-admin-api/internal/application/dto"
)

// writeMutation traduce el resultado discriminado de una mutación a HTTP:
// redirect -> 303 See Other al listado, ok -> 200 con el mensaje de
// confirmación, error -> status según el código + {errors, message}.
func writeMutation(c *fiber.Ctx, res dto.MutationResult) error {
	switch res.Kind {
	case dto.MutationRedirect:
		return c.Redirect(res.Redirect, fiber.StatusSeeOther)
	case dto.MutationOK:
		return c.JSON(res)
	default:
		return c.Status(mutationStatus(res)).JSON(res)
	}
}

func mutationStatus(res dto.MutationResult) int {
	switch res.Code {
	case dto.CodeValidation:
		return fiber.StatusBadRequest
	case dto.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
