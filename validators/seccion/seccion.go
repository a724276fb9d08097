package seccionValidator

import (
	"academia/middleware"
	"academia/validators"

	"github.com/gofiber/fiber/v2"
)

type SeccionRequest struct {
	Codigo     string `json:"codigo" validate:"required"`
	Capacidad  int    `json:"capacidad" validate:"required,min=1"`
	Salon      string `json:"salon" validate:"required"`
	ProfesorID uint   `json:"profesorId" validate:"required"`
	CursoID    uint   `json:"cursoId" validate:"required"`
}

type SeccionEditRequest struct {
	Codigo     string `json:"codigo" validate:"required"`
	Capacidad  int    `json:"capacidad" validate:"required,min=1"`
	Salon      string `json:"salon" validate:"required"`
	ProfesorID uint   `json:"profesorId" validate:"required"`
}

func Seccion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SeccionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedSeccion", reqData)
		return c.Next()
	}
}

func SeccionEdit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SeccionEditRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedSeccionEdit", reqData)
		return c.Next()
	}
}
