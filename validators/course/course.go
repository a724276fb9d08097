package courseValidator

import (
	"academia/middleware"
	"academia/validators"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Codigo      string `json:"codigo" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Categoria   string `json:"categoria" validate:"required"`
}

func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
