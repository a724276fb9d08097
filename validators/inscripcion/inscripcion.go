package inscripcionValidator

import (
	"academia/middleware"
	"academia/validators"

	"github.com/gofiber/fiber/v2"
)

type InscripcionRequest struct {
	SeccionID       uint    `json:"seccionId" validate:"required"`
	ReferenciaPago  string  `json:"referenciaPago" validate:"required"`
	Banco           string  `json:"banco" validate:"required"`
	Monto           float64 `json:"monto" validate:"required,gt=0"`
	FechaExpedicion string  `json:"fechaExpedicion" validate:"required,datetime=2006-01-02"`
}

func Inscripcion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InscripcionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedInscripcion", reqData)
		return c.Next()
	}
}
