package certificateValidator

import (
	"academia/middleware"
	"academia/validators"

	"github.com/gofiber/fiber/v2"
)

type CertificateRequest struct {
	Titulo          string `json:"titulo" validate:"required"`
	Descripcion     string `json:"descripcion" validate:"required"`
	FechaExpedicion string `json:"fechaExpedicion" validate:"required,datetime=2006-01-02"`
}

func Certificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CertificateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedCertificate", reqData)
		return c.Next()
	}
}
