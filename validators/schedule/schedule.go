package scheduleValidator

import (
	"academia/middleware"
	"academia/validators"
	"time"

	"github.com/gofiber/fiber/v2"
)

type ScheduleRequest struct {
	FechaInicio    string   `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	FechaFinal     string   `json:"fechaFinal" validate:"required,datetime=2006-01-02"`
	HoraInicio     string   `json:"horaInicio" validate:"required,datetime=15:04"`
	HoraFinal      string   `json:"horaFinal" validate:"required,datetime=15:04"`
	Tipo           string   `json:"tipo" validate:"required,oneof=Presencial Virtual"`
	Estado         *bool    `json:"estado"`
	DiasRepeticion []string `json:"diasRepeticion" validate:"required,min=1,dive,required"`

	// Create only; the update route carries the ids in the path
	SeccionID uint `json:"seccionId"`
	CursoID   uint `json:"cursoId"`
}

// Schedule validates a schedule body and rejects fechaInicio >= fechaFinal
// before any write happens. Equal dates are rejected too: the range must be
// strictly increasing.
func Schedule(requireIDs bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ScheduleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if requireIDs && (reqData.SeccionID == 0 || reqData.CursoID == 0) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"seccionId": "Este campo es obligatorio.",
				"cursoId":   "Este campo es obligatorio.",
			})
		}

		inicio, _ := time.Parse("2006-01-02", reqData.FechaInicio)
		final, _ := time.Parse("2006-01-02", reqData.FechaFinal)
		if !final.After(inicio) {
			return middleware.Error(c, fiber.StatusBadRequest,
				"La fecha de inicio no puede ser posterior a la fecha de finalización.")
		}

		c.Locals("validatedSchedule", reqData)
		return c.Next()
	}
}
