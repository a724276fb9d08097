package userValidator

import (
	"academia/middleware"
	"academia/validators"

	"github.com/gofiber/fiber/v2"
)

type UserEditRequest struct {
	Nombre             string `json:"nombre" validate:"required,min=3,max=50"`
	Apellido           string `json:"apellido" validate:"required,min=3,max=99"`
	Email              string `json:"email" validate:"required,email"`
	Cedula             string `json:"cedula" validate:"required"`
	PreguntaSeguridad  string `json:"preguntaSeguridad" validate:"required"`
	RespuestaSeguridad string `json:"respuestaSeguridad" validate:"required"`

	// Role-specific fields, validated by the controller against the user's type
	Profesion       string `json:"profesion"`
	Direccion       string `json:"direccion"`
	NumeroTelefono  string `json:"numeroTelefono"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"omitempty,datetime=2006-01-02"`
}

// PersonEditRequest updates a student or teacher together with its user row.
// Birth dates travel in dd/mm/yyyy, the format the list endpoints serve.
type PersonEditRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=3,max=50"`
	Apellido        string `json:"apellido" validate:"required,min=3,max=99"`
	Email           string `json:"email" validate:"required,email"`
	Cedula          string `json:"cedula" validate:"required"`
	Direccion       string `json:"direccion" validate:"required"`
	NumeroTelefono  string `json:"numeroTelefono" validate:"required"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required,datetime=02/01/2006"`
	Profesion       string `json:"profesion"`
}

func UserEdit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserEditRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedUserEdit", reqData)
		return c.Next()
	}
}

func PersonEdit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PersonEditRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedPersonEdit", reqData)
		return c.Next()
	}
}
