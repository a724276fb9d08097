package authValidator

import (
	"academia/middleware"
	"academia/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=3,max=50"`
	Apellido    string `json:"apellido" validate:"required,min=3,max=99"`
	Email       string `json:"email" validate:"required,email"`
	Cedula      string `json:"cedula" validate:"required"`
	Password    string `json:"password" validate:"required,min=8,password"`
	TipoUsuario string `json:"tipoUsuario" validate:"required,oneof=administrador profesor estudiante"`

	PreguntaSeguridad  string `json:"preguntaSeguridad" validate:"required"`
	RespuestaSeguridad string `json:"respuestaSeguridad" validate:"required"`

	// Role-specific fields, required for estudiante and profesor
	Profesion       string `json:"profesion" validate:"required_if=TipoUsuario profesor"`
	Direccion       string `json:"direccion" validate:"required_if=TipoUsuario estudiante,required_if=TipoUsuario profesor"`
	NumeroTelefono  string `json:"numeroTelefono" validate:"required_if=TipoUsuario estudiante,required_if=TipoUsuario profesor"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required_if=TipoUsuario estudiante,required_if=TipoUsuario profesor,omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=8"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type RecoverStepOneRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RecoverStepTwoRequest struct {
	Email              string `json:"email" validate:"required,email"`
	RespuestaSeguridad string `json:"respuestaSeguridad" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=8,password"`
	ConfirmPassword    string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RefreshRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedRefresh", reqData)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

func RecoverStepOne() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RecoverStepOneRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedRecoverOne", reqData)
		return c.Next()
	}
}

func RecoverStepTwo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RecoverStepTwoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
		}
		if errors := validators.Check(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedRecoverTwo", reqData)
		return c.Next()
	}
}
