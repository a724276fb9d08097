package validators

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// Passwords need at least one upper, one lower, one digit and one special
	// character on top of the min length handled by the min tag.
	v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var upper, lower, digit, special bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			case strings.ContainsRune("@$!%*?&", r):
				special = true
			}
		}
		return upper && lower && digit && special
	})
	return v
}

// Check validates a DTO and flattens violations into a field -> message map,
// or nil when the struct passes.
func Check(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = err.Error()
		return errors
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		errors[field] = messageFor(fe)
	}
	return errors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "email":
		return "Debe ser un correo válido."
	case "min":
		return "Debe tener al menos " + fe.Param() + " caracteres."
	case "max":
		return "Debe tener como máximo " + fe.Param() + " caracteres."
	case "oneof":
		return "Debe ser uno de: " + fe.Param() + "."
	case "datetime":
		return "Debe ser una fecha válida en formato " + fe.Param() + "."
	case "gt":
		return "Debe ser mayor que " + fe.Param() + "."
	case "eqfield":
		return "No coincide con el campo " + fe.Param() + "."
	case "password":
		return "Debe contener al menos una mayúscula, una minúscula, un número y un carácter especial."
	case "required_if":
		return "Este campo es obligatorio para el tipo de usuario indicado."
	default:
		return "Valor inválido."
	}
}
