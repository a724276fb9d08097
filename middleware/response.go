package middleware

import "github.com/gofiber/fiber/v2"

// Success writes the uniform success envelope:
// { error: false, status: <code>, body: { message?, data? } }
func Success(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	body := fiber.Map{}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(statusCode).JSON(fiber.Map{
		"error":  false,
		"status": statusCode,
		"body":   body,
	})
}

// Error writes the uniform error envelope:
// { error: true, statusCode: <code>, body: { message } }
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error":      true,
		"statusCode": statusCode,
		"body":       fiber.Map{"message": message},
	})
}

// ValidationErrorResponse reports per-field schema violations with a 422
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":      true,
		"statusCode": fiber.StatusUnprocessableEntity,
		"body": fiber.Map{
			"message": "Validación fallida.",
			"errors":  errors,
		},
	})
}
