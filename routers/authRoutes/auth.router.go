package authRoutes

import (
	authControllers "academia/controllers/auth"
	userControllers "academia/controllers/users"
	"academia/middleware"
	authValidators "academia/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/refresh-token", authValidators.Refresh(), authControllers.RefreshToken)
	authGroup.Get("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Patch("/changePassword", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
	authGroup.Put("/change-password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
	authGroup.Get("/verify-token", middleware.JWTMiddleware, authControllers.VerifyToken)

	// Recovery endpoints carry no session; the security question gates the reset.
	recoverGroup := app.Group("/api/users/recover")
	recoverGroup.Patch("/", authValidators.RecoverStepOne(), userControllers.RecoverStepOne)
	recoverGroup.Post("/", authValidators.RecoverStepOne(), userControllers.RecoverStepOne)
	recoverGroup.Get("/:id", middleware.ValidateID("id"), userControllers.RecoverStepTwoGet)
	recoverGroup.Put("/", authValidators.RecoverStepTwo(), userControllers.RecoverStepTwo)
	recoverGroup.Post("/:id", middleware.ValidateID("id"), authValidators.RecoverStepTwo(), userControllers.RecoverStepTwo)
}
