package inscripcionRoutes

import (
	inscripcionControllers "academia/controllers/inscripciones"
	"academia/middleware"
	"academia/models"
	inscripcionValidators "academia/validators/inscripcion"

	"github.com/gofiber/fiber/v2"
)

func SetupInscripcionRoutes(app *fiber.App) {
	inscripcionGroup := app.Group("/api/inscripciones", middleware.JWTMiddleware)

	inscripcionGroup.Post("/", middleware.Authorize(models.RoleEstudiante), inscripcionValidators.Inscripcion(), inscripcionControllers.CreateInscripcion)
	inscripcionGroup.Get("/", middleware.Authorize(models.RoleAdministrador), inscripcionControllers.GetInscripciones)
	inscripcionGroup.Get("/:inscripcionId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("inscripcionId"), inscripcionControllers.GetOneInscripcion)
	inscripcionGroup.Get("/:inscripcionId/aprobar", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("inscripcionId"), inscripcionControllers.AprobarInscripcion)
	inscripcionGroup.Get("/:inscripcionId/no_aprobar", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("inscripcionId"), inscripcionControllers.NoAprobarInscripcion)
	inscripcionGroup.Patch("/:inscripcionId/aprobar", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("inscripcionId"), inscripcionControllers.AprobarInscripcion)
	inscripcionGroup.Patch("/:inscripcionId/no-aprobar", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("inscripcionId"), inscripcionControllers.NoAprobarInscripcion)
	inscripcionGroup.Delete("/:inscripcionId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("inscripcionId"), inscripcionControllers.DeleteInscripcion)
}
