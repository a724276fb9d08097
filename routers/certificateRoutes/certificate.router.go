package certificateRoutes

import (
	certificateControllers "academia/controllers/certificates"
	"academia/middleware"
	"academia/models"
	certificateValidators "academia/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App) {
	certGroup := app.Group("/api/certificates", middleware.JWTMiddleware)

	certGroup.Get("/", middleware.Authorize(models.RoleAdministrador), certificateControllers.GetCertificadosData)
	certGroup.Get("/student", certificateControllers.GetOwnCertificados)
	certGroup.Get("/student/:studentId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("studentId"), certificateControllers.GetCertificadosByStudent)
	certGroup.Post("/student/:studentId/seccion/:seccionId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("studentId"), middleware.ValidateID("seccionId"), certificateValidators.Certificate(), certificateControllers.CreateCertificado)
	certGroup.Post("/:studentId/:seccionId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("studentId"), middleware.ValidateID("seccionId"), certificateValidators.Certificate(), certificateControllers.CreateCertificado)
	certGroup.Delete("/:certificadoId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("certificadoId"), certificateControllers.DeleteCertificado)

	reportGroup := app.Group("/api/reports", middleware.JWTMiddleware)

	reportGroup.Get("/certificates/:certificadoId", middleware.ValidateID("certificadoId"), certificateControllers.ReportCertificado)
}
