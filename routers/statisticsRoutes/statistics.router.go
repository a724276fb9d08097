package statisticsRoutes

import (
	statisticsControllers "academia/controllers/statistics"
	"academia/middleware"
	"academia/models"

	"github.com/gofiber/fiber/v2"
)

func SetupStatisticsRoutes(app *fiber.App) {
	statsGroup := app.Group("/api/statistics", middleware.JWTMiddleware, middleware.Authorize(models.RoleAdministrador))

	statsGroup.Get("/", statisticsControllers.GetStatistics)
}
