package main

import (
	"academia/config"
	"academia/database"
	authRoutes "academia/routers/authRoutes"
	certificateRoutes "academia/routers/certificateRoutes"
	courseRoutes "academia/routers/courseRoutes"
	inscripcionRoutes "academia/routers/inscripcionRoutes"
	statisticsRoutes "academia/routers/statisticsRoutes"
	userRoutes "academia/routers/userRoutes"
	"academia/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Recovery routes share the /api/users prefix, so auth must register first.
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	inscripcionRoutes.SetupInscripcionRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	statisticsRoutes.SetupStatisticsRoutes(app)

	cleanup := utils.StartTokenCleanup(database.Database.Db)
	defer cleanup.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
