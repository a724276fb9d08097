package statisticsController

import (
	"time"

	"academia/database"
	"academia/middleware"
	"academia/models"

	"github.com/gofiber/fiber/v2"
)

type categoryCount struct {
	Categoria string `json:"categoria"`
	Cantidad  int64  `json:"cantidad"`
}

func ageBucket(age int) string {
	switch {
	case age <= 17:
		return "0-17"
	case age <= 22:
		return "18-22"
	case age <= 27:
		return "23-27"
	case age <= 32:
		return "28-32"
	case age <= 37:
		return "33-37"
	default:
		return "38+"
	}
}

// GetStatistics returns the dashboard aggregates: student age distribution,
// course counts per category and overall totals. Ages are computed from the
// birth year only.
func GetStatistics(c *fiber.Ctx) error {
	db := database.Database.Db

	activeUsers := db.Model(&models.Usuario{}).Select("id")
	var students []models.Estudiante
	if err := db.Where("usuario_id IN (?)", activeUsers).Find(&students).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas.")
	}

	currentYear := time.Now().Year()
	edadDistribucion := map[string]int{
		"0-17":  0,
		"18-22": 0,
		"23-27": 0,
		"28-32": 0,
		"33-37": 0,
		"38+":   0,
	}
	for _, student := range students {
		age := currentYear - student.FechaNacimiento.Year()
		edadDistribucion[ageBucket(age)]++
	}

	var cursosPorCategoria []categoryCount
	if err := db.Model(&models.Curso{}).
		Select("categoria, COUNT(*) AS cantidad").
		Group("categoria").
		Scan(&cursosPorCategoria).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas.")
	}
	if cursosPorCategoria == nil {
		cursosPorCategoria = []categoryCount{}
	}

	var totalCursos int64
	if err := db.Model(&models.Curso{}).Count(&totalCursos).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas.")
	}

	return middleware.Success(c, fiber.StatusOK, "", fiber.Map{
		"edadDistribucion":   edadDistribucion,
		"cursosPorCategoria": cursosPorCategoria,
		"totalEstudiantes":   len(students),
		"totalCursos":        totalCursos,
	})
}
