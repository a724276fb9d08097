package statisticsController_test

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"academia/config"
	"academia/database"
	"academia/middleware"
	"academia/models"
	statisticsRoutes "academia/routers/statisticsRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	statisticsRoutes.SetupStatisticsRoutes(app)
	return app
}

func seedStudentAged(t *testing.T, idx, age int) {
	t.Helper()
	db := database.Database.Db

	user := models.Usuario{
		Nombre: "E", Apellido: "F",
		Email:    "est" + strconv.Itoa(idx) + "@academia.test",
		Cedula:   "V-9" + strconv.Itoa(idx),
		Password: "x", TipoUsuario: models.RoleEstudiante,
	}
	require.NoError(t, db.Create(&user).Error)

	birthYear := time.Now().Year() - age
	student := models.Estudiante{
		UsuarioID:       user.ID,
		FechaNacimiento: time.Date(birthYear, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&student).Error)
}

func TestGetStatisticsBucketsAges(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	admin := models.Usuario{
		Nombre: "Root", Apellido: "Admin",
		Email: "admin@academia.test", Cedula: "V-1",
		Password: "x", TipoUsuario: models.RoleAdministrador,
	}
	require.NoError(t, db.Create(&admin).Error)
	token, err := middleware.GenerateJWT(admin.ID, admin.TipoUsuario, admin.Email)
	require.NoError(t, err)

	for idx, age := range []int{16, 17, 20, 25, 40} {
		seedStudentAged(t, idx, age)
	}

	require.NoError(t, db.Create(&models.Curso{Nombre: "A", Codigo: "A-1", Descripcion: "a", Categoria: "Cocina"}).Error)
	require.NoError(t, db.Create(&models.Curso{Nombre: "B", Codigo: "B-1", Descripcion: "b", Categoria: "Cocina"}).Error)
	require.NoError(t, db.Create(&models.Curso{Nombre: "C", Codigo: "C-1", Descripcion: "c", Categoria: "Oficios"}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/api/statistics/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Body struct {
			Data struct {
				EdadDistribucion map[string]int `json:"edadDistribucion"`
				CursosPorCategoria []struct {
					Categoria string `json:"categoria"`
					Cantidad  int64  `json:"cantidad"`
				} `json:"cursosPorCategoria"`
				TotalEstudiantes int   `json:"totalEstudiantes"`
				TotalCursos      int64 `json:"totalCursos"`
			} `json:"data"`
		} `json:"body"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	data := envelope.Body.Data
	// A 17 year old falls in the minor bucket, not between buckets.
	assert.Equal(t, 2, data.EdadDistribucion["0-17"])
	assert.Equal(t, 1, data.EdadDistribucion["18-22"])
	assert.Equal(t, 1, data.EdadDistribucion["23-27"])
	assert.Equal(t, 0, data.EdadDistribucion["28-32"])
	assert.Equal(t, 1, data.EdadDistribucion["38+"])

	assert.Equal(t, 5, data.TotalEstudiantes)
	assert.Equal(t, int64(3), data.TotalCursos)

	counts := map[string]int64{}
	for _, row := range data.CursosPorCategoria {
		counts[row.Categoria] = row.Cantidad
	}
	assert.Equal(t, int64(2), counts["Cocina"])
	assert.Equal(t, int64(1), counts["Oficios"])
}
