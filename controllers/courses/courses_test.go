package courseController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"academia/config"
	"academia/database"
	"academia/middleware"
	"academia/models"
	courseRoutes "academia/routers/courseRoutes"

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
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()
	admin := models.Usuario{
		Nombre: "Root", Apellido: "Admin",
		Email: "admin@academia.test", Cedula: "V-1",
		Password: "x", TipoUsuario: models.RoleAdministrador,
	}
	require.NoError(t, database.Database.Db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.TipoUsuario, admin.Email)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateCourseRejectsDuplicateCodigo(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)

	payload := fiber.Map{
		"nombre":      "Cocina Básica",
		"codigo":      "COC-01",
		"descripcion": "Fundamentos de cocina",
		"categoria":   "Cocina",
	}

	resp := doJSON(t, app, fiber.MethodPost, "/api/courses/", token, payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload["nombre"] = "Otro nombre"
	resp = doJSON(t, app, fiber.MethodPost, "/api/courses/", token, payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Curso{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateCourseKeepsOwnCodigo(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db
	token := adminToken(t)

	curso := models.Curso{Nombre: "Corte y Costura", Codigo: "CYC-01", Descripcion: "Costura", Categoria: "Oficios"}
	require.NoError(t, db.Create(&curso).Error)
	otro := models.Curso{Nombre: "Herrería", Codigo: "HER-01", Descripcion: "Herrería", Categoria: "Oficios"}
	require.NoError(t, db.Create(&otro).Error)

	path := "/api/courses/" + strconv.FormatUint(uint64(curso.ID), 10)

	// Re-submitting its own code is not a conflict.
	resp := doJSON(t, app, fiber.MethodPatch, path, token, fiber.Map{
		"nombre":      "Corte y Costura II",
		"codigo":      "CYC-01",
		"descripcion": "Costura avanzada",
		"categoria":   "Oficios",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Taking another course's code is.
	resp = doJSON(t, app, fiber.MethodPatch, path, token, fiber.Map{
		"nombre":      "Corte y Costura II",
		"codigo":      "HER-01",
		"descripcion": "Costura avanzada",
		"categoria":   "Oficios",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var updated models.Curso
	require.NoError(t, db.First(&updated, curso.ID).Error)
	assert.Equal(t, "CYC-01", updated.Codigo)
	assert.Equal(t, "Corte y Costura II", updated.Nombre)
}

func TestGetCoursesReportsEnrollmentNumbers(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db
	token := adminToken(t)

	curso := models.Curso{Nombre: "Repostería", Codigo: "REP-01", Descripcion: "Dulces", Categoria: "Cocina"}
	require.NoError(t, db.Create(&curso).Error)

	profUser := models.Usuario{Nombre: "P", Apellido: "Q", Email: "p@academia.test", Cedula: "V-2", Password: "x", TipoUsuario: models.RoleProfesor}
	require.NoError(t, db.Create(&profUser).Error)
	prof := models.Profesor{UsuarioID: profUser.ID}
	require.NoError(t, db.Create(&prof).Error)

	s1 := models.Seccion{Codigo: "REP-01-A", Capacidad: 10, Salon: "1", ProfesorID: prof.ID, CursoID: curso.ID}
	s2 := models.Seccion{Codigo: "REP-01-B", Capacidad: 10, Salon: "2", ProfesorID: prof.ID, CursoID: curso.ID}
	require.NoError(t, db.Create(&s1).Error)
	require.NoError(t, db.Create(&s2).Error)

	stuUser := models.Usuario{Nombre: "E", Apellido: "F", Email: "e@academia.test", Cedula: "V-3", Password: "x", TipoUsuario: models.RoleEstudiante}
	require.NoError(t, db.Create(&stuUser).Error)
	student := models.Estudiante{UsuarioID: stuUser.ID}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&models.EstudianteSeccion{EstudianteID: student.ID, SeccionID: s1.ID}).Error)

	resp := doJSON(t, app, fiber.MethodGet, "/api/courses/", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Body struct {
			Data []struct {
				Codigo           string `json:"codigo"`
				Matricula        int64  `json:"matricula"`
				CantidadSecciones int64 `json:"cantidadSecciones"`
			} `json:"data"`
		} `json:"body"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Body.Data, 1)
	assert.Equal(t, int64(2), envelope.Body.Data[0].CantidadSecciones)
	assert.Equal(t, int64(1), envelope.Body.Data[0].Matricula)
}
