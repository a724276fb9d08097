package seccionController_test

import (
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

type fixture struct {
	app       *fiber.App
	profToken string
	seccion   models.Seccion
	student   models.Estudiante
}

func setupFixture(t *testing.T) fixture {
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

	profUser := models.Usuario{
		Nombre: "Luis", Apellido: "Gómez",
		Email: "luis@academia.test", Cedula: "V-300",
		Password: "x", TipoUsuario: models.RoleProfesor,
	}
	require.NoError(t, db.Create(&profUser).Error)
	prof := models.Profesor{UsuarioID: profUser.ID, Profesion: "Chef"}
	require.NoError(t, db.Create(&prof).Error)

	curso := models.Curso{Nombre: "Panadería", Codigo: "PAN-01", Descripcion: "Panes", Categoria: "Cocina"}
	require.NoError(t, db.Create(&curso).Error)

	seccion := models.Seccion{Codigo: "PAN-01-A", Capacidad: 15, Salon: "1A", ProfesorID: prof.ID, CursoID: curso.ID}
	require.NoError(t, db.Create(&seccion).Error)

	stuUser := models.Usuario{
		Nombre: "Ana", Apellido: "Pérez",
		Email: "ana@academia.test", Cedula: "V-400",
		Password: "x", TipoUsuario: models.RoleEstudiante,
	}
	require.NoError(t, db.Create(&stuUser).Error)
	student := models.Estudiante{UsuarioID: stuUser.ID}
	require.NoError(t, db.Create(&student).Error)

	token, err := middleware.GenerateJWT(profUser.ID, profUser.TipoUsuario, profUser.Email)
	require.NoError(t, err)

	return fixture{app: app, profToken: token, seccion: seccion, student: student}
}

func (f fixture) patch(t *testing.T, action string) *http.Response {
	t.Helper()

	path := "/api/secciones/" + strconv.FormatUint(uint64(f.seccion.ID), 10) +
		"/students/" + strconv.FormatUint(uint64(f.student.ID), 10) + "/" + action
	req := httptest.NewRequest(fiber.MethodPatch, path, nil)
	req.Header.Set("Authorization", "Bearer "+f.profToken)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAprobarEstudianteRequiresRosterRow(t *testing.T) {
	f := setupFixture(t)

	resp := f.patch(t, "aprobar")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAprobarReprobarTogglePassState(t *testing.T) {
	f := setupFixture(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.EstudianteSeccion{
		EstudianteID: f.student.ID,
		SeccionID:    f.seccion.ID,
	}).Error)

	resp := f.patch(t, "aprobar")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var membership models.EstudianteSeccion
	require.NoError(t, db.Where("estudiante_id = ? AND seccion_id = ?", f.student.ID, f.seccion.ID).First(&membership).Error)
	assert.True(t, membership.Aprobado)

	resp = f.patch(t, "reprobar")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("estudiante_id = ? AND seccion_id = ?", f.student.ID, f.seccion.ID).First(&membership).Error)
	assert.False(t, membership.Aprobado)
}

func TestGetTeacherSectionsListsRoster(t *testing.T) {
	f := setupFixture(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.EstudianteSeccion{
		EstudianteID: f.student.ID,
		SeccionID:    f.seccion.ID,
		Aprobado:     true,
	}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/api/secciones/teacher", nil)
	req.Header.Set("Authorization", "Bearer "+f.profToken)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
