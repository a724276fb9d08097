package inscripcionController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"academia/config"
	"academia/database"
	"academia/middleware"
	"academia/models"
	inscripcionRoutes "academia/routers/inscripcionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	inscripcionRoutes.SetupInscripcionRoutes(app)
	return app
}

func seedUser(t *testing.T, role, email, cedula string) models.Usuario {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Secreto1!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.Usuario{
		Nombre:      "Ana",
		Apellido:    "Pérez",
		Email:       email,
		Cedula:      cedula,
		Password:    string(hashed),
		TipoUsuario: role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func seedSeccion(t *testing.T) models.Seccion {
	t.Helper()
	db := database.Database.Db

	profUser := seedUser(t, models.RoleProfesor, "prof@academia.test", "V-100")
	prof := models.Profesor{UsuarioID: profUser.ID, Profesion: "Ingeniero"}
	require.NoError(t, db.Create(&prof).Error)

	curso := models.Curso{Nombre: "Repostería", Codigo: "REP-01", Descripcion: "Repostería básica", Categoria: "Cocina"}
	require.NoError(t, db.Create(&curso).Error)

	seccion := models.Seccion{Codigo: "REP-01-A", Capacidad: 20, Salon: "2B", ProfesorID: prof.ID, CursoID: curso.ID}
	require.NoError(t, db.Create(&seccion).Error)
	return seccion
}

func seedStudent(t *testing.T, email, cedula string) models.Estudiante {
	t.Helper()
	user := seedUser(t, models.RoleEstudiante, email, cedula)
	student := models.Estudiante{
		UsuarioID:       user.ID,
		Direccion:       "Av. Principal",
		NumeroTelefono:  "0414-5551234",
		FechaNacimiento: time.Date(2000, 5, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, database.Database.Db.Create(&student).Error)
	return student
}

func tokenFor(t *testing.T, user models.Usuario) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.TipoUsuario, user.Email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
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

func TestCreateInscripcionStartsEnEspera(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	seccion := seedSeccion(t)
	student := seedStudent(t, "est@academia.test", "V-200")
	var studentUser models.Usuario
	require.NoError(t, db.First(&studentUser, student.UsuarioID).Error)

	resp := doRequest(t, app, fiber.MethodPost, "/api/inscripciones/", tokenFor(t, studentUser), fiber.Map{
		"seccionId":       seccion.ID,
		"referenciaPago":  "REF-0001",
		"banco":           "Banco Nacional",
		"monto":           150.0,
		"fechaExpedicion": "2026-08-01",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var inscripcion models.Inscripcion
	require.NoError(t, db.Where("estudiante_id = ?", student.ID).First(&inscripcion).Error)
	assert.Equal(t, models.EstadoEnEspera, inscripcion.Estado)

	var rosterCount int64
	db.Model(&models.EstudianteSeccion{}).Count(&rosterCount)
	assert.Zero(t, rosterCount, "submitting must not seat the student")
}

func TestAprobarInscripcionSeatsStudentOnce(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	admin := seedUser(t, models.RoleAdministrador, "admin@academia.test", "V-1")
	seccion := seedSeccion(t)
	student := seedStudent(t, "est@academia.test", "V-200")

	inscripcion := models.Inscripcion{
		ReferenciaPago: "REF-0002",
		Banco:          "Banco Nacional",
		Monto:          150,
		Estado:         models.EstadoEnEspera,
		EstudianteID:   student.ID,
		SeccionID:      seccion.ID,
	}
	require.NoError(t, db.Create(&inscripcion).Error)

	token := tokenFor(t, admin)
	path := "/api/inscripciones/" + itoa(inscripcion.ID) + "/aprobar"

	resp := doRequest(t, app, fiber.MethodPatch, path, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Inscripcion
	require.NoError(t, db.First(&updated, inscripcion.ID).Error)
	assert.Equal(t, models.EstadoAprobada, updated.Estado)

	var rosterCount int64
	db.Model(&models.EstudianteSeccion{}).
		Where("estudiante_id = ? AND seccion_id = ?", student.ID, seccion.ID).
		Count(&rosterCount)
	assert.Equal(t, int64(1), rosterCount)

	// Approving an already approved enrollment must not seat the student twice.
	resp = doRequest(t, app, fiber.MethodPatch, path, token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	db.Model(&models.EstudianteSeccion{}).
		Where("estudiante_id = ? AND seccion_id = ?", student.ID, seccion.ID).
		Count(&rosterCount)
	assert.Equal(t, int64(1), rosterCount)
}

func TestNoAprobarInscripcionLeavesRosterEmpty(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	admin := seedUser(t, models.RoleAdministrador, "admin@academia.test", "V-1")
	seccion := seedSeccion(t)
	student := seedStudent(t, "est@academia.test", "V-200")

	inscripcion := models.Inscripcion{
		Estado:       models.EstadoEnEspera,
		EstudianteID: student.ID,
		SeccionID:    seccion.ID,
	}
	require.NoError(t, db.Create(&inscripcion).Error)

	resp := doRequest(t, app, fiber.MethodPatch, "/api/inscripciones/"+itoa(inscripcion.ID)+"/no-aprobar", tokenFor(t, admin), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Inscripcion
	require.NoError(t, db.First(&updated, inscripcion.ID).Error)
	assert.Equal(t, models.EstadoNoAprobada, updated.Estado)

	var rosterCount int64
	db.Model(&models.EstudianteSeccion{}).Count(&rosterCount)
	assert.Zero(t, rosterCount)
}

func TestDecisionRoutesAcceptGet(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	admin := seedUser(t, models.RoleAdministrador, "admin@academia.test", "V-1")
	seccion := seedSeccion(t)
	first := seedStudent(t, "est1@academia.test", "V-200")
	second := seedStudent(t, "est2@academia.test", "V-201")

	aprobada := models.Inscripcion{Estado: models.EstadoEnEspera, EstudianteID: first.ID, SeccionID: seccion.ID}
	require.NoError(t, db.Create(&aprobada).Error)
	rechazada := models.Inscripcion{Estado: models.EstadoEnEspera, EstudianteID: second.ID, SeccionID: seccion.ID}
	require.NoError(t, db.Create(&rechazada).Error)

	token := tokenFor(t, admin)

	resp := doRequest(t, app, fiber.MethodGet, "/api/inscripciones/"+itoa(aprobada.ID)+"/aprobar", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/inscripciones/"+itoa(rechazada.ID)+"/no_aprobar", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Inscripcion
	require.NoError(t, db.First(&updated, aprobada.ID).Error)
	assert.Equal(t, models.EstadoAprobada, updated.Estado)
	updated = models.Inscripcion{}
	require.NoError(t, db.First(&updated, rechazada.ID).Error)
	assert.Equal(t, models.EstadoNoAprobada, updated.Estado)
}

func TestDeleteApprovedInscripcionRemovesRosterRow(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	admin := seedUser(t, models.RoleAdministrador, "admin@academia.test", "V-1")
	seccion := seedSeccion(t)
	student := seedStudent(t, "est@academia.test", "V-200")

	inscripcion := models.Inscripcion{
		Estado:       models.EstadoEnEspera,
		EstudianteID: student.ID,
		SeccionID:    seccion.ID,
	}
	require.NoError(t, db.Create(&inscripcion).Error)

	token := tokenFor(t, admin)
	resp := doRequest(t, app, fiber.MethodPatch, "/api/inscripciones/"+itoa(inscripcion.ID)+"/aprobar", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodDelete, "/api/inscripciones/"+itoa(inscripcion.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rosterCount int64
	db.Model(&models.EstudianteSeccion{}).Count(&rosterCount)
	assert.Zero(t, rosterCount)

	var gone models.Inscripcion
	assert.Error(t, db.First(&gone, inscripcion.ID).Error)
	assert.NoError(t, db.Unscoped().First(&gone, inscripcion.ID).Error, "removal is logical")
}

func TestCreateInscripcionRequiresStudentRole(t *testing.T) {
	app := setupApp(t)

	admin := seedUser(t, models.RoleAdministrador, "admin@academia.test", "V-1")
	seccion := seedSeccion(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/inscripciones/", tokenFor(t, admin), fiber.Map{
		"seccionId":       seccion.ID,
		"referenciaPago":  "REF-0003",
		"banco":           "Banco Nacional",
		"monto":           150.0,
		"fechaExpedicion": "2026-08-01",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
