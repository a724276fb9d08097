package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"academia/config"
	"academia/database"
	"academia/models"
	authRoutes "academia/routers/authRoutes"

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
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func registerPayload() fiber.Map {
	return fiber.Map{
		"nombre":             "María",
		"apellido":           "Rodríguez",
		"email":              "maria@academia.test",
		"cedula":             "V-12345678",
		"password":           "Secreto1!",
		"tipoUsuario":        models.RoleEstudiante,
		"preguntaSeguridad":  "Color favorito",
		"respuestaSeguridad": "azul",
		"direccion":          "Calle 5",
		"numeroTelefono":     "0414-5550000",
		"fechaNacimiento":    "2001-03-15",
	}
}

func TestRegisterCreatesUserAndStudent(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.Usuario
	require.NoError(t, db.Where("email = ?", "maria@academia.test").First(&user).Error)
	assert.Equal(t, models.RoleEstudiante, user.TipoUsuario)
	assert.NotEqual(t, "Secreto1!", user.Password, "password must be stored hashed")

	var student models.Estudiante
	assert.NoError(t, db.Where("usuario_id = ?", user.ID).First(&student).Error)
}

func TestRegisterRejectsDuplicateEmailAndCedula(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	dup := registerPayload()
	dup["cedula"] = "V-99999999"
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", dup)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	dup = registerPayload()
	dup["email"] = "otra@academia.test"
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", dup)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Usuario{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "maria@academia.test",
		"password": "equivocada",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nadie@academia.test",
		"password": "Secreto1!",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginIssuesTokens(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "maria@academia.test",
		"password": "Secreto1!",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Body struct {
			Data struct {
				AccessToken  string `json:"accessToken"`
				RefreshToken string `json:"refreshToken"`
			} `json:"data"`
		} `json:"body"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.NotEmpty(t, envelope.Body.Data.AccessToken)
	assert.NotEmpty(t, envelope.Body.Data.RefreshToken)

	var stored int64
	db.Model(&models.RefreshToken{}).Where("revoked_at IS NULL").Count(&stored)
	assert.Equal(t, int64(1), stored)
}

func loginToken(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Body struct {
			Data struct {
				AccessToken string `json:"accessToken"`
			} `json:"data"`
		} `json:"body"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Body.Data.AccessToken)
	return envelope.Body.Data.AccessToken
}

func TestChangePasswordRoute(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	token := loginToken(t, app, "maria@academia.test", "Secreto1!")

	resp = doJSON(t, app, fiber.MethodPatch, "/api/auth/changePassword", token, fiber.Map{
		"currentPassword": "Secreto1!",
		"newPassword":     "Nuevo2@xx",
		"confirmPassword": "Nuevo2@xx",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	loginToken(t, app, "maria@academia.test", "Nuevo2@xx")
}

func TestChangePasswordWithoutTokenIsUnauthorized(t *testing.T) {
	app := setupApp(t)

	// A malformed body must not mask the missing session.
	resp := doJSON(t, app, fiber.MethodPatch, "/api/auth/changePassword", "", fiber.Map{})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutRouteInvalidatesToken(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	token := loginToken(t, app, "maria@academia.test", "Secreto1!")

	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/logout", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/verify-token", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPasswordRecoveryFlow(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPatch, "/api/users/recover", "", fiber.Map{
		"email": "maria@academia.test",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.Usuario
	require.NoError(t, db.Where("email = ?", "maria@academia.test").First(&user).Error)

	resp = doJSON(t, app, fiber.MethodGet, "/api/users/recover/"+strconv.FormatUint(uint64(user.ID), 10), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var questionEnvelope struct {
		Body struct {
			Data struct {
				PreguntaSeguridad string `json:"preguntaSeguridad"`
			} `json:"data"`
		} `json:"body"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&questionEnvelope))
	assert.Equal(t, "Color favorito", questionEnvelope.Body.Data.PreguntaSeguridad)

	// A wrong answer does not reset anything.
	resp = doJSON(t, app, fiber.MethodPut, "/api/users/recover", "", fiber.Map{
		"email":              "maria@academia.test",
		"respuestaSeguridad": "rojo",
		"newPassword":        "Nuevo2@xx",
		"confirmPassword":    "Nuevo2@xx",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, "/api/users/recover", "", fiber.Map{
		"email":              "maria@academia.test",
		"respuestaSeguridad": "azul",
		"newPassword":        "Nuevo2@xx",
		"confirmPassword":    "Nuevo2@xx",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	loginToken(t, app, "maria@academia.test", "Nuevo2@xx")
}

func TestRefreshRotatesToken(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "maria@academia.test",
		"password": "Secreto1!",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var loginEnvelope struct {
		Body struct {
			Data struct {
				RefreshToken string `json:"refreshToken"`
			} `json:"data"`
		} `json:"body"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginEnvelope))
	oldToken := loginEnvelope.Body.Data.RefreshToken

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/refresh-token", "", fiber.Map{
		"refreshToken": oldToken,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var revoked int64
	db.Model(&models.RefreshToken{}).Where("token = ? AND revoked_at IS NOT NULL", oldToken).Count(&revoked)
	assert.Equal(t, int64(1), revoked, "used refresh token must be revoked")

	// The revoked token cannot be replayed.
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/refresh-token", "", fiber.Map{
		"refreshToken": oldToken,
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
