package authController

import (
	"academia/config"
	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/auth"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register creates the Usuario row and, for students and teachers, the
// role-specific row in the same transaction.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*validators.RegisterRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	// Uniqueness pre-checks include soft-deleted users: the unique index
	// would reject the insert anyway, this turns it into a clean 409.
	if err := db.Unscoped().Where("email = ?", reqData.Email).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Este email ya está en uso.")
	}
	if err := db.Unscoped().Where("cedula = ?", reqData.Cedula).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "La cedula ya está en uso.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la solicitud.")
	}

	newUser := models.Usuario{
		Nombre:             reqData.Nombre,
		Apellido:           reqData.Apellido,
		Email:              reqData.Email,
		Cedula:             reqData.Cedula,
		Password:           string(hashedPassword),
		TipoUsuario:        reqData.TipoUsuario,
		PreguntaSeguridad:  reqData.PreguntaSeguridad,
		RespuestaSeguridad: reqData.RespuestaSeguridad,
	}

	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el usuario.")
	}

	switch reqData.TipoUsuario {
	case models.RoleEstudiante:
		fechaNacimiento, _ := utils.ParseFechaISO(reqData.FechaNacimiento)
		estudiante := models.Estudiante{
			UsuarioID:       newUser.ID,
			Direccion:       reqData.Direccion,
			NumeroTelefono:  reqData.NumeroTelefono,
			FechaNacimiento: fechaNacimiento,
		}
		if err := tx.Create(&estudiante).Error; err != nil {
			tx.Rollback()
			return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el usuario.")
		}
	case models.RoleProfesor:
		fechaNacimiento, _ := utils.ParseFechaISO(reqData.FechaNacimiento)
		profesor := models.Profesor{
			UsuarioID:       newUser.ID,
			Profesion:       reqData.Profesion,
			Direccion:       reqData.Direccion,
			NumeroTelefono:  reqData.NumeroTelefono,
			FechaNacimiento: fechaNacimiento,
		}
		if err := tx.Create(&profesor).Error; err != nil {
			tx.Rollback()
			return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el usuario.")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el usuario.")
	}

	go func(email, nombre string) {
		if err := utils.SendWelcomeEmail(email, nombre); err != nil {
			log.Printf("Error sending welcome email to %s: %v", email, err)
		}
	}(newUser.Email, newUser.Nombre)

	return middleware.Success(c, fiber.StatusCreated, "Usuario registrado exitosamente.", fiber.Map{
		"id":          newUser.ID,
		"nombre":      newUser.Nombre,
		"apellido":    newUser.Apellido,
		"email":       newUser.Email,
		"tipoUsuario": newUser.TipoUsuario,
	})
}

// Login verifies credentials and issues the access/refresh token pair. The
// refresh token is persisted so it can be rotated and revoked.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var user models.Usuario
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas.")
	}

	accessToken, err := middleware.GenerateJWT(user.ID, user.TipoUsuario, user.Email)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión.")
	}

	refreshToken, expiresAt, err := middleware.GenerateRefreshJWT(user.ID)
	if err != nil {
		log.Printf("Error generating refresh token: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión.")
	}

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("Error storing refresh token: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión.")
	}

	return middleware.Success(c, fiber.StatusOK, "Inicio de sesión exitoso.", fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"usuario": fiber.Map{
			"id":          user.ID,
			"nombre":      user.Nombre,
			"apellido":    user.Apellido,
			"email":       user.Email,
			"tipoUsuario": user.TipoUsuario,
		},
	})
}

// RefreshToken rotates a valid refresh token and returns a fresh pair
func RefreshToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRefresh").(*validators.RefreshRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	userID, err := middleware.ParseRefreshJWT(reqData.RefreshToken)
	if err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "Token de refresco inválido o expirado.")
	}

	db := database.Database.Db

	var stored models.RefreshToken
	if err := db.Where("token = ? AND revoked_at IS NULL AND expires_at > ?",
		reqData.RefreshToken, time.Now()).First(&stored).Error; err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "Token de refresco inválido o expirado.")
	}

	var user models.Usuario
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "Usuario no encontrado.")
	}

	accessToken, err := middleware.GenerateJWT(user.ID, user.TipoUsuario, user.Email)
	if err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo refrescar la sesión.")
	}

	newRefresh, expiresAt, err := middleware.GenerateRefreshJWT(user.ID)
	if err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo refrescar la sesión.")
	}

	now := time.Now()
	stored.RevokedAt = &now
	if err := db.Save(&stored).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo refrescar la sesión.")
	}

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     newRefresh,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(&record).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo refrescar la sesión.")
	}

	return middleware.Success(c, fiber.StatusOK, "", fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": newRefresh,
	})
}

// Logout blacklists the presented access token and revokes the caller's
// refresh tokens.
func Logout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Error(c, fiber.StatusUnauthorized, "No autorizado.")
	}

	db := database.Database.Db

	tokenString, _ := c.Locals("accessToken").(string)
	expiredAt := time.Now().Add(time.Duration(config.AppConfig.AccessTokenHours) * time.Hour)
	if exp, ok := c.Locals("tokenExp").(int64); ok {
		expiredAt = time.Unix(exp, 0)
	}

	invalid := models.InvalidToken{
		UserID:    userID,
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&invalid).Error; err != nil {
		log.Printf("Error blacklisting token: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo cerrar la sesión.")
	}

	now := time.Now()
	db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now)

	return middleware.Success(c, fiber.StatusOK, "Sesión cerrada exitosamente.", nil)
}

// ChangePassword verifies the current password before storing the new hash
func ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Error(c, fiber.StatusUnauthorized, "No autorizado.")
	}

	reqData, ok := c.Locals("validatedChangePassword").(*validators.ChangePasswordRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var user models.Usuario
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Usuario no encontrado.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "La contraseña actual es incorrecta.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la solicitud.")
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar la contraseña.")
	}

	return middleware.Success(c, fiber.StatusOK, "Contraseña actualizada exitosamente.", nil)
}

// VerifyToken is an authenticated ping used by the frontend
func VerifyToken(c *fiber.Ctx) error {
	return middleware.Success(c, fiber.StatusOK, "Token is valid", nil)
}
