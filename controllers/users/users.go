package userController

import (
	"academia/config"
	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	authValidators "academia/validators/auth"
	validators "academia/validators/user"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetUsers lists all active users (admin only)
func GetUsers(c *fiber.Ctx) error {
	var usuarios []models.Usuario
	if err := database.Database.Db.Find(&usuarios).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los usuarios.")
	}
	return middleware.Success(c, fiber.StatusOK, "", usuarios)
}

// GetOneUser fetches a single active user by id (admin only)
func GetOneUser(c *fiber.Ctx) error {
	targetID, _ := c.Locals("targetUserId").(uint)

	var usuario models.Usuario
	if err := database.Database.Db.First(&usuario, targetID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Usuario no encontrado.")
	}
	return middleware.Success(c, fiber.StatusOK, "", usuario)
}

// ViewCurrent returns the authenticated user's profile, merged with the
// role-specific attributes.
func ViewCurrent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Error(c, fiber.StatusUnauthorized, "No autorizado.")
	}

	db := database.Database.Db

	var user models.Usuario
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.Error(c, fiber.StatusUnauthorized, "No fue encontrado el usuario. Intente de nuevo.")
	}

	data := fiber.Map{
		"id":                user.ID,
		"nombre":            user.Nombre,
		"apellido":          user.Apellido,
		"email":             user.Email,
		"cedula":            user.Cedula,
		"tipoUsuario":       user.TipoUsuario,
		"preguntaSeguridad": user.PreguntaSeguridad,
	}

	switch user.TipoUsuario {
	case models.RoleEstudiante:
		var estudiante models.Estudiante
		if err := db.Where("usuario_id = ?", user.ID).First(&estudiante).Error; err == nil {
			data["fechaNacimiento"] = utils.FormatFecha(estudiante.FechaNacimiento)
			data["direccion"] = estudiante.Direccion
			data["numeroTelefono"] = estudiante.NumeroTelefono
		}
	case models.RoleProfesor:
		var profesor models.Profesor
		if err := db.Where("usuario_id = ?", user.ID).First(&profesor).Error; err == nil {
			data["fechaNacimiento"] = utils.FormatFecha(profesor.FechaNacimiento)
			data["direccion"] = profesor.Direccion
			data["numeroTelefono"] = profesor.NumeroTelefono
			data["profesion"] = profesor.Profesion
		}
	}

	return middleware.Success(c, fiber.StatusOK, "", data)
}

// EditUser updates a user as admin, re-checking email and cedula uniqueness
// against every other user.
func EditUser(c *fiber.Ctx) error {
	targetID, _ := c.Locals("targetUserId").(uint)

	reqData, ok := c.Locals("validatedUserEdit").(*validators.UserEditRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var user models.Usuario
	if err := db.First(&user, targetID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Usuario no encontrado.")
	}

	if err := db.Unscoped().Where("email = ? AND id <> ?", reqData.Email, user.ID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Este email ya está en uso.")
	}
	if err := db.Unscoped().Where("cedula = ? AND id <> ?", reqData.Cedula, user.ID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "La cedula ya está en uso.")
	}

	user.Nombre = reqData.Nombre
	user.Apellido = reqData.Apellido
	user.Email = reqData.Email
	user.Cedula = reqData.Cedula
	user.PreguntaSeguridad = reqData.PreguntaSeguridad
	user.RespuestaSeguridad = reqData.RespuestaSeguridad

	if err := db.Save(&user).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario.")
	}

	return middleware.Success(c, fiber.StatusOK, "Usuario actualizado de forma exitosa.", user)
}

// DeleteUser soft-deletes a user (admin only). Self-deletion is forbidden,
// and the user's session tokens are cleared first.
func DeleteUser(c *fiber.Ctx) error {
	callerID, _ := c.Locals("userId").(uint)
	targetID, _ := c.Locals("targetUserId").(uint)

	db := database.Database.Db

	var user models.Usuario
	if err := db.First(&user, targetID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Usuario no encontrado.")
	}

	if callerID == user.ID {
		return middleware.Error(c, fiber.StatusForbidden, "No puede eliminar su propio usuario.")
	}

	db.Where("user_id = ?", user.ID).Delete(&models.InvalidToken{})
	db.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{})

	if err := db.Delete(&user).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el usuario.")
	}

	return middleware.Success(c, fiber.StatusOK, "Usuario eliminado con éxito.", nil)
}

// ChangePersonalData updates the authenticated user's own profile together
// with the role-specific row, in one transaction.
func ChangePersonalData(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Error(c, fiber.StatusUnauthorized, "No autorizado.")
	}

	reqData, ok := c.Locals("validatedUserEdit").(*validators.UserEditRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var user models.Usuario
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Ocurrió un error. Intente de nuevo.")
	}

	if err := db.Unscoped().Where("email = ? AND id <> ?", reqData.Email, user.ID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Este email ya está en uso.")
	}
	if err := db.Unscoped().Where("cedula = ? AND id <> ?", reqData.Cedula, user.ID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "La cedula ya está en uso.")
	}

	tx := db.Begin()

	user.Nombre = reqData.Nombre
	user.Apellido = reqData.Apellido
	user.Email = reqData.Email
	user.Cedula = reqData.Cedula
	user.PreguntaSeguridad = reqData.PreguntaSeguridad
	user.RespuestaSeguridad = reqData.RespuestaSeguridad

	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario.")
	}

	switch user.TipoUsuario {
	case models.RoleEstudiante:
		updates := map[string]interface{}{
			"direccion":       reqData.Direccion,
			"numero_telefono": reqData.NumeroTelefono,
		}
		if reqData.FechaNacimiento != "" {
			fecha, _ := utils.ParseFechaISO(reqData.FechaNacimiento)
			updates["fecha_nacimiento"] = fecha
		}
		if err := tx.Model(&models.Estudiante{}).Where("usuario_id = ?", user.ID).Updates(updates).Error; err != nil {
			tx.Rollback()
			return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario.")
		}
	case models.RoleProfesor:
		updates := map[string]interface{}{
			"profesion":       reqData.Profesion,
			"direccion":       reqData.Direccion,
			"numero_telefono": reqData.NumeroTelefono,
		}
		if reqData.FechaNacimiento != "" {
			fecha, _ := utils.ParseFechaISO(reqData.FechaNacimiento)
			updates["fecha_nacimiento"] = fecha
		}
		if err := tx.Model(&models.Profesor{}).Where("usuario_id = ?", user.ID).Updates(updates).Error; err != nil {
			tx.Rollback()
			return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario.")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario.")
	}

	return middleware.Success(c, fiber.StatusOK, "Actualización de datos exitosa.", nil)
}

// RecoverStepOne locates the account to recover by email
func RecoverStepOne(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecoverOne").(*authValidators.RecoverStepOneRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	var user models.Usuario
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "No se pudo encontrar el usuario.")
	}

	return middleware.Success(c, fiber.StatusOK, "Usuario encontrado.", fiber.Map{"id": user.ID})
}

// RecoverStepTwoGet serves the security question tied to a user id
func RecoverStepTwoGet(c *fiber.Ctx) error {
	targetID, _ := c.Locals("id").(uint)

	var user models.Usuario
	if err := database.Database.Db.First(&user, targetID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "No se pudo encontrar el usuario.")
	}

	return middleware.Success(c, fiber.StatusOK, "", fiber.Map{"preguntaSeguridad": user.PreguntaSeguridad})
}

// RecoverStepTwo matches the security answer and resets the password
func RecoverStepTwo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecoverTwo").(*authValidators.RecoverStepTwoRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var user models.Usuario
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "No se pudo encontrar el usuario.")
	}

	if user.RespuestaSeguridad != reqData.RespuestaSeguridad {
		return middleware.Error(c, fiber.StatusUnauthorized, "La respuesta de seguridad no coincide.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la solicitud.")
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar la contraseña.")
	}

	// Sessions opened before the reset stay valid until expiry; the refresh
	// tokens are revoked so they cannot mint new ones.
	now := time.Now()
	db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", user.ID).
		Update("revoked_at", now)

	return middleware.Success(c, fiber.StatusOK, "Recuperacion exitosa.", nil)
}
