package teacherController

import (
	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/user"

	"github.com/gofiber/fiber/v2"
)

type teacherView struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Email           string `json:"email"`
	Cedula          string `json:"cedula"`
	Profesion       string `json:"profesion"`
	Direccion       string `json:"direccion,omitempty"`
	NumeroTelefono  string `json:"numeroTelefono"`
	FechaNacimiento string `json:"fechaNacimiento"`
}

// GetTeachers lists teachers whose user has not been deleted
func GetTeachers(c *fiber.Ctx) error {
	db := database.Database.Db

	var teachers []models.Profesor
	activeUsers := db.Model(&models.Usuario{}).Select("id")
	if err := db.Where("usuario_id IN (?)", activeUsers).Preload("Usuario").Find(&teachers).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los profesores.")
	}

	formatted := make([]teacherView, 0, len(teachers))
	for _, t := range teachers {
		formatted = append(formatted, teacherView{
			ID:              t.ID,
			Nombre:          t.Usuario.Nombre,
			Apellido:        t.Usuario.Apellido,
			Email:           t.Usuario.Email,
			Cedula:          t.Usuario.Cedula,
			Profesion:       t.Profesion,
			Direccion:       t.Direccion,
			NumeroTelefono:  t.NumeroTelefono,
			FechaNacimiento: utils.FormatFecha(t.FechaNacimiento),
		})
	}

	return middleware.Success(c, fiber.StatusOK, "", formatted)
}

// GetOneTeacher fetches one active teacher with their user data
func GetOneTeacher(c *fiber.Ctx) error {
	teacherID, _ := c.Locals("teacherId").(uint)

	db := database.Database.Db

	var teacher models.Profesor
	activeUsers := db.Model(&models.Usuario{}).Select("id")
	if err := db.Where("usuario_id IN (?)", activeUsers).Preload("Usuario").First(&teacher, teacherID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "El profesor no fue encontrado.")
	}

	return middleware.Success(c, fiber.StatusOK, "", teacherView{
		ID:              teacher.ID,
		Nombre:          teacher.Usuario.Nombre,
		Apellido:        teacher.Usuario.Apellido,
		Email:           teacher.Usuario.Email,
		Cedula:          teacher.Usuario.Cedula,
		Profesion:       teacher.Profesion,
		Direccion:       teacher.Direccion,
		NumeroTelefono:  teacher.NumeroTelefono,
		FechaNacimiento: utils.FormatFecha(teacher.FechaNacimiento),
	})
}

// UpdateTeacher writes the teacher row and its user row together
func UpdateTeacher(c *fiber.Ctx) error {
	teacherID, _ := c.Locals("teacherId").(uint)

	reqData, ok := c.Locals("validatedPersonEdit").(*validators.PersonEditRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var teacher models.Profesor
	activeUsers := db.Model(&models.Usuario{}).Select("id")
	if err := db.Where("usuario_id IN (?)", activeUsers).Preload("Usuario").First(&teacher, teacherID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "El profesor no fue encontrado.")
	}

	if err := db.Unscoped().Where("email = ? AND id <> ?", reqData.Email, teacher.UsuarioID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Este email ya está en uso.")
	}
	if err := db.Unscoped().Where("cedula = ? AND id <> ?", reqData.Cedula, teacher.UsuarioID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "La cedula ya está en uso.")
	}

	fechaNacimiento, err := utils.ParseFechaDisplay(reqData.FechaNacimiento)
	if err != nil {
		return middleware.Error(c, fiber.StatusBadRequest, "La fecha de nacimiento no es válida.")
	}

	tx := db.Begin()

	if err := tx.Model(&models.Profesor{}).Where("id = ?", teacher.ID).Updates(map[string]interface{}{
		"profesion":        reqData.Profesion,
		"direccion":        reqData.Direccion,
		"numero_telefono":  reqData.NumeroTelefono,
		"fecha_nacimiento": fechaNacimiento,
	}).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el profesor.")
	}

	if err := tx.Model(&models.Usuario{}).Where("id = ?", teacher.UsuarioID).Updates(map[string]interface{}{
		"nombre":   reqData.Nombre,
		"apellido": reqData.Apellido,
		"email":    reqData.Email,
		"cedula":   reqData.Cedula,
	}).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el profesor.")
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el profesor.")
	}

	return middleware.Success(c, fiber.StatusOK, "Profesor actualizado exitosamente.", nil)
}

// DeleteTeacher soft-deletes the owning user
func DeleteTeacher(c *fiber.Ctx) error {
	teacherID, _ := c.Locals("teacherId").(uint)

	db := database.Database.Db

	var teacher models.Profesor
	if err := db.First(&teacher, teacherID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "El profesor no fue encontrado.")
	}

	if err := db.Delete(&models.Usuario{}, teacher.UsuarioID).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el profesor.")
	}

	return middleware.Success(c, fiber.StatusOK, "Profesor eliminado exitosamente.", nil)
}
