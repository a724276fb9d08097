package studentController

import (
	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/user"

	"github.com/gofiber/fiber/v2"
)

type studentView struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Email           string `json:"email"`
	Cedula          string `json:"cedula"`
	Direccion       string `json:"direccion,omitempty"`
	NumeroTelefono  string `json:"numeroTelefono"`
	FechaNacimiento string `json:"fechaNacimiento"`
}

// GetStudents lists students whose user has not been deleted
func GetStudents(c *fiber.Ctx) error {
	db := database.Database.Db

	var students []models.Estudiante
	activeUsers := db.Model(&models.Usuario{}).Select("id")
	if err := db.Where("usuario_id IN (?)", activeUsers).Preload("Usuario").Find(&students).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los estudiantes.")
	}

	formatted := make([]studentView, 0, len(students))
	for _, s := range students {
		formatted = append(formatted, studentView{
			ID:              s.ID,
			Nombre:          s.Usuario.Nombre,
			Apellido:        s.Usuario.Apellido,
			Email:           s.Usuario.Email,
			Cedula:          s.Usuario.Cedula,
			Direccion:       s.Direccion,
			NumeroTelefono:  s.NumeroTelefono,
			FechaNacimiento: utils.FormatFecha(s.FechaNacimiento),
		})
	}

	return middleware.Success(c, fiber.StatusOK, "", formatted)
}

// GetOneStudent fetches one active student with their user data
func GetOneStudent(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(uint)

	db := database.Database.Db

	var student models.Estudiante
	activeUsers := db.Model(&models.Usuario{}).Select("id")
	if err := db.Where("usuario_id IN (?)", activeUsers).Preload("Usuario").First(&student, studentID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "El estudiante no fue encontrado.")
	}

	return middleware.Success(c, fiber.StatusOK, "", studentView{
		ID:              student.ID,
		Nombre:          student.Usuario.Nombre,
		Apellido:        student.Usuario.Apellido,
		Email:           student.Usuario.Email,
		Cedula:          student.Usuario.Cedula,
		Direccion:       student.Direccion,
		NumeroTelefono:  student.NumeroTelefono,
		FechaNacimiento: utils.FormatFecha(student.FechaNacimiento),
	})
}

// UpdateStudent writes the student row and its user row together
func UpdateStudent(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(uint)

	reqData, ok := c.Locals("validatedPersonEdit").(*validators.PersonEditRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var student models.Estudiante
	activeUsers := db.Model(&models.Usuario{}).Select("id")
	if err := db.Where("usuario_id IN (?)", activeUsers).Preload("Usuario").First(&student, studentID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "El estudiante no fue encontrado.")
	}

	if err := db.Unscoped().Where("email = ? AND id <> ?", reqData.Email, student.UsuarioID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Este email ya está en uso.")
	}
	if err := db.Unscoped().Where("cedula = ? AND id <> ?", reqData.Cedula, student.UsuarioID).First(&models.Usuario{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "La cedula ya está en uso.")
	}

	fechaNacimiento, err := utils.ParseFechaDisplay(reqData.FechaNacimiento)
	if err != nil {
		return middleware.Error(c, fiber.StatusBadRequest, "La fecha de nacimiento no es válida.")
	}

	tx := db.Begin()

	if err := tx.Model(&models.Estudiante{}).Where("id = ?", student.ID).Updates(map[string]interface{}{
		"direccion":        reqData.Direccion,
		"numero_telefono":  reqData.NumeroTelefono,
		"fecha_nacimiento": fechaNacimiento,
	}).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el estudiante.")
	}

	if err := tx.Model(&models.Usuario{}).Where("id = ?", student.UsuarioID).Updates(map[string]interface{}{
		"nombre":   reqData.Nombre,
		"apellido": reqData.Apellido,
		"email":    reqData.Email,
		"cedula":   reqData.Cedula,
	}).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el estudiante.")
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el estudiante.")
	}

	return middleware.Success(c, fiber.StatusOK, "Estudiante actualizado exitosamente.", nil)
}

// DeleteStudent soft-deletes the owning user; the student row stays put and
// becomes invisible through the user filter.
func DeleteStudent(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(uint)

	db := database.Database.Db

	var student models.Estudiante
	if err := db.First(&student, studentID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "El estudiante no fue encontrado.")
	}

	if err := db.Delete(&models.Usuario{}, student.UsuarioID).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el estudiante.")
	}

	return middleware.Success(c, fiber.StatusOK, "Estudiante eliminado exitosamente.", nil)
}
