package inscripcionController

import (
	"time"

	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/inscripcion"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateInscripcion submits an enrollment request for the authenticated
// student. The request enters the review queue in "En Espera"; the roster
// row is only created when an administrator approves it.
func CreateInscripcion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Error(c, fiber.StatusUnauthorized, "No autorizado.")
	}

	reqData, ok := c.Locals("validatedInscripcion").(*validators.InscripcionRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var student models.Estudiante
	if err := db.Where("usuario_id = ?", userID).First(&student).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Estudiante no encontrado.")
	}

	var seccion models.Seccion
	if err := db.First(&seccion, reqData.SeccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Sección no encontrada.")
	}

	fechaExpedicion, _ := time.Parse(utils.FechaISO, reqData.FechaExpedicion)

	inscripcion := models.Inscripcion{
		ReferenciaPago:  reqData.ReferenciaPago,
		Banco:           reqData.Banco,
		Monto:           reqData.Monto,
		FechaExpedicion: fechaExpedicion,
		Estado:          models.EstadoEnEspera,
		EstudianteID:    student.ID,
		SeccionID:       seccion.ID,
	}

	if err := db.Create(&inscripcion).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo registrar la inscripción.")
	}

	return middleware.Success(c, fiber.StatusCreated, "Inscripción exitosa.", inscripcion)
}

type inscripcionView struct {
	models.Inscripcion
	NombreEstudiante string `json:"nombreEstudiante"`
	CedulaEstudiante string `json:"cedulaEstudiante"`
	CodigoSeccion    string `json:"codigoSeccion"`
}

func enrich(db *gorm.DB, inscripcion models.Inscripcion) inscripcionView {
	view := inscripcionView{Inscripcion: inscripcion}

	var student models.Estudiante
	if err := db.Preload("Usuario", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		First(&student, inscripcion.EstudianteID).Error; err == nil {
		view.NombreEstudiante = student.Usuario.Nombre + " " + student.Usuario.Apellido
		view.CedulaEstudiante = student.Usuario.Cedula
	}

	var seccion models.Seccion
	if err := db.Unscoped().First(&seccion, inscripcion.SeccionID).Error; err == nil {
		view.CodigoSeccion = seccion.Codigo
	}

	return view
}

// GetInscripciones lists enrollment requests with student and section data
func GetInscripciones(c *fiber.Ctx) error {
	db := database.Database.Db

	var inscripciones []models.Inscripcion
	if err := db.Order("created_at DESC").Find(&inscripciones).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las inscripciones.")
	}

	views := make([]inscripcionView, 0, len(inscripciones))
	for _, inscripcion := range inscripciones {
		views = append(views, enrich(db, inscripcion))
	}

	return middleware.Success(c, fiber.StatusOK, "", views)
}

func GetOneInscripcion(c *fiber.Ctx) error {
	inscripcionID, _ := c.Locals("inscripcionId").(uint)

	db := database.Database.Db

	var inscripcion models.Inscripcion
	if err := db.First(&inscripcion, inscripcionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Inscripción no encontrada.")
	}

	return middleware.Success(c, fiber.StatusOK, "", enrich(db, inscripcion))
}

// AprobarInscripcion approves a pending enrollment. The state change and the
// roster row are committed in one transaction so an approved enrollment
// always has exactly one roster entry; the unique index on
// (estudiante_id, seccion_id) backstops concurrent approvals.
func AprobarInscripcion(c *fiber.Ctx) error {
	inscripcionID, _ := c.Locals("inscripcionId").(uint)

	db := database.Database.Db

	var inscripcion models.Inscripcion
	if err := db.First(&inscripcion, inscripcionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Inscripción no encontrada.")
	}

	if inscripcion.Estado == models.EstadoAprobada {
		return middleware.Error(c, fiber.StatusConflict, "La inscripción ya fue aprobada.")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo aprobar la inscripción.")
	}

	if err := tx.Model(&inscripcion).Update("estado", models.EstadoAprobada).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo aprobar la inscripción.")
	}

	membership := models.EstudianteSeccion{
		EstudianteID: inscripcion.EstudianteID,
		SeccionID:    inscripcion.SeccionID,
	}
	if err := tx.Create(&membership).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusConflict, "El estudiante ya está inscrito en esta sección.")
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo aprobar la inscripción.")
	}

	go func(estudianteID, seccionID uint) {
		var student models.Estudiante
		if err := database.Database.Db.Preload("Usuario").First(&student, estudianteID).Error; err != nil {
			return
		}
		var seccion models.Seccion
		if err := database.Database.Db.First(&seccion, seccionID).Error; err != nil {
			return
		}
		utils.SendInscripcionAprobadaEmail(student.Usuario.Email, student.Usuario.Nombre, seccion.Codigo)
	}(inscripcion.EstudianteID, inscripcion.SeccionID)

	return middleware.Success(c, fiber.StatusOK, "Inscripción aprobada exitosamente.", nil)
}

// NoAprobarInscripcion rejects an enrollment request
func NoAprobarInscripcion(c *fiber.Ctx) error {
	inscripcionID, _ := c.Locals("inscripcionId").(uint)

	db := database.Database.Db

	var inscripcion models.Inscripcion
	if err := db.First(&inscripcion, inscripcionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Inscripción no encontrada.")
	}

	if err := db.Model(&inscripcion).Update("estado", models.EstadoNoAprobada).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la inscripción.")
	}

	return middleware.Success(c, fiber.StatusOK, "Inscripción rechazada.", nil)
}

// DeleteInscripcion removes an enrollment request. If it had been approved
// the roster row is removed with it.
func DeleteInscripcion(c *fiber.Ctx) error {
	inscripcionID, _ := c.Locals("inscripcionId").(uint)

	db := database.Database.Db

	var inscripcion models.Inscripcion
	if err := db.First(&inscripcion, inscripcionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Inscripción no encontrada.")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la inscripción.")
	}

	if inscripcion.Estado == models.EstadoAprobada {
		if err := tx.Where("estudiante_id = ? AND seccion_id = ?", inscripcion.EstudianteID, inscripcion.SeccionID).
			Delete(&models.EstudianteSeccion{}).Error; err != nil {
			tx.Rollback()
			return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la inscripción.")
		}
	}

	if err := tx.Delete(&inscripcion).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la inscripción.")
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la inscripción.")
	}

	return middleware.Success(c, fiber.StatusOK, "Inscripción eliminada exitosamente.", nil)
}
