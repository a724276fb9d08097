package scheduleController

import (
	"time"

	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/schedule"

	"github.com/gofiber/fiber/v2"
)

// CreateSchedule assigns a schedule to a section that has none. The section
// back-reference and the repetition days are written in the same transaction
// as the schedule row.
func CreateSchedule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSchedule").(*validators.ScheduleRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var course models.Curso
	if err := db.First(&course, reqData.CursoID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Curso no encontrado.")
	}

	var seccion models.Seccion
	if err := db.Where("curso_id = ?", course.ID).First(&seccion, reqData.SeccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Sección no encontrada.")
	}

	if seccion.HorarioID != nil {
		return middleware.Error(c, fiber.StatusConflict, "La sección ya tiene un horario asignado.")
	}

	fechaInicio, _ := time.Parse(utils.FechaISO, reqData.FechaInicio)
	fechaFinal, _ := time.Parse(utils.FechaISO, reqData.FechaFinal)

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear el horario.")
	}

	horario := models.Horario{
		FechaInicio: fechaInicio,
		FechaFinal:  fechaFinal,
		HoraInicio:  reqData.HoraInicio,
		HoraFinal:   reqData.HoraFinal,
		Tipo:        reqData.Tipo,
		Estado:      reqData.Estado == nil || *reqData.Estado,
		SeccionID:   seccion.ID,
	}
	if err := tx.Create(&horario).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear el horario.")
	}

	if err := tx.Model(&models.Seccion{}).Where("id = ?", seccion.ID).
		Update("horario_id", horario.ID).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear el horario.")
	}

	dias := make([]models.DiaHorario, 0, len(reqData.DiasRepeticion))
	for _, dia := range reqData.DiasRepeticion {
		dias = append(dias, models.DiaHorario{
			Dia:       utils.NormalizeDia(dia),
			HorarioID: horario.ID,
		})
	}
	if err := tx.Create(&dias).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear el horario.")
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear el horario.")
	}

	return middleware.Success(c, fiber.StatusCreated, "Horario creado exitosamente.", fiber.Map{
		"id":             horario.ID,
		"fechaInicio":    horario.FechaInicio.Format(utils.FechaISO),
		"fechaFinal":     horario.FechaFinal.Format(utils.FechaISO),
		"horaInicio":     horario.HoraInicio,
		"horaFinal":      horario.HoraFinal,
		"tipo":           horario.Tipo,
		"estado":         horario.Estado,
		"seccionId":      horario.SeccionID,
		"diasRepeticion": reqData.DiasRepeticion,
	})
}

// UpdateSchedule replaces the schedule of a section. Repetition days are
// deleted and re-inserted rather than diffed.
func UpdateSchedule(c *fiber.Ctx) error {
	cursoID, _ := c.Locals("cursoId").(uint)
	seccionID, _ := c.Locals("seccionId").(uint)

	reqData, ok := c.Locals("validatedSchedule").(*validators.ScheduleRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var seccion models.Seccion
	if err := db.Where("curso_id = ?", cursoID).First(&seccion, seccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Sección no encontrada.")
	}
	if seccion.HorarioID == nil {
		return middleware.Error(c, fiber.StatusNotFound, "La sección no tiene un horario asignado.")
	}

	var horario models.Horario
	if err := db.First(&horario, *seccion.HorarioID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Horario no encontrado.")
	}

	fechaInicio, _ := time.Parse(utils.FechaISO, reqData.FechaInicio)
	fechaFinal, _ := time.Parse(utils.FechaISO, reqData.FechaFinal)

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el horario.")
	}

	updates := map[string]interface{}{
		"fecha_inicio": fechaInicio,
		"fecha_final":  fechaFinal,
		"hora_inicio":  reqData.HoraInicio,
		"hora_final":   reqData.HoraFinal,
		"tipo":         reqData.Tipo,
	}
	if reqData.Estado != nil {
		updates["estado"] = *reqData.Estado
	}
	if err := tx.Model(&horario).Updates(updates).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el horario.")
	}

	if err := tx.Where("horario_id = ?", horario.ID).Delete(&models.DiaHorario{}).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el horario.")
	}

	dias := make([]models.DiaHorario, 0, len(reqData.DiasRepeticion))
	for _, dia := range reqData.DiasRepeticion {
		dias = append(dias, models.DiaHorario{
			Dia:       utils.NormalizeDia(dia),
			HorarioID: horario.ID,
		})
	}
	if err := tx.Create(&dias).Error; err != nil {
		tx.Rollback()
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el horario.")
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el horario.")
	}

	diasDisplay := make([]string, 0, len(reqData.DiasRepeticion))
	for _, dia := range reqData.DiasRepeticion {
		diasDisplay = append(diasDisplay, utils.FormatDia(dia))
	}

	return middleware.Success(c, fiber.StatusOK, "Horario actualizado exitosamente.", fiber.Map{
		"fechaInicio":    fechaInicio.Format(utils.FechaISO),
		"fechaFinal":     fechaFinal.Format(utils.FechaISO),
		"horaInicio":     reqData.HoraInicio,
		"horaFinal":      reqData.HoraFinal,
		"tipo":           reqData.Tipo,
		"diasRepeticion": diasDisplay,
	})
}
