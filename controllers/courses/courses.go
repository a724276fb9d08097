package courseController

import (
	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/course"

	"github.com/gofiber/fiber/v2"
)

type courseSummary struct {
	models.Curso
	Matricula         int64 `json:"matricula"`
	CantidadSecciones int64 `json:"cantidadSecciones"`
}

// GetCourses lists active courses with their section count and total roster
// size.
func GetCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []models.Curso
	if err := db.Find(&courses).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los cursos.")
	}

	summaries := make([]courseSummary, 0, len(courses))
	for _, course := range courses {
		var cantidadSecciones int64
		db.Model(&models.Seccion{}).Where("curso_id = ?", course.ID).Count(&cantidadSecciones)

		var matricula int64
		db.Model(&models.EstudianteSeccion{}).
			Where("seccion_id IN (?)", db.Model(&models.Seccion{}).Select("id").Where("curso_id = ?", course.ID)).
			Count(&matricula)

		summaries = append(summaries, courseSummary{
			Curso:             course,
			Matricula:         matricula,
			CantidadSecciones: cantidadSecciones,
		})
	}

	return middleware.Success(c, fiber.StatusOK, "", summaries)
}

type scheduleView struct {
	FechaInicio string   `json:"fechaInicio"`
	FechaFinal  string   `json:"fechaFinal"`
	HoraInicio  string   `json:"horaInicio"`
	HoraFinal   string   `json:"horaFinal"`
	Tipo        string   `json:"tipo"`
	Dias        []string `json:"dias"`
}

type sectionScheduleView struct {
	ID      uint          `json:"id"`
	Codigo  string        `json:"codigo"`
	Salon   string        `json:"salon"`
	Horario *scheduleView `json:"horario"`
}

type courseScheduleView struct {
	ID        uint                  `json:"id"`
	Nombre    string                `json:"nombre"`
	Codigo    string                `json:"codigo"`
	Categoria string                `json:"categoria"`
	Secciones []sectionScheduleView `json:"secciones"`
}

// GetCoursesSchedules serves the combined course+schedule view. Weekday names
// are normalized so accented and unaccented variants surface the same way.
func GetCoursesSchedules(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []models.Curso
	if err := db.Find(&courses).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los cursos.")
	}

	result := make([]courseScheduleView, 0, len(courses))
	for _, course := range courses {
		var secciones []models.Seccion
		db.Where("curso_id = ?", course.ID).Find(&secciones)

		sectionViews := make([]sectionScheduleView, 0, len(secciones))
		for _, seccion := range secciones {
			view := sectionScheduleView{
				ID:     seccion.ID,
				Codigo: seccion.Codigo,
				Salon:  seccion.Salon,
			}

			if seccion.HorarioID != nil {
				var horario models.Horario
				if err := db.First(&horario, *seccion.HorarioID).Error; err == nil {
					var dias []models.DiaHorario
					db.Where("horario_id = ?", horario.ID).Find(&dias)

					diaNames := make([]string, 0, len(dias))
					for _, dia := range dias {
						diaNames = append(diaNames, utils.NormalizeDia(dia.Dia))
					}

					view.Horario = &scheduleView{
						FechaInicio: horario.FechaInicio.Format(utils.FechaISO),
						FechaFinal:  horario.FechaFinal.Format(utils.FechaISO),
						HoraInicio:  horario.HoraInicio,
						HoraFinal:   horario.HoraFinal,
						Tipo:        horario.Tipo,
						Dias:        diaNames,
					}
				}
			}

			sectionViews = append(sectionViews, view)
		}

		result = append(result, courseScheduleView{
			ID:        course.ID,
			Nombre:    course.Nombre,
			Codigo:    course.Codigo,
			Categoria: course.Categoria,
			Secciones: sectionViews,
		})
	}

	return middleware.Success(c, fiber.StatusOK, "", result)
}

// GetOneCourse fetches a single active course
func GetOneCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseId").(uint)

	var course models.Curso
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Curso no encontrado.")
	}

	return middleware.Success(c, fiber.StatusOK, "Curso encontrado.", course)
}

// CreateCourse creates a catalog entry after checking the code is unused
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CourseRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	if err := db.Unscoped().Where("codigo = ?", reqData.Codigo).First(&models.Curso{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Codigo ya utilizado.")
	}

	newCourse := models.Curso{
		Nombre:      reqData.Nombre,
		Codigo:      reqData.Codigo,
		Descripcion: reqData.Descripcion,
		Categoria:   reqData.Categoria,
	}

	if err := db.Create(&newCourse).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear el curso.")
	}

	return middleware.Success(c, fiber.StatusCreated, "Curso creado exitosamente.", newCourse)
}

// UpdateCourse re-checks code uniqueness against every other course
func UpdateCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseId").(uint)

	reqData, ok := c.Locals("validatedCourse").(*validators.CourseRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var course models.Curso
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Curso no encontrado.")
	}

	if err := db.Unscoped().Where("codigo = ? AND id <> ?", reqData.Codigo, course.ID).First(&models.Curso{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Codigo ya utilizado.")
	}

	course.Nombre = reqData.Nombre
	course.Codigo = reqData.Codigo
	course.Descripcion = reqData.Descripcion
	course.Categoria = reqData.Categoria

	if err := db.Save(&course).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el curso.")
	}

	return middleware.Success(c, fiber.StatusOK, "Curso modificado exitosamente.", course)
}

// DeleteCourse soft-deletes the course; sections keep their reference for
// historical reads.
func DeleteCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseId").(uint)

	db := database.Database.Db

	var course models.Curso
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Curso no encontrado.")
	}

	if err := db.Delete(&course).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el curso.")
	}

	return middleware.Success(c, fiber.StatusOK, "Curso eliminado exitosamente.", nil)
}
