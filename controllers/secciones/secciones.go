package seccionController

import (
	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/seccion"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateSeccion creates an offering of a course after resolving the teacher
// and course and checking code uniqueness.
func CreateSeccion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSeccion").(*validators.SeccionRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	activeUsers := db.Model(&models.Usuario{}).Select("id")
	var teacher models.Profesor
	if err := db.Where("usuario_id IN (?)", activeUsers).First(&teacher, reqData.ProfesorID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Profesor no encontrado.")
	}

	var course models.Curso
	if err := db.First(&course, reqData.CursoID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Curso no encontrado.")
	}

	if err := db.Unscoped().Where("codigo = ?", reqData.Codigo).First(&models.Seccion{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Codigo duplicado.")
	}

	newSeccion := models.Seccion{
		Codigo:     reqData.Codigo,
		Capacidad:  reqData.Capacidad,
		Salon:      reqData.Salon,
		ProfesorID: reqData.ProfesorID,
		CursoID:    reqData.CursoID,
	}

	if err := db.Create(&newSeccion).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear la sección.")
	}

	return middleware.Success(c, fiber.StatusCreated, "Seccion anexada exitosamente.", newSeccion)
}

// UpdateSeccion updates the basic fields of a section
func UpdateSeccion(c *fiber.Ctx) error {
	seccionID, _ := c.Locals("seccionId").(uint)

	reqData, ok := c.Locals("validatedSeccionEdit").(*validators.SeccionEditRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	var seccion models.Seccion
	if err := db.First(&seccion, seccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Seccion no encontrada.")
	}

	activeUsers := db.Model(&models.Usuario{}).Select("id")
	var teacher models.Profesor
	if err := db.Where("usuario_id IN (?)", activeUsers).First(&teacher, reqData.ProfesorID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Profesor no encontrado.")
	}

	if err := db.Unscoped().Where("codigo = ? AND id <> ?", reqData.Codigo, seccion.ID).First(&models.Seccion{}).Error; err == nil {
		return middleware.Error(c, fiber.StatusConflict, "Codigo duplicado.")
	}

	seccion.Codigo = reqData.Codigo
	seccion.Capacidad = reqData.Capacidad
	seccion.Salon = reqData.Salon
	seccion.ProfesorID = reqData.ProfesorID

	if err := db.Save(&seccion).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la sección.")
	}

	return middleware.Success(c, fiber.StatusOK, "Sección actualizada exitosamente.", nil)
}

type seccionView struct {
	models.Seccion
	NombreCurso    string   `json:"nombreCurso"`
	DiasRepeticion []string `json:"diasRepeticion"`
}

// GetSecciones lists the sections of a course with schedule days and the
// course name attached.
func GetSecciones(c *fiber.Ctx) error {
	cursoID, _ := c.Locals("cursoId").(uint)

	db := database.Database.Db

	var course models.Curso
	if err := db.First(&course, cursoID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Curso no encontrado.")
	}

	var secciones []models.Seccion
	if err := db.Where("curso_id = ?", cursoID).Find(&secciones).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las secciones.")
	}

	views := make([]seccionView, 0, len(secciones))
	for _, seccion := range secciones {
		view := seccionView{
			Seccion:        seccion,
			NombreCurso:    course.Nombre,
			DiasRepeticion: []string{},
		}
		if seccion.HorarioID != nil {
			var dias []models.DiaHorario
			db.Where("horario_id = ?", *seccion.HorarioID).Find(&dias)
			for _, dia := range dias {
				view.DiasRepeticion = append(view.DiasRepeticion, dia.Dia)
			}
		}
		views = append(views, view)
	}

	return middleware.Success(c, fiber.StatusOK, "", views)
}

type rosterStudentView struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Email           string `json:"email"`
	Cedula          string `json:"cedula"`
	Direccion       string `json:"direccion"`
	NumeroTelefono  string `json:"numeroTelefono"`
	FechaNacimiento string `json:"fechaNacimiento"`
}

// GetStudents lists the roster of a section with user data
func GetStudents(c *fiber.Ctx) error {
	seccionID, _ := c.Locals("seccionId").(uint)

	db := database.Database.Db

	var seccion models.Seccion
	if err := db.First(&seccion, seccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Sección no encontrada.")
	}

	var memberships []models.EstudianteSeccion
	if err := db.Where("seccion_id = ?", seccion.ID).Find(&memberships).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "Error al obtener los estudiantes de la sección.")
	}

	estudiantes := make([]rosterStudentView, 0, len(memberships))
	for _, membership := range memberships {
		var student models.Estudiante
		// Unscoped: students deleted after enrolling stay on historical rosters
		if err := db.Preload("Usuario", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
			First(&student, membership.EstudianteID).Error; err != nil {
			continue
		}
		estudiantes = append(estudiantes, rosterStudentView{
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

	return middleware.Success(c, fiber.StatusOK, "Estudiantes obtenidos exitosamente.", estudiantes)
}

type teacherSectionStudent struct {
	rosterStudentView
	Aprobado  string `json:"aprobado"`
	SeccionID uint   `json:"seccionId"`
}

type teacherSectionView struct {
	ID                   uint                    `json:"id"`
	Codigo               string                  `json:"codigo"`
	Nombre               string                  `json:"nombre"`
	Salon                string                  `json:"salon"`
	Capacidad            int                     `json:"capacidad"`
	Horario              fiber.Map               `json:"horario"`
	EstudiantesInscritos int                     `json:"estudiantesInscritos"`
	Estudiantes          []teacherSectionStudent `json:"estudiantes"`
}

// GetTeacherSections lists the authenticated teacher's sections with course,
// schedule and roster data, including each student's pass state.
func GetTeacherSections(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Error(c, fiber.StatusUnauthorized, "No autorizado.")
	}

	db := database.Database.Db

	var teacher models.Profesor
	if err := db.Where("usuario_id = ?", userID).First(&teacher).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Profesor no encontrado.")
	}

	var secciones []models.Seccion
	if err := db.Where("profesor_id = ?", teacher.ID).Preload("Curso").Find(&secciones).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las secciones.")
	}

	views := make([]teacherSectionView, 0, len(secciones))
	for _, seccion := range secciones {
		view := teacherSectionView{
			ID:        seccion.ID,
			Codigo:    seccion.Codigo,
			Nombre:    seccion.Curso.Nombre,
			Salon:     seccion.Salon,
			Capacidad: seccion.Capacidad,
		}

		if seccion.HorarioID != nil {
			var horario models.Horario
			if err := db.First(&horario, *seccion.HorarioID).Error; err == nil {
				var dias []models.DiaHorario
				db.Where("horario_id = ?", horario.ID).Find(&dias)
				diaNames := make([]string, 0, len(dias))
				for _, dia := range dias {
					diaNames = append(diaNames, dia.Dia)
				}
				view.Horario = fiber.Map{
					"fechaInicio": horario.FechaInicio.Format(utils.FechaISO),
					"fechaFin":    horario.FechaFinal.Format(utils.FechaISO),
					"horaInicio":  horario.HoraInicio,
					"horaFin":     horario.HoraFinal,
					"dias":        diaNames,
				}
			}
		}

		var memberships []models.EstudianteSeccion
		db.Where("seccion_id = ?", seccion.ID).Find(&memberships)

		view.EstudiantesInscritos = len(memberships)
		view.Estudiantes = make([]teacherSectionStudent, 0, len(memberships))
		for _, membership := range memberships {
			var student models.Estudiante
			if err := db.Preload("Usuario", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
				First(&student, membership.EstudianteID).Error; err != nil {
				continue
			}
			estado := "Reprobado"
			if membership.Aprobado {
				estado = "Aprobado"
			}
			view.Estudiantes = append(view.Estudiantes, teacherSectionStudent{
				rosterStudentView: rosterStudentView{
					ID:              student.ID,
					Nombre:          student.Usuario.Nombre,
					Apellido:        student.Usuario.Apellido,
					Email:           student.Usuario.Email,
					Cedula:          student.Usuario.Cedula,
					NumeroTelefono:  student.NumeroTelefono,
					FechaNacimiento: utils.FormatFecha(student.FechaNacimiento),
				},
				Aprobado:  estado,
				SeccionID: seccion.ID,
			})
		}

		views = append(views, view)
	}

	return middleware.Success(c, fiber.StatusOK, "", views)
}

// AprobarEstudiante marks a roster member as passed
func AprobarEstudiante(c *fiber.Ctx) error {
	return setAprobado(c, true, "El estudiante ha sido aprobado correctamente.")
}

// ReprobarEstudiante marks a roster member as failed
func ReprobarEstudiante(c *fiber.Ctx) error {
	return setAprobado(c, false, "El estudiante ha sido reprobado.")
}

func setAprobado(c *fiber.Ctx, aprobado bool, message string) error {
	seccionID, _ := c.Locals("seccionId").(uint)
	studentID, _ := c.Locals("studentId").(uint)

	db := database.Database.Db

	var seccion models.Seccion
	if err := db.First(&seccion, seccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Sección no encontrada.")
	}

	activeUsers := db.Model(&models.Usuario{}).Select("id")
	var student models.Estudiante
	if err := db.Where("usuario_id IN (?)", activeUsers).First(&student, studentID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Estudiante no encontrado.")
	}

	var membership models.EstudianteSeccion
	if err := db.Where("estudiante_id = ? AND seccion_id = ?", student.ID, seccion.ID).First(&membership).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "El estudiante no está inscrito en esta sección.")
	}

	if err := db.Model(&membership).Update("aprobado", aprobado).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el estado del estudiante.")
	}

	return middleware.Success(c, fiber.StatusOK, message, nil)
}
