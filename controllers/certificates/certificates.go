package certificateController

import (
	"fmt"
	"time"

	"academia/database"
	"academia/middleware"
	"academia/models"
	"academia/utils"
	validators "academia/validators/certificate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type certStudentView struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Cedula   string `json:"cedula"`
	Estado   string `json:"estado"`
}

type certSeccionView struct {
	ID          uint              `json:"id"`
	Codigo      string            `json:"codigo"`
	Estudiantes []certStudentView `json:"estudiantes"`
}

type certCursoView struct {
	ID        uint              `json:"id"`
	Nombre    string            `json:"nombre"`
	Codigo    string            `json:"codigo"`
	Secciones []certSeccionView `json:"secciones"`
}

type certificadoView struct {
	models.Certificado
	CodigoSeccion    string `json:"codigoSeccion"`
	CedulaEstudiante string `json:"cedulaEstudiante"`
}

// GetCertificadosData returns the issuing workspace for administrators:
// courses with their sections and graded rosters, plus every certificate
// already issued.
func GetCertificadosData(c *fiber.Ctx) error {
	db := database.Database.Db

	var cursos []models.Curso
	if err := db.Find(&cursos).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los datos.")
	}

	cursoViews := make([]certCursoView, 0, len(cursos))
	for _, curso := range cursos {
		cursoView := certCursoView{ID: curso.ID, Nombre: curso.Nombre, Codigo: curso.Codigo}

		var secciones []models.Seccion
		db.Where("curso_id = ?", curso.ID).Find(&secciones)

		for _, seccion := range secciones {
			seccionView := certSeccionView{ID: seccion.ID, Codigo: seccion.Codigo, Estudiantes: []certStudentView{}}

			var memberships []models.EstudianteSeccion
			db.Where("seccion_id = ?", seccion.ID).Find(&memberships)

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
				seccionView.Estudiantes = append(seccionView.Estudiantes, certStudentView{
					ID:       student.ID,
					Nombre:   student.Usuario.Nombre,
					Apellido: student.Usuario.Apellido,
					Cedula:   student.Usuario.Cedula,
					Estado:   estado,
				})
			}

			cursoView.Secciones = append(cursoView.Secciones, seccionView)
		}

		cursoViews = append(cursoViews, cursoView)
	}

	var certificados []models.Certificado
	if err := db.Order("created_at DESC").Find(&certificados).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los certificados.")
	}

	certViews := make([]certificadoView, 0, len(certificados))
	for _, cert := range certificados {
		certViews = append(certViews, enrichCertificado(db, cert))
	}

	return middleware.Success(c, fiber.StatusOK, "", fiber.Map{
		"cursos":       cursoViews,
		"certificados": certViews,
	})
}

func enrichCertificado(db *gorm.DB, cert models.Certificado) certificadoView {
	view := certificadoView{Certificado: cert}

	var seccion models.Seccion
	if err := db.Unscoped().First(&seccion, cert.SeccionID).Error; err == nil {
		view.CodigoSeccion = seccion.Codigo
	}

	var student models.Estudiante
	if err := db.Preload("Usuario", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		First(&student, cert.EstudianteID).Error; err == nil {
		view.CedulaEstudiante = student.Usuario.Cedula
	}

	return view
}

func listCertificados(c *fiber.Ctx, db *gorm.DB, studentID uint) error {
	var certificados []models.Certificado
	if err := db.Where("estudiante_id = ?", studentID).Order("created_at DESC").Find(&certificados).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los certificados.")
	}

	views := make([]certificadoView, 0, len(certificados))
	for _, cert := range certificados {
		views = append(views, enrichCertificado(db, cert))
	}

	return middleware.Success(c, fiber.StatusOK, "", views)
}

// GetOwnCertificados lists the certificates of the authenticated student.
func GetOwnCertificados(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	db := database.Database.Db

	var student models.Estudiante
	if err := db.Where("usuario_id = ?", userID).First(&student).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Estudiante no encontrado.")
	}

	return listCertificados(c, db, student.ID)
}

// GetCertificadosByStudent lists the certificates of one student
func GetCertificadosByStudent(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(uint)

	db := database.Database.Db

	var student models.Estudiante
	if err := db.First(&student, studentID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Estudiante no encontrado.")
	}

	return listCertificados(c, db, student.ID)
}

// CreateCertificado issues a certificate to a student for a section
func CreateCertificado(c *fiber.Ctx) error {
	studentID, _ := c.Locals("studentId").(uint)
	seccionID, _ := c.Locals("seccionId").(uint)

	reqData, ok := c.Locals("validatedCertificate").(*validators.CertificateRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Cuerpo de solicitud inválido.")
	}

	db := database.Database.Db

	activeUsers := db.Model(&models.Usuario{}).Select("id")
	var student models.Estudiante
	if err := db.Where("usuario_id IN (?)", activeUsers).First(&student, studentID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Estudiante no encontrado.")
	}

	var seccion models.Seccion
	if err := db.First(&seccion, seccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Sección no encontrada.")
	}

	fechaExpedicion, _ := time.Parse(utils.FechaISO, reqData.FechaExpedicion)

	cert := models.Certificado{
		Titulo:          reqData.Titulo,
		Descripcion:     reqData.Descripcion,
		FechaExpedicion: fechaExpedicion,
		EstudianteID:    student.ID,
		SeccionID:       seccion.ID,
	}

	if err := db.Create(&cert).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo crear el certificado.")
	}

	return middleware.Success(c, fiber.StatusCreated, "Certificado creado exitosamente.", cert)
}

// DeleteCertificado removes a certificate permanently
func DeleteCertificado(c *fiber.Ctx) error {
	certificadoID, _ := c.Locals("certificadoId").(uint)

	db := database.Database.Db

	var cert models.Certificado
	if err := db.First(&cert, certificadoID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Certificado no encontrado.")
	}

	if err := db.Delete(&cert).Error; err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el certificado.")
	}

	return middleware.Success(c, fiber.StatusOK, "Certificado eliminado exitosamente.", nil)
}

// ReportCertificado renders a certificate as a downloadable PDF. Student,
// section and course are read unscoped so certificates stay printable after
// the referenced records are removed.
func ReportCertificado(c *fiber.Ctx) error {
	certificadoID, _ := c.Locals("certificadoId").(uint)

	db := database.Database.Db

	var cert models.Certificado
	if err := db.First(&cert, certificadoID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Certificado no encontrado.")
	}

	var student models.Estudiante
	if err := db.Unscoped().Preload("Usuario", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		First(&student, cert.EstudianteID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Estudiante no encontrado.")
	}

	var seccion models.Seccion
	if err := db.Unscoped().First(&seccion, cert.SeccionID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Sección no encontrada.")
	}

	var curso models.Curso
	db.Unscoped().First(&curso, seccion.CursoID)

	var instructor models.Profesor
	db.Unscoped().Preload("Usuario", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		First(&instructor, seccion.ProfesorID)

	data := utils.CertificateReportData{
		NombreEstudiante: student.Usuario.Nombre + " " + student.Usuario.Apellido,
		CedulaEstudiante: student.Usuario.Cedula,
		NombreProfesor:   instructor.Usuario.Nombre + " " + instructor.Usuario.Apellido,
		NombreCurso:      curso.Nombre,
		Titulo:           cert.Titulo,
		Descripcion:      cert.Descripcion,
		FechaExpedicion:  cert.FechaExpedicion,
	}

	pdf, err := utils.RenderCertificatePDF(data)
	if err != nil {
		return middleware.Error(c, fiber.StatusInternalServerError, "No se pudo generar el reporte.")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=certificado-%d.pdf", cert.ID))
	return c.Status(fiber.StatusOK).Send(pdf)
}
