package courseRoutes

import (
	courseControllers "academia/controllers/courses"
	scheduleControllers "academia/controllers/schedules"
	seccionControllers "academia/controllers/secciones"
	"academia/middleware"
	"academia/models"
	courseValidators "academia/validators/course"
	scheduleValidators "academia/validators/schedule"
	seccionValidators "academia/validators/seccion"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses", middleware.JWTMiddleware)

	// The static /schedules path must register before the :courseId param.
	courseGroup.Get("/schedules", courseControllers.GetCoursesSchedules)
	courseGroup.Get("/", courseControllers.GetCourses)
	courseGroup.Post("/", middleware.Authorize(models.RoleAdministrador), courseValidators.Course(), courseControllers.CreateCourse)
	courseGroup.Get("/:courseId", middleware.ValidateID("courseId"), courseControllers.GetOneCourse)
	courseGroup.Patch("/:courseId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("courseId"), courseValidators.Course(), courseControllers.UpdateCourse)
	courseGroup.Put("/:courseId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("courseId"), courseValidators.Course(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:courseId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("courseId"), courseControllers.DeleteCourse)

	courseGroup.Get("/:cursoId/secciones", middleware.ValidateID("cursoId"), seccionControllers.GetSecciones)

	seccionGroup := app.Group("/api/secciones", middleware.JWTMiddleware)

	seccionGroup.Get("/teacher", middleware.Authorize(models.RoleProfesor), seccionControllers.GetTeacherSections)
	seccionGroup.Post("/", middleware.Authorize(models.RoleAdministrador), seccionValidators.Seccion(), seccionControllers.CreateSeccion)
	seccionGroup.Get("/:cursoId", middleware.ValidateID("cursoId"), seccionControllers.GetSecciones)
	seccionGroup.Put("/:seccionId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("seccionId"), seccionValidators.SeccionEdit(), seccionControllers.UpdateSeccion)
	seccionGroup.Get("/:seccionId/students", middleware.ValidateID("seccionId"), seccionControllers.GetStudents)
	seccionGroup.Get("/:seccionId/student/:studentId/aprobar", middleware.Authorize(models.RoleProfesor, models.RoleAdministrador), middleware.ValidateID("seccionId"), middleware.ValidateID("studentId"), seccionControllers.AprobarEstudiante)
	seccionGroup.Get("/:seccionId/student/:studentId/reprobar", middleware.Authorize(models.RoleProfesor, models.RoleAdministrador), middleware.ValidateID("seccionId"), middleware.ValidateID("studentId"), seccionControllers.ReprobarEstudiante)
	seccionGroup.Patch("/:seccionId/students/:studentId/aprobar", middleware.Authorize(models.RoleProfesor, models.RoleAdministrador), middleware.ValidateID("seccionId"), middleware.ValidateID("studentId"), seccionControllers.AprobarEstudiante)
	seccionGroup.Patch("/:seccionId/students/:studentId/reprobar", middleware.Authorize(models.RoleProfesor, models.RoleAdministrador), middleware.ValidateID("seccionId"), middleware.ValidateID("studentId"), seccionControllers.ReprobarEstudiante)

	scheduleGroup := app.Group("/api/schedules", middleware.JWTMiddleware, middleware.Authorize(models.RoleAdministrador))

	scheduleGroup.Post("/", scheduleValidators.Schedule(true), scheduleControllers.CreateSchedule)
	scheduleGroup.Patch("/:cursoId/secciones/:seccionId/horario", middleware.ValidateID("cursoId"), middleware.ValidateID("seccionId"), scheduleValidators.Schedule(false), scheduleControllers.UpdateSchedule)
	scheduleGroup.Put("/:cursoId/:seccionId", middleware.ValidateID("cursoId"), middleware.ValidateID("seccionId"), scheduleValidators.Schedule(false), scheduleControllers.UpdateSchedule)
}
