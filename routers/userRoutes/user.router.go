package userRoutes

import (
	studentControllers "academia/controllers/students"
	teacherControllers "academia/controllers/teachers"
	userControllers "academia/controllers/users"
	"academia/middleware"
	"academia/models"
	userValidators "academia/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.JWTMiddleware)

	userGroup.Get("/current", userControllers.ViewCurrent)
	userGroup.Patch("/current", userValidators.UserEdit(), userControllers.ChangePersonalData)
	userGroup.Put("/current", userValidators.UserEdit(), userControllers.ChangePersonalData)

	userGroup.Get("/", middleware.Authorize(models.RoleAdministrador), userControllers.GetUsers)
	userGroup.Get("/:targetUserId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("targetUserId"), userControllers.GetOneUser)
	userGroup.Patch("/:targetUserId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("targetUserId"), userValidators.UserEdit(), userControllers.EditUser)
	userGroup.Put("/:targetUserId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("targetUserId"), userValidators.UserEdit(), userControllers.EditUser)
	userGroup.Delete("/:targetUserId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("targetUserId"), userControllers.DeleteUser)

	studentGroup := app.Group("/api/students", middleware.JWTMiddleware)

	studentGroup.Get("/", studentControllers.GetStudents)
	studentGroup.Get("/:studentId", middleware.ValidateID("studentId"), studentControllers.GetOneStudent)
	studentGroup.Patch("/:studentId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("studentId"), userValidators.PersonEdit(), studentControllers.UpdateStudent)
	studentGroup.Put("/:studentId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("studentId"), userValidators.PersonEdit(), studentControllers.UpdateStudent)
	studentGroup.Delete("/:studentId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("studentId"), studentControllers.DeleteStudent)

	teacherGroup := app.Group("/api/teachers", middleware.JWTMiddleware)

	teacherGroup.Get("/", teacherControllers.GetTeachers)
	teacherGroup.Get("/:teacherId", middleware.ValidateID("teacherId"), teacherControllers.GetOneTeacher)
	teacherGroup.Patch("/:teacherId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("teacherId"), userValidators.PersonEdit(), teacherControllers.UpdateTeacher)
	teacherGroup.Put("/:teacherId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("teacherId"), userValidators.PersonEdit(), teacherControllers.UpdateTeacher)
	teacherGroup.Delete("/:teacherId", middleware.Authorize(models.RoleAdministrador), middleware.ValidateID("teacherId"), teacherControllers.DeleteTeacher)
}
