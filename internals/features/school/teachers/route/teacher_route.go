// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	teacherController "studentcrm_backend/internals/features/school/teachers/controller"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

// TeacherRoutes mounts the teacher endpoints. GetByID stays open to
// authenticated teachers so the controller can apply the own-record
// check; everything else is admin only.
func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manage teachers"), constants.RoleAdmin)

	teachers := api.Group("/teacher")
	teachers.Get("/", adminOnly, ctrl.List)
	teachers.Get("/:id",
		authMiddleware.OnlyRoles("Access denied.", constants.RoleAdmin, constants.RoleTeacher),
		ctrl.GetByID)
	teachers.Post("/", adminOnly, ctrl.Create)
	teachers.Put("/:id", adminOnly, ctrl.Update)
	teachers.Delete("/:id", adminOnly, ctrl.Delete)
}
