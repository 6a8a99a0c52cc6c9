// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	studentController "studentcrm_backend/internals/features/school/students/controller"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

// StudentRoutes mounts the student endpoints. GetByID stays open to
// authenticated students so the controller can apply the own-record
// check; everything else is admin only.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manage students"), constants.RoleAdmin)

	students := api.Group("/student")
	students.Get("/", adminOnly, ctrl.List)
	students.Get("/:id",
		authMiddleware.OnlyRoles("Access denied.", constants.RoleAdmin, constants.RoleStudent),
		ctrl.GetByID)
	students.Post("/", adminOnly, ctrl.Create)
	students.Put("/:id", adminOnly, ctrl.Update)
	students.Delete("/:id", adminOnly, ctrl.Delete)
}
