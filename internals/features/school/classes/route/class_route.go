// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	classController "studentcrm_backend/internals/features/school/classes/controller"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

// ClassRoutes mounts the class endpoints on an already-authenticated
// router. Reads are open to every principal; writes are admin only.
func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manage classes"), constants.RoleAdmin)

	classes := api.Group("/classes")
	classes.Get("/", ctrl.List)
	classes.Get("/:id", ctrl.GetByID)
	classes.Post("/", adminOnly, ctrl.Create)
	classes.Put("/:id", adminOnly, ctrl.Update)
	classes.Delete("/:id", adminOnly, ctrl.Delete)
	classes.Put("/:id/assign-teacher", adminOnly, ctrl.AssignTeacher)
	classes.Put("/:id/assign-students", adminOnly, ctrl.AssignStudents)
}
