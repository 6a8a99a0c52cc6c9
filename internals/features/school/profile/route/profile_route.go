// file: internals/features/school/profile/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	profileController "studentcrm_backend/internals/features/school/profile/controller"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

// ProfileRoutes mounts the self-service profile endpoints for students
// and teachers. Admin has no profile record.
func ProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)
	selfService := authMiddleware.OnlyRoles(
		"Access denied.",
		constants.RoleStudent, constants.RoleTeacher,
	)

	me := api.Group("/me", selfService)
	me.Get("/", ctrl.GetMe)
	me.Put("/", ctrl.UpdateMe)
}
