// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feePaymentRoute "studentcrm_backend/internals/features/finance/payments/route"
	analyticsRoute "studentcrm_backend/internals/features/school/analytics/route"
	classRoute "studentcrm_backend/internals/features/school/classes/route"
	profileRoute "studentcrm_backend/internals/features/school/profile/route"
	studentRoute "studentcrm_backend/internals/features/school/students/route"
	teacherRoute "studentcrm_backend/internals/features/school/teachers/route"
	authRoute "studentcrm_backend/internals/features/users/auth/route"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. Login and logout are
// registered first; everything else goes through the bearer token
// middleware (the payment notification path is skip-listed inside it).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware())

	classRoute.ClassRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	profileRoute.ProfileRoutes(api, db)
	analyticsRoute.AnalyticsRoutes(api, db)
	feePaymentRoute.FeePaymentRoutes(api, db)
}
