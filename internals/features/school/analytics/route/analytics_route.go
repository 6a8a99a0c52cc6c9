// file: internals/features/school/analytics/route/analytics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	analyticsController "studentcrm_backend/internals/features/school/analytics/controller"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

// AnalyticsRoutes mounts the dashboard counts (any principal) and the
// financial reporting endpoints (admin only).
func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("view reports"), constants.RoleAdmin)

	api.Get("/stats", ctrl.Stats)

	analytics := api.Group("/analytics", adminOnly)
	analytics.Get("/available-years", ctrl.AvailableYears)
	analytics.Get("/available-months", ctrl.AvailableMonths)
	analytics.Get("/financial", ctrl.Financial)
}
