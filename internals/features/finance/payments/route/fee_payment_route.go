// file: internals/features/finance/payments/route/fee_payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	feeController "studentcrm_backend/internals/features/finance/payments/controller"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

// FeePaymentRoutes mounts checkout for students and the gateway
// notification endpoint. The notification path is on the auth
// middleware's skip list, so the gateway can reach it without a token.
func FeePaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := feeController.NewFeePaymentController(db)
	studentOnly := authMiddleware.OnlyRoles(constants.RoleErrorStudent("pay fees"), constants.RoleStudent)

	fees := api.Group("/fees")
	fees.Post("/checkout", studentOnly, ctrl.Checkout)
	fees.Post("/notification", ctrl.Notification)
}
