package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "studentcrm_backend/internals/features/users/auth/controller"
	"studentcrm_backend/internals/middlewares"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", authMiddleware.AuthMiddleware(), ctrl.Logout)
}
