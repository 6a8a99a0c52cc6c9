// file: internals/features/school/analytics/controller/analytics_controller.go
package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsService "studentcrm_backend/internals/features/school/analytics/service"
	helper "studentcrm_backend/internals/helpers"
)

type AnalyticsController struct {
	DB      *gorm.DB
	Service *analyticsService.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{
		DB:      db,
		Service: analyticsService.NewAnalyticsService(db),
	}
}

// GET /api/stats  (any authenticated principal)
func (ac *AnalyticsController) Stats(c *fiber.Ctx) error {
	cards, err := ac.Service.DashboardCards()
	if err != nil {
		log.Println("[ERROR] dashboard stats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching stats")
	}
	return helper.JsonOK(c, "", cards)
}

// GET /api/analytics/available-years  (admin only)
func (ac *AnalyticsController) AvailableYears(c *fiber.Ctx) error {
	years, err := ac.Service.AvailableYears()
	if err != nil {
		log.Println("[ERROR] available years:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching available years")
	}
	return helper.JsonOK(c, "", fiber.Map{"years": years})
}

// GET /api/analytics/available-months?year=YYYY  (admin only)
func (ac *AnalyticsController) AvailableMonths(c *fiber.Ctx) error {
	year, err := requireYear(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Year is required.")
	}
	months, err := ac.Service.AvailableMonths(year)
	if err != nil {
		log.Println("[ERROR] available months:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching available months")
	}
	return helper.JsonOK(c, "", fiber.Map{"months": months})
}

// GET /api/analytics/financial?view=yearly|monthly&year=YYYY&month=MM
// (admin only). Month is required for the monthly view and ignored for
// the yearly one.
func (ac *AnalyticsController) Financial(c *fiber.Ctx) error {
	year, err := requireYear(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Year is required.")
	}

	month := 0
	switch c.Query("view") {
	case "yearly":
	case "monthly":
		month, err = strconv.Atoi(c.Query("month"))
		if err != nil || month < 1 || month > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid view or missing month.")
		}
	default:
		// Absent view is an error, not a default
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid view or missing month.")
	}

	summary, err := ac.Service.Summary(year, month)
	if err != nil {
		log.Println("[ERROR] financial summary:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching financial summary")
	}
	return helper.JsonOK(c, "", summary)
}

func requireYear(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Query("year"))
}
