package report

import (
	"strconv"

	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// GET /api/reports/sales?days=7 (staff/admin)
func SalesHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days, _ := strconv.Atoi(c.Query("days", "7"))

		rows, err := SalesOverTime(database.DB, days, cfg.PriceMode)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış verileri okunamadı")
		}
		return c.JSON(rows)
	}
}

// GET /api/reports/inventory-trends (staff/admin)
func InventoryTrendsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := InventoryTrends(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter eğilimleri okunamadı")
		}
		return c.JSON(rows)
	}
}

// GET /api/reports/staff-kpis (staff/admin)
func StaffKPIsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := StaffKPIs(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel metrikleri okunamadı")
		}
		return c.JSON(rows)
	}
}
