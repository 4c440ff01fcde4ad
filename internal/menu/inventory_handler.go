package menu

import (
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// GET /api/inventory (staff/admin)
func ListInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.MenuItem
		if err := database.DB.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter listelenemedi")
		}

		res := make([]MenuItemResponse, 0, len(items))
		for i := range items {
			res = append(res, toResponse(&items[i]))
		}
		return c.JSON(res)
	}
}

// PUT /api/inventory/:id (staff/admin), elle stok düzeltme
func UpdateStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		if body.Stock == nil || *body.Stock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz stok değeri")
		}

		var m models.MenuItem
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		if err := database.DB.Model(&m).Update("stock", *body.Stock).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok güncellenemedi")
		}
		m.Stock = *body.Stock

		return c.JSON(toResponse(&m))
	}
}
