package menu

import (
	"strings"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MenuItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available"`
	Stock       int     `json:"stock"`
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
	Stock       int     `json:"stock"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Available   *bool    `json:"available"`
	Stock       *int     `json:"stock"`
}

func toResponse(m *models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Available:   m.Available,
		Stock:       m.Stock,
	}
}

// GET /api/menu (public)
func ListMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.MenuItem{})

		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}

		var items []models.MenuItem
		if err := dbq.Order("category asc, name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü listelenemedi")
		}

		res := make([]MenuItemResponse, 0, len(items))
		for i := range items {
			res = append(res, toResponse(&items[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/menu (sadece admin)
func CreateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)

		if body.Name == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve category zorunlu")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
		}
		if body.Stock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stok negatif olamaz")
		}

		available := true
		if body.Available != nil {
			available = *body.Available
		}

		m := models.MenuItem{
			Name:        body.Name,
			Category:    body.Category,
			Price:       body.Price,
			Description: body.Description,
			ImageURL:    body.ImageURL,
			Available:   available,
			Stock:       body.Stock,
		}

		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün oluşturulamadı (isim kullanımda olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&m))
	}
}

// PUT /api/menu/:id (sadece admin)
func UpdateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var m models.MenuItem
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body UpdateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			m.Name = strings.TrimSpace(*body.Name)
		}
		if body.Category != nil {
			m.Category = strings.TrimSpace(*body.Category)
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
			}
			m.Price = *body.Price
		}
		if body.Description != nil {
			m.Description = *body.Description
		}
		if body.ImageURL != nil {
			m.ImageURL = *body.ImageURL
		}
		if body.Available != nil {
			m.Available = *body.Available
		}
		if body.Stock != nil {
			if *body.Stock < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Stok negatif olamaz")
			}
			m.Stock = *body.Stock
		}

		if err := database.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(toResponse(&m))
	}
}

// DELETE /api/menu/:id (sadece admin)
func DeleteMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.MenuItem{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.JSON(fiber.Map{"message": "Ürün silindi"})
	}
}
