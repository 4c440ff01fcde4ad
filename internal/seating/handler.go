package seating

import (
	"time"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateTableRequest struct {
	Number   string  `json:"number"`
	Capacity int     `json:"capacity"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type UpdateTableRequest struct {
	Number   *string  `json:"number"`
	Capacity *int     `json:"capacity"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
}

type SetStatusRequest struct {
	Status models.TableStatus `json:"status"`
}

// GET /api/seating (public)
func GetSeatingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tables, err := Snapshot(database.DB, time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Oturma planı yüklenemedi")
		}
		return c.JSON(tables)
	}
}

// PATCH /api/seating/:tableId/status (sadece admin)
// Kayıtlı durum yazılır; aynı güne rezervasyon varsa türetilmiş görünümde
// reserved kazanır.
func SetTableStatusHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID, err := c.ParamsInt("tableId")
		if err != nil || tableID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var body SetStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if !body.Status.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa durumu")
		}

		var table models.Table
		if err := database.DB.First(&table, tableID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		if err := database.DB.Model(&table).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa durumu güncellenemedi")
		}

		BroadcastSnapshot(database.DB, hub)

		return c.JSON(fiber.Map{
			"id":     table.ID,
			"number": table.Number,
			"status": body.Status,
		})
	}
}

// POST /api/tables (sadece admin)
func CreateTableHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Number == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Masa numarası zorunlu")
		}
		if body.Capacity <= 0 {
			body.Capacity = 4
		}

		table := models.Table{
			Number:   body.Number,
			Capacity: body.Capacity,
			X:        body.X,
			Y:        body.Y,
			Status:   models.TableAvailable,
		}
		if err := database.DB.Create(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Masa oluşturulamadı (numara kullanımda olabilir)")
		}

		BroadcastSnapshot(database.DB, hub)

		return c.Status(fiber.StatusCreated).JSON(table)
	}
}

// PUT /api/tables/:id (sadece admin)
func UpdateTableHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var table models.Table
		if err := database.DB.First(&table, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		var body UpdateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Number != nil {
			table.Number = *body.Number
		}
		if body.Capacity != nil {
			table.Capacity = *body.Capacity
		}
		if body.X != nil {
			table.X = *body.X
		}
		if body.Y != nil {
			table.Y = *body.Y
		}

		if err := database.DB.Save(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa güncellenemedi")
		}

		BroadcastSnapshot(database.DB, hub)

		return c.JSON(table)
	}
}

// DELETE /api/tables/:id (sadece admin)
func DeleteTableHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var table models.Table
		if err := database.DB.First(&table, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		if err := database.DB.Delete(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa silinemedi")
		}

		BroadcastSnapshot(database.DB, hub)

		return c.JSON(fiber.Map{"message": "Masa silindi"})
	}
}
