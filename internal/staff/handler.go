package staff

import (
	"strings"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StaffRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Role  string  `json:"role"`
	Wage  float64 `json:"wage"`
}

// GET /api/staff (staff/admin)
func ListStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var staffList []models.Staff
		if err := database.DB.Order("created_at desc").Find(&staffList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel listelenemedi")
		}
		return c.JSON(staffList)
	}
}

// POST /api/staff (sadece admin)
func CreateStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Role == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve role zorunlu")
		}
		if body.Wage < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ücret negatif olamaz")
		}

		s := models.Staff{
			Name:  body.Name,
			Email: body.Email,
			Phone: body.Phone,
			Role:  body.Role,
			Wage:  body.Wage,
		}
		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel eklenemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// PUT /api/staff/:id (sadece admin)
func UpdateStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.Staff
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı")
		}

		var body StaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != "" {
			s.Name = strings.TrimSpace(body.Name)
		}
		if body.Email != "" {
			s.Email = body.Email
		}
		if body.Phone != "" {
			s.Phone = body.Phone
		}
		if body.Role != "" {
			s.Role = body.Role
		}
		if body.Wage > 0 {
			s.Wage = body.Wage
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel güncellenemedi")
		}

		return c.JSON(s)
	}
}

// DELETE /api/staff/:id (sadece admin)
func DeleteStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Staff{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı")
		}

		return c.JSON(fiber.Map{"message": "Personel silindi"})
	}
}
