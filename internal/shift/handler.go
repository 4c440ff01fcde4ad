package shift

import (
	"regexp"
	"time"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

type ShiftRequest struct {
	StaffID   uint   `json:"staffId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ShiftResponse struct {
	ID        uint   `json:"id"`
	StaffID   uint   `json:"staff_id"`
	StaffName string `json:"staff_name"`
	StaffRole string `json:"staff_role"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func toResponse(s *models.Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		StaffID:   s.StaffID,
		StaffName: s.Staff.Name,
		StaffRole: s.Staff.Role,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

// GET /api/shifts?weekStart=YYYY-MM-DD (staff/admin), 7 günlük pencere
func ListShiftsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		weekStart := c.Query("weekStart")
		if weekStart == "" {
			return fiber.NewError(fiber.StatusBadRequest, "weekStart zorunlu (YYYY-MM-DD)")
		}
		start, err := time.Parse("2006-01-02", weekStart)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "weekStart formatı geçersiz")
		}
		weekEnd := start.AddDate(0, 0, 6).Format("2006-01-02")

		var shifts []models.Shift
		if err := database.DB.Preload("Staff").
			Where("date BETWEEN ? AND ?", weekStart, weekEnd).
			Order("date asc, start_time asc").
			Find(&shifts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiyalar listelenemedi")
		}

		res := make([]ShiftResponse, 0, len(shifts))
		for i := range shifts {
			res = append(res, toResponse(&shifts[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/shifts (sadece admin)
func CreateShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.StaffID == 0 || body.Date == "" || body.StartTime == "" || body.EndTime == "" {
			return fiber.NewError(fiber.StatusBadRequest, "staffId, date, startTime ve endTime zorunlu")
		}
		if !dateRe.MatchString(body.Date) {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih YYYY-MM-DD formatında olmalı")
		}
		if !timeRe.MatchString(body.StartTime) || !timeRe.MatchString(body.EndTime) {
			return fiber.NewError(fiber.StatusBadRequest, "Saatler HH:MM formatında olmalı")
		}

		var staffMember models.Staff
		if err := database.DB.First(&staffMember, body.StaffID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Personel bulunamadı")
		}

		s := models.Shift{
			StaffID:   body.StaffID,
			Date:      body.Date,
			StartTime: body.StartTime,
			EndTime:   body.EndTime,
		}
		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya oluşturulamadı")
		}
		s.Staff = staffMember

		return c.Status(fiber.StatusCreated).JSON(toResponse(&s))
	}
}

// PUT /api/shifts/:id (sadece admin)
func UpdateShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.Shift
		if err := database.DB.Preload("Staff").First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Vardiya bulunamadı")
		}

		var body ShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Date != "" {
			if !dateRe.MatchString(body.Date) {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih YYYY-MM-DD formatında olmalı")
			}
			s.Date = body.Date
		}
		if body.StartTime != "" {
			if !timeRe.MatchString(body.StartTime) {
				return fiber.NewError(fiber.StatusBadRequest, "Saatler HH:MM formatında olmalı")
			}
			s.StartTime = body.StartTime
		}
		if body.EndTime != "" {
			if !timeRe.MatchString(body.EndTime) {
				return fiber.NewError(fiber.StatusBadRequest, "Saatler HH:MM formatında olmalı")
			}
			s.EndTime = body.EndTime
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya güncellenemedi")
		}

		return c.JSON(toResponse(&s))
	}
}

// DELETE /api/shifts/:id (sadece admin)
func DeleteShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Shift{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Vardiya bulunamadı")
		}

		return c.JSON(fiber.Map{"message": "Vardiya silindi"})
	}
}

// GET /api/payroll?month=YYYY-MM (sadece admin)
func PayrollHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		month := c.Query("month")
		if !monthRe.MatchString(month) {
			return fiber.NewError(fiber.StatusBadRequest, "month zorunlu (YYYY-MM)")
		}

		rows, err := ComputePayroll(database.DB, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bordro hesaplanamadı")
		}
		return c.JSON(rows)
	}
}
