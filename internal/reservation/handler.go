package reservation

import (
	"regexp"
	"strings"

	"lokanta-backend/internal/auth"
	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"
	"lokanta-backend/internal/seating"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

type ReservationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"partySize"`
	TableID   uint   `json:"tableId"`
}

func validate(body *ReservationRequest) error {
	if body.Name == "" || body.Email == "" || body.Phone == "" ||
		body.Date == "" || body.Time == "" || body.PartySize == 0 || body.TableID == 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Tüm alanlar zorunlu (name, email, phone, date, time, partySize, tableId)")
	}
	if !dateRe.MatchString(body.Date) {
		return fiber.NewError(fiber.StatusBadRequest, "Tarih YYYY-MM-DD formatında olmalı")
	}
	if !timeRe.MatchString(body.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "Saat HH:MM formatında olmalı (24 saat)")
	}
	if body.PartySize < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Kişi sayısı en az 1 olmalı")
	}
	return nil
}

// optionalUserID: rota public; token varsa rezervasyon sahibine bağlanır.
func optionalUserID(c *fiber.Ctx, cfg *config.Config) *uint {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil
	}
	token, err := jwt.ParseWithClaims(parts[1], &auth.JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(*auth.JWTCustomClaims)
	if !ok {
		return nil
	}
	return &claims.UserID
}

// POST /api/reservations (public)
func CreateReservationHandler(cfg *config.Config, hub *seating.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReservationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate(&body); err != nil {
			return err
		}

		var table models.Table
		if err := database.DB.First(&table, body.TableID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Masa bulunamadı")
		}

		r := models.Reservation{
			Name:      body.Name,
			Email:     body.Email,
			Phone:     body.Phone,
			Date:      body.Date,
			Time:      body.Time,
			PartySize: body.PartySize,
			UserID:    optionalUserID(c, cfg),
			TableID:   body.TableID,
		}
		if err := database.DB.Create(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon oluşturulamadı")
		}

		// Yanıt döner, yayın arkadan gelir
		seating.BroadcastSnapshot(database.DB, hub)

		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// GET /api/reservations (staff/admin)
func ListReservationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reservations []models.Reservation
		if err := database.DB.Order("date asc, time asc").Find(&reservations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyonlar listelenemedi")
		}
		return c.JSON(reservations)
	}
}

// PUT /api/reservations/:id (staff/admin)
func UpdateReservationHandler(hub *seating.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var r models.Reservation
		if err := database.DB.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rezervasyon bulunamadı")
		}

		var body ReservationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate(&body); err != nil {
			return err
		}

		r.Name = body.Name
		r.Email = body.Email
		r.Phone = body.Phone
		r.Date = body.Date
		r.Time = body.Time
		r.PartySize = body.PartySize
		r.TableID = body.TableID

		if err := database.DB.Save(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon güncellenemedi")
		}

		seating.BroadcastSnapshot(database.DB, hub)

		return c.JSON(fiber.Map{
			"message":     "Rezervasyon güncellendi",
			"reservation": r,
		})
	}
}

// DELETE /api/reservations/:id (staff/admin)
func DeleteReservationHandler(hub *seating.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Reservation{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Rezervasyon bulunamadı")
		}

		seating.BroadcastSnapshot(database.DB, hub)

		return c.JSON(fiber.Map{"message": "Rezervasyon silindi"})
	}
}
