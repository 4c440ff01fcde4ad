package loyalty

import (
	"errors"

	"lokanta-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type FeedbackRequest struct {
	GuestCode string `json:"guestCode"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type RedeemRequest struct {
	GuestCode      string `json:"guestCode"`
	PointsToRedeem int    `json:"pointsToRedeem"`
}

// POST /api/feedback (public, misafir kodu ile)
func LeaveFeedbackHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FeedbackRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		rec, err := AwardFeedback(database.DB, body.GuestCode, body.Rating, body.Comment)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingGuestCode), errors.Is(err, ErrBadRating):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Geri bildirim kaydedilemedi")
			}
		}

		return c.JSON(fiber.Map{
			"success":        true,
			"points_awarded": feedbackPoints,
			"total_points":   rec.Points,
		})
	}
}

// GET /api/loyalty?guestCode= (public)
func GetLoyaltyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		points, err := GetPoints(database.DB, c.Query("guestCode"))
		if err != nil {
			if errors.Is(err, ErrMissingGuestCode) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Puanlar okunamadı")
		}
		return c.JSON(fiber.Map{"points": points})
	}
}

// POST /api/loyalty/redeem (public)
func RedeemLoyaltyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RedeemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		discount, remaining, err := Redeem(database.DB, body.GuestCode, body.PointsToRedeem)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingGuestCode),
				errors.Is(err, ErrBadRedeemAmount),
				errors.Is(err, ErrNotEnoughPoints):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Puan kullanılamadı")
			}
		}

		return c.JSON(fiber.Map{
			"success":   true,
			"discount":  discount, // kuruş
			"remaining": remaining,
		})
	}
}

// POST /api/loyalty/guest-code (public), yeni misafir kodu üretir
func IssueGuestCodeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"guest_code": NewGuestCode(),
		})
	}
}
