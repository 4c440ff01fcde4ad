package bill

import (
	"errors"

	"lokanta-backend/internal/auth"
	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SplitRequest struct {
	Shares []ShareRequest `json:"shares"`
}

type BillResponse struct {
	ID      uint   `json:"id"`
	OrderID uint   `json:"order_id"`
	Name    string `json:"name"`
	Amount  int64  `json:"amount"` // kuruş
	Paid    bool   `json:"paid"`
}

func toResponses(bills []models.Bill) []BillResponse {
	res := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		res = append(res, BillResponse{
			ID:      b.ID,
			OrderID: b.OrderID,
			Name:    b.Name,
			Amount:  b.Amount,
			Paid:    b.Paid,
		})
	}
	return res
}

// POST /api/bills/:orderId/split
func SplitBillHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := c.ParamsInt("orderId")
		if err != nil || orderID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body SplitRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		bills, err := Split(database.DB, uint(orderID), userID, body.Shares, cfg.PriceMode)
		if err != nil {
			var allocErr *AllocationError
			var unknownErr *UnknownShareItemError
			switch {
			case errors.Is(err, ErrNotOwner):
				return fiber.NewError(fiber.StatusForbidden, err.Error())
			case errors.Is(err, ErrNoShares),
				errors.As(err, &allocErr),
				errors.As(err, &unknownErr):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		return c.JSON(toResponses(bills))
	}
}

// GET /api/bills/:orderId
func GetBillsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := c.ParamsInt("orderId")
		if err != nil || orderID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		bills, err := ListByOrder(database.DB, uint(orderID), userID)
		if err != nil {
			if errors.Is(err, ErrNotOwner) {
				return fiber.NewError(fiber.StatusForbidden, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap payları listelenemedi")
		}

		return c.JSON(toResponses(bills))
	}
}

// POST /api/bills/:billId/pay
func PayBillHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		billID, err := c.ParamsInt("billId")
		if err != nil || billID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz pay id")
		}

		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		b, err := MarkPaid(database.DB, uint(billID), userID)
		if err != nil {
			switch {
			case errors.Is(err, ErrBillNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrNotOwner):
				return fiber.NewError(fiber.StatusForbidden, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Pay ödendi olarak işaretlenemedi")
			}
		}

		return c.JSON(BillResponse{
			ID:      b.ID,
			OrderID: b.OrderID,
			Name:    b.Name,
			Amount:  b.Amount,
			Paid:    b.Paid,
		})
	}
}
