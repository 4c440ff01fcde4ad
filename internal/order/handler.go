package order

import (
	"errors"

	"lokanta-backend/internal/auth"
	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	Items []ItemRequest `json:"items"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type OrderItemResponse struct {
	ID        uint    `json:"id"`
	MenuID    uint    `json:"menu_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	UserID    uint                `json:"user_id"`
	Customer  string              `json:"customer"`
	Status    models.OrderStatus  `json:"status"`
	Total     int64               `json:"total"` // kuruş
	Items     []OrderItemResponse `json:"items"`
	CreatedAt string              `json:"created_at"`
}

func toResponse(o *models.Order, priceMode string) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, OrderItemResponse{
			ID:        it.ID,
			MenuID:    it.MenuItemID,
			Name:      it.MenuItem.Name,
			Quantity:  it.Quantity,
			UnitPrice: EffectivePrice(it, priceMode),
		})
	}
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Customer:  o.User.Name,
		Status:    o.Status,
		Total:     Total(o, priceMode),
		Items:     items,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/orders
func CreateOrderHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		o, err := Create(database.DB, userID, body.Items)
		if err != nil {
			var stockErr *StockError
			var unknownErr *UnknownItemError
			switch {
			case errors.Is(err, ErrEmptyOrder), errors.Is(err, ErrBadQuantity):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.As(err, &stockErr), errors.As(err, &unknownErr):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(o, cfg.PriceMode))
	}
}

// GET /api/orders (staff/admin)
func ListOrdersHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := List(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		res := make([]OrderResponse, 0, len(orders))
		for i := range orders {
			res = append(res, toResponse(&orders[i], cfg.PriceMode))
		}
		return c.JSON(res)
	}
}

// GET /api/orders/my
func MyOrdersHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		orders, err := ListByUser(database.DB, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişleriniz listelenemedi")
		}

		res := make([]OrderResponse, 0, len(orders))
		for i := range orders {
			res = append(res, toResponse(&orders[i], cfg.PriceMode))
		}
		return c.JSON(res)
	}
}

// PUT /api/orders/:id (staff/admin)
func UpdateStatusHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := c.ParamsInt("id")
		if err != nil || orderID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		o, err := UpdateStatus(database.DB, uint(orderID), body.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidStatus):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrOrderNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş durumu güncellenemedi")
			}
		}

		return c.JSON(toResponse(o, cfg.PriceMode))
	}
}

// DELETE /api/orders/:id (sahibi veya staff/admin; sadece new)
func CancelOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := c.ParamsInt("id")
		if err != nil || orderID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		if err := Cancel(database.DB, uint(orderID), userID, role); err != nil {
			var notCancellable *NotCancellableError
			switch {
			case errors.Is(err, ErrOrderNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrNotOwner):
				return fiber.NewError(fiber.StatusForbidden, err.Error())
			case errors.As(err, &notCancellable):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş iptal edilemedi")
			}
		}

		return c.JSON(fiber.Map{"message": "Sipariş iptal edildi"})
	}
}
