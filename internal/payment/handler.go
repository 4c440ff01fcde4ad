package payment

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"lokanta-backend/internal/auth"
	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"
	"lokanta-backend/internal/order"

	"github.com/gofiber/fiber/v2"
)

const SignatureHeader = "Payment-Signature"

type CreateIntentRequest struct {
	Items    []order.ItemRequest `json:"items"`
	Currency string              `json:"currency"`
}

type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string `json:"id"`
			Metadata struct {
				OrderID string `json:"order_id"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// POST /api/payments/intent
// Siparişi normal stok kurallarıyla oluşturur, sağlayıcıdan intent alır.
// Sağlayıcı başarısız olursa sipariş geri silinir; yarım durum kalmaz.
func CreateIntentHandler(cfg *config.Config, gw Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body CreateIntentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Currency == "" {
			body.Currency = "try"
		}

		o, err := order.Create(database.DB, userID, body.Items)
		if err != nil {
			var stockErr *order.StockError
			var unknownErr *order.UnknownItemError
			switch {
			case errors.Is(err, order.ErrEmptyOrder), errors.Is(err, order.ErrBadQuantity),
				errors.As(err, &stockErr), errors.As(err, &unknownErr):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
			}
		}

		amount := order.Total(o, cfg.PriceMode)

		intent, err := gw.CreateIntent(amount, body.Currency, o.ID)
		if err != nil {
			log.Printf("intent oluşturulamadı, sipariş %d geri alınıyor: %v", o.ID, err)
			if cancelErr := order.Cancel(database.DB, o.ID, userID, role); cancelErr != nil {
				log.Printf("sipariş %d geri alınamadı: %v", o.ID, cancelErr)
			}
			return fiber.NewError(fiber.StatusBadGateway, "Ödeme başlatılamadı")
		}

		return c.JSON(fiber.Map{
			"order_id":      o.ID,
			"amount":        amount,
			"client_secret": intent.ClientSecret,
		})
	}
}

// POST /api/payments/webhook (public)
// İmzasız/bozuk çağrılar reddedilir. Bilinmeyen sipariş id'si hata değildir:
// sağlayıcı teslimatı tekrarlar, loglanıp 200 dönülür.
func WebhookHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := c.Body()

		if err := VerifySignature(payload, c.Get(SignatureHeader), cfg.PaymentWebhookSecret, time.Now()); err != nil {
			log.Printf("webhook imza hatası: %v", err)
			return fiber.NewError(fiber.StatusBadRequest, "Webhook imzası geçersiz")
		}

		var event WebhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Webhook gövdesi çözümlenemedi")
		}

		switch event.Type {
		case "payment_intent.succeeded":
			orderID, err := strconv.ParseUint(event.Data.Object.Metadata.OrderID, 10, 64)
			if err != nil {
				log.Printf("webhook: order_id çözümlenemedi: %q", event.Data.Object.Metadata.OrderID)
				break
			}
			res := database.DB.Model(&models.Order{}).
				Where("id = ?", orderID).
				Update("status", models.OrderStatusPaid)
			if res.Error != nil {
				log.Printf("webhook: sipariş %d paid yapılamadı: %v", orderID, res.Error)
			} else if res.RowsAffected == 0 {
				log.Printf("webhook: %d id'li sipariş bulunamadı, yoksayılıyor", orderID)
			}
		case "payment_intent.payment_failed":
			log.Printf("webhook: ödeme başarısız (intent %s)", event.Data.Object.ID)
		default:
			log.Printf("webhook: işlenmeyen olay tipi: %s", event.Type)
		}

		return c.JSON(fiber.Map{"received": true})
	}
}
