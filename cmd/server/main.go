package main

import (
	"log"
	"strings"

	"lokanta-backend/internal/auth"
	"lokanta-backend/internal/bill"
	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/loyalty"
	"lokanta-backend/internal/menu"
	"lokanta-backend/internal/models"
	"lokanta-backend/internal/order"
	"lokanta-backend/internal/payment"
	"lokanta-backend/internal/report"
	"lokanta-backend/internal/reservation"
	"lokanta-backend/internal/seating"
	"lokanta-backend/internal/shift"
	"lokanta-backend/internal/staff"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	hub := seating.NewHub()
	go hub.Run()

	gateway := payment.NewHTTPGateway(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + payment.SignatureHeader,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Canlı oturma planı kanalı
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/seating", websocket.New(seating.WSHandler(hub, database.DB)))

	api := app.Group("/api")

	// Public
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	api.Get("/menu", menu.ListMenuHandler())
	api.Get("/seating", seating.GetSeatingHandler())
	api.Post("/reservations", reservation.CreateReservationHandler(cfg, hub))

	api.Post("/feedback", loyalty.LeaveFeedbackHandler())
	api.Get("/loyalty", loyalty.GetLoyaltyHandler())
	api.Post("/loyalty/redeem", loyalty.RedeemLoyaltyHandler())
	api.Post("/loyalty/guest-code", loyalty.IssueGuestCodeHandler())

	api.Post("/payments/webhook", payment.WebhookHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Siparişler
	protected.Post("/orders", order.CreateOrderHandler(cfg))
	protected.Get("/orders/my", order.MyOrdersHandler(cfg))
	protected.Get("/orders", auth.RequireRole(models.RoleStaff, models.RoleAdmin), order.ListOrdersHandler(cfg))
	protected.Put("/orders/:id", auth.RequireRole(models.RoleStaff, models.RoleAdmin), order.UpdateStatusHandler(cfg))
	protected.Delete("/orders/:id", order.CancelOrderHandler())

	// Hesap bölüşme
	protected.Post("/bills/:orderId/split", bill.SplitBillHandler(cfg))
	protected.Get("/bills/:orderId", bill.GetBillsHandler())
	protected.Post("/bills/:billId/pay", bill.PayBillHandler())

	// Ödeme
	protected.Post("/payments/intent", payment.CreateIntentHandler(cfg, gateway))

	// Staff/admin route'ları
	staffRoutes := protected.Group("", auth.RequireRole(models.RoleStaff, models.RoleAdmin))
	staffRoutes.Get("/inventory", menu.ListInventoryHandler())
	staffRoutes.Put("/inventory/:id", menu.UpdateStockHandler())
	staffRoutes.Get("/reservations", reservation.ListReservationsHandler())
	staffRoutes.Put("/reservations/:id", reservation.UpdateReservationHandler(hub))
	staffRoutes.Delete("/reservations/:id", reservation.DeleteReservationHandler(hub))
	staffRoutes.Get("/staff", staff.ListStaffHandler())
	staffRoutes.Get("/shifts", shift.ListShiftsHandler())
	staffRoutes.Get("/reports/sales", report.SalesHandler(cfg))
	staffRoutes.Get("/reports/sales/export", report.ExportSalesHandler(cfg))
	staffRoutes.Get("/reports/inventory-trends", report.InventoryTrendsHandler())
	staffRoutes.Get("/reports/staff-kpis", report.StaffKPIsHandler())

	// Admin route'ları
	adminRoutes := protected.Group("", auth.RequireRole(models.RoleAdmin))
	adminRoutes.Post("/users", auth.CreateUserHandler())
	adminRoutes.Get("/users", auth.ListUsersHandler())
	adminRoutes.Post("/menu", menu.CreateMenuItemHandler())
	adminRoutes.Put("/menu/:id", menu.UpdateMenuItemHandler())
	adminRoutes.Delete("/menu/:id", menu.DeleteMenuItemHandler())
	adminRoutes.Post("/menu/import", menu.ImportMenuHandler())
	adminRoutes.Patch("/seating/:tableId/status", seating.SetTableStatusHandler(hub))
	adminRoutes.Post("/tables", seating.CreateTableHandler(hub))
	adminRoutes.Put("/tables/:id", seating.UpdateTableHandler(hub))
	adminRoutes.Delete("/tables/:id", seating.DeleteTableHandler(hub))
	adminRoutes.Post("/staff", staff.CreateStaffHandler())
	adminRoutes.Put("/staff/:id", staff.UpdateStaffHandler())
	adminRoutes.Delete("/staff/:id", staff.DeleteStaffHandler())
	adminRoutes.Post("/shifts", shift.CreateShiftHandler())
	adminRoutes.Put("/shifts/:id", shift.UpdateShiftHandler())
	adminRoutes.Delete("/shifts/:id", shift.DeleteShiftHandler())
	adminRoutes.Get("/payroll", shift.PayrollHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
