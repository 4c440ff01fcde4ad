package report

import (
	"testing"
	"time"

	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ReportSuite struct {
	suite.Suite
	db *gorm.DB

	ayse   models.User
	mehmet models.User
	kofte  models.MenuItem
	ayran  models.MenuItem
}

func (s *ReportSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))
	s.db = db

	s.ayse = models.User{Name: "Ayşe", Email: "ayse@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	s.mehmet = models.User{Name: "Mehmet", Email: "mehmet@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	s.Require().NoError(s.db.Create(&s.ayse).Error)
	s.Require().NoError(s.db.Create(&s.mehmet).Error)

	s.kofte = models.MenuItem{Name: "Köfte", Category: "Ana Yemek", Price: 100.00, Stock: 40}
	s.ayran = models.MenuItem{Name: "Ayran", Category: "İçecek", Price: 20.00, Stock: 90}
	s.Require().NoError(s.db.Create(&s.kofte).Error)
	s.Require().NoError(s.db.Create(&s.ayran).Error)
}

func (s *ReportSuite) createOrder(user models.User, status models.OrderStatus, createdAt time.Time, qtyKofte int) models.Order {
	o := models.Order{
		UserID:    user.ID,
		Status:    status,
		CreatedAt: createdAt,
		Items: []models.OrderItem{
			{MenuItemID: s.kofte.ID, Quantity: qtyKofte, UnitPrice: s.kofte.Price},
		},
	}
	s.Require().NoError(s.db.Create(&o).Error)
	return o
}

func (s *ReportSuite) TestSalesOverTimeGroupsByDay() {
	day1 := time.Now().AddDate(0, 0, -2)
	day2 := time.Now().AddDate(0, 0, -1)

	s.createOrder(s.ayse, models.OrderStatusServed, day1, 1)   // 100 TL
	s.createOrder(s.mehmet, models.OrderStatusPaid, day1, 2)   // 200 TL
	s.createOrder(s.ayse, models.OrderStatusServed, day2, 3)   // 300 TL
	s.createOrder(s.mehmet, models.OrderStatusNew, day2, 5)    // sepette, ciroya girmez

	rows, err := SalesOverTime(s.db, 7, config.PriceModeSnapshot)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(day1.Format("2006-01-02"), rows[0].Date)
	s.Equal(int64(30000), rows[0].Revenue)
	s.Equal(day2.Format("2006-01-02"), rows[1].Date)
	s.Equal(int64(30000), rows[1].Revenue)
}

func (s *ReportSuite) TestSalesOverTimeWindow() {
	old := time.Now().AddDate(0, 0, -20)
	s.createOrder(s.ayse, models.OrderStatusServed, old, 1)

	rows, err := SalesOverTime(s.db, 7, config.PriceModeSnapshot)
	s.Require().NoError(err)
	s.Empty(rows)

	rows, err = SalesOverTime(s.db, 30, config.PriceModeSnapshot)
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *ReportSuite) TestInventoryTrendsRanksBySold() {
	now := time.Now().AddDate(0, 0, -1)
	o := models.Order{
		UserID:    s.ayse.ID,
		Status:    models.OrderStatusServed,
		CreatedAt: now,
		Items: []models.OrderItem{
			{MenuItemID: s.kofte.ID, Quantity: 2, UnitPrice: 100},
			{MenuItemID: s.ayran.ID, Quantity: 6, UnitPrice: 20},
		},
	}
	s.Require().NoError(s.db.Create(&o).Error)

	rows, err := InventoryTrends(s.db)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal("Ayran", rows[0].Name)
	s.Equal(6, rows[0].Sold)
	s.Equal(90, rows[0].Stock)
	s.Equal("Köfte", rows[1].Name)
	s.Equal(2, rows[1].Sold)
}

func (s *ReportSuite) TestStaffKPIsCountsProcessedOrders() {
	now := time.Now().AddDate(0, 0, -1)
	s.createOrder(s.ayse, models.OrderStatusServed, now, 1)
	s.createOrder(s.ayse, models.OrderStatusPaid, now, 1)
	s.createOrder(s.mehmet, models.OrderStatusServed, now, 1)
	s.createOrder(s.mehmet, models.OrderStatusNew, now, 1)

	rows, err := StaffKPIs(s.db)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(s.ayse.ID, rows[0].UserID)
	s.Equal("Ayşe", rows[0].Name)
	s.Equal(2, rows[0].Count)
	s.Equal(1, rows[1].Count)
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportSuite))
}
