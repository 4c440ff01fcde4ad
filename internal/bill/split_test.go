package bill

import (
	"testing"

	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SplitSuite struct {
	suite.Suite
	db *gorm.DB

	owner    models.User
	stranger models.User
	kofte    models.MenuItem
	baklava  models.MenuItem
	ord      models.Order
}

func (s *SplitSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))
	s.db = db

	s.owner = models.User{Name: "Ayşe", Email: "ayse@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	s.stranger = models.User{Name: "Mehmet", Email: "mehmet@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	s.Require().NoError(s.db.Create(&s.owner).Error)
	s.Require().NoError(s.db.Create(&s.stranger).Error)

	s.kofte = models.MenuItem{Name: "Köfte", Category: "Ana Yemek", Price: 50.00, Stock: 100}
	s.baklava = models.MenuItem{Name: "Baklava", Category: "Tatlı", Price: 33.35, Stock: 100}
	s.Require().NoError(s.db.Create(&s.kofte).Error)
	s.Require().NoError(s.db.Create(&s.baklava).Error)

	s.ord = models.Order{
		UserID: s.owner.ID,
		Status: models.OrderStatusServed,
		Items: []models.OrderItem{
			{MenuItemID: s.kofte.ID, Quantity: 4, UnitPrice: 50.00},
			{MenuItemID: s.baklava.ID, Quantity: 1, UnitPrice: 33.35},
		},
	}
	s.Require().NoError(s.db.Create(&s.ord).Error)
}

func (s *SplitSuite) TestEvenSplit() {
	bills, err := Split(s.db, s.ord.ID, s.owner.ID, []ShareRequest{
		{Name: "Ali", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 2}, {MenuItemID: s.baklava.ID, Quantity: 1}}},
		{Name: "Veli", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 2}}},
	}, config.PriceModeSnapshot)
	s.Require().NoError(err)
	s.Require().Len(bills, 2)

	s.Equal("Ali", bills[0].Name)
	s.Equal(int64(13335), bills[0].Amount) // 2×50.00 + 33.35
	s.False(bills[0].Paid)
	s.Equal("Veli", bills[1].Name)
	s.Equal(int64(10000), bills[1].Amount)
}

func (s *SplitSuite) TestFractionalShares() {
	bills, err := Split(s.db, s.ord.ID, s.owner.ID, []ShareRequest{
		{Name: "Ali", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 2}, {MenuItemID: s.baklava.ID, Quantity: 0.5}}},
		{Name: "Veli", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 2}, {MenuItemID: s.baklava.ID, Quantity: 0.5}}},
	}, config.PriceModeSnapshot)
	s.Require().NoError(err)
	s.Require().Len(bills, 2)

	// Baklava 33.35 TL: yarımlar 1668'er kuruşa yuvarlanır
	s.Equal(int64(11668), bills[0].Amount)
	s.Equal(int64(11668), bills[1].Amount)
}

func (s *SplitSuite) TestIncompleteAllocationRejected() {
	_, err := Split(s.db, s.ord.ID, s.owner.ID, []ShareRequest{
		{Name: "Ali", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 1}, {MenuItemID: s.baklava.ID, Quantity: 1}}},
		{Name: "Veli", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 2}}},
	}, config.PriceModeSnapshot)
	var allocErr *AllocationError
	s.Require().ErrorAs(err, &allocErr)
	s.Equal(s.kofte.ID, allocErr.MenuItemID)
	s.Equal(4.0, allocErr.Expected)
	s.Equal(3.0, allocErr.Allocated)

	// Reddedilen bölüşüm hiçbir pay yazmamış olmalı
	var count int64
	s.Require().NoError(s.db.Model(&models.Bill{}).Count(&count).Error)
	s.Zero(count)
}

func (s *SplitSuite) TestResplitReplacesShares() {
	_, err := Split(s.db, s.ord.ID, s.owner.ID, []ShareRequest{
		{Name: "Ali", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 4}, {MenuItemID: s.baklava.ID, Quantity: 1}}},
	}, config.PriceModeSnapshot)
	s.Require().NoError(err)

	bills, err := Split(s.db, s.ord.ID, s.owner.ID, []ShareRequest{
		{Name: "Veli", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 4}, {MenuItemID: s.baklava.ID, Quantity: 1}}},
	}, config.PriceModeSnapshot)
	s.Require().NoError(err)
	s.Require().Len(bills, 1)
	s.Equal("Veli", bills[0].Name)
	s.Equal(int64(23335), bills[0].Amount)
}

func (s *SplitSuite) TestUnknownShareItem() {
	_, err := Split(s.db, s.ord.ID, s.owner.ID, []ShareRequest{
		{Name: "Ali", Items: []ShareItem{{MenuItemID: 9999, Quantity: 1}}},
	}, config.PriceModeSnapshot)
	var unknownErr *UnknownShareItemError
	s.Require().ErrorAs(err, &unknownErr)
	s.Equal(uint(9999), unknownErr.MenuItemID)
}

func (s *SplitSuite) TestOwnershipRequired() {
	_, err := Split(s.db, s.ord.ID, s.stranger.ID, []ShareRequest{
		{Name: "Ali", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 4}, {MenuItemID: s.baklava.ID, Quantity: 1}}},
	}, config.PriceModeSnapshot)
	s.ErrorIs(err, ErrNotOwner)

	_, err = ListByOrder(s.db, s.ord.ID, s.stranger.ID)
	s.ErrorIs(err, ErrNotOwner)
}

func (s *SplitSuite) TestMarkPaid() {
	bills, err := Split(s.db, s.ord.ID, s.owner.ID, []ShareRequest{
		{Name: "Ali", Items: []ShareItem{{MenuItemID: s.kofte.ID, Quantity: 4}, {MenuItemID: s.baklava.ID, Quantity: 1}}},
	}, config.PriceModeSnapshot)
	s.Require().NoError(err)

	paid, err := MarkPaid(s.db, bills[0].ID, s.owner.ID)
	s.Require().NoError(err)
	s.True(paid.Paid)

	_, err = MarkPaid(s.db, bills[0].ID, s.stranger.ID)
	s.ErrorIs(err, ErrNotOwner)

	_, err = MarkPaid(s.db, 9999, s.owner.ID)
	s.ErrorIs(err, ErrBillNotFound)
}

func TestSplitSuite(t *testing.T) {
	suite.Run(t, new(SplitSuite))
}
