package loyalty

import (
	"testing"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LoyaltySuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *LoyaltySuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))
	s.db = db
}

func (s *LoyaltySuite) TestFeedbackAwardsPoints() {
	rec, err := AwardFeedback(s.db, "ABCD1234", 5, "Harika bir akşamdı")
	s.Require().NoError(err)
	s.Equal(5, rec.Points)

	// Aynı kod ikinci geri bildirimde birikir
	rec, err = AwardFeedback(s.db, "ABCD1234", 3, "")
	s.Require().NoError(err)
	s.Equal(10, rec.Points)

	var count int64
	s.Require().NoError(s.db.Model(&models.Feedback{}).Where("guest_code = ?", "ABCD1234").Count(&count).Error)
	s.Equal(int64(2), count)
}

func (s *LoyaltySuite) TestFeedbackValidation() {
	_, err := AwardFeedback(s.db, "", 5, "")
	s.ErrorIs(err, ErrMissingGuestCode)

	_, err = AwardFeedback(s.db, "ABCD1234", 0, "")
	s.ErrorIs(err, ErrBadRating)

	_, err = AwardFeedback(s.db, "ABCD1234", 6, "")
	s.ErrorIs(err, ErrBadRating)
}

func (s *LoyaltySuite) TestGetPointsUnknownCodeIsZero() {
	pts, err := GetPoints(s.db, "YOKBOYLE")
	s.Require().NoError(err)
	s.Zero(pts)
}

func (s *LoyaltySuite) TestRedeem() {
	s.Require().NoError(s.db.Create(&models.Loyalty{GuestCode: "ABCD1234", Points: 25}).Error)

	discount, remaining, err := Redeem(s.db, "ABCD1234", 20)
	s.Require().NoError(err)
	s.Equal(int64(10000), discount) // 20 puan = 2 × 50 TL
	s.Equal(5, remaining)

	pts, err := GetPoints(s.db, "ABCD1234")
	s.Require().NoError(err)
	s.Equal(5, pts)
}

func (s *LoyaltySuite) TestRedeemValidation() {
	s.Require().NoError(s.db.Create(&models.Loyalty{GuestCode: "ABCD1234", Points: 25}).Error)

	_, _, err := Redeem(s.db, "ABCD1234", 7)
	s.ErrorIs(err, ErrBadRedeemAmount)

	_, _, err = Redeem(s.db, "ABCD1234", 0)
	s.ErrorIs(err, ErrBadRedeemAmount)

	_, _, err = Redeem(s.db, "ABCD1234", 30)
	s.ErrorIs(err, ErrNotEnoughPoints)

	_, _, err = Redeem(s.db, "TANIMSIZ", 10)
	s.ErrorIs(err, ErrNotEnoughPoints)

	// Başarısız bozdurma bakiyeyi değiştirmez
	pts, err := GetPoints(s.db, "ABCD1234")
	s.Require().NoError(err)
	s.Equal(25, pts)
}

func (s *LoyaltySuite) TestNewGuestCode() {
	code := NewGuestCode()
	s.Len(code, 8)
	s.NotEqual(code, NewGuestCode())
}

func TestLoyaltySuite(t *testing.T) {
	suite.Run(t, new(LoyaltySuite))
}
