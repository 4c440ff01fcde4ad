package shift

import (
	"testing"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PayrollSuite struct {
	suite.Suite
	db *gorm.DB

	garson models.Staff
	asci   models.Staff
}

func (s *PayrollSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))
	s.db = db

	s.garson = models.Staff{Name: "Zeynep", Email: "zeynep@example.com", Phone: "5550001122", Role: "garson", Wage: 100}
	s.asci = models.Staff{Name: "Hasan", Email: "hasan@example.com", Phone: "5550003344", Role: "aşçı", Wage: 150}
	s.Require().NoError(s.db.Create(&s.garson).Error)
	s.Require().NoError(s.db.Create(&s.asci).Error)
}

func (s *PayrollSuite) TestHoursTimesWage() {
	s.Require().NoError(s.db.Create(&models.Shift{
		StaffID: s.garson.ID, Date: "2026-08-03", StartTime: "09:00", EndTime: "17:00",
	}).Error)

	rows, err := ComputePayroll(s.db, "2026-08")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(s.garson.ID, rows[0].StaffID)
	s.Equal("Zeynep", rows[0].Name)
	s.Equal(8.0, rows[0].Hours)
	s.Equal(800.0, rows[0].PayAmount)
}

func (s *PayrollSuite) TestOvernightShiftWraps() {
	s.Require().NoError(s.db.Create(&models.Shift{
		StaffID: s.asci.ID, Date: "2026-08-07", StartTime: "22:00", EndTime: "02:00",
	}).Error)

	rows, err := ComputePayroll(s.db, "2026-08")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(4.0, rows[0].Hours)
	s.Equal(600.0, rows[0].PayAmount)
}

func (s *PayrollSuite) TestAggregatesPerStaffAndFiltersMonth() {
	shifts := []models.Shift{
		{StaffID: s.garson.ID, Date: "2026-08-03", StartTime: "09:00", EndTime: "17:00"},
		{StaffID: s.garson.ID, Date: "2026-08-04", StartTime: "12:00", EndTime: "18:30"},
		{StaffID: s.asci.ID, Date: "2026-08-03", StartTime: "10:00", EndTime: "20:00"},
		// Başka aya ait vardiya hesaba girmez
		{StaffID: s.garson.ID, Date: "2026-07-30", StartTime: "09:00", EndTime: "17:00"},
	}
	for i := range shifts {
		s.Require().NoError(s.db.Create(&shifts[i]).Error)
	}

	rows, err := ComputePayroll(s.db, "2026-08")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	// StaffID sırasıyla
	s.Equal(s.garson.ID, rows[0].StaffID)
	s.Equal(14.5, rows[0].Hours)
	s.Equal(1450.0, rows[0].PayAmount)

	s.Equal(s.asci.ID, rows[1].StaffID)
	s.Equal(10.0, rows[1].Hours)
	s.Equal(1500.0, rows[1].PayAmount)
}

func (s *PayrollSuite) TestInvalidTimeRejected() {
	s.Require().NoError(s.db.Create(&models.Shift{
		StaffID: s.garson.ID, Date: "2026-08-03", StartTime: "dokuz", EndTime: "17:00",
	}).Error)

	_, err := ComputePayroll(s.db, "2026-08")
	s.Error(err)
}

func (s *PayrollSuite) TestEmptyMonth() {
	rows, err := ComputePayroll(s.db, "2026-01")
	s.Require().NoError(err)
	s.Empty(rows)
}

func TestPayrollSuite(t *testing.T) {
	suite.Run(t, new(PayrollSuite))
}
